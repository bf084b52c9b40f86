//go:build !android

package utils

import "testing"

func TestPrepareStorage_Desktop(t *testing.T) {
	dir, err := PrepareStorage()
	if err != nil || dir != "" {
		t.Errorf("PrepareStorage() = %q, %v; want \"\", nil", dir, err)
	}
}
