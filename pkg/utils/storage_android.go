//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PrepareStorage 确保 Android 上 gdata 使用的目录存在且可写，返回数据目录
//
// gdata 在 Android 上写入 /data/data/{package}/，但不会预先创建子目录，
// 因此必须在 gdata.Open 之前调用。
func PrepareStorage() (string, error) {
	dir, err := androidDataDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve storage dir: %w", err)
	}
	stateDir := filepath.Join(dir, "saves")
	if err := os.MkdirAll(stateDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", stateDir, err)
	}
	marker := filepath.Join(stateDir, ".writable")
	if err := os.WriteFile(marker, nil, 0644); err != nil {
		return "", fmt.Errorf("%s is not writable: %w", stateDir, err)
	}
	return dir, os.Remove(marker)
}

// androidDataDir 从 /proc/self/cmdline 读出包名并拼出数据目录
func androidDataDir() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}
	pkg := strings.TrimSpace(strings.ReplaceAll(string(data), "\x00", ""))
	if pkg == "" {
		return "", fmt.Errorf("empty /proc/self/cmdline")
	}
	return filepath.Join("/data/data", pkg), nil
}
