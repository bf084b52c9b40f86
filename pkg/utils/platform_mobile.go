//go:build mobile

package utils

// MobileSafeArea 移动端底部手势条占用的高度
const MobileSafeArea = 24.0

// SafeAreaInset 移动端固定使用 MobileSafeArea
func SafeAreaInset() float64 {
	return MobileSafeArea
}
