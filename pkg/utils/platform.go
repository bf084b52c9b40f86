//go:build !mobile

package utils

import (
	"os"
	"strconv"
)

// SafeAreaEnv 桌面端模拟安全区高度的环境变量（像素）
const SafeAreaEnv = "SNAPDRAWER_SAFE_AREA"

// SafeAreaInset 返回抽屉贴靠边缘的系统安全区高度
//
// 桌面端默认为 0；设置 SNAPDRAWER_SAFE_AREA=24 可在本地调试 automatic inset。
// 无法解析或为负数时按 0 处理。
func SafeAreaInset() float64 {
	v, err := strconv.ParseFloat(os.Getenv(SafeAreaEnv), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
