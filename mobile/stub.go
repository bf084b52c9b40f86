//go:build !mobile

// 非移动端构建时的占位文件，实际绑定代码在 mobile.go 中，仅在 -tags mobile 时编译。
package mobile

// Dummy 是一个空导出函数，确保包在非移动端构建时也能被引用
func Dummy() {}
