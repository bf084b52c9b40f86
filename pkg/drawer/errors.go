package drawer

import "errors"

var (
	// ErrAlreadyAttached 抽屉已经绑定过宿主，重复绑定属于使用错误
	ErrAlreadyAttached = errors.New("drawer: host already attached")
	// ErrUnsupportedPosition 目标位置不在当前吸附集合中
	ErrUnsupportedPosition = errors.New("drawer: position not in snap set")
	// ErrEmptySnapSet 吸附集合为空
	ErrEmptySnapSet = errors.New("drawer: empty snap set")
	// ErrInvalidPosition 无法识别的位置
	ErrInvalidPosition = errors.New("drawer: invalid position")
	// ErrInvalidOrientation 无法识别的方向
	ErrInvalidOrientation = errors.New("drawer: invalid orientation")
)
