package container

import (
	"errors"
	"fmt"
)

var (
	ErrAllocation    = errors.New("storage allocation failed")
	ErrConstruction  = errors.New("element construction failed")
	ErrOutOfRange    = errors.New("index out of range")
	ErrInvalidLength = errors.New("invalid length")
)

// AllocationError 存储块申请失败
type AllocationError struct {
	Capacity int   // 申请的槽位数
	Err      error // 底层原因 可能为空
}

func (e *AllocationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: capacity %d: %v", ErrAllocation, e.Capacity, e.Err)
	}
	return fmt.Sprintf("%s: capacity %d", ErrAllocation, e.Capacity)
}

func (e *AllocationError) Unwrap() error {
	return e.Err
}

func (e *AllocationError) Is(target error) bool {
	return target == ErrAllocation
}

// ConstructionError 元素构造失败
type ConstructionError struct {
	Op    string // 触发构造的操作
	Index int    // 构造失败的逻辑位置
	Err   error  // Lifecycle 返回的错误
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("%s: %s at index %d: %v", ErrConstruction, e.Op, e.Index, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

func (e *ConstructionError) Is(target error) bool {
	return target == ErrConstruction
}

// OutOfRangeError 越界访问
type OutOfRangeError struct {
	Index int // 访问的下标
	Size  int // 访问时的元素个数 合法范围 [0, Size)
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s: index %d, valid range [0, %d)", ErrOutOfRange, e.Index, e.Size)
}

func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
