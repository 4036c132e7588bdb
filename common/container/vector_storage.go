package container

import (
	"fmt"
	"log/slog"
)

// 存储块管理
// storage 的长度即容量 [0, size) 为已构造元素 [size, capacity) 始终为零值

func (v *Vector[T]) lifecycle() Lifecycle[T] {
	if v.conf.lifecycle == nil {
		return trivialLifecycle[T]{}
	}
	return v.conf.lifecycle
}

func (v *Vector[T]) logger() *slog.Logger {
	if v.conf.logger == nil {
		return slog.Default()
	}
	return v.conf.logger
}

// allocate 申请 n 个槽位的存储块
func (v *Vector[T]) allocate(n int) (block []T, err error) {
	if n < 0 || (v.conf.maxCapacity > 0 && n > v.conf.maxCapacity) {
		return nil, &AllocationError{Capacity: n}
	}
	defer func() {
		// makeslice 长度越界等运行时错误
		if r := recover(); r != nil {
			block = nil
			err = &AllocationError{Capacity: n, Err: fmt.Errorf("%v", r)}
		}
	}()
	return make([]T, n), nil
}

// grow 重新申请 n 个槽位的存储块并拷贝已有元素
// 拷贝失败时新块被丢弃 原存储保持不变
func (v *Vector[T]) grow(op string, n int) error {
	block, err := v.allocate(n)
	if err != nil {
		return err
	}
	if err := v.copyInto(op, block, v.storage[:v.size]); err != nil {
		return err
	}
	oldCapacity := len(v.storage)
	v.destroyRange(v.storage, 0, v.size)
	v.storage = block

	v.logger().Debug("[Vector] grow storage", slog.String("op", op), slog.Int("from", oldCapacity), slog.Int("to", n), slog.Int("size", v.size))
	return nil
}

// copyInto 在 dst 前缀上逐个拷贝构造 src
// 第 i 个失败时销毁 dst[0, i)
func (v *Vector[T]) copyInto(op string, dst, src []T) error {
	lifecycle := v.lifecycle()
	for i := range src {
		if err := lifecycle.CopyConstruct(&dst[i], &src[i]); err != nil {
			v.resetSlot(dst, i)
			v.destroyRange(dst, 0, i)
			return &ConstructionError{Op: op, Index: i, Err: err}
		}
	}
	return nil
}

// fillRange 在 [from, to) 上构造元素 value 为空时默认构造 否则拷贝 value
// 第 i 个失败时只销毁本次构造的 [from, i)
func (v *Vector[T]) fillRange(op string, block []T, from, to int, value *T) error {
	lifecycle := v.lifecycle()
	for i := from; i < to; i++ {
		var err error
		if value == nil {
			err = lifecycle.Construct(&block[i])
		} else {
			err = lifecycle.CopyConstruct(&block[i], value)
		}
		if err != nil {
			v.resetSlot(block, i)
			v.destroyRange(block, from, i)
			return &ConstructionError{Op: op, Index: i, Err: err}
		}
	}
	return nil
}

// destroyRange 逆序销毁 [from, to) 并清零槽位
func (v *Vector[T]) destroyRange(block []T, from, to int) {
	lifecycle := v.lifecycle()
	for i := to - 1; i >= from; i-- {
		lifecycle.Destroy(&block[i])
		v.resetSlot(block, i)
	}
}

func (v *Vector[T]) resetSlot(block []T, i int) {
	var zero T
	block[i] = zero
}
