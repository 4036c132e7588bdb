package container

import (
	"fmt"
	"log/slog"

	"github.com/peng-qing/go_vector/common/options"
)

// Vector 动态数组 线程不安全
// 容量与长度分离: storage 预留 capacity 个槽位 只有前 size 个是已构造的元素
// 任何重新分配存储的操作(Reserve/Resize 扩容/PushBack 扩容)都会使 Ref/At 返回的指针失效
// 零值可以直接使用 等价于 NewVector 不带选项
type Vector[T any] struct {
	storage []T             // 存储块 len(storage) 即容量 容量为 0 时为 nil
	size    int             // 已构造元素个数
	conf    VectorConfig[T] // 配置
}

// NewVector 创建空 Vector 不申请存储
func NewVector[T any](opts ...options.Option[VectorConfig[T]]) *Vector[T] {
	v := &Vector[T]{}
	options.Apply(&v.conf, opts...)
	return v
}

// NewVectorWithSize 创建包含 n 个默认构造元素的 Vector 容量恰好为 n
// 任一元素构造失败时销毁已构造的元素并释放存储 返回 nil
func NewVectorWithSize[T any](n int, opts ...options.Option[VectorConfig[T]]) (*Vector[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	v := NewVector[T](opts...)
	if n == 0 {
		return v, nil
	}
	block, err := v.allocate(n)
	if err != nil {
		return nil, err
	}
	if err := v.fillRange("NewVectorWithSize", block, 0, n, nil); err != nil {
		return nil, err
	}
	v.storage = block
	v.size = n
	return v, nil
}

// Size 元素个数
func (v *Vector[T]) Size() int {
	return v.size
}

// Capacity 不重新分配时最多容纳的元素个数
func (v *Vector[T]) Capacity() int {
	return len(v.storage)
}

// Empty 是否为空
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// Reserve 保证容量不小于 n
// n <= 容量时不做任何事 返回 false; 否则容量变为 n
// 拷贝已有元素失败时 Vector 保持原样
func (v *Vector[T]) Reserve(n int) (bool, error) {
	return v.reserve("Reserve", n)
}

func (v *Vector[T]) reserve(op string, n int) (bool, error) {
	if n <= len(v.storage) {
		return false, nil
	}
	if err := v.grow(op, n); err != nil {
		return false, err
	}
	return true, nil
}

// Resize 调整元素个数为 n 新增元素默认构造
func (v *Vector[T]) Resize(n int) error {
	return v.resize("Resize", n, nil)
}

// ResizeWith 调整元素个数为 n 新增元素拷贝自 value
func (v *Vector[T]) ResizeWith(n int, value T) error {
	return v.resize("ResizeWith", n, &value)
}

// resize 扩容后构造 [size, n) 或销毁 [n, size)
// 构造失败时只销毁本次新增的元素 size 不变
func (v *Vector[T]) resize(op string, n int, value *T) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	if _, err := v.reserve(op, n); err != nil {
		return err
	}
	switch {
	case n > v.size:
		if err := v.fillRange(op, v.storage, v.size, n, value); err != nil {
			return err
		}
	case n < v.size:
		v.destroyRange(v.storage, n, v.size)
	}
	v.size = n
	return nil
}

// PushBack 在末尾追加 value 的拷贝
// 容量不足时翻倍(容量为 0 时为 1)
// 扩容成功但构造失败时 size 不变 容量保持扩容后的大小
func (v *Vector[T]) PushBack(value T) error {
	if v.size == len(v.storage) {
		newCapacity := len(v.storage) * 2
		if newCapacity == 0 {
			newCapacity = 1
		}
		if newCapacity < len(v.storage) {
			// 溢出
			return &AllocationError{Capacity: newCapacity}
		}
		if err := v.grow("PushBack", newCapacity); err != nil {
			return err
		}
	}
	if err := v.lifecycle().CopyConstruct(&v.storage[v.size], &value); err != nil {
		v.resetSlot(v.storage, v.size)
		return &ConstructionError{Op: "PushBack", Index: v.size, Err: err}
	}
	v.size++
	return nil
}

// PopBack 销毁末尾元素 为空时返回 false
func (v *Vector[T]) PopBack() bool {
	if v.size == 0 {
		return false
	}
	v.destroyRange(v.storage, v.size-1, v.size)
	v.size--
	return true
}

// Ref 返回下标 i 处元素的指针 不做边界检查 调用方保证 i < Size()
func (v *Vector[T]) Ref(i int) *T {
	return &v.storage[i]
}

// Get 返回下标 i 处的元素 不做边界检查 调用方保证 i < Size()
func (v *Vector[T]) Get(i int) T {
	return v.storage[i]
}

// At 返回下标 i 处元素的指针 越界返回 *OutOfRangeError
func (v *Vector[T]) At(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, &OutOfRangeError{Index: i, Size: v.size}
	}
	return &v.storage[i], nil
}

// Clear 销毁所有元素 保留容量
func (v *Vector[T]) Clear() {
	v.destroyRange(v.storage, 0, v.size)
	v.size = 0
}

// Release 销毁所有元素并释放存储 之后 Vector 回到初始状态可继续使用
func (v *Vector[T]) Release() {
	if v.storage == nil {
		return
	}
	capacity := len(v.storage)
	v.Clear()
	v.storage = nil
	v.logger().Debug("[Vector] release storage", slog.Int("capacity", capacity))
}

// Value 返回已构造元素的浅拷贝 不经过 Lifecycle
func (v *Vector[T]) Value() []T {
	values := make([]T, v.size)
	copy(values, v.storage[:v.size])
	return values
}
