package container

// None 空结构 用作集合/信号的占位值
type None struct{}

// Container 容器接口
type Container[T any] interface {
	Empty() bool
	Size() int
	Clear()
	Value() []T
}

var (
	// 断言 检查 Vector 实现 Container 接口
	_ Container[int] = (*Vector[int])(nil)
)
