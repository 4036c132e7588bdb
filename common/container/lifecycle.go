package container

// Lifecycle 元素生命周期
// Vector 通过它在槽位上构造、拷贝和销毁元素
// Construct / CopyConstruct 失败时槽位视为未构造 Vector 不会对其调用 Destroy
// Destroy 不允许失败
// 调用 Destroy 或构造失败后 Vector 会把槽位重置为零值
type Lifecycle[T any] interface {
	// Construct 在 slot 上默认构造一个元素
	Construct(slot *T) error
	// CopyConstruct 以 src 为源在 slot 上拷贝构造一个元素
	CopyConstruct(slot *T, src *T) error
	// Destroy 销毁 slot 上的元素
	Destroy(slot *T)
}

// trivialLifecycle 平凡类型的生命周期: 零值构造 赋值拷贝
type trivialLifecycle[T any] struct{}

func (trivialLifecycle[T]) Construct(slot *T) error {
	var zero T
	*slot = zero
	return nil
}

func (trivialLifecycle[T]) CopyConstruct(slot *T, src *T) error {
	*slot = *src
	return nil
}

// Destroy 无需处理 槽位由 Vector 统一清零
func (trivialLifecycle[T]) Destroy(*T) {}

// LifecycleFuncs 函数式的 Lifecycle 适配器
// 未设置的函数使用平凡类型的行为
type LifecycleFuncs[T any] struct {
	ConstructFunc     func(slot *T) error
	CopyConstructFunc func(slot *T, src *T) error
	DestroyFunc       func(slot *T)
}

// Construct 实现 Lifecycle 接口
func (f LifecycleFuncs[T]) Construct(slot *T) error {
	if f.ConstructFunc == nil {
		return trivialLifecycle[T]{}.Construct(slot)
	}
	return f.ConstructFunc(slot)
}

// CopyConstruct 实现 Lifecycle 接口
func (f LifecycleFuncs[T]) CopyConstruct(slot *T, src *T) error {
	if f.CopyConstructFunc == nil {
		return trivialLifecycle[T]{}.CopyConstruct(slot, src)
	}
	return f.CopyConstructFunc(slot, src)
}

// Destroy 实现 Lifecycle 接口
func (f LifecycleFuncs[T]) Destroy(slot *T) {
	if f.DestroyFunc != nil {
		f.DestroyFunc(slot)
	}
}
