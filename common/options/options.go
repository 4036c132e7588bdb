package options

// Option Options 接口
type Option[T any] interface {
	Apply(t *T)
}

// WrapperOptions 包装函数为 Option
type WrapperOptions[T any] func(t *T)

// Apply 实现Options接口
func (opt WrapperOptions[T]) Apply(t *T) {
	opt(t)
}

// Apply 按顺序应用所有选项 nil 选项直接跳过
func Apply[T any](t *T, opts ...Option[T]) *T {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.Apply(t)
	}
	return t
}
