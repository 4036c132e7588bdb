package container

import (
	"log/slog"

	"github.com/peng-qing/go_vector/common/options"
)

// VectorConfig Vector 配置
type VectorConfig[T any] struct {
	lifecycle   Lifecycle[T] // 元素生命周期 为空时按平凡类型处理
	logger      *slog.Logger // 日志 为空时使用 slog.Default()
	maxCapacity int          // 最大容量 <= 0 表示不限制
}

// WithLifecycle 设置元素生命周期
func WithLifecycle[T any](lifecycle Lifecycle[T]) options.Option[VectorConfig[T]] {
	return options.WrapperOptions[VectorConfig[T]](func(conf *VectorConfig[T]) {
		conf.lifecycle = lifecycle
	})
}

// WithLogger 设置日志 存储块的扩容和释放以 Debug 级别输出
func WithLogger[T any](logger *slog.Logger) options.Option[VectorConfig[T]] {
	return options.WrapperOptions[VectorConfig[T]](func(conf *VectorConfig[T]) {
		conf.logger = logger
	})
}

// WithMaxCapacity 设置最大容量 超过该容量的存储申请返回 ErrAllocation
func WithMaxCapacity[T any](maxCapacity int) options.Option[VectorConfig[T]] {
	return options.WrapperOptions[VectorConfig[T]](func(conf *VectorConfig[T]) {
		conf.maxCapacity = maxCapacity
	})
}
