// Package bench drives container.Vector workloads concurrently and reports
// element lifetime balance and growth behaviour.
package bench

import (
	"errors"
	"fmt"

	"github.com/peng-qing/go_vector/common/encode_utils"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

var (
	ErrInvalidConfig = errors.New("invalid bench config")
)

// Config 压测配置
type Config struct {
	Workers        int    // 并发任务数
	Tasks          int    // 任务总数 每个任务独占一个 Vector
	Rounds         int    // 每个任务的轮数
	Appends        int    // 每轮追加的元素个数
	PayloadSize    int    // 每个元素携带的字节数
	FailEvery      int    // 每第 N 次构造注入失败 0 表示不注入
	Format         string // 输出格式 text/json
	Encoding       string // 输出编码
	HeapProfileDir string // 堆内存分析导出目录 为空不导出
}

// DefaultConfig 默认配置
func DefaultConfig() *Config {
	return &Config{
		Workers:     4,
		Tasks:       8,
		Rounds:      4,
		Appends:     1000,
		PayloadSize: 16,
		FailEvery:   0,
		Format:      FormatText,
		Encoding:    encode_utils.EncodingUTF8,
	}
}

// Validate 校验配置
func (c *Config) Validate() error {
	switch {
	case c.Workers <= 0:
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, c.Workers)
	case c.Tasks <= 0:
		return fmt.Errorf("%w: tasks must be positive, got %d", ErrInvalidConfig, c.Tasks)
	case c.Rounds <= 0:
		return fmt.Errorf("%w: rounds must be positive, got %d", ErrInvalidConfig, c.Rounds)
	case c.Appends < 0:
		return fmt.Errorf("%w: appends must not be negative, got %d", ErrInvalidConfig, c.Appends)
	case c.PayloadSize < 0:
		return fmt.Errorf("%w: payload size must not be negative, got %d", ErrInvalidConfig, c.PayloadSize)
	case c.FailEvery < 0:
		return fmt.Errorf("%w: fail-every must not be negative, got %d", ErrInvalidConfig, c.FailEvery)
	case c.Format != FormatText && c.Format != FormatJSON:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, c.Format)
	case encode_utils.NewEncoder(c.Encoding) == nil:
		return fmt.Errorf("%w: unsupported encoding %q", ErrInvalidConfig, c.Encoding)
	}
	return nil
}
