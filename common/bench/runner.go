package bench

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/peng-qing/go_vector/common/container"
	"github.com/peng-qing/go_vector/common/options"
	"github.com/peng-qing/go_vector/common/pool/gpool"
)

// Runner 压测执行器
type Runner struct {
	conf   *Config
	logger *slog.Logger
}

// WithRunnerLogger 设置执行器日志
func WithRunnerLogger(logger *slog.Logger) options.Option[Runner] {
	return options.WrapperOptions[Runner](func(r *Runner) {
		r.logger = logger
	})
}

// NewRunner 创建执行器
func NewRunner(conf *Config, opts ...options.Option[Runner]) (*Runner, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	r := options.Apply(&Runner{conf: conf, logger: slog.Default()}, opts...)
	return r, nil
}

// Run 提交所有任务并等待结束 ctx 取消后未开始的任务不再提交
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	report := &Report{
		RunID:   uuid.NewString(),
		Workers: r.conf.Workers,
		Results: make([]TaskResult, r.conf.Tasks),
	}
	r.logger.Info("[Runner] Run starting", slog.String("runID", report.RunID), slog.Int("workers", r.conf.Workers), slog.Int("tasks", r.conf.Tasks))

	var (
		mu        sync.Mutex
		taskPanic error
	)
	runner := gpool.NewTaskRunner(r.conf.Workers, func(ctx context.Context, throwValue any) {
		mu.Lock()
		defer mu.Unlock()
		taskPanic = errors.Join(taskPanic, fmt.Errorf("bench task panic: %v", throwValue))
	})

	start := time.Now()
	var submitErr error
	for i := 0; i < r.conf.Tasks; i++ {
		taskID := i
		err := runner.Submit(gpool.Task{
			Ctx: ctx,
			TaskFunc: func(ctx context.Context) {
				report.Results[taskID] = r.runTask(ctx, taskID)
			},
		})
		if err != nil {
			submitErr = err
			break
		}
	}
	runner.Close()
	report.Duration = time.Since(start)
	report.summarize()

	r.logger.Info("[Runner] Run finished", slog.String("runID", report.RunID), slog.Bool("balanced", report.Balanced), slog.Duration("duration", report.Duration))
	if err := errors.Join(submitErr, taskPanic); err != nil {
		return report, err
	}
	return report, nil
}

// runTask 单个任务: 追加/预留/调整大小/弹出 结束时释放 Vector
func (r *Runner) runTask(ctx context.Context, taskID int) (result TaskResult) {
	lc := &payloadLifecycle{size: r.conf.PayloadSize, failEvery: r.conf.FailEvery}
	result.TaskID = taskID

	v := container.NewVector(container.WithLifecycle[Payload](lc), container.WithLogger[Payload](r.logger))
	defer func() {
		v.Release()
		result.Constructions = lc.constructions
		result.Destructions = lc.destructions
		result.Injected = lc.injected
	}()

	seed := Payload{Data: make([]byte, r.conf.PayloadSize)}
	for round := 0; round < r.conf.Rounds; round++ {
		if ctx.Err() != nil {
			result.Cancelled = true
			break
		}
		for i := 0; i < r.conf.Appends; i++ {
			before := v.Capacity()
			seed.ID = round*r.conf.Appends + i
			if err := v.PushBack(seed); err != nil {
				result.Failures++
			}
			if v.Capacity() != before {
				result.Growths++
			}
		}
		if _, err := v.Reserve(v.Size() + r.conf.Appends); err != nil {
			result.Failures++
		}
		if err := v.ResizeWith(v.Size()+r.conf.Appends/4, seed); err != nil {
			result.Failures++
		}
		if err := v.Resize(v.Size() / 2); err != nil {
			result.Failures++
		}
		for i := 0; i < r.conf.Appends/8; i++ {
			if !v.PopBack() {
				break
			}
		}
		if _, err := v.At(v.Size()); !errors.Is(err, container.ErrOutOfRange) {
			result.Failures++
		}
	}
	result.Size = v.Size()
	result.Capacity = v.Capacity()
	return result
}
