package gpool

import (
	"context"
	"errors"
	"log/slog"
	"runtime/debug"
	"sync"

	"github.com/peng-qing/go_vector/common/container"
)

var (
	ErrTaskRunnerBusy   = errors.New("task runner is busy")
	ErrTaskRunnerClosed = errors.New("task runner is closed")
)

type PanicHandler func(ctx context.Context, throwValue any)

// TaskFunc 任务函数
type TaskFunc func(ctx context.Context)

// Task 任务
type Task struct {
	Ctx      context.Context // 上下文
	TaskFunc TaskFunc        // 任务函数
}

// TaskRunner 任务执行器 限制同时运行的任务数
type TaskRunner struct {
	panicHandler PanicHandler        // 异常处理函数
	limitChan    chan container.None // 并发槽位
	wg           sync.WaitGroup      // 等待组
	mu           sync.RWMutex        // 保护 closed
	closed       bool                // 是否已关闭
}

// NewTaskRunner 创建任务执行器
// @param concurrency 最大并发任务数
// @param panicHandler 异常处理函数
// @return *TaskRunner
func NewTaskRunner(concurrency int, panicHandler PanicHandler) *TaskRunner {
	if concurrency <= 0 {
		concurrency = 1
	}
	if panicHandler == nil {
		panicHandler = func(ctx context.Context, throwValue any) {
			slog.Error("[TaskRunner] panic", "throwValue", throwValue)
		}
	}

	return &TaskRunner{
		panicHandler: panicHandler,
		limitChan:    make(chan container.None, concurrency),
	}
}

// Submit 提交任务 并发已满时阻塞等待槽位或 ctx 结束
func (tr *TaskRunner) Submit(task Task) error {
	tr.mu.RLock()
	defer tr.mu.RUnlock()
	if tr.closed {
		return ErrTaskRunnerClosed
	}

	ctx := task.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	select {
	case tr.limitChan <- container.None{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	tr.run(task)
	return nil
}

// SubmitImmediately 提交任务 并发已满时直接返回 ErrTaskRunnerBusy
func (tr *TaskRunner) SubmitImmediately(task Task) error {
	tr.mu.RLock()
	defer tr.mu.RUnlock()
	if tr.closed {
		return ErrTaskRunnerClosed
	}

	select {
	case tr.limitChan <- container.None{}:
	default:
		return ErrTaskRunnerBusy
	}
	tr.run(task)
	return nil
}

// run 在已占用槽位上启动任务
func (tr *TaskRunner) run(task Task) {
	tr.wg.Add(1)
	go func() {
		defer func() {
			tr.wg.Done()
			<-tr.limitChan
		}()
		defer func() {
			if err := recover(); err != nil {
				slog.Error("[TaskRunner] task panic", "throwValue", err, "stack", string(debug.Stack()))
				tr.panicHandler(task.Ctx, err)
			}
		}()
		task.TaskFunc(task.Ctx)
	}()
}

// Wait 等待已提交的任务全部结束
func (tr *TaskRunner) Wait() {
	tr.wg.Wait()
}

// Close 拒绝新任务并等待已提交的任务结束
func (tr *TaskRunner) Close() {
	tr.mu.Lock()
	tr.closed = true
	tr.mu.Unlock()
	tr.wg.Wait()
}
