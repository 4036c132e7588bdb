package bench

import (
	"errors"

	"github.com/peng-qing/go_vector/common/container"
)

var (
	ErrInjectedFailure = errors.New("injected construction failure")
)

// Payload 压测元素 拷贝时深拷贝 Data
type Payload struct {
	ID   int    `json:"id"`
	Data []byte `json:"data"`
}

// payloadLifecycle 记录构造/析构次数 并按 failEvery 注入构造失败
// 每个任务独占一个实例 无需加锁
type payloadLifecycle struct {
	size          int
	failEvery     int
	attempts      int
	constructions int
	destructions  int
	injected      int
}

var (
	_ container.Lifecycle[Payload] = (*payloadLifecycle)(nil)
)

func (lc *payloadLifecycle) shouldFail() bool {
	lc.attempts++
	if lc.failEvery > 0 && lc.attempts%lc.failEvery == 0 {
		lc.injected++
		return true
	}
	return false
}

func (lc *payloadLifecycle) Construct(slot *Payload) error {
	if lc.shouldFail() {
		return ErrInjectedFailure
	}
	*slot = Payload{Data: make([]byte, lc.size)}
	lc.constructions++
	return nil
}

func (lc *payloadLifecycle) CopyConstruct(slot *Payload, src *Payload) error {
	if lc.shouldFail() {
		return ErrInjectedFailure
	}
	data := make([]byte, len(src.Data))
	copy(data, src.Data)
	*slot = Payload{ID: src.ID, Data: data}
	lc.constructions++
	return nil
}

func (lc *payloadLifecycle) Destroy(*Payload) {
	lc.destructions++
}
