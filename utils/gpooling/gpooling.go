package gpooling

import (
	"sync"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Pool - pooling struct
type Pool struct {
	antsPool *ants.Pool
	wg       sync.WaitGroup
}

// IPool - pooling interface
type IPool interface {
	Submit(task func()) error
	Wait()
	Release()
	Running() int
}

// NewPooling - init pooling. A panicking task is logged and does not take the pool down.
func NewPooling(maxPoolSize int, logger *zap.Logger) (*Pool, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	pool, err := ants.NewPool(maxPoolSize, ants.WithNonblocking(false), ants.WithPanicHandler(func(data interface{}) {
		logger.With(zapcore.Field{
			Key:       "err-data-pool",
			Type:      zapcore.ReflectType,
			Interface: data,
		}).Error("task panicked")
	}))
	if err != nil {
		return nil, err
	}
	return &Pool{
		antsPool: pool,
	}, nil
}

// Release - release all gorotine
func (p *Pool) Release() {
	p.antsPool.Release()
}

// Running - returns the number of the currently running goroutines.
func (p *Pool) Running() int {
	return p.antsPool.Running()
}

// Submit - submit a task to this pool; Wait blocks until every submitted task returned
func (p *Pool) Submit(task func()) error {
	p.wg.Add(1)
	err := p.antsPool.Submit(func() {
		defer p.wg.Done()
		task()
	})
	if err != nil {
		p.wg.Done()
	}
	return err
}

func (p *Pool) Wait() {
	p.wg.Wait()
}
