package events

import (
	"errors"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrPoolClosed = errors.New("worker pool closed")
	ErrPoolFull   = errors.New("worker pool queue is full")
)

type WorkerPoolI interface {
	TryAddTask(task Task) error
	Close() error
}

type Task func() error

// WorkerPool runs queued tasks on a fixed number of goroutines. A failed task
// is logged and does not stop its worker.
type WorkerPool struct {
	mu     sync.RWMutex
	closed bool
	pool   chan Task
	g      errgroup.Group
}

func NewWorkerPool(workers, queueSize int) *WorkerPool {
	wp := &WorkerPool{pool: make(chan Task, queueSize)}
	for i := 0; i < workers; i++ {
		wp.g.Go(wp.worker)
	}
	return wp
}

func (wp *WorkerPool) worker() error {
	for task := range wp.pool {
		if err := task(); err != nil {
			zap.L().Error("Task execution failed", zap.Error(err))
		}
	}
	return nil
}

// TryAddTask queues task without waiting. It returns ErrPoolFull when every
// queue slot is taken.
func (wp *WorkerPool) TryAddTask(task Task) error {
	wp.mu.RLock()
	defer wp.mu.RUnlock()
	if wp.closed {
		return ErrPoolClosed
	}

	select {
	case wp.pool <- task:
		return nil
	default:
		return ErrPoolFull
	}
}

// Close stops accepting tasks and waits for the queued ones to finish.
func (wp *WorkerPool) Close() error {
	wp.mu.Lock()
	if !wp.closed {
		wp.closed = true
		close(wp.pool)
	}
	wp.mu.Unlock()
	return wp.g.Wait()
}
