package operator

import (
	"context"
	"errors"
	"hash/fnv"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/spaces-server/internal/operator/actions"
)

const queueSize = 1000

// ErrStopped is returned by Process once the delegator has been stopped.
var ErrStopped = errors.New("operator delegator stopped")

// OperatorDelegator owns one queue per Operator (worker) and routes every
// action to the queue picked by its key.
type OperatorDelegator struct {
	queues   []chan ActionItem
	logger   *logrus.Logger
	wg       sync.WaitGroup
	mu       sync.RWMutex
	stopped  bool
	stopOnce sync.Once
}

func NewOperatorDelegator(numWorkers int, logger *logrus.Logger) *OperatorDelegator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	queues := make([]chan ActionItem, numWorkers)
	for i := range queues {
		queues[i] = make(chan ActionItem, queueSize)
	}
	return &OperatorDelegator{
		queues: queues,
		logger: logger,
	}
}

func (d *OperatorDelegator) Start() {
	for i, queue := range d.queues {
		d.wg.Add(1)
		op := NewOperator(i, queue, d.logger)
		go func() {
			defer d.wg.Done()
			op.Run()
		}()
	}
}

// Stop closes every queue and waits for queued items to drain.
func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		d.mu.Lock()
		d.stopped = true
		for _, queue := range d.queues {
			close(queue)
		}
		d.mu.Unlock()
		d.wg.Wait()
	})
}

// Process enqueues action and blocks until it has been performed or ctx ends.
func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	if err := d.enqueue(ctx, item); err != nil {
		return err
	}

	select {
	case resp := <-respCh:
		return resp.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *OperatorDelegator) enqueue(ctx context.Context, item ActionItem) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		return ErrStopped
	}

	select {
	case d.queues[d.shard(item.action.Key())] <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *OperatorDelegator) shard(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(len(d.queues)))
}
