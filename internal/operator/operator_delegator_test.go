package operator

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/spaces-server/internal/operator/actions"
	"github.com/carson-networks/spaces-server/internal/service"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// trackingAction records how many actions with the same key run at once.
type trackingAction struct {
	key     string
	running *int32
	maxSeen *int32
	err     error
}

func (a *trackingAction) Key() string { return a.key }

func (a *trackingAction) Perform(context.Context) error {
	n := atomic.AddInt32(a.running, 1)
	for {
		seen := atomic.LoadInt32(a.maxSeen)
		if n <= seen || atomic.CompareAndSwapInt32(a.maxSeen, seen, n) {
			break
		}
	}
	time.Sleep(2 * time.Millisecond)
	atomic.AddInt32(a.running, -1)
	return a.err
}

func TestOperatorDelegator_SameKeyNeverOverlaps(t *testing.T) {
	d := NewOperatorDelegator(4, quietLogger())
	d.Start()
	defer d.Stop()

	var running, maxSeen int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := d.Process(context.Background(), &trackingAction{key: "space-a", running: &running, maxSeen: &maxSeen})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxSeen)
}

func TestOperatorDelegator_ReturnsActionError(t *testing.T) {
	d := NewOperatorDelegator(2, quietLogger())
	d.Start()
	defer d.Stop()

	var running, maxSeen int32
	err := d.Process(context.Background(), &trackingAction{
		key: "space-b", running: &running, maxSeen: &maxSeen, err: errors.New("boom"),
	})

	assert.EqualError(t, err, "boom")
}

func TestOperatorDelegator_ProcessAfterStop(t *testing.T) {
	d := NewOperatorDelegator(1, quietLogger())
	d.Start()
	d.Stop()

	var running, maxSeen int32
	err := d.Process(context.Background(), &trackingAction{key: "k", running: &running, maxSeen: &maxSeen})

	assert.ErrorIs(t, err, ErrStopped)
}

func TestOperatorDelegator_CancelledContext(t *testing.T) {
	d := NewOperatorDelegator(1, quietLogger())
	d.Start()
	defer d.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var running, maxSeen int32
	err := d.Process(ctx, &trackingAction{key: "k", running: &running, maxSeen: &maxSeen})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestOperatorDelegator_ShardIsStable(t *testing.T) {
	d := NewOperatorDelegator(8, quietLogger())
	key := uuid.Must(uuid.NewV4()).String()

	first := d.shard(key)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, d.shard(key))
	}
	assert.GreaterOrEqual(t, first, 0)
	assert.Less(t, first, 8)
}

func TestProcessDueAction(t *testing.T) {
	d := NewOperatorDelegator(2, quietLogger())
	d.Start()
	defer d.Stop()

	spaceID := uuid.Must(uuid.NewV4())
	processor := actions.NewMockDueProcessor(t)
	processor.EXPECT().ProcessDue(mock.Anything, spaceID).
		Return(&service.ProcessResult{Processed: 3}, nil)

	action := &actions.ProcessDue{SpaceID: spaceID, Processor: processor}
	err := d.Process(context.Background(), action)

	require.NoError(t, err)
	require.NotNil(t, action.Result)
	assert.Equal(t, 3, action.Result.Processed)
	assert.Equal(t, spaceID.String(), action.Key())
}
