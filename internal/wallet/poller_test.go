package wallet

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	mu       sync.Mutex
	calls    map[string]int
	balances map[string]float64
	gate     map[string]chan struct{}
	err      error
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		calls:    make(map[string]int),
		balances: make(map[string]float64),
		gate:     make(map[string]chan struct{}),
	}
}

func (f *fakeSource) Balance(_ context.Context, identity string) (float64, error) {
	f.mu.Lock()
	f.calls[identity]++
	gate := f.gate[identity]
	bal, err := f.balances[identity], f.err
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	return bal, err
}

func (f *fakeSource) callCount(identity string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[identity]
}

type updates struct {
	mu   sync.Mutex
	list []BalanceUpdate
}

func (u *updates) add(b BalanceUpdate) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.list = append(u.list, b)
}

func (u *updates) snapshot() []BalanceUpdate {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]BalanceUpdate(nil), u.list...)
}

func TestPollerPollsOnInterval(t *testing.T) {
	mock := clock.NewMock()
	src := newFakeSource()
	src.balances["alice"] = 1.25
	var got updates

	p := NewPoller(src, got.add, WithPollClock(mock))
	defer p.Stop()

	p.Watch(context.Background(), "alice")
	require.Eventually(t, func() bool { return len(got.snapshot()) == 1 }, time.Second, time.Millisecond)

	mock.Add(DefaultPollInterval)
	require.Eventually(t, func() bool { return len(got.snapshot()) == 2 }, time.Second, time.Millisecond)

	u := got.snapshot()[1]
	assert.Equal(t, "alice", u.Identity)
	assert.Equal(t, 1.25, u.SOL)
	assert.NoError(t, u.Err)
}

func TestPollerDropsStaleIdentity(t *testing.T) {
	mock := clock.NewMock()
	src := newFakeSource()
	release := make(chan struct{})
	src.gate["alice"] = release
	src.balances["alice"] = 9
	src.balances["bob"] = 2
	var got updates

	p := NewPoller(src, got.add, WithPollClock(mock))
	defer p.Stop()

	p.Watch(context.Background(), "alice")
	require.Eventually(t, func() bool { return src.callCount("alice") == 1 }, time.Second, time.Millisecond)

	// Identity changes while alice's reading is in flight
	p.Watch(context.Background(), "bob")
	require.Eventually(t, func() bool { return len(got.snapshot()) == 1 }, time.Second, time.Millisecond)
	close(release)

	// Give the stale reading time to arrive; it must be dropped
	time.Sleep(20 * time.Millisecond)
	for _, u := range got.snapshot() {
		assert.Equal(t, "bob", u.Identity)
	}
}

func TestPollerReportsErrors(t *testing.T) {
	mock := clock.NewMock()
	src := newFakeSource()
	src.err = errors.New("rpc down")
	var got updates

	p := NewPoller(src, got.add, WithPollClock(mock))
	defer p.Stop()

	p.Watch(context.Background(), "alice")
	require.Eventually(t, func() bool { return len(got.snapshot()) == 1 }, time.Second, time.Millisecond)
	assert.Error(t, got.snapshot()[0].Err)
}

func TestPollerStopAndEmptyIdentity(t *testing.T) {
	mock := clock.NewMock()
	src := newFakeSource()
	var got updates

	p := NewPoller(src, got.add, WithPollClock(mock))
	p.Watch(context.Background(), "alice")
	require.Eventually(t, func() bool { return len(got.snapshot()) == 1 }, time.Second, time.Millisecond)

	p.Watch(context.Background(), "")
	mock.Add(3 * DefaultPollInterval)
	time.Sleep(10 * time.Millisecond)
	assert.Len(t, got.snapshot(), 1, "no readings after the watch is cleared")

	p.Stop()
}

func TestPollerRefreshAfter(t *testing.T) {
	mock := clock.NewMock()
	src := newFakeSource()
	var got updates

	p := NewPoller(src, got.add, WithPollClock(mock), WithPollInterval(time.Hour))
	defer p.Stop()

	p.Watch(context.Background(), "alice")
	require.Eventually(t, func() bool { return len(got.snapshot()) == 1 }, time.Second, time.Millisecond)

	p.RefreshAfter(3 * time.Second)
	mock.Add(3 * time.Second)
	require.Eventually(t, func() bool { return len(got.snapshot()) == 2 }, time.Second, time.Millisecond)
}
