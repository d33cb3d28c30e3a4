package notifier

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeUnsubscribe(t *testing.T) {
	n := New()

	ch := n.Subscribe()
	require.NotNil(t, ch)

	n.mu.RLock()
	assert.Len(t, n.listeners, 1)
	n.mu.RUnlock()

	n.Unsubscribe(ch)

	n.mu.RLock()
	assert.Len(t, n.listeners, 0)
	n.mu.RUnlock()

	// Unsubscribe closes the channel.
	_, open := <-ch
	assert.False(t, open)
}

func TestBroadcastReachesAllListeners(t *testing.T) {
	n := New()

	ch1 := n.Subscribe()
	ch2 := n.Subscribe()
	defer n.Unsubscribe(ch1)
	defer n.Unsubscribe(ch2)

	n.Broadcast()

	for _, ch := range []chan struct{}{ch1, ch2} {
		select {
		case <-ch:
		case <-time.After(100 * time.Millisecond):
			t.Fatal("listener did not receive the ping")
		}
	}
}

func TestBroadcastSkipsFullListener(t *testing.T) {
	n := New()

	ch := n.Subscribe()
	defer n.Unsubscribe(ch)

	ch <- struct{}{}

	done := make(chan struct{})
	go func() {
		n.Broadcast()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Broadcast blocked on a full channel")
	}
}

func TestConcurrentUse(t *testing.T) {
	n := New()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ch := n.Subscribe()
			n.Broadcast()
			n.Unsubscribe(ch)
		}()
	}
	wg.Wait()

	n.mu.RLock()
	assert.Len(t, n.listeners, 0)
	n.mu.RUnlock()
}
