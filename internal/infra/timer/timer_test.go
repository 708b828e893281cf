package timer

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitDone(t *testing.T, tk *Ticker) {
	t.Helper()
	select {
	case <-tk.Done():
	case <-time.After(time.Second):
		t.Fatal("timer goroutine did not exit")
	}
}

func TestTicker_StopsWhenTickReturnsFalse(t *testing.T) {
	var calls atomic.Int32
	tk := Start(context.Background(), "test", time.Millisecond, func(context.Context) bool {
		return calls.Add(1) < 3
	})
	waitDone(t, tk)
	assert.EqualValues(t, 3, calls.Load())
}

func TestTicker_Stop(t *testing.T) {
	var calls atomic.Int32
	tk := Start(context.Background(), "test", time.Millisecond, func(context.Context) bool {
		calls.Add(1)
		return true
	})
	require.Eventually(t, func() bool { return calls.Load() > 0 }, time.Second, time.Millisecond)

	tk.Stop()
	tk.Stop()
	waitDone(t, tk)

	after := calls.Load()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, after, calls.Load())
}

func TestTicker_StopInsideTick(t *testing.T) {
	var tk *Ticker
	ready := make(chan struct{})
	tk = Start(context.Background(), "test", time.Millisecond, func(context.Context) bool {
		<-ready
		tk.Stop()
		return true
	})
	close(ready)
	waitDone(t, tk)
}

func TestTicker_ParentCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	tk := Start(ctx, "test", time.Hour, func(context.Context) bool { return true })
	cancel()
	waitDone(t, tk)
}
