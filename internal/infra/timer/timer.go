package timer

import (
	"context"
	"log"
	"sync"
	"time"
)

// TickFunc вызывается на каждом срабатывании. Возврат false останавливает таймер.
type TickFunc func(ctx context.Context) bool

// Ticker периодический таймер с возможностью отмены
type Ticker struct {
	name   string
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Start запускает горутину, вызывающую tick раз в interval до отмены контекста,
// вызова Stop или возврата false из tick.
func Start(ctx context.Context, name string, interval time.Duration, tick TickFunc) *Ticker {
	ctx, cancel := context.WithCancel(ctx)
	t := &Ticker{
		name:   name,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(t.done)
		defer cancel()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Printf("Timer %s stopped", name)
				return
			case <-ticker.C:
				// отмена могла произойти одновременно с тиком
				if ctx.Err() != nil {
					log.Printf("Timer %s stopped", name)
					return
				}
				if !tick(ctx) {
					log.Printf("Timer %s finished", name)
					return
				}
			}
		}
	}()

	return t
}

// Stop отменяет таймер. Не ждет завершения горутины, поэтому безопасен внутри tick.
func (t *Ticker) Stop() {
	t.once.Do(t.cancel)
}

// Done закрывается после выхода горутины таймера
func (t *Ticker) Done() <-chan struct{} {
	return t.done
}
