package animation

import (
	"context"
	"image/color"
	"sync"
	"time"
)

// Config contains flash timing values.
type Config struct {
	FlashCount  int
	OnDuration  time.Duration
	OffDuration time.Duration
}

// DefaultConfig returns the timings used for phase-change flashes.
func DefaultConfig() Config {
	return Config{
		FlashCount:  2,
		OnDuration:  140 * time.Millisecond,
		OffDuration: 110 * time.Millisecond,
	}
}

// Engine pulses the screen background when the timer flips between work
// and rest. A new flash cancels the one in flight.
type Engine struct {
	mu     sync.Mutex
	config Config
	apply  func(color.Color)
	cancel context.CancelFunc
}

// New creates a flash engine that paints colors through apply.
func New(config Config, apply func(color.Color)) *Engine {
	if config.FlashCount <= 0 {
		config.FlashCount = 1
	}
	return &Engine{
		config: config,
		apply:  apply,
	}
}

// Flash alternates highlight and base a few times, then settles on base.
func (engine *Engine) Flash(highlight, base color.Color) {
	engine.mu.Lock()
	if engine.cancel != nil {
		engine.cancel()
	}
	runCtx, cancel := context.WithCancel(context.Background())
	engine.cancel = cancel
	engine.mu.Unlock()

	go engine.run(runCtx, highlight, base)
}

// Stop cancels any flash in flight.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.cancel != nil {
		engine.cancel()
		engine.cancel = nil
	}
}

func (engine *Engine) run(ctx context.Context, highlight, base color.Color) {
	for i := 0; i < engine.config.FlashCount; i++ {
		engine.apply(highlight)
		if !sleepWithContext(ctx, engine.config.OnDuration) {
			return
		}
		engine.apply(base)
		if !sleepWithContext(ctx, engine.config.OffDuration) {
			return
		}
	}
	engine.apply(base)
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
