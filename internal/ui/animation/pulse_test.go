package animation

import (
	"image/color"
	"sync"
	"testing"
	"time"
)

type paintLog struct {
	mu    sync.Mutex
	fills []color.Color
}

func (log *paintLog) apply(fill color.Color) {
	log.mu.Lock()
	log.fills = append(log.fills, fill)
	log.mu.Unlock()
}

func (log *paintLog) snapshot() []color.Color {
	log.mu.Lock()
	defer log.mu.Unlock()
	return append([]color.Color(nil), log.fills...)
}

var (
	highlight = color.NRGBA{R: 255, A: 255}
	base      = color.NRGBA{A: 255}
)

func TestFlashSettlesOnBase(t *testing.T) {
	log := &paintLog{}
	engine := New(Config{
		FlashCount:  2,
		OnDuration:  5 * time.Millisecond,
		OffDuration: 5 * time.Millisecond,
	}, log.apply)

	engine.Flash(highlight, base)

	deadline := time.Now().Add(time.Second)
	for {
		fills := log.snapshot()
		// 2 flashes paint 4 fills, plus the final settle.
		if len(fills) >= 5 {
			if fills[0] != highlight {
				t.Fatalf("first fill = %v", fills[0])
			}
			if fills[len(fills)-1] != base {
				t.Fatalf("last fill = %v", fills[len(fills)-1])
			}
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("flash never completed, fills=%v", fills)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestStopCancelsFlash(t *testing.T) {
	log := &paintLog{}
	engine := New(Config{
		FlashCount:  100,
		OnDuration:  50 * time.Millisecond,
		OffDuration: 50 * time.Millisecond,
	}, log.apply)

	engine.Flash(highlight, base)
	time.Sleep(10 * time.Millisecond)
	engine.Stop()

	time.Sleep(20 * time.Millisecond)
	count := len(log.snapshot())
	time.Sleep(120 * time.Millisecond)
	if got := len(log.snapshot()); got != count {
		t.Fatalf("flash kept painting after stop: %d -> %d", count, got)
	}
}

func TestNewFlashCancelsPrevious(t *testing.T) {
	log := &paintLog{}
	engine := New(Config{
		FlashCount:  100,
		OnDuration:  50 * time.Millisecond,
		OffDuration: 50 * time.Millisecond,
	}, log.apply)
	defer engine.Stop()

	engine.Flash(highlight, base)
	engine.Flash(base, highlight)

	// Only the goroutine belonging to the second flash should remain;
	// give both a moment to paint and make sure nothing panics and the
	// engine still accepts Stop.
	time.Sleep(20 * time.Millisecond)
	if len(log.snapshot()) == 0 {
		t.Fatalf("no fills painted")
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	if config.FlashCount <= 0 {
		t.Fatalf("flash count = %d", config.FlashCount)
	}
	if config.OnDuration <= 0 || config.OffDuration <= 0 {
		t.Fatalf("durations = %v/%v", config.OnDuration, config.OffDuration)
	}
}
