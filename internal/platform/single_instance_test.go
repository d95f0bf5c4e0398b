package platform

import (
	"errors"
	"testing"
)

func TestSingleInstanceLock(t *testing.T) {
	first, err := AcquireSingleInstance("WorkoutTimerTest")
	if err != nil {
		t.Fatalf("first acquire: %v", err)
	}

	if _, err := AcquireSingleInstance("WorkoutTimerTest"); !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("second acquire err = %v", err)
	}

	if err := first.Release(); err != nil {
		t.Fatalf("release: %v", err)
	}

	again, err := AcquireSingleInstance("WorkoutTimerTest")
	if err != nil {
		t.Fatalf("acquire after release: %v", err)
	}
	_ = again.Release()
}

func TestReleaseNilGuard(t *testing.T) {
	var guard *Guard
	if err := guard.Release(); err != nil {
		t.Fatalf("nil guard release: %v", err)
	}
}

func TestLockPortIsStable(t *testing.T) {
	if lockPort("WorkoutTimer") != lockPort("WorkoutTimer") {
		t.Fatalf("port derivation not deterministic")
	}
	port := lockPort("WorkoutTimer")
	if port < 20000 || port > 39999 {
		t.Fatalf("port %d outside reserved range", port)
	}
}
