package shutdown

import (
	"syscall"
	"testing"
	"time"
)

// TestFlagSetRequested tests the basic token lifecycle
func TestFlagSetRequested(t *testing.T) {
	f := &Flag{}
	if f.Requested() {
		t.Error("fresh flag must not report requested")
	}

	f.Set()
	if !f.Requested() {
		t.Error("flag not requested after Set")
	}

	// Setting twice is harmless.
	f.Set()
	if !f.Requested() {
		t.Error("flag lost after second Set")
	}
}

// TestFlagSetFromOtherGoroutine tests cross-goroutine visibility
func TestFlagSetFromOtherGoroutine(t *testing.T) {
	f := &Flag{}
	done := make(chan struct{})

	go func() {
		f.Set()
		close(done)
	}()

	<-done
	if !f.Requested() {
		t.Error("Set from another goroutine not visible")
	}
}

// TestNotifySetsFlagOnSignal tests the OS signal adapter
func TestNotifySetsFlagOnSignal(t *testing.T) {
	f := &Flag{}
	stop := Notify(f, syscall.SIGUSR1)
	defer stop()

	if err := syscall.Kill(syscall.Getpid(), syscall.SIGUSR1); err != nil {
		t.Fatalf("raise signal: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for !f.Requested() {
		if time.Now().After(deadline) {
			t.Fatal("flag not set after signal")
		}
		time.Sleep(time.Millisecond)
	}
}
