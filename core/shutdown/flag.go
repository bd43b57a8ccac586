// Package shutdown provides the cooperative cancellation token the
// server loops poll, and the adapter that sets it from an OS signal.
package shutdown

import (
	"os"
	"os/signal"
	"sync/atomic"
)

// Flag is a one-way cancellation token. It is set at most once, from
// any goroutine, and polled from the accept and read-retry loops.
type Flag struct {
	requested atomic.Bool
}

// Set requests shutdown.
func (f *Flag) Set() {
	f.requested.Store(true)
}

// Requested reports whether shutdown has been requested.
func (f *Flag) Requested() bool {
	return f.requested.Load()
}

// Notify sets f when the process receives any of the given signals.
// The returned stop function unregisters the handler. A platform (or
// caller) without a usable signal source simply never calls Notify;
// the server then runs without cooperative shutdown.
func Notify(f *Flag, signals ...os.Signal) (stop func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, signals...)

	go func() {
		for range ch {
			f.Set()
		}
	}()

	return func() {
		signal.Stop(ch)
		close(ch)
	}
}
