// Package poller provides readiness notification for the listening
// socket: block up to a timeout until the listener is readable, so the
// accept loop reacts to a new connection immediately instead of
// sleeping through a fixed interval. epoll on Linux, kqueue on Darwin.
package poller

// Poller waits for readability on a single watched fd.
type Poller interface {
	// Add registers the fd to watch for readability.
	Add(fd int) error
	// Wait blocks until the watched fd is readable or timeout (in
	// milliseconds) elapses. It reports whether the fd became ready.
	Wait(timeout int) (bool, error)
	// Close releases the poller.
	Close() error
}
