//go:build darwin
// +build darwin

package poller

import "golang.org/x/sys/unix"

// kqueuePoller waits for listener readability via kqueue.
type kqueuePoller struct {
	kqfd   int
	events []unix.Kevent_t
}

// New creates a Poller (Darwin).
func New() (Poller, error) {
	kqfd, err := unix.Kqueue()
	if err != nil {
		return nil, err
	}

	return &kqueuePoller{
		kqfd:   kqfd,
		events: make([]unix.Kevent_t, 1),
	}, nil
}

// Add registers fd for read readiness. Level-triggered (no EV_CLEAR),
// so a pending connection left unaccepted reports again on the next Wait.
func (p *kqueuePoller) Add(fd int) error {
	ev := unix.Kevent_t{
		Ident:  uint64(fd),
		Filter: unix.EVFILT_READ,
		Flags:  unix.EV_ADD | unix.EV_ENABLE,
	}
	_, err := unix.Kevent(p.kqfd, []unix.Kevent_t{ev}, nil, nil)
	return err
}

// Wait blocks up to timeout milliseconds for readability.
func (p *kqueuePoller) Wait(timeout int) (bool, error) {
	ts := unix.Timespec{
		Sec:  int64(timeout / 1000),
		Nsec: int64((timeout % 1000) * 1000000),
	}

	n, err := unix.Kevent(p.kqfd, nil, p.events, &ts)
	if err != nil {
		if err == unix.EINTR {
			return false, nil
		}
		return false, err
	}
	return n > 0, nil
}

// Close closes the kqueue fd.
func (p *kqueuePoller) Close() error {
	return unix.Close(p.kqfd)
}
