//go:build linux
// +build linux

package poller

import "golang.org/x/sys/unix"

// epollPoller waits for listener readability via epoll.
type epollPoller struct {
	epfd   int
	events []unix.EpollEvent
}

// New creates a Poller (Linux).
func New() (Poller, error) {
	epfd, err := unix.EpollCreate1(0)
	if err != nil {
		return nil, err
	}

	return &epollPoller{
		epfd:   epfd,
		events: make([]unix.EpollEvent, 1),
	}, nil
}

// Add registers fd for read readiness. Level-triggered, so a pending
// connection left unaccepted reports again on the next Wait.
func (p *epollPoller) Add(fd int) error {
	ev := unix.EpollEvent{
		Events: unix.EPOLLIN,
		Fd:     int32(fd),
	}
	return unix.EpollCtl(p.epfd, unix.EPOLL_CTL_ADD, fd, &ev)
}

// Wait blocks up to timeout milliseconds for readability.
func (p *epollPoller) Wait(timeout int) (bool, error) {
	n, err := unix.EpollWait(p.epfd, p.events, timeout)
	if err != nil {
		if err == unix.EINTR {
			return false, nil
		}
		return false, err
	}
	return n > 0, nil
}

// Close closes the epoll fd.
func (p *epollPoller) Close() error {
	return unix.Close(p.epfd)
}
