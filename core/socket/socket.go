//go:build linux || darwin
// +build linux darwin

// Package socket wraps the raw fd socket calls the server needs:
// bind-and-listen, non-blocking accept, blocking reads with a timeout,
// writes and close. Everything is a thin layer over golang.org/x/sys/unix.
package socket

import (
	"fmt"
	"net/netip"
	"time"

	"golang.org/x/sys/unix"
)

const listenBacklog = 128

// Listen creates a TCP listening socket bound to host (an IP literal,
// v4 or v6) and port, set non-blocking, and returns its fd.
func Listen(host string, port uint16) (int, error) {
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return -1, fmt.Errorf("bind host %q: %w", host, err)
	}

	family := unix.AF_INET
	if addr.Is6() {
		family = unix.AF_INET6
	}

	fd, err := unix.Socket(family, unix.SOCK_STREAM, 0)
	if err != nil {
		return -1, fmt.Errorf("socket: %w", err)
	}

	if err := unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEADDR, 1); err != nil {
		unix.Close(fd)
		return -1, fmt.Errorf("setsockopt SO_REUSEADDR: %w", err)
	}

	var sa unix.Sockaddr
	if addr.Is6() {
		sa = &unix.SockaddrInet6{Port: int(port), Addr: addr.As16()}
	} else {
		sa = &unix.SockaddrInet4{Port: int(port), Addr: addr.As4()}
	}

	if err := unix.Bind(fd, sa); err != nil {
		unix.Close(fd)
		return -1, fmt.Errorf("bind %s:%d: %w", host, port, err)
	}
	if err := unix.Listen(fd, listenBacklog); err != nil {
		unix.Close(fd)
		return -1, fmt.Errorf("listen: %w", err)
	}
	if err := unix.SetNonblock(fd, true); err != nil {
		unix.Close(fd)
		return -1, fmt.Errorf("set nonblock: %w", err)
	}

	return fd, nil
}

// Accept accepts one pending connection on a non-blocking listener.
// No connection pending surfaces as a would-block error, see IsWouldBlock.
func Accept(lfd int) (int, error) {
	fd, _, err := unix.Accept(lfd)
	return fd, err
}

// SetBlocking switches fd back to blocking mode.
func SetBlocking(fd int) error {
	return unix.SetNonblock(fd, false)
}

// SetReadTimeout arms SO_RCVTIMEO so blocking reads return a
// would-block error after d instead of waiting forever.
func SetReadTimeout(fd int, d time.Duration) error {
	tv := unix.NsecToTimeval(d.Nanoseconds())
	return unix.SetsockoptTimeval(fd, unix.SOL_SOCKET, unix.SO_RCVTIMEO, &tv)
}

// Read reads into buf, returning the byte count. A zero count with a
// nil error means the peer closed the connection.
func Read(fd int, buf []byte) (int, error) {
	return unix.Read(fd, buf)
}

// WriteAll writes all of buf, looping on short writes and EINTR.
func WriteAll(fd int, buf []byte) error {
	for len(buf) > 0 {
		n, err := unix.Write(fd, buf)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return err
		}
		buf = buf[n:]
	}
	return nil
}

// Close closes the fd.
func Close(fd int) error {
	return unix.Close(fd)
}

// LocalPort reports the port the socket is bound to. Useful when
// binding port 0 and for startup logging.
func LocalPort(fd int) (uint16, error) {
	sa, err := unix.Getsockname(fd)
	if err != nil {
		return 0, err
	}
	switch sa := sa.(type) {
	case *unix.SockaddrInet4:
		return uint16(sa.Port), nil
	case *unix.SockaddrInet6:
		return uint16(sa.Port), nil
	default:
		return 0, fmt.Errorf("unexpected sockaddr %T", sa)
	}
}

// IsWouldBlock reports whether err is the no-data/no-connection signal
// from a non-blocking call or a timed-out SO_RCVTIMEO read.
func IsWouldBlock(err error) bool {
	return err == unix.EAGAIN || err == unix.EWOULDBLOCK
}

// IsInterrupted reports whether err means the call was interrupted by
// a signal before completing.
func IsInterrupted(err error) bool {
	return err == unix.EINTR
}
