//go:build linux || darwin
// +build linux darwin

package socket

import (
	"fmt"
	"net"
	"testing"
	"time"
)

// acceptRetry polls a non-blocking listener until the pending
// connection shows up.
func acceptRetry(t *testing.T, lfd int) int {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		fd, err := Accept(lfd)
		if err == nil {
			return fd
		}
		if !IsWouldBlock(err) {
			t.Fatalf("accept: %v", err)
		}
		if time.Now().After(deadline) {
			t.Fatal("no connection accepted within deadline")
		}
		time.Sleep(2 * time.Millisecond)
	}
}

// TestListenNonBlocking tests that a fresh listener reports
// would-block when nothing is pending
func TestListenNonBlocking(t *testing.T) {
	lfd, err := Listen("127.0.0.1", 0)
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer Close(lfd)

	_, err = Accept(lfd)
	if err == nil {
		t.Fatal("expected would-block, accept succeeded")
	}
	if !IsWouldBlock(err) {
		t.Fatalf("expected would-block, got %v", err)
	}
}

// TestAcceptReadWrite tests a full accept/read/write round trip
// against a net.Dial peer
func TestAcceptReadWrite(t *testing.T) {
	lfd, err := Listen("127.0.0.1", 0)
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer Close(lfd)

	port, err := LocalPort(lfd)
	if err != nil {
		t.Fatalf("local port: %v", err)
	}
	if port == 0 {
		t.Fatal("expected a kernel-assigned port")
	}

	conn, err := net.Dial("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	fd := acceptRetry(t, lfd)
	defer Close(fd)

	if err := SetBlocking(fd); err != nil {
		t.Fatalf("set blocking: %v", err)
	}
	if err := SetReadTimeout(fd, 500*time.Millisecond); err != nil {
		t.Fatalf("set read timeout: %v", err)
	}

	if _, err := conn.Write([]byte("ping")); err != nil {
		t.Fatalf("peer write: %v", err)
	}
	buf := make([]byte, 16)
	n, err := Read(fd, buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(buf[:n]) != "ping" {
		t.Errorf("expected ping, got %q", buf[:n])
	}

	if err := WriteAll(fd, []byte("pong")); err != nil {
		t.Fatalf("write: %v", err)
	}
	reply := make([]byte, 16)
	n, err = conn.Read(reply)
	if err != nil {
		t.Fatalf("peer read: %v", err)
	}
	if string(reply[:n]) != "pong" {
		t.Errorf("expected pong, got %q", reply[:n])
	}
}

// TestReadTimeout tests that SO_RCVTIMEO turns an idle read into a
// would-block error after roughly the configured duration
func TestReadTimeout(t *testing.T) {
	lfd, err := Listen("127.0.0.1", 0)
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer Close(lfd)

	port, _ := LocalPort(lfd)
	conn, err := net.Dial("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	fd := acceptRetry(t, lfd)
	defer Close(fd)

	if err := SetBlocking(fd); err != nil {
		t.Fatalf("set blocking: %v", err)
	}
	if err := SetReadTimeout(fd, 50*time.Millisecond); err != nil {
		t.Fatalf("set read timeout: %v", err)
	}

	start := time.Now()
	_, err = Read(fd, make([]byte, 16))
	elapsed := time.Since(start)

	if err == nil || !IsWouldBlock(err) {
		t.Fatalf("expected timeout as would-block, got %v", err)
	}
	if elapsed < 20*time.Millisecond {
		t.Errorf("read returned after %v, expected about 50ms", elapsed)
	}
	if elapsed > time.Second {
		t.Errorf("read blocked %v, timeout not applied", elapsed)
	}
}

// TestListenBadHost tests bind failure on a non-IP host
func TestListenBadHost(t *testing.T) {
	if _, err := Listen("not-an-ip", 0); err == nil {
		t.Fatal("expected error for non-IP host")
	}
}

// TestListenIPv6 tests binding an IPv6 literal
func TestListenIPv6(t *testing.T) {
	lfd, err := Listen("::1", 0)
	if err != nil {
		t.Skipf("IPv6 loopback unavailable: %v", err)
	}
	defer Close(lfd)

	if port, err := LocalPort(lfd); err != nil || port == 0 {
		t.Errorf("local port: %d, %v", port, err)
	}
}
