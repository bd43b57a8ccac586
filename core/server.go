package core

import (
	"fmt"
	"time"

	"github.com/crustyrustacean/flux-http/core/http"
	"github.com/crustyrustacean/flux-http/core/poller"
	"github.com/crustyrustacean/flux-http/core/shutdown"
	"github.com/crustyrustacean/flux-http/core/socket"
	"github.com/crustyrustacean/flux-http/internal/obs"
)

// Tuning defaults, used when the corresponding Server field is zero.
const (
	DefaultPollInterval   = 100 * time.Millisecond
	DefaultReadTimeout    = 500 * time.Millisecond
	DefaultReadBufferSize = 1024
)

// Server accepts and handles one connection at a time: accept, read,
// parse, respond, close, then the next accept attempt. The only
// suspension points are the idle wait between accept attempts and the
// timed blocking read, and both recheck the Shutdown token.
type Server struct {
	Host string
	Port uint16

	// PollInterval is the idle wait between accept attempts while no
	// connection is pending.
	PollInterval time.Duration
	// ReadTimeout bounds each blocking read; a timed-out read rechecks
	// the Shutdown token and retries.
	ReadTimeout time.Duration
	// ReadBufferSize is the fixed capacity of the request read buffer.
	ReadBufferSize int

	// Handler produces the response for a parsed request. Nil means
	// every valid request gets a bare 200 OK.
	Handler http.Handler

	// Shutdown, when non-nil, is polled at every suspension point.
	// Without it the server cannot be stopped cooperatively.
	Shutdown *shutdown.Flag

	// UseReadinessPolling swaps the fixed idle sleep for an
	// epoll/kqueue wait on the listener, bounded by PollInterval.
	UseReadinessPolling bool

	Logger obs.Logger
	Meter  obs.Meter
}

// ListenAndServe binds the listener and runs the accept loop until
// shutdown is requested (nil return) or a fatal error occurs: a bind
// failure, or any accept failure other than "no connection pending".
// A failure while handling a single connection is logged and counted
// but does not stop the loop.
func (s *Server) ListenAndServe() error {
	lfd, err := socket.Listen(s.Host, s.Port)
	if err != nil {
		return err
	}
	defer socket.Close(lfd)

	if port, err := socket.LocalPort(lfd); err == nil {
		s.logf(obs.Info, "listening on %s:%d", s.Host, port)
	}

	idle, stopIdle := s.idleWait(lfd)
	defer stopIdle()
	buf := make([]byte, s.readBufferSize())

	for {
		if s.shuttingDown() {
			s.logf(obs.Info, "shutdown requested, stopping accept loop")
			return nil
		}

		fd, err := socket.Accept(lfd)
		if err != nil {
			if socket.IsWouldBlock(err) {
				idle()
				continue
			}
			return fmt.Errorf("accept: %w", err)
		}

		s.meter().Counter("connections_accepted", 1)
		if err := s.handleConn(fd, buf); err != nil {
			s.meter().Counter("connection_errors", 1)
			s.logf(obs.Error, "connection: %v", err)
		}
	}
}

// idleWait picks the between-accepts wait strategy: a fixed sleep, or
// with UseReadinessPolling a bounded wait for listener readability.
// Either way a full interval is the longest a shutdown check waits.
func (s *Server) idleWait(lfd int) (wait, stop func()) {
	interval := s.pollInterval()

	if s.UseReadinessPolling {
		p, err := poller.New()
		if err == nil {
			if err = p.Add(lfd); err != nil {
				p.Close()
			}
		}
		if err != nil {
			s.logf(obs.Warn, "readiness polling unavailable, using fixed sleep: %v", err)
		} else {
			return func() { p.Wait(int(interval.Milliseconds())) }, func() { p.Close() }
		}
	}

	return func() { time.Sleep(interval) }, func() {}
}

// handleConn reads one request off the connection, writes exactly one
// response, and closes the fd. Read timeouts retry after rechecking
// the shutdown token; any other I/O error is returned to the loop's
// failure boundary.
func (s *Server) handleConn(fd int, buf []byte) error {
	defer socket.Close(fd)

	if err := socket.SetBlocking(fd); err != nil {
		return fmt.Errorf("set blocking: %w", err)
	}
	if err := socket.SetReadTimeout(fd, s.readTimeout()); err != nil {
		return fmt.Errorf("set read timeout: %w", err)
	}

	var n int
	for {
		var err error
		n, err = socket.Read(fd, buf)
		if err == nil {
			break
		}
		if socket.IsWouldBlock(err) || socket.IsInterrupted(err) {
			if s.shuttingDown() {
				s.logf(obs.Debug, "abandoning connection, shutdown requested")
				return nil
			}
			continue
		}
		return fmt.Errorf("read: %w", err)
	}

	if n == 0 {
		// Peer closed without sending anything; nothing to answer.
		s.meter().Counter("connections_closed_empty", 1)
		return nil
	}

	resp := s.respond(buf[:n])
	if err := socket.WriteAll(fd, resp.Serialize()); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	s.meter().Counter("responses_written", 1)
	return nil
}

// respond turns the read bytes into the response to write back. Parse
// failures become a 400 with a short plain-text body naming the cause.
func (s *Server) respond(data []byte) *http.Response {
	req, err := http.ParseRequest(data)
	if err != nil {
		s.meter().Counter("parse_failures", 1)
		s.logf(obs.Debug, "parse failure: %v", err)
		return http.NewResponse(400, "Bad Request").WithText(err.Error() + "\n")
	}

	s.logf(obs.Debug, "%s %s %s", req.Method, req.Path, req.Version)
	if s.Handler != nil {
		if resp := s.Handler(req); resp != nil {
			return resp
		}
	}
	return http.OK()
}

func (s *Server) shuttingDown() bool {
	return s.Shutdown != nil && s.Shutdown.Requested()
}

func (s *Server) pollInterval() time.Duration {
	if s.PollInterval > 0 {
		return s.PollInterval
	}
	return DefaultPollInterval
}

func (s *Server) readTimeout() time.Duration {
	if s.ReadTimeout > 0 {
		return s.ReadTimeout
	}
	return DefaultReadTimeout
}

func (s *Server) readBufferSize() int {
	if s.ReadBufferSize > 0 {
		return s.ReadBufferSize
	}
	return DefaultReadBufferSize
}

func (s *Server) logf(level obs.Level, format string, args ...interface{}) {
	if s.Logger != nil {
		s.Logger.Logf(level, format, args...)
	}
}

func (s *Server) meter() obs.Meter {
	if s.Meter != nil {
		return s.Meter
	}
	return obs.NopMeter{}
}
