/*
Package fluxhttp is a minimal, strictly sequential HTTP/1.1 server
built directly on the platform socket calls.

One connection is accepted, fully handled and closed before the next
accept attempt: the listener runs non-blocking, idling a fixed interval
(or an epoll/kqueue wait) between attempts, and each accepted
connection gets a blocking read with a timeout, a hand-rolled request
parse, and exactly one serialized response. Shutdown is cooperative: an
OS signal sets an atomic token that both the accept loop and the
read-retry loop poll.

Deliberately out of scope: concurrent connection handling, keep-alive,
chunked transfer, TLS, routing.

Quick start:

	package main

	import (
	    "github.com/crustyrustacean/flux-http/app"
	    "github.com/crustyrustacean/flux-http/config"
	    "github.com/crustyrustacean/flux-http/core/http"
	)

	func main() {
	    cfg, _ := config.FromArgs([]string{"127.0.0.1", "8080"})
	    a := app.New(cfg)
	    a.SetHandler(func(req *http.Request) *http.Response {
	        return http.OK().WithText("hello")
	    })
	    a.Run()
	}

Modules

  - config: positional host/port arguments, env-var tunables
  - app: lifecycle wiring, signal to shutdown-token adapter
  - core: the accept loop and connection handler
  - core/http: method, request, parser, response builder
  - core/socket: raw-fd transport over golang.org/x/sys/unix
  - core/poller: listener readiness waits (epoll/kqueue)
  - core/shutdown: atomic cancellation token
*/
package fluxhttp
