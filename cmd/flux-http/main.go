package main

import (
	"log"
	"os"

	"github.com/crustyrustacean/flux-http/app"
	"github.com/crustyrustacean/flux-http/config"
	"github.com/crustyrustacean/flux-http/core/http"
)

// Usage: flux-http <host> <port>
//
// Both arguments are required; there is deliberately no argument-count
// check, so a missing one fails with an index error.
func main() {
	cfg, err := config.FromArgs(os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	a := app.New(cfg)
	a.SetHandler(func(req *http.Request) *http.Response {
		if req.Path == "/" || req.Path == "/index.html" {
			return http.OK().
				WithHeader("Content-Type", "text/plain; charset=utf-8").
				WithText("hello from flux-http\n")
		}
		return http.NotFound().
			WithHeader("Content-Type", "text/plain; charset=utf-8").
			WithText("not found\n")
	})

	a.Run()
}
