package server

import (
	"context"
	"net"
	"net/http"

	"github.com/0xERR0R/regdomain/config"
)

type httpServer struct {
	inner http.Server

	name string
}

func newHTTPServer(name string, handler http.Handler, cfg config.ServerConfig) *httpServer {
	return &httpServer{
		inner: http.Server{
			ReadTimeout:       cfg.ReadTimeout.ToDuration(),
			ReadHeaderTimeout: cfg.ReadHeaderTimeout.ToDuration(),
			WriteTimeout:      cfg.WriteTimeout.ToDuration(),

			Handler: handler,
		},

		name: name,
	}
}

func (s *httpServer) String() string {
	return s.name
}

// Serve blocks until the listener fails or ctx is done
func (s *httpServer) Serve(ctx context.Context, l net.Listener) error {
	go func() {
		<-ctx.Done()

		s.inner.Close()
	}()

	return s.inner.Serve(l)
}

func (s *httpServer) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
