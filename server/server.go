package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"runtime"
	"runtime/debug"

	"github.com/0xERR0R/regdomain/api"
	"github.com/0xERR0R/regdomain/config"
	"github.com/0xERR0R/regdomain/corpus"
	"github.com/0xERR0R/regdomain/domain"
	"github.com/0xERR0R/regdomain/log"
	"github.com/0xERR0R/regdomain/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// Server serves the HTTP API
type Server struct {
	cfg          *config.Config
	resolver     domain.DomainResolver
	httpListener net.Listener
	httpServer   *httpServer
	httpMux      *chi.Mux
}

func logger() *logrus.Entry {
	return log.PrefixedLog("server")
}

// NewServer loads the corpora and opens the HTTP listener
func NewServer(cfg *config.Config) (*Server, error) {
	// listeners must be registered before the corpora are loaded to see their sizes
	metrics.RegisterEventListeners()

	if cfg.Prometheus.Enable {
		metrics.Start()
	}

	resolver := NewDomainResolver(cfg)

	listener, err := net.Listen("tcp", cfg.Ports.HTTPAddr())
	if err != nil {
		return nil, fmt.Errorf("start http listener on %s failed: %w", cfg.Ports.HTTPAddr(), err)
	}

	router := createRouter(cfg)
	api.RegisterEndpoint(router, resolver)

	server := &Server{
		cfg:          cfg,
		resolver:     resolver,
		httpListener: listener,
		httpServer:   newHTTPServer("http", router, cfg.Server),
		httpMux:      router,
	}

	server.printConfiguration()

	return server, nil
}

// NewDomainResolver loads all configured corpora and creates the resolver for them
func NewDomainResolver(cfg *config.Config) domain.DomainResolver {
	c := corpus.NewLoader(cfg.Corpus).Load()

	return domain.NewCachingResolver(cfg.Caching, domain.NewResolver(c))
}

func (s *Server) printConfiguration() {
	logger().Info("current configuration:")

	s.cfg.LogConfig(logger())

	logger().Infof("- HTTP listening on addr/port: %s", s.httpListener.Addr())

	logger().Info("runtime information:")

	// force garbage collector
	runtime.GC()
	debug.FreeOSMemory()

	// gather memory stats
	var m runtime.MemStats

	runtime.ReadMemStats(&m)

	logger().Infof("MEM Alloc =        %10v MB", toMB(m.Alloc))
	logger().Infof("MEM HeapAlloc =    %10v MB", toMB(m.HeapAlloc))
	logger().Infof("MEM Sys =          %10v MB", toMB(m.Sys))
	logger().Infof("MEM NumGC =        %10v", m.NumGC)
	logger().Infof("RUN NumCPU =       %10d", runtime.NumCPU())
	logger().Infof("RUN NumGoroutine = %10d", runtime.NumGoroutine())
}

func toMB(b uint64) uint64 {
	const bytesInKB = 1024

	return b / bytesInKB / bytesInKB
}

// Addr returns the address the HTTP listener is bound to
func (s *Server) Addr() net.Addr {
	return s.httpListener.Addr()
}

// Start starts the server, failures are sent to errCh
func (s *Server) Start(ctx context.Context, errCh chan<- error) {
	logger().Info("Starting server")

	go func() {
		logger().Infof("%s server is up and running on addr/port %s", s.httpServer, s.Addr())

		err := s.httpServer.Serve(ctx, s.httpListener)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("start %s listener failed: %w", s.httpServer, err)
		}
	}()

	registerPrintConfigurationTrigger(ctx, s)
}

// Stop stops the server
func (s *Server) Stop(ctx context.Context) error {
	logger().Info("Stopping server")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("stop %s listener failed: %w", s.httpServer, err)
	}

	return nil
}
