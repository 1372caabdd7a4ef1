// Package server exposes the checker over HTTP and a websocket session that
// drives the announcement dispatcher per connection.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/phyten/contrastcheck/internal/audit"
	"github.com/phyten/contrastcheck/internal/checker"
	"github.com/phyten/contrastcheck/internal/i18n"
	"github.com/phyten/contrastcheck/internal/logger"
	"github.com/phyten/contrastcheck/internal/metrics"
	"github.com/phyten/contrastcheck/internal/web"
)

const (
	maxBodyBytes    = 1 << 20
	shutdownTimeout = 5 * time.Second
)

// Options configures a Server. Zero values select defaults.
type Options struct {
	Lang     string
	Jobs     int
	Defaults audit.Entry
}

type Server struct {
	opts     Options
	log      *logger.Logger
	metrics  *metrics.Metrics
	registry *prometheus.Registry
	checkers map[string]*checker.Checker
	router   *gin.Engine
}

// New builds the router. A nil registry gets a fresh one so /metrics always
// has something to serve. Callers choose the gin mode.
func New(opts Options, log *logger.Logger, registry *prometheus.Registry) *Server {
	if log == nil {
		log = logger.Discard()
	}
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	if opts.Jobs <= 0 {
		opts.Jobs = 1
	}
	s := &Server{
		opts:     opts,
		log:      log.WithModule("server"),
		metrics:  metrics.New(registry),
		registry: registry,
		checkers: make(map[string]*checker.Checker),
	}
	for _, lang := range i18n.Supported() {
		s.checkers[lang] = checker.New(
			checker.WithTranslator(i18n.New(lang)),
			checker.WithLogger(log),
			checker.WithMetrics(s.metrics),
		)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(securityHeadersMiddleware())
	router.Use(loggingMiddleware(s.log))

	web.Register(router)
	router.GET("/healthz", s.healthz)
	router.HEAD("/healthz", s.healthz)
	router.GET("/api/check", s.handleCheck)
	router.POST("/api/audit", s.handleAudit)
	router.GET("/ws", s.handleWS)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	s.router = router
	return s
}

func (s *Server) Handler() http.Handler { return s.router }

// Metrics returns the collectors shared by every handler.
func (s *Server) Metrics() *metrics.Metrics { return s.metrics }

// checkerFor picks the checker whose catalog best matches lang, falling back
// to the server default.
func (s *Server) checkerFor(lang string) *checker.Checker {
	if lang == "" {
		lang = s.opts.Lang
	}
	if c, ok := s.checkers[i18n.Match(lang).String()]; ok {
		return c
	}
	return s.checkers["en"]
}

// Run listens on addr and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	errCh := make(chan error, 1)
	s.log.WithField("addr", ln.Addr().String()).Info("Starting HTTP server")
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.log.Info("Stopping HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.log.WithError(err).Error("HTTP server shutdown error")
		return err
	}
	s.log.Info("Shutdown complete")
	return nil
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
