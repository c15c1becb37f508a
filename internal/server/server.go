// Package server provides the HTTP server that delivers the HiAudio web
// receiver page and its sibling assets.
//
// The server is a generic static file handler decorated by a small
// middleware chain: request logging, a fixed permissive CORS header set, and
// an index rewrite that serves the receiver page for "/" and "/index.html".
// The actual file serving (content-type inference, range requests, 404s) is
// delegated to net/http's FileServer, mirroring how the receiver setup has
// always leaned on an off-the-shelf static handler rather than custom I/O.
package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hiaudio/hiserve/internal/logging"
)

// Server is the receiver page HTTP server. It owns the gin engine and the
// underlying http.Server; the listener is bound by the daemon and handed in
// so the port is already reserved when Serve is called.
type Server struct {
	config     *Config
	httpServer *http.Server
	router     *gin.Engine
}

// NewServer creates a new receiver server instance from a validated config.
func NewServer(config *Config) *Server {
	// Release mode keeps gin's own debug chatter out of operator output
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		config: config,
	}

	// Route gin's writers through structured logging unless a CLI tool
	// already took control of log output
	if !logging.IsConfiguredByCLI() {
		gin.DefaultWriter = logging.NewLevelWriter("INFO", "gin")
		gin.DefaultErrorWriter = logging.NewLevelWriter("ERROR", "gin")
	}

	router := gin.New()
	router.Use(s.loggingMiddleware())
	router.Use(s.corsMiddleware())
	router.Use(s.rewriteMiddleware())
	router.Use(gin.Recovery())

	// Every path is a file lookup relative to the root directory; there are
	// no API routes to register, so the file server is the NoRoute handler.
	fileServer := http.FileServer(http.Dir(config.RootDir))
	router.NoRoute(gin.WrapH(fileServer))

	s.router = router
	s.httpServer = &http.Server{
		Handler: router,
	}

	return s
}

// Handler exposes the configured handler chain. Used by tests to exercise
// the full middleware stack without binding a socket.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Serve starts serving HTTP on the provided pre-bound listener. Blocks until
// the listener is closed or Shutdown is called; http.ErrServerClosed is
// translated to nil since it is the expected result of a graceful stop.
func (s *Server) Serve(listener net.Listener) error {
	logging.Info("Serving %s from %s on %s",
		s.config.IndexFile, s.config.RootDir, listener.Addr())

	if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the HTTP server, draining in-flight
// requests until the context expires.
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down HTTP server...")

	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}

	return nil
}

// loggingMiddleware provides request logging through the structured logger.
func (s *Server) loggingMiddleware() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		logging.Info("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"",
			param.ClientIP,
			param.TimeStamp.Format(time.RFC1123),
			param.Method,
			param.Path,
			param.Request.Proto,
			param.StatusCode,
			param.Latency,
			param.Request.UserAgent(),
			param.ErrorMessage,
		)
		return ""
	})
}
