// Package http exposes the transaction REST API.
package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"tranzakt/internal/amqp"
	"tranzakt/internal/storage"
)

// Server wires the REST routes over an injected store and an optional
// event publisher. No handler touches process-global state.
type Server struct {
	http.Server

	store       storage.Store
	publisher   amqp.Publisher
	rateLimiter *rateLimiter

	// now supplies the reference instant for period filters; tests
	// override it.
	now func() time.Time

	shutdownOnce sync.Once
}

// Options tune the server beyond its collaborators.
type Options struct {
	// RateLimitPerMinute caps write requests per client IP. Zero
	// means the default of 60.
	RateLimitPerMinute int
}

// NewServer configures routes and middleware, returning a
// ready-to-run server. publisher may be nil; eventing is then skipped.
func NewServer(addr string, store storage.Store, publisher amqp.Publisher, opts Options) *Server {
	limit := opts.RateLimitPerMinute
	if limit <= 0 {
		limit = 60
	}

	s := &Server{
		store:       store,
		publisher:   publisher,
		rateLimiter: newRateLimiter(limit),
		now:         time.Now,
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(s.requestLog())
	router.Use(securityHeaders())
	router.Use(s.writeRateLimit())

	router.GET("/healthz", handleHealth)
	router.GET("/readyz", handleReady)

	api := router.Group("/api")
	api.GET("/transactions/:userid", s.handleListTransactions)
	api.POST("/transactions", s.handleCreateTransaction)
	api.DELETE("/transactions/:id", s.handleDeleteTransaction)
	api.GET("/transactions/summary/:userid", s.handleSummary)
	api.GET("/transactions/analytics/:userid", s.handleAnalytics)

	s.Server = http.Server{
		Addr:    addr,
		Handler: router,
	}

	return s
}

// Shutdown gracefully shuts down the server and its cleanup routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		if s.rateLimiter != nil {
			s.rateLimiter.stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

func handleHealth(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func handleReady(c *gin.Context) {
	c.String(http.StatusOK, "ready")
}
