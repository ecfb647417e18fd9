// Package webapi serves grid searches over HTTP.
//
// Routes:
//
//	POST /api/v1/solve   run A* on a grid described in JSON
//	GET  /healthz        liveness
//	GET  /metrics        Prometheus metrics
package webapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gridpath/pkg/engine/search"
	"gridpath/pkg/engine/world"
	"gridpath/pkg/game/devtools"
)

// ErrBadGrid is wrapped by every grid validation failure
var ErrBadGrid = errors.New("webapi: invalid grid")

// Config holds the settings of a Server
type Config struct {
	Addr          string        // Address to listen on
	SearchTimeout time.Duration // Limit per search, zero for none
	MaxGridSize   int           // Largest accepted grid side
}

// Server runs searches for HTTP clients. Every request gets its own grid, so
// requests never share search state.
type Server struct {
	cfg     Config
	logger  *slog.Logger
	metrics *Metrics
	router  *gin.Engine
}

// NewServer builds the router. logger may be nil.
func NewServer(cfg Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		cfg:     cfg,
		logger:  logger,
		metrics: NewMetrics(),
	}

	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())

	router.GET("/healthz", s.health)
	router.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	api := router.Group("/api")
	{
		v1 := api.Group("/v1")
		v1.POST("/solve", s.solve)
	}

	s.router = router
	return s
}

// Handler returns the HTTP handler of the server
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on cfg.Addr until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("webapi: shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// requestLogger logs one line per request through slog
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// solve handles POST /api/v1/solve
func (s *Server) solve(c *gin.Context) {
	id := uuid.New()

	var req SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.metrics.Reject()
		c.JSON(http.StatusBadRequest, ErrorResponse{ID: id, Error: err.Error()})
		return
	}

	grid, start, end, err := s.buildGrid(req)
	if err != nil {
		s.metrics.Reject()
		c.JSON(http.StatusBadRequest, ErrorResponse{ID: id, Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	if s.cfg.SearchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.SearchTimeout)
		defer cancel()
	}

	began := time.Now()
	res := search.Run(ctx, grid, start, end, nil)
	elapsed := time.Since(began)
	s.metrics.Observe(res, elapsed)

	s.logger.Debug("search finished",
		"id", id,
		"outcome", res.Outcome,
		"cost", res.Cost,
		"expanded", res.Expanded,
		"elapsed", elapsed,
	)

	resp := SolveResponse{
		ID:       id,
		Outcome:  res.Outcome.String(),
		Path:     make([][2]int, 0, len(res.Path)),
		Cost:     res.Cost,
		Expanded: res.Expanded,
	}
	for _, p := range res.Positions() {
		resp.Path = append(resp.Path, [2]int{p.Row, p.Col})
	}
	if req.IncludeMap {
		var b strings.Builder
		if err := devtools.DumpMap(&b, grid); err == nil {
			resp.Map = b.String()
		}
	}

	status := http.StatusOK
	if res.Outcome == search.Aborted {
		status = http.StatusGatewayTimeout
	}
	c.JSON(status, resp)
}

// buildGrid turns a request into a grid with neighbours refreshed
func (s *Server) buildGrid(req SolveRequest) (*world.Grid, *world.Cell, *world.Cell, error) {
	if s.cfg.MaxGridSize > 0 && req.Size > s.cfg.MaxGridSize {
		return nil, nil, nil, fmt.Errorf("%w: size %d exceeds %d", ErrBadGrid, req.Size, s.cfg.MaxGridSize)
	}
	grid, err := world.NewGrid(req.Size, 0)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %w", ErrBadGrid, err)
	}

	cellAt := func(what string, pair []int) (*world.Cell, error) {
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: %s must be [row, col]", ErrBadGrid, what)
		}
		cell := grid.GetCell(pair[0], pair[1])
		if cell == nil {
			return nil, fmt.Errorf("%w: %s (%d,%d) is outside a %d×%d grid", ErrBadGrid, what, pair[0], pair[1], req.Size, req.Size)
		}
		return cell, nil
	}

	start, err := cellAt("start", req.Start)
	if err != nil {
		return nil, nil, nil, err
	}
	end, err := cellAt("end", req.End)
	if err != nil {
		return nil, nil, nil, err
	}
	if start == end {
		return nil, nil, nil, fmt.Errorf("%w: start and end are the same cell", ErrBadGrid)
	}

	for _, pair := range req.Barriers {
		cell, err := cellAt("barrier", pair)
		if err != nil {
			return nil, nil, nil, err
		}
		if cell == start || cell == end {
			return nil, nil, nil, fmt.Errorf("%w: barrier on endpoint %s", ErrBadGrid, cell.Pos())
		}
		cell.SetState(world.Barrier)
	}

	start.SetState(world.Start)
	end.SetState(world.End)
	grid.RefreshNeighbors()
	return grid, start, end, nil
}
