package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"finpulse/internal/client"
	"finpulse/internal/summary"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// DefaultAddr is the listen address the dashboard polls by default.
const DefaultAddr = ":8000"

// ServiceName is reported by the health endpoint.
const ServiceName = "FinPulse API"

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Server serves sentiment summaries aggregated from a ScoreSource.
type Server struct {
	source  ScoreSource
	version string
	logger  *slog.Logger
	engine  *gin.Engine
	server  *http.Server
}

// New creates a server for source. A nil logger discards output.
func New(source ScoreSource, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Server{
		source:  source,
		version: version,
		logger:  logger,
	}

	r := gin.New()
	r.Use(gin.Recovery(), cors.New(corsConfig()), s.requestLogger())
	r.GET("/", s.handleRoot)
	r.GET("/health", s.handleHealth)
	r.GET("/sentiment/summary", s.handleSummary)
	s.engine = r
	return s
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.server = &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("summary server listening", "addr", ln.Addr().String())
		errc <- s.server.Serve(ln)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.logger.Info("summary server shutting down")
	return s.server.Shutdown(shutdownCtx)
}

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to FinPulse - Financial Sentiment Analysis API",
		"version": s.version,
		"endpoints": gin.H{
			"summary": "/sentiment/summary",
			"health":  "/health",
		},
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": ServiceName})
}

func (s *Server) handleSummary(c *gin.Context) {
	ctx, span := otel.Tracer("finpulse/server").Start(c.Request.Context(), "summary.aggregate")
	defer span.End()
	span.SetAttributes(attribute.String("finpulse.request_id", c.GetString(requestIDKey)))

	scores, err := s.source.Scores(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.Error("loading scores", "err", err, "request_id", c.GetString(requestIDKey))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:     "Internal server error",
			Message:   err.Error(),
			Timestamp: time.Now().UTC(),
		})
		return
	}
	sum := summary.Aggregate(scores)
	span.SetAttributes(attribute.Int("finpulse.total_analyzed", sum.TotalAnalyzed))
	if !sum.Consistent() {
		s.logger.Warn("distribution does not add up to total", "total", sum.TotalAnalyzed, "distribution", sum.Distribution.Sum())
	}
	c.JSON(http.StatusOK, sum)
}

// corsConfig lets any browser origin read summaries and the request id.
func corsConfig() cors.Config {
	return cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowHeaders:    []string{"Origin", "Accept", "Content-Type", client.RequestIDHeader},
		ExposeHeaders:   []string{client.RequestIDHeader},
		MaxAge:          12 * time.Hour,
	}
}

const requestIDKey = "request_id"

// requestLogger tags each request with an id (echoing the caller's when
// present) and logs it once it completes.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(client.RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(client.RequestIDHeader, id)

		start := time.Now()
		c.Next()
		s.logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"request_id", id,
		)
	}
}
