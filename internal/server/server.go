package server

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/CaseAssign_Go/docs"
	"github.com/osse101/CaseAssign_Go/internal/auction"
	"github.com/osse101/CaseAssign_Go/internal/database"
	"github.com/osse101/CaseAssign_Go/internal/greedy"
	"github.com/osse101/CaseAssign_Go/internal/handler"
	"github.com/osse101/CaseAssign_Go/internal/intake"
	"github.com/osse101/CaseAssign_Go/internal/live"
	"github.com/osse101/CaseAssign_Go/internal/logger"
	"github.com/osse101/CaseAssign_Go/internal/metrics"
	"github.com/osse101/CaseAssign_Go/internal/repository"
	"github.com/osse101/CaseAssign_Go/internal/session"
	"github.com/osse101/CaseAssign_Go/internal/sse"
)

// Options configures the HTTP surface
type Options struct {
	Addr            string
	APIKey          string
	TrustedProxies  []string
	MaxRequestBytes int64
}

// Dependencies are the services the routes dispatch to. DBPool is nil when
// results are kept in memory.
type Dependencies struct {
	Sessions *session.Manager
	Settings handler.SettingsProvider
	Greedy   greedy.Service
	Auction  auction.Service
	Intake   intake.Service
	Results  repository.Results
	Hub      *sse.Hub
	DBPool   database.Pool
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, deps Dependencies) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              opts.Addr,
			Handler:           NewRouter(opts, deps),
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
			IdleTimeout:       DefaultIdleTimeout,
		},
	}
}

// NewRouter builds the full route tree
func NewRouter(opts Options, deps Dependencies) http.Handler {
	if opts.MaxRequestBytes <= 0 {
		opts.MaxRequestBytes = DefaultMaxRequestBytes
	}

	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(middleware.Recoverer)
	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(opts.MaxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz(deps.Sessions))
	r.Get("/readyz", handler.HandleReadyz(deps.Sessions, deps.DBPool))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	sessions := handler.NewSessionHandler(deps.Sessions, deps.Settings)
	cases := handler.NewCaseHandler(deps.Intake)
	auctions := handler.NewAuctionHandler(deps.Auction)
	greedyH := handler.NewGreedyHandler(deps.Greedy)
	liveH := handler.NewLiveHandler(live.NewDispatcher(deps.Greedy))
	results := handler.NewResultsHandler(deps.Results)

	r.Route(APIPrefix, func(r chi.Router) {
		r.Post("/sessions", sessions.HandleCreate)

		r.Route("/sessions/{code}", func(r chi.Router) {
			r.Use(handler.LoadSession(deps.Sessions))

			r.Post("/login", sessions.HandleLogin)
			r.Get("/events", sse.Handler(deps.Hub))

			r.Group(func(r chi.Router) {
				r.Use(handler.RequireParticipant)

				r.Get("/cases", sessions.HandleListCases)
				r.Get("/cases/available", greedyH.HandleAvailable)
				r.Get("/summary", greedyH.HandleSummary)
				r.Post("/live", liveH.HandleMessage)
				r.Post("/auction/bids", auctions.HandleSubmitBids)
				r.Get("/auction/results", auctions.HandleResults)

				// admin only, enforced by the services
				r.Post("/cases/upload", cases.HandleUpload)
				r.Post("/rounds/next", greedyH.HandleNextRound)
			})
		})

		r.Route("/results", func(r chi.Router) {
			r.Get("/", results.HandleList)
			r.Get("/{code}", results.HandleGet)
		})
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush passes through so event streams and long polls are not buffered
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())
		log.Debug(LogMsgRequestHeaders, "headers", sanitizeHeaders(r.Header))

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// sanitizeHeaders copies h with credentials redacted
func sanitizeHeaders(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAPIKey) ||
			strings.EqualFold(k, HeaderAuthorization) ||
			strings.EqualFold(k, handler.HeaderParticipantToken) {
			out[k] = []string{RedactedValue}
			continue
		}
		out[k] = v
	}
	return out
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Addr returns the configured listen address
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Start starts the server. It returns http.ErrServerClosed after Stop.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
