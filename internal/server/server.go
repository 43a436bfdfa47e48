package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/jonathan/meeting-mbti/internal/config"
	"github.com/jonathan/meeting-mbti/internal/db"
	"github.com/jonathan/meeting-mbti/internal/server/middleware"
	"github.com/jonathan/meeting-mbti/internal/server/ratelimit"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	handler     http.Handler
	store       db.Store
	logger      *zap.Logger
	metrics     *Metrics
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler
	corsOrigin  string
}

// Config holds server configuration
type Config struct {
	Port              int
	Store             db.Store
	Logger            *zap.Logger
	JWTConfig         *config.JWTConfig
	PasswordConfig    *config.PasswordConfig
	RateLimit         *ratelimit.Config    // nil loads RATE_LIMIT_* from the environment
	Registry          *prometheus.Registry // nil uses a fresh registry
	CORSAllowedOrigin string
}

// New creates a new server instance. The server owns cfg.Store from here on
// and closes it on shutdown.
func New(cfg Config) (*Server, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("store is required")
	}
	if cfg.JWTConfig == nil || cfg.PasswordConfig == nil {
		return nil, fmt.Errorf("JWT and password configuration are required")
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.RateLimit == nil {
		cfg.RateLimit = ratelimit.LoadConfig()
	}
	if cfg.Registry == nil {
		cfg.Registry = prometheus.NewRegistry()
	}
	if cfg.CORSAllowedOrigin == "" {
		cfg.CORSAllowedOrigin = "*"
	}

	s := &Server{
		store:       cfg.Store,
		logger:      cfg.Logger,
		metrics:     MustNewMetrics(cfg.Registry),
		rateLimiter: ratelimit.NewLimiter(cfg.RateLimit),
		jwtService:  NewJWTService(cfg.JWTConfig),
		corsOrigin:  cfg.CORSAllowedOrigin,
	}
	s.userService = NewUserService(cfg.Store, cfg.PasswordConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService, s.logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.HandlerFor(cfg.Registry, promhttp.HandlerOpts{}))

	// Authentication
	mux.HandleFunc("POST /v1/auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /v1/auth/login", s.authHandler.Login)
	mux.HandleFunc("POST /v1/auth/guest", s.authHandler.Guest)
	mux.Handle("GET /v1/users/me", s.userOnly(s.authHandler.Me))
	mux.Handle("PUT /v1/users/me/password", s.userOnly(s.authHandler.UpdatePassword))

	// Survey and profiles
	mux.HandleFunc("GET /v1/survey/questions", s.handleQuestions)
	mux.HandleFunc("POST /v1/survey/classify", s.handleClassify)
	mux.Handle("POST /v1/survey/submit", s.authed(s.handleSubmitSurvey))
	mux.Handle("GET /v1/profile", s.authed(s.handleGetProfile))

	// Type registries
	mux.HandleFunc("GET /v1/types/a", s.handleListTypeA)
	mux.HandleFunc("GET /v1/types/a/{code}", s.handleGetTypeA)
	mux.HandleFunc("GET /v1/types/b", s.handleListTypeB)
	mux.HandleFunc("GET /v1/types/b/{code}", s.handleGetTypeB)

	// Organizations
	mux.Handle("POST /v1/organizations", s.userOnly(s.handleCreateOrganization))
	mux.Handle("GET /v1/organizations", s.userOnly(s.handleListOrganizations))
	mux.Handle("GET /v1/organizations/{id}", s.userOnly(s.handleGetOrganization))

	// Rooms
	mux.Handle("POST /v1/rooms", s.userOnly(s.handleCreateRoom))
	mux.Handle("GET /v1/rooms", s.userOnly(s.handleListRooms))
	mux.Handle("GET /v1/rooms/{id}", s.authed(s.handleGetRoom))
	mux.Handle("DELETE /v1/rooms/{id}", s.userOnly(s.handleDeleteRoom))
	mux.Handle("POST /v1/rooms/{id}/join", s.authed(s.handleJoinRoom))
	mux.Handle("GET /v1/rooms/{id}/advice", s.authed(s.handleRoomAdvice))
	mux.Handle("GET /v1/rooms/{id}/survey", s.authed(s.handleRoomSurvey))
	mux.Handle("GET /v1/rooms/{id}/icebreaking", s.authed(s.handleRoomIcebreaking))
	mux.Handle("GET /v1/rooms/{id}/dashboard", s.authed(s.handleRoomDashboard))

	// Feedback
	mux.Handle("POST /v1/feedback", s.authed(s.handleCreateFeedback))
	mux.Handle("GET /v1/feedback/received", s.authed(s.handleReceivedFeedback))
	mux.Handle("GET /v1/feedback/summary", s.authed(s.handleOwnFeedbackSummary))
	mux.Handle("PATCH /v1/feedback/{id}/visibility", s.authed(s.handleSetFeedbackVisibility))
	mux.HandleFunc("GET /v1/users/{id}/feedback/summary", s.handlePublicFeedbackSummary)

	s.handler = s.withRateLimit(s.withLogging(s.withCORS(mux)))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler returns the fully wrapped request handler
func (s *Server) Handler() http.Handler {
	return s.handler
}

// authed requires a valid user or guest token
func (s *Server) authed(h http.HandlerFunc) http.Handler {
	return middleware.AuthMiddleware(s.jwtService.AsTokenValidator())(h)
}

// userOnly requires a valid token that is not a guest's
func (s *Server) userOnly(h http.HandlerFunc) http.Handler {
	return middleware.AuthMiddleware(s.jwtService.AsTokenValidator())(middleware.RequireUser(h))
}

// Start begins listening for requests and blocks until SIGINT or SIGTERM
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-stop:
	case err := <-errCh:
		s.Close()
		return fmt.Errorf("server error: %w", err)
	}
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.Close()
	s.logger.Info("server stopped")
	return nil
}

// Close stops the rate limiter janitor and closes the store
func (s *Server) Close() {
	s.rateLimiter.Stop()
	if err := s.store.Close(); err != nil {
		s.logger.Warn("failed to close store", zap.Error(err))
	}
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.corsOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(s.extractClientID(r), r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.metrics.rateLimited.Inc()
			s.rateLimitResponse(w, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// withLogging logs each request and records request metrics. The route label
// is the matched mux pattern so that IDs do not explode label cardinality.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		elapsed := time.Since(start)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		s.metrics.requests.WithLabelValues(route, r.Method, strconv.Itoa(rec.status)).Inc()
		s.metrics.requestDuration.WithLabelValues(route, r.Method).Observe(elapsed.Seconds())

		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", elapsed),
		)
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		s.jsonResponse(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON writes data as a JSON response
func writeJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// writeError writes an error JSON body
func writeError(w http.ResponseWriter, status int, message string) error {
	return writeJSON(w, status, map[string]string{"error": message})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	if err := writeJSON(w, status, data); err != nil {
		s.logger.Warn("error encoding JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// failure writes err with the status HTTPStatus maps it to. Internal errors
// are logged and replaced by a generic message.
func (s *Server) failure(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
		s.errorResponse(w, status, "internal server error")
		return
	}
	s.errorResponse(w, status, err.Error())
}

// extractClientID extracts the client identifier from the request.
// It uses the IP address from RemoteAddr; X-Forwarded-For is not trusted.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		seconds := int(info.RetryAfter.Seconds()) + 1
		response["retry_after"] = seconds
		w.Header().Set("Retry-After", strconv.Itoa(seconds))
	}

	s.logger.Debug("rate limit exceeded",
		zap.Int("limit", info.Limit),
		zap.Time("reset", info.ResetTime))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}

// decodeJSON decodes the request body into v, rejecting unknown fields
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return &ErrValidation{Field: "body", Message: err.Error()}
	}
	return nil
}

// callerID returns the authenticated caller's ID
func callerID(r *http.Request) (uuid.UUID, bool) {
	id, err := middleware.GetUserID(r)
	return id, err == nil
}
