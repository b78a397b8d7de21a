// Package http assembles the API router and runs the HTTP servers.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/licentio/licentio/internal/config"
	iamDomain "github.com/licentio/licentio/internal/iam/domain"
	iamHTTP "github.com/licentio/licentio/internal/iam/http"
	iamUseCase "github.com/licentio/licentio/internal/iam/usecase"
	licenseHTTP "github.com/licentio/licentio/internal/license/http"
	"github.com/licentio/licentio/internal/metrics"
)

// Handlers groups the API handlers mounted on the router.
type Handlers struct {
	Token   *iamHTTP.TokenHandler
	Access  *iamHTTP.AccessHandler
	Role    *iamHTTP.RoleHandler
	User    *iamHTTP.UserHandler
	License *licenseHTTP.LicenseHandler
}

// Server represents the API HTTP server.
type Server struct {
	config          *config.Config
	db              *sql.DB
	logger          *slog.Logger
	tokenUseCase    iamUseCase.TokenUseCase
	handlers        Handlers
	metricsProvider *metrics.Provider

	router *gin.Engine
	server *http.Server
}

// NewServer creates a new API server. The metrics provider may be nil when
// metrics are disabled.
func NewServer(
	cfg *config.Config,
	db *sql.DB,
	logger *slog.Logger,
	tokenUseCase iamUseCase.TokenUseCase,
	handlers Handlers,
	metricsProvider *metrics.Provider,
) *Server {
	return &Server{
		config:          cfg,
		db:              db,
		logger:          logger,
		tokenUseCase:    tokenUseCase,
		handlers:        handlers,
		metricsProvider: metricsProvider,
	}
}

// SetupRouter builds the gin engine with the full middleware chain and route
// table. The login endpoint is rate limited per client IP; every other /v1
// route requires a bearer token and is rate limited per subject.
func (s *Server) SetupRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(
		s.config.CORSEnabled, s.config.CORSAllowOrigins, s.logger,
	); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if s.metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(
			s.metricsProvider.MeterProvider(), s.config.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")

	// Login is the only unauthenticated API endpoint.
	login := v1.Group("")
	if s.config.RateLimitTokenEnabled {
		login.Use(iamHTTP.TokenRateLimitMiddleware(
			s.config.RateLimitTokenRequestsPerSec, s.config.RateLimitTokenBurst, s.logger))
	}
	login.POST("/token", s.handlers.Token.LoginHandler)

	authenticated := v1.Group("")
	authenticated.Use(iamHTTP.AuthenticationMiddleware(s.tokenUseCase, s.logger))
	if s.config.RateLimitEnabled {
		authenticated.Use(iamHTTP.RateLimitMiddleware(
			s.config.RateLimitRequestsPerSec, s.config.RateLimitBurst, s.logger))
	}

	// Identity-only endpoints: any valid unexpired token passes.
	identity := iamHTTP.AuthorizationMiddleware("", s.logger)
	authenticated.GET("/verify_token", identity, s.handlers.Token.VerifyTokenHandler)
	authenticated.GET("/users/me", identity, s.handlers.Token.MeHandler)

	// User, role and access administration.
	management := authenticated.Group("")
	management.Use(iamHTTP.AuthorizationMiddleware(iamDomain.AccessUserRoleManagement, s.logger))
	management.GET("/accesses", s.handlers.Access.ListHandler)
	management.POST("/accesses", s.handlers.Access.CreateHandler)
	management.DELETE("/accesses/:id", s.handlers.Access.DeleteHandler)
	management.GET("/roles", s.handlers.Role.ListHandler)
	management.POST("/roles", s.handlers.Role.CreateHandler)
	management.DELETE("/roles/:id", s.handlers.Role.DeleteHandler)
	management.PUT("/roles/:id/accesses/:access_id", s.handlers.Role.SetAccessHandler)
	management.GET("/users", s.handlers.User.ListHandler)
	management.POST("/users", s.handlers.User.CreateHandler)
	management.DELETE("/users/:id", s.handlers.User.DeleteHandler)
	management.PUT("/users/:id/roles/:role_id", s.handlers.User.SetRoleHandler)

	// License issuance and retrieval.
	createLicense := iamHTTP.AuthorizationMiddleware(iamDomain.AccessCreateLicense, s.logger)
	readLicense := iamHTTP.AuthorizationMiddleware(iamDomain.AccessReadLicense, s.logger)
	retrieveFile := iamHTTP.AuthorizationMiddleware(iamDomain.AccessRetrieveFile, s.logger)
	authenticated.POST("/licenses", createLicense, s.handlers.License.GenerateHandler)
	authenticated.GET("/licenses", readLicense, s.handlers.License.ListHandler)
	authenticated.GET("/licenses/:id", readLicense, s.handlers.License.GetHandler)
	authenticated.GET("/licenses/:id/file", retrieveFile, s.handlers.License.GetFileHandler)
	authenticated.GET("/licenses/:id/digest", retrieveFile, s.handlers.License.GetDigestFileHandler)
	authenticated.DELETE("/licenses/:id", createLicense, s.handlers.License.DeleteHandler)

	return router
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can usefully take traffic by
// pinging the backing store.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{"database": "ok"}
	status := "ready"
	code := http.StatusOK

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if s.db == nil || s.db.PingContext(ctx) != nil {
		components["database"] = "error"
		status = "not_ready"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{"status": status, "components": components})
}

// Start starts the API HTTP server.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		s.router = s.SetupRouter()
	}

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.config.ServerHost, s.config.ServerPort),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the API HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
