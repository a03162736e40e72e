// Package auth provides the account bounded context: registration, login,
// token issuance, and the identity-loading middleware for protected routes.
package auth

import (
	"calldex_backend/internal/auth/handler"
	"calldex_backend/internal/auth/repository"
	"calldex_backend/internal/auth/service"
	apphttp "calldex_backend/internal/http"
	"calldex_backend/platform/config"
	"calldex_backend/platform/logger"
	"calldex_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the auth bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates and initializes the auth module with all its dependencies.
func NewModule(pool *pgxpool.Pool, cfg *config.Config, log *logger.Logger, val *validator.Validator) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, cfg, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "auth"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// IdentityLoader returns the middleware that attaches the full requester
// identity to authenticated requests.
func (m *Module) IdentityLoader() gin.HandlerFunc {
	return IdentityLoader(m.repo)
}

// RegisterRoutes mounts auth routes with the stricter auth rate limit.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.API.Group("/auth", ctx.AuthRateLimiter.RateLimit())
	group.POST("/register", m.handler.Register)
	group.POST("/login", m.handler.Login)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
