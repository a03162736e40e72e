// Package spam provides the spam-reporting bounded context: report
// submission with duplicate protection and cached status lookups.
package spam

import (
	apphttp "calldex_backend/internal/http"
	"calldex_backend/internal/spam/handler"
	"calldex_backend/internal/spam/repository"
	"calldex_backend/internal/spam/service"
	"calldex_backend/platform/cache"
	"calldex_backend/platform/logger"
	"calldex_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the spam bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates and initializes the spam module with all its dependencies.
// counts may be nil when Redis is not configured.
func NewModule(pool *pgxpool.Pool, counts *cache.Client, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, counts, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "spam"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts spam routes on the authenticated group.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.Protected.Group("/spam")
	group.POST("/report", m.handler.Report)
	group.GET("/status", m.handler.Status)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
