// Package directory provides the caller-identification bounded context:
// name search across registered users and saved contacts, and phone-number
// resolution with privacy-gated email disclosure.
package directory

import (
	"calldex_backend/internal/directory/handler"
	"calldex_backend/internal/directory/repository"
	"calldex_backend/internal/directory/service"
	apphttp "calldex_backend/internal/http"
	"calldex_backend/platform/logger"
	"calldex_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the directory bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Store
}

// NewModule creates and initializes the directory module with all its dependencies.
func NewModule(pool *pgxpool.Pool, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "directory"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts search routes on the authenticated group.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.Protected.Group("/search")
	group.GET("/name", m.handler.SearchByName)
	group.GET("/phone", m.handler.SearchByPhone)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
