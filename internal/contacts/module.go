// Package contacts provides the phone book bounded context: per-user
// contact storage that feeds the directory search index.
package contacts

import (
	"calldex_backend/internal/contacts/handler"
	"calldex_backend/internal/contacts/repository"
	"calldex_backend/internal/contacts/service"
	apphttp "calldex_backend/internal/http"
	"calldex_backend/platform/logger"
	"calldex_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the contacts bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates and initializes the contacts module with all its dependencies.
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
	return "contacts"
}

// RegisterRoutes mounts contact routes on the authenticated group.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.Protected.Group("/contacts")
	group.POST("", m.handler.Create)
	group.GET("", m.handler.List)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
