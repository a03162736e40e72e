package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"calldex_backend/internal/contacts/service"
	"calldex_backend/internal/contacts/transport"
	sharedval "calldex_backend/internal/shared/validator"
	"calldex_backend/platform/httpkit"
	"calldex_backend/platform/validator"
)

// Handler handles HTTP requests for contact management.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new contacts handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Create adds a contact to the caller's phone book.
// POST /api/contacts
func (h *Handler) Create(c *gin.Context) {
	var req transport.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", sharedval.Describe(err))
		return
	}

	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	result, err := h.svc.Add(c.Request.Context(), identity.UserID(), req.Name, req.PhoneNumber)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, result)
}

// List returns the caller's contacts.
// GET /api/contacts
func (h *Handler) List(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	result, err := h.svc.List(c.Request.Context(), identity.UserID())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}
