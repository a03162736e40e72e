package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"calldex_backend/internal/directory/service"
	"calldex_backend/internal/directory/transport"
	sharedval "calldex_backend/internal/shared/validator"
	"calldex_backend/platform/httpkit"
	"calldex_backend/platform/validator"
)

const msgInvalidRequest = "invalid request"

// Handler handles HTTP requests for caller-ID search.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new directory handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// SearchByName searches users and contacts by name fragment.
// GET /api/search/name?name=
func (h *Handler) SearchByName(c *gin.Context) {
	var req transport.NameSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
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

	result, err := h.svc.SearchByName(c.Request.Context(), req.Name, requesterFrom(identity))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// SearchByPhone resolves a phone number to its identity or sightings.
// GET /api/search/phone?phoneNumber=
func (h *Handler) SearchByPhone(c *gin.Context) {
	var req transport.PhoneSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
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

	result, err := h.svc.SearchByPhone(c.Request.Context(), req.PhoneNumber, requesterFrom(identity))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

func requesterFrom(identity httpkit.Identity) service.Requester {
	return service.Requester{
		ID:          identity.UserID(),
		PhoneNumber: identity.PhoneNumber(),
	}
}
