package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	sharedval "calldex_backend/internal/shared/validator"
	"calldex_backend/internal/spam/service"
	"calldex_backend/internal/spam/transport"
	"calldex_backend/platform/httpkit"
	"calldex_backend/platform/validator"
)

const msgInvalidRequest = "invalid request"

// Handler handles HTTP requests for spam reporting and status.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new spam handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Report flags a phone number as spam.
// POST /api/spam/report
func (h *Handler) Report(c *gin.Context) {
	var req transport.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
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

	result, err := h.svc.Report(c.Request.Context(), req.PhoneNumber, identity.UserID())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, result)
}

// Status returns the spam verdict for a phone number.
// GET /api/spam/status?phoneNumber=
func (h *Handler) Status(c *gin.Context) {
	var req transport.StatusRequest
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

	result, err := h.svc.Status(c.Request.Context(), req.PhoneNumber)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}
