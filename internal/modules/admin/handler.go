package admin

import (
	"net/http"

	"tourbook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes expects the group to already require the admin role.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/admin/register-employee", h.RegisterEmployee)
	rg.GET("/admin/employees", h.ListEmployees)
	rg.GET("/admin/statistics", h.Statistics)
}

func (h *Handler) RegisterEmployee(c *gin.Context) {
	var req RegisterEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.RegisterEmployee(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch err {
		case ErrUnauthorized:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Admin role required")
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing or malformed fields")
		case ErrWeakPassword:
			response.Error(c, http.StatusBadRequest, "WEAK_PASSWORD",
				"Password must be at least 8 characters with upper, lower, digit and special")
		case ErrPayloadTooLarge:
			response.Error(c, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "Driver picture is too large")
		case ErrDuplicate:
			response.Error(c, http.StatusConflict, "DUPLICATE", "Username or email already taken")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to register employee")
		}
		return
	}

	response.Success(c, http.StatusCreated, res)
}

func (h *Handler) ListEmployees(c *gin.Context) {
	rows, err := h.service.ListEmployees(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list employees")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"employees": rows})
}

func (h *Handler) Statistics(c *gin.Context) {
	stats, err := h.service.GetStatistics(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load statistics")
		return
	}
	response.Success(c, http.StatusOK, stats)
}
