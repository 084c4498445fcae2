package changerequest

import (
	"net/http"
	"strconv"
	"time"

	"tourbook/internal/domain"
	"tourbook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/change-requests", h.Create)
	rg.GET("/change-requests", h.List)
}

// RegisterStaffRoutes mounts processing and staff-availability lookups.
func (h *Handler) RegisterStaffRoutes(rg *gin.RouterGroup) {
	rg.PUT("/change-requests/:id", h.Process)
	rg.GET("/employee/tourguides", h.AvailableTourGuides)
	rg.GET("/drivers", h.AvailableDrivers)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	cr, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"),
		domain.UserRole(c.GetString("role")), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"request": cr})
}

func (h *Handler) List(c *gin.Context) {
	requests, err := h.service.ListForActor(c.Request.Context(),
		c.GetInt64("user_id"), domain.UserRole(c.GetString("role")), c.Query("status"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list change requests")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"requests": requests})
}

func (h *Handler) Process(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid request ID")
		return
	}

	var req ProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	cr, err := h.service.Process(c.Request.Context(), id,
		c.GetInt64("user_id"), domain.UserRole(c.GetString("role")), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"request": cr})
}

func (h *Handler) AvailableTourGuides(c *gin.Context) {
	start, end, ok := h.dateRange(c)
	if !ok {
		return
	}
	guides, err := h.service.AvailableTourGuides(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list tour guides")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tourguides": guides})
}

func (h *Handler) AvailableDrivers(c *gin.Context) {
	start, end, ok := h.dateRange(c)
	if !ok {
		return
	}
	drivers, err := h.service.AvailableDrivers(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list drivers")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"drivers": drivers})
}

func (h *Handler) dateRange(c *gin.Context) (start, end time.Time, ok bool) {
	start, err := time.Parse("2006-01-02", c.Query("startDate"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "startDate must be YYYY-MM-DD")
		return start, end, false
	}
	end, err = time.Parse("2006-01-02", c.Query("endDate"))
	if err != nil || end.Before(start) {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "endDate must be YYYY-MM-DD and not before startDate")
		return start, end, false
	}
	return start, end, true
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request")
	case ErrMissingReplacement:
		response.Error(c, http.StatusBadRequest, "MISSING_REPLACEMENT", "A replacement must be named for every requested role")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Change request not found")
	case ErrBookingGone:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied")
	case ErrAlreadyProcessed:
		response.Error(c, http.StatusConflict, "ALREADY_PROCESSED", "Change request was already processed")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Change request operation failed")
	}
}
