package itinerary

import (
	"net/http"
	"strconv"

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

// RegisterPublicRoutes exposes tour itinerary templates without auth.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/tours/:id/itinerary", h.GetTourItinerary)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings/:id/itinerary", h.GetCustomItinerary)
	rg.PUT("/bookings/:id/itinerary/:day", h.UpdateDay)
	rg.POST("/itinerary-requests", h.SubmitRequest)
	rg.GET("/bookings/:id/itinerary-requests", h.ListRequests)
}

func (h *Handler) GetTourItinerary(c *gin.Context) {
	tourID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid tour ID")
		return
	}

	days, err := h.service.GetTourItinerary(c.Request.Context(), tourID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load itinerary")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"itinerary": days})
}

func (h *Handler) GetCustomItinerary(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	days, err := h.service.GetCustomItinerary(c.Request.Context(), bookingID,
		c.GetInt64("user_id"), domain.UserRole(c.GetString("role")))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"itinerary": days})
}

func (h *Handler) UpdateDay(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}
	dayNumber, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid day number")
		return
	}

	var req UpdateDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	days, err := h.service.UpdateDay(c.Request.Context(), bookingID, dayNumber,
		c.GetInt64("user_id"), domain.UserRole(c.GetString("role")), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"itinerary": days})
}

func (h *Handler) SubmitRequest(c *gin.Context) {
	var req SubmitRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	ir, err := h.service.SubmitRequest(c.Request.Context(),
		c.GetInt64("user_id"), domain.UserRole(c.GetString("role")), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"request": ir})
}

func (h *Handler) ListRequests(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	requests, err := h.service.ListRequests(c.Request.Context(), bookingID,
		c.GetInt64("user_id"), domain.UserRole(c.GetString("role")))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"requests": requests})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request")
	case ErrDayOutOfRange:
		response.Error(c, http.StatusNotFound, "DAY_NOT_FOUND", "No such itinerary day for this booking")
	case ErrBookingGone:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Itinerary not found")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not your booking")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Itinerary operation failed")
	}
}
