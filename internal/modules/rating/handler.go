package rating

import (
	"net/http"
	"strconv"

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
	rg.POST("/ratings/submit", h.Submit)
	rg.GET("/ratings/has", h.HasRating)
	rg.GET("/ratings/average", h.SubjectAverage)
}

func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	r, err := h.service.Submit(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid rating request")
		case ErrBookingGone:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not your booking")
		case ErrNotCompleted:
			response.Error(c, http.StatusConflict, "BOOKING_NOT_COMPLETED", "Only completed bookings can be rated")
		case ErrAlreadyRated:
			response.Error(c, http.StatusConflict, "ALREADY_RATED", "This subject was already rated for the booking")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to submit rating")
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"rating": r})
}

func (h *Handler) HasRating(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Query("bookingId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	exists, err := h.service.HasRating(c.Request.Context(), bookingID, c.Query("subjectType"))
	if err != nil {
		if err == ErrValidation {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown subject type")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to check rating")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"has_rating": exists})
}

func (h *Handler) SubjectAverage(c *gin.Context) {
	subjectID, err := strconv.ParseInt(c.Query("subjectId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid subject ID")
		return
	}

	avg, err := h.service.SubjectAverage(c.Request.Context(), c.Query("subjectType"), subjectID)
	if err != nil {
		if err == ErrValidation {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown subject type")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute average")
		return
	}
	response.Success(c, http.StatusOK, avg)
}
