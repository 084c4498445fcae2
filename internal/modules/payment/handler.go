package payment

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

// RegisterRoutes mounts the customer-facing payment endpoints.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/payments", h.CreatePayment)
	rg.POST("/payments/refund-request", h.RequestRefund)
	rg.GET("/payments/:bookingId", h.GetPayment)
}

// RegisterStaffRoutes expects the group to admit admin and employee only.
func (h *Handler) RegisterStaffRoutes(rg *gin.RouterGroup) {
	rg.POST("/payments/refund-approve", h.ApproveRefund)
	rg.GET("/employee/notifications", h.ListNotifications)
	rg.POST("/employee/notifications", h.MarkNotificationRead)
}

func (h *Handler) CreatePayment(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.CreatePayment(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch err {
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not your booking")
		case ErrBookingNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case ErrPaymentExists:
			response.Error(c, http.StatusConflict, "PAYMENT_EXISTS", "Booking is already paid")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create payment")
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"payment": p})
}

func (h *Handler) GetPayment(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	p, err := h.service.GetByBookingID(c.Request.Context(), bookingID)
	if err != nil {
		switch err {
		case ErrPaymentNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Payment not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load payment")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"payment": p})
}

func (h *Handler) RequestRefund(c *gin.Context) {
	var req RefundRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.RequestRefund(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch err {
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not your booking")
		case ErrPaymentNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Payment not found")
		case ErrRefundConflict:
			response.Error(c, http.StatusConflict, "REFUND_CONFLICT", "Payment is not eligible for refund")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to request refund")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"payment": p})
}

func (h *Handler) ApproveRefund(c *gin.Context) {
	var req RefundApproveBody
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.ApproveRefund(c.Request.Context(), domain.UserRole(c.GetString("role")), req)
	if err != nil {
		switch err {
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Employee role required")
		case ErrPaymentNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Payment not found")
		case ErrRefundConflict:
			response.Error(c, http.StatusConflict, "REFUND_CONFLICT", "No pending refund request for this payment")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to approve refund")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"payment": p})
}

func (h *Handler) ListNotifications(c *gin.Context) {
	unreadOnly := c.Query("unread") == "true"
	rows, err := h.service.ListNotifications(c.Request.Context(), unreadOnly)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list notifications")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"notifications": rows})
}

func (h *Handler) MarkNotificationRead(c *gin.Context) {
	var req MarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.MarkNotificationRead(c.Request.Context(), req.NotificationID); err != nil {
		switch err {
		case ErrNotificationNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Notification not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to mark notification")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"notification_id": req.NotificationID, "is_read": true})
}
