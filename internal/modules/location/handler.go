package location

import (
	"log"
	"net/http"
	"strconv"

	"tourbook/internal/domain"
	"tourbook/internal/pkg/jwt"
	"tourbook/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,

	// Origin checks are delegated to the CORS layer in front.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Handler struct {
	service    *Service
	hub        *Hub
	jwtService *jwt.Service
}

func NewHandler(service *Service, hub *Hub, jwtService *jwt.Service) *Handler {
	return &Handler{service: service, hub: hub, jwtService: jwtService}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/location/:bookingId", h.Get)
	rg.POST("/location/update", h.Update)
}

// RegisterWSRoutes mounts the websocket endpoint outside the JWT middleware;
// browsers cannot send Authorization headers on websocket upgrades, so the
// token rides in the query string.
func (h *Handler) RegisterWSRoutes(rg *gin.RouterGroup) {
	rg.GET("/location/:bookingId/ws", h.Stream)
}

func (h *Handler) Get(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	loc, err := h.service.Get(c.Request.Context(), bookingID,
		c.GetInt64("user_id"), domain.UserRole(c.GetString("role")))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"location": loc})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	loc, err := h.service.Update(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"location": loc})
}

// Stream upgrades to a websocket and relays location broadcasts until the
// client disconnects.
func (h *Handler) Stream(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	token := c.Query("token")
	if token == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token is required. Use ?token=YOUR_JWT_TOKEN")
		return
	}
	claims, err := h.jwtService.ValidateToken(token)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token")
		return
	}

	if err := h.service.Authorize(c.Request.Context(), bookingID, claims.UserID, domain.UserRole(claims.Role)); err != nil {
		h.writeError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed booking_id=%d err=%v", bookingID, err)
		return
	}
	h.hub.Subscribe(bookingID, conn)
	defer h.hub.Unsubscribe(bookingID, conn)

	// Push the last known position so the client has a starting point.
	if loc, err := h.service.Get(c.Request.Context(), bookingID, claims.UserID, domain.UserRole(claims.Role)); err == nil {
		_ = conn.WriteJSON(loc)
	}

	// Drain the connection; broadcasts happen from Update. Read errors mean
	// the client went away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid location request")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "No location reported for this booking yet")
	case ErrBookingGone:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Location operation failed")
	}
}
