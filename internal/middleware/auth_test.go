package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tourbook/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func protectedRouter(jwtService *jwt.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(JWTAuth(jwtService))
	router.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  c.GetInt64("user_id"),
			"username": c.GetString("username"),
			"role":     c.GetString("role"),
		})
	})
	return router
}

func TestJWTAuth_BearerHeader(t *testing.T) {
	jwtService := jwt.New("test-secret-123", time.Hour)
	token, _ := jwtService.GenerateToken(42, "asel", "customer")

	router := protectedRouter(jwtService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
	assert.Contains(t, w.Body.String(), "customer")
}

func TestJWTAuth_Cookie(t *testing.T) {
	jwtService := jwt.New("test-secret-123", time.Hour)
	token, _ := jwtService.GenerateToken(42, "asel", "customer")

	router := protectedRouter(jwtService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "asel")
}

func TestJWTAuth_MissingCredentials(t *testing.T) {
	jwtService := jwt.New("test-secret-123", time.Hour)
	router := protectedRouter(jwtService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
}

func TestJWTAuth_WrongSecret(t *testing.T) {
	issuer := jwt.New("issuer-secret", time.Hour)
	token, _ := issuer.GenerateToken(42, "asel", "customer")

	router := protectedRouter(jwt.New("other-secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	jwtService := jwt.New("test-secret-123", -time.Minute)
	token, _ := jwtService.GenerateToken(42, "asel", "customer")

	router := protectedRouter(jwtService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole(t *testing.T) {
	jwtService := jwt.New("test-secret-123", time.Hour)
	adminToken, _ := jwtService.GenerateToken(1, "admin", "admin")
	customerToken, _ := jwtService.GenerateToken(7, "asel", "customer")
	driverToken, _ := jwtService.GenerateToken(5, "aidar", "driver")

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(JWTAuth(jwtService))
	adminGroup := router.Group("/admin", AdminOnly())
	adminGroup.GET("/stats", func(c *gin.Context) { c.Status(http.StatusOK) })
	staffGroup := router.Group("/staff", StaffOnly())
	staffGroup.GET("/dashboard", func(c *gin.Context) { c.Status(http.StatusOK) })

	cases := []struct {
		name  string
		path  string
		token string
		want  int
	}{
		{"admin reaches admin", "/admin/stats", adminToken, http.StatusOK},
		{"customer blocked from admin", "/admin/stats", customerToken, http.StatusForbidden},
		{"driver blocked from admin", "/admin/stats", driverToken, http.StatusForbidden},
		{"driver reaches staff", "/staff/dashboard", driverToken, http.StatusOK},
		{"customer blocked from staff", "/staff/dashboard", customerToken, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", tc.path, nil)
			req.Header.Set("Authorization", "Bearer "+tc.token)
			router.ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}
