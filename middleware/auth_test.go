package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pdv/models"
	"pdv/utils"

	"github.com/gin-gonic/gin"
)

const secret = "test-secret"

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/sell", AuthMiddleware(secret), PermissionMiddleware(models.PermissionSell), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("user_name"))
	})
	return router
}

func token(t *testing.T, key string, expiry time.Duration, permissions ...string) string {
	t.Helper()
	tok, err := utils.GenerateToken(key, expiry, utils.Claims{UserID: 1, Name: "Pietro", Permissions: permissions})
	if err != nil {
		t.Fatal(err)
	}
	return tok
}

func TestAuthMiddleware(t *testing.T) {
	router := newRouter()

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"no header", "", http.StatusUnauthorized, "login_required"},
		{"not bearer", "Basic abc", http.StatusUnauthorized, "Invalid authorization header format"},
		{"garbage token", "Bearer abc", http.StatusUnauthorized, "Invalid or expired token"},
		{"wrong secret", "Bearer " + token(t, "other", time.Hour, models.PermissionSell), http.StatusUnauthorized, "Invalid or expired token"},
		{"expired", "Bearer " + token(t, secret, -time.Minute, models.PermissionSell), http.StatusUnauthorized, "Invalid or expired token"},
		{"missing permission", "Bearer " + token(t, secret, time.Hour, models.PermissionViewStock), http.StatusForbidden, "permissão"},
		{"ok", "Bearer " + token(t, secret, time.Hour, models.PermissionSell), http.StatusOK, "Pietro"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/sell", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.wantStatus, w.Body)
			}
			if !strings.Contains(w.Body.String(), tt.wantBody) {
				t.Fatalf("body %q does not contain %q", w.Body, tt.wantBody)
			}
		})
	}
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORSMiddleware("http://pdv.local"))
	router.GET("/products", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/products", nil)
	req.Header.Set("Origin", "http://pdv.local")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://pdv.local" {
		t.Fatalf("Access-Control-Allow-Origin = %q", got)
	}
}
