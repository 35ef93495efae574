package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/finance_assistant_app/internal/middleware"
	"github.com/SscSPs/finance_assistant_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	secret = "middleware-test-secret"
	issuer = "finance-test"
)

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", middleware.AuthMiddleware(secret, issuer), func(c *gin.Context) {
		userID, ok := middleware.GetUserIDFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, userID)
	})
	return r
}

func signed(t *testing.T, claims jwt.Claims, method jwt.SigningMethod, key any) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware(t *testing.T) {
	now := time.Now()
	valid, err := utils.GenerateJWT("user-1", secret, time.Hour, issuer, now)
	require.NoError(t, err)
	expired, err := utils.GenerateJWT("user-1", secret, time.Hour, issuer, now.Add(-2*time.Hour))
	require.NoError(t, err)
	wrongIssuer, err := utils.GenerateJWT("user-1", secret, time.Hour, "someone-else", now)
	require.NoError(t, err)
	wrongSecret, err := utils.GenerateJWT("user-1", "another-secret", time.Hour, issuer, now)
	require.NoError(t, err)
	noSubject := signed(t, jwt.RegisteredClaims{
		Issuer:    issuer,
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}, jwt.SigningMethodHS256, []byte(secret))
	unsigned := signed(t, jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"valid token", "Bearer " + valid, http.StatusOK, "user-1"},
		{"lowercase scheme", "bearer " + valid, http.StatusOK, "user-1"},
		{"missing header", "", http.StatusUnauthorized, "Authorization header required"},
		{"wrong scheme", "Basic " + valid, http.StatusUnauthorized, "Authorization header format must be Bearer {token}"},
		{"no token", "Bearer", http.StatusUnauthorized, "Authorization header format must be Bearer {token}"},
		{"expired", "Bearer " + expired, http.StatusUnauthorized, "Token has expired"},
		{"wrong issuer", "Bearer " + wrongIssuer, http.StatusUnauthorized, "Invalid token"},
		{"wrong secret", "Bearer " + wrongSecret, http.StatusUnauthorized, "Invalid token"},
		{"none algorithm", "Bearer " + unsigned, http.StatusUnauthorized, "Invalid token"},
		{"missing subject", "Bearer " + noSubject, http.StatusUnauthorized, "Invalid token claims"},
	}

	router := newAuthRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Contains(t, w.Body.String(), `"error":true`)
				assert.Contains(t, w.Body.String(), `"statusCode":401`)
			}
		})
	}
}
