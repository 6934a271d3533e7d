package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rajank18/prograde/internal/app/models"
	"github.com/rajank18/prograde/internal/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(jwtService *auth.JWTService, requiredRole string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	m := NewAuthMiddleware(jwtService)
	group := router.Group("/protected", m.JWTAuth())
	if requiredRole != "" {
		group.Use(m.RoleRequired(requiredRole))
	}
	group.GET("", func(c *gin.Context) {
		userID, _ := c.Get("userID")
		c.JSON(http.StatusOK, gin.H{"userID": userID})
	})
	return router
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "prograde.test",
	})
}

func issueToken(t *testing.T, jwtService *auth.JWTService, role models.Role) string {
	t.Helper()
	token, _, err := jwtService.GenerateToken(&models.User{ID: 1, Email: "user@x.edu", Role: role})
	require.NoError(t, err)
	return token
}

func TestJWTAuthMissingHeader(t *testing.T) {
	router := newTestRouter(newTestJWTService(), "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMalformedHeader(t *testing.T) {
	router := newTestRouter(newTestJWTService(), "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthValidToken(t *testing.T) {
	jwtService := newTestJWTService()
	router := newTestRouter(jwtService, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, jwtService, models.RoleFaculty))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoleRequiredRejectsOtherRole(t *testing.T) {
	jwtService := newTestJWTService()
	router := newTestRouter(jwtService, string(models.RoleFaculty))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, jwtService, models.RoleStudent))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRoleRequiredAllowsMatchingRole(t *testing.T) {
	jwtService := newTestJWTService()
	router := newTestRouter(jwtService, string(models.RoleFaculty))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, jwtService, models.RoleFaculty))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
