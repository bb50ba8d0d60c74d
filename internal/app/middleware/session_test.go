package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"

	"pms-app-service/internal/domain/models"
	"pms-app-service/internal/infrastructure/config"
)

func init() {
	gin.SetMode(gin.TestMode)
	InitSessionMiddleware(&config.Config{JWTSecretKey: "test-secret"})
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func sessionRouter(captured *models.SessionContext) *gin.Engine {
	r := gin.New()
	r.GET("/secure", RequireSession(), func(c *gin.Context) {
		if session, ok := GetSession(c); ok {
			*captured = session
		}
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequireSessionResolvesClaims(t *testing.T) {
	var session models.SessionContext
	r := sessionRouter(&session)

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.MapClaims{
		"userId":     "u1",
		"orgId":      "org1",
		"propertyId": "p1",
		"role":       "ORG_ADMIN",
	}))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "u1", session.UserID)
	require.Equal(t, "org1", session.OrgID)
	require.Equal(t, "p1", session.PropertyID)
	require.Equal(t, models.RoleOrgAdmin, session.Role)
}

func TestRequireSessionFallsBackToScopeCookies(t *testing.T) {
	var session models.SessionContext
	r := sessionRouter(&session)

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.MapClaims{
		"userId": "u1",
		"role":   "FRONT_DESK",
	}))
	req.AddCookie(&http.Cookie{Name: "orgId", Value: "org9"})
	req.AddCookie(&http.Cookie{Name: "propertyId", Value: "p9"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "org9", session.OrgID)
	require.Equal(t, "p9", session.PropertyID)
}

func TestRequireSessionRejectsMissingToken(t *testing.T) {
	var session models.SessionContext
	r := sessionRouter(&session)

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Empty(t, session.UserID)
}

func TestRequireSessionRejectsBadSignature(t *testing.T) {
	var session models.SessionContext
	r := sessionRouter(&session)

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": "u1",
		"role":   "ORG_ADMIN",
	}).SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireSessionRejectsUnknownRole(t *testing.T) {
	var session models.SessionContext
	r := sessionRouter(&session)

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.MapClaims{
		"userId": "u1",
		"role":   "INTERN",
	}))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoleEnforcesRank(t *testing.T) {
	r := gin.New()
	r.GET("/admin", RequireSession(), RequireRole(models.RolePropertyMgr), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	frontDesk := signToken(t, jwt.MapClaims{"userId": "u1", "role": "FRONT_DESK"})
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+frontDesk)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusForbidden, w.Code)

	manager := signToken(t, jwt.MapClaims{"userId": "u2", "role": "PROPERTY_MGR"})
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+manager)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}
