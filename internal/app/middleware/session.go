package middleware

import (
	"fmt"
	"strings"

	"pms-app-service/internal/domain/models"
	"pms-app-service/internal/error/response"
	"pms-app-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

// SessionKey is the gin context key the resolved session is stored under
const SessionKey = "session"

var jwtSecret []byte

// InitSessionMiddleware initializes the session middleware
func InitSessionMiddleware(cfg *config.Config) {
	jwtSecret = []byte(cfg.JWTSecretKey)
}

// extractToken strips the "Bearer " prefix from an authorization header
func extractToken(authHeader string) string {
	if len(authHeader) > 7 && strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

// parseClaims validates the token signature and returns its claims
func parseClaims(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

func claimString(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}

// RequireSession authenticates the request and resolves its identity
// scope. Organization and property come from the token claims, falling
// back to the orgId / propertyId cookies when the claims omit them.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := parseClaims(extractToken(authHeader))
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		session := models.SessionContext{
			UserID:     claimString(claims, "userId"),
			OrgID:      claimString(claims, "orgId"),
			PropertyID: claimString(claims, "propertyId"),
			Role:       models.OrganizationRole(claimString(claims, "role")),
		}

		// cookie fallback for sessions scoped after token issuance
		if session.OrgID == "" {
			if v, err := c.Cookie("orgId"); err == nil {
				session.OrgID = v
			}
		}
		if session.PropertyID == "" {
			if v, err := c.Cookie("propertyId"); err == nil {
				session.PropertyID = v
			}
		}

		if session.UserID == "" || !session.Role.Valid() {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(SessionKey, session)
		c.Next()
	}
}

// RequireRole rejects sessions whose role ranks below the given role.
// It must run after RequireSession.
func RequireRole(min models.OrganizationRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := GetSession(c)
		if !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		if session.Role.Rank() < min.Rank() {
			response.Forbidden(c, fmt.Sprintf("requires %s role or above", min))
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetSession reads the resolved session from the gin context
func GetSession(c *gin.Context) (models.SessionContext, bool) {
	v, exists := c.Get(SessionKey)
	if !exists {
		return models.SessionContext{}, false
	}
	session, ok := v.(models.SessionContext)
	return session, ok
}
