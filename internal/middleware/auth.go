// Package middleware provides HTTP middleware for the admin panel.
package middleware

import (
	"strings"

	"github.com/Jajanan-pasar/web/internal/models"
	"github.com/Jajanan-pasar/web/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates admin JWT bearer tokens and adds the claims to
// the request context. Token issuance lives in the platform's identity
// service; this subsystem only verifies.
type AuthMiddleware struct {
	secret []byte
}

func NewAuthMiddleware(secret string) *AuthMiddleware {
	return &AuthMiddleware{secret: []byte(secret)}
}

// Handler checks for a Bearer token with a valid signature and stores the
// admin claims under c.Locals("claims").
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return utils.Unauthorized(c, "missing authorization header")
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return utils.Unauthorized(c, "invalid authorization format")
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	token, err := jwt.ParseWithClaims(tokenString, &models.AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return utils.Unauthorized(c, "invalid token")
	}

	claims, ok := token.Claims.(*models.AdminClaims)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}

	c.Locals("claims", claims)
	return c.Next()
}

// RequirePermission gates a route on a specific admin permission.
func (m *AuthMiddleware) RequirePermission(permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("claims").(*models.AdminClaims)
		if !ok || claims == nil {
			return utils.Unauthorized(c, "invalid claims")
		}
		if !claims.HasPermission(permission) {
			return utils.Forbidden(c, "Access denied. Admin privileges required")
		}
		return c.Next()
	}
}
