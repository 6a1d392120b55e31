package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

// ClaimsKey is the fiber.Ctx local under which verified claims are stored.
const ClaimsKey = "claims"

// Claims are the token claims the backend consumes. Token issuance lives in
// a separate identity service; this middleware only verifies.
type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Protected verifies the bearer token and, when roles are given, requires
// the token's role claim to be one of them. Absent or invalid tokens and
// insufficient roles all answer 403 with an empty body.
func Protected(secret string, roles ...string) fiber.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusForbidden).Send(nil)
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusForbidden).Send(nil)
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			log.Warn().Err(err).Str("path", c.Path()).Msg("token validation failed")
			return c.Status(fiber.StatusForbidden).Send(nil)
		}

		if len(allowed) > 0 && !allowed[claims.Role] {
			return c.Status(fiber.StatusForbidden).Send(nil)
		}

		c.Locals(ClaimsKey, claims)
		return c.Next()
	}
}
