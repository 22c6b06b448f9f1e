package middleware

import (
	"errors"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/renoverde/recolhe-plus/internal/config"
	"github.com/renoverde/recolhe-plus/internal/dto"
)

func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Unauthorized: invalid or expired token",
			})
		},
	})
}

// CurrentUserID extracts the user UUID from JWT claims in context.
func CurrentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	claims, err := currentClaims(c)
	if err != nil {
		return uuid.Nil, err
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing sub claim")
	}
	return uuid.Parse(sub)
}

// CurrentRole returns the role claim, defaulting to "user".
func CurrentRole(c *fiber.Ctx) string {
	claims, err := currentClaims(c)
	if err != nil {
		return "user"
	}
	if role, ok := claims["role"].(string); ok && role != "" {
		return role
	}
	return "user"
}

// CurrentEmail returns the email claim, or "" when absent.
func CurrentEmail(c *fiber.Ctx) string {
	claims, err := currentClaims(c)
	if err != nil {
		return ""
	}
	email, _ := claims["email"].(string)
	return email
}

func currentClaims(c *fiber.Ctx) (jwt.MapClaims, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return nil, errors.New("invalid token in context")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}
