// Package middleware provides authentication and authorization middleware for the application.
package middleware

import (
	"strconv"
	"strings"

	"ripple/internal/config"
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Token issuer and audience, enforced on every parse. Tokens minted elsewhere
// are rejected even when signed with the same secret.
const (
	TokenIssuer   = "ripple-api"
	TokenAudience = "ripple-client"
)

var cfg *config.Config

// InitMiddleware initializes authentication middleware with the given config.
func InitMiddleware(c *config.Config) {
	cfg = c
}

// parseIdentity validates a bearer token string and returns the user id and
// email it carries.
func parseIdentity(tokenString string) (uint, string, bool) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	}, jwt.WithIssuer(TokenIssuer), jwt.WithAudience(TokenAudience))
	if err != nil || !token.Valid {
		return 0, "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", false
	}

	// User ID travels in the "sub" claim (subject claim per RFC 7519)
	subStr, ok := claims["sub"].(string)
	if !ok {
		return 0, "", false
	}
	userID, err := strconv.ParseUint(subStr, 10, 32)
	if err != nil {
		return 0, "", false
	}

	email, _ := claims["email"].(string)
	return uint(userID), email, true
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
func bearerToken(c *fiber.Ctx) (string, bool) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// AuthRequired is a middleware that enforces authentication for protected routes.
func AuthRequired(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authorization header required"))
	}

	tokenString, ok := bearerToken(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid authorization header format"))
	}

	userID, email, ok := parseIdentity(tokenString)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid or expired token"))
	}

	// Store identity in context
	c.Locals("userID", userID)
	c.Locals("userEmail", email)

	return c.Next()
}

// OptionalAuth attaches the identity when a valid bearer token is present and
// continues anonymously otherwise. It never rejects a request; downstream
// handlers treat a missing userID local as an anonymous caller.
func OptionalAuth(c *fiber.Ctx) error {
	tokenString, ok := bearerToken(c)
	if !ok {
		return c.Next()
	}

	userID, email, ok := parseIdentity(tokenString)
	if !ok {
		return c.Next()
	}

	c.Locals("userID", userID)
	c.Locals("userEmail", email)

	return c.Next()
}
