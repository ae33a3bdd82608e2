package authjwt

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	uuid "github.com/gofrs/uuid"
	"github.com/golang-jwt/jwt/v5"

	"github.com/vidtube/api/internal/types"
)

// Config defines the config for the JWT middleware.
type Config struct {
	// The EC public key for validating ES256 tokens.
	PublicKey string
	// The claim key where the user payload is stored. Defaults to "user".
	ClaimKey string
	// Optional makes the middleware pass requests through without a
	// user context when no token is present or the token is invalid.
	// Read-only endpoints that merely personalize output use this.
	Optional bool
}

// New creates a new middleware handler.
func New(cfg Config) fiber.Handler {
	if cfg.ClaimKey == "" {
		cfg.ClaimKey = "user"
	}

	// Parse the key once on startup.
	ecPublicKey, err := jwt.ParseECPublicKeyFromPEM([]byte(cfg.PublicKey))
	if err != nil {
		panic(fmt.Sprintf("failed to parse EC public key: %v", err))
	}

	unauthorized := func(c *fiber.Ctx, message string) error {
		if cfg.Optional {
			return c.Next()
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"code":    "UNAUTHORIZED",
			"message": message,
		})
	}

	return func(c *fiber.Ctx) error {
		var tokenString string

		// Authorization header first (mobile/API clients), then the
		// access_token cookie (web browsers).
		authHeader := c.Get(types.HeaderAuthorization)
		if strings.HasPrefix(authHeader, types.BearerPrefix) {
			tokenString = strings.TrimPrefix(authHeader, types.BearerPrefix)
		}
		if tokenString == "" {
			tokenString = c.Cookies("access_token")
		}
		if tokenString == "" {
			return unauthorized(c, "Missing or invalid JWT")
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodECDSA); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return ecPublicKey, nil
		})
		if err != nil || !token.Valid {
			return unauthorized(c, "Invalid token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return unauthorized(c, "Invalid token claims")
		}

		if exp, ok := claims["exp"].(float64); ok && int64(exp) < time.Now().Unix() {
			return unauthorized(c, "Token has expired")
		}

		claimData, ok := claims[cfg.ClaimKey].(map[string]interface{})
		if !ok {
			return unauthorized(c, "Invalid token claim format")
		}

		uidStr, _ := claimData["uid"].(string)
		userID, err := uuid.FromString(uidStr)
		if err != nil {
			return unauthorized(c, "Invalid user ID in token")
		}

		username, _ := claimData["username"].(string)
		displayName, _ := claimData["displayName"].(string)
		avatar, _ := claimData["avatar"].(string)

		c.Locals(types.UserCtxName, types.UserContext{
			UserID:      userID,
			Username:    username,
			DisplayName: displayName,
			Avatar:      avatar,
		})

		return c.Next()
	}
}
