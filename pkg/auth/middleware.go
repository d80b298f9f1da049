package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"talentbridge/pkg/kernel"
)

// AuthContext is the authenticated identity attached to each request.
type AuthContext struct {
	RecruiterID   kernel.RecruiterID
	ExecutiveCode string
	Name          string
	Email         string
}

// GetAuthContext reads the identity stored by the token middleware.
func GetAuthContext(c *fiber.Ctx) (*AuthContext, bool) {
	authCtx, ok := c.Locals("auth").(*AuthContext)
	return authCtx, ok
}

// TokenMiddleware authenticates requests with a bearer access token.
type TokenMiddleware struct {
	tokenService TokenService
}

func NewTokenMiddleware(tokenService TokenService) *TokenMiddleware {
	return &TokenMiddleware{tokenService: tokenService}
}

func (m *TokenMiddleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var token string

		if authHeader := c.Get("Authorization"); authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && parts[0] == "Bearer" && parts[1] != "" {
				token = parts[1]
			}
		}

		if token == "" {
			token = c.Cookies("access_token")
		}

		if token == "" {
			return ErrUnauthorized()
		}

		claims, err := m.tokenService.ValidateAccessToken(token)
		if err != nil {
			return err
		}

		c.Locals("auth", &AuthContext{
			RecruiterID:   claims.RecruiterID,
			ExecutiveCode: claims.ExecutiveCode,
			Name:          claims.Name,
			Email:         claims.Email,
		})
		return c.Next()
	}
}
