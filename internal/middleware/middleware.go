package middleware

import (
	"strings"

	"github.com/bradymcatee/recipeBox/domain"
	"github.com/bradymcatee/recipeBox/internal/api/presenters"
	"github.com/bradymcatee/recipeBox/pkg/authz"
	"github.com/bradymcatee/recipeBox/pkg/jwt"
	"github.com/bradymcatee/recipeBox/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(jwtService jwt.JWTService) fiber.Handler
		RequireCapability(capability authz.Capability) fiber.Handler
	}

	middleware struct {
		userRepository user.UserRepository
	}
)

func NewMiddleware(userRepository user.UserRepository) Middleware {
	return &middleware{userRepository: userRepository}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	})
}

// AuthMiddleware verifies the bearer token and resolves it to a live user
// row. A valid token whose user has since been deleted is rejected.
func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrTokenNotFound)
		}
		token := strings.TrimPrefix(header, "Bearer ")

		userID, err := jwtService.GetUserIDByToken(token)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, err)
		}

		u, err := m.userRepository.GetUserByID(c.Context(), userID)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, err)
		}

		c.Locals("user_id", u.ID.String())
		c.Locals("role", u.Role)
		c.Locals("restaurant_id", u.RestaurantID.String())
		return c.Next()
	}
}

// RequireCapability rejects the request with 403 before any handler code
// runs when the caller's role lacks the capability. Runs after
// AuthMiddleware.
func (m *middleware) RequireCapability(capability authz.Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if !authz.Can(role, capability) {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageUserNotAllowed, domain.ErrUserNotAllowed)
		}
		return c.Next()
	}
}
