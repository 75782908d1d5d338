package admin

import (
	"github.com/gofiber/fiber/v2"

	"github.com/playinterativas-design/UniPos/internal/httperr"
	"github.com/playinterativas-design/UniPos/internal/models"
)

type CreateUserRequest struct {
	Name     string          `json:"name"`
	Username string          `json:"username"`
	Password string          `json:"password"`
	Role     models.UserRole `json:"role"`
}

// Nunca devolve o hash de senha.
func userJSON(u models.User) fiber.Map {
	return fiber.Map{
		"id":        u.ID,
		"name":      u.Name,
		"username":  u.Username,
		"role":      u.Role,
		"is_active": u.IsActive,
	}
}

// GET /api/users
func ListUsersHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users := svc.ListUsers(c.Context())
		out := make([]fiber.Map, 0, len(users))
		for _, u := range users {
			out = append(out, userJSON(u))
		}
		return c.JSON(out)
	}
}

// POST /api/users
func CreateUserHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateUserRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		user, err := svc.CreateUser(c.Context(), UserInput{
			Name:     body.Name,
			Username: body.Username,
			Password: body.Password,
			Role:     body.Role,
		})
		if err != nil {
			return httperr.Fiber(err)
		}
		return c.Status(fiber.StatusCreated).JSON(userJSON(user))
	}
}

// PATCH /api/users/:id/toggle
func ToggleUserHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := svc.ToggleUser(c.Context(), c.Params("id"))
		if err != nil {
			return httperr.Fiber(err)
		}
		return c.JSON(userJSON(user))
	}
}
