package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/playinterativas-design/UniPos/internal/config"
	"github.com/playinterativas-design/UniPos/internal/httperr"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func LoginHandler(cfg *config.Config, svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		user, err := svc.LoginOperator(c.Context(), body.Username, body.Password)
		if err != nil {
			if errors.Is(err, ErrInvalidCredentials) {
				return fiber.NewError(fiber.StatusUnauthorized, err.Error())
			}
			return httperr.Fiber(err)
		}

		token, err := GenerateToken(cfg.JWTSecret, &user)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao gerar token")
		}

		return c.JSON(fiber.Map{
			"token": token,
			"user": fiber.Map{
				"id":       user.ID,
				"name":     user.Name,
				"username": user.Username,
				"role":     user.Role,
			},
		})
	}
}

func MeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":  c.Locals(CtxUserIDKey),
			"username": c.Locals(CtxUsernameKey),
			"name":     c.Locals(CtxUserNameKey),
			"role":     c.Locals(CtxUserRoleKey),
		})
	}
}
