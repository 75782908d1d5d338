package cashier

import (
	"github.com/gofiber/fiber/v2"

	"github.com/playinterativas-design/UniPos/internal/auth"
	"github.com/playinterativas-design/UniPos/internal/httperr"
)

type OpenCashierRequest struct {
	StartValue float64 `json:"start_value"`
}

type CloseCashierRequest struct {
	EndValue float64 `json:"end_value"`
}

// POST /api/cashier/open
func OpenCashierHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body OpenCashierRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		session, err := svc.Open(c.Context(), auth.OperatorID(c), auth.OperatorName(c), body.StartValue)
		if err != nil {
			return httperr.Fiber(err)
		}
		return c.Status(fiber.StatusCreated).JSON(session)
	}
}

// POST /api/cashier/close
func CloseCashierHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CloseCashierRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		session, difference, err := svc.Close(c.Context(), body.EndValue)
		if err != nil {
			return httperr.Fiber(err)
		}
		return c.JSON(fiber.Map{
			"session":    session,
			"difference": difference,
		})
	}
}

// GET /api/cashier/current
func CurrentSessionHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := svc.Current(c.Context())
		if err != nil {
			return httperr.Fiber(err)
		}
		return c.JSON(session)
	}
}

// GET /api/cashier/sessions
func ListSessionsHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.History(c.Context()))
	}
}
