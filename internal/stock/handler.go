package stock

import (
	"github.com/gofiber/fiber/v2"

	"github.com/playinterativas-design/UniPos/internal/auth"
	"github.com/playinterativas-design/UniPos/internal/httperr"
	"github.com/playinterativas-design/UniPos/internal/models"
)

type RestockRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Reason    string `json:"reason"`
}

type AdjustStockRequest struct {
	ProductID   string `json:"product_id"`
	TargetStock int    `json:"target_stock"`
	Reason      string `json:"reason"`
}

type ReturnRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Reason    string `json:"reason"`
}

// GET /api/stock-movements?product_id=&type=
func ListMovementsHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Movements(c.Query("product_id"), models.MovementType(c.Query("type"))))
	}
}

// POST /api/stock/restock
func RestockHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RestockRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		product, movement, err := svc.Restock(c.Context(), body.ProductID, body.Quantity, body.Reason, auth.OperatorName(c))
		if err != nil {
			return httperr.Fiber(err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"product":  product,
			"movement": movement,
		})
	}
}

// POST /api/stock/adjust — o chamador informa a quantidade absoluta alvo.
// Ajuste para a quantidade atual é um no-op e não gera movimento.
func AdjustStockHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body AdjustStockRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		product, moved, err := svc.Adjust(c.Context(), body.ProductID, body.TargetStock, body.Reason, auth.OperatorName(c))
		if err != nil {
			return httperr.Fiber(err)
		}
		return c.JSON(fiber.Map{
			"product": product,
			"changed": moved,
		})
	}
}

// POST /api/stock/return
func ReturnHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ReturnRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		product, movement, err := svc.Return(c.Context(), body.ProductID, body.Quantity, body.Reason, auth.OperatorName(c))
		if err != nil {
			return httperr.Fiber(err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"product":  product,
			"movement": movement,
		})
	}
}
