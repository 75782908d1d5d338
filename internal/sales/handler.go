package sales

import (
	"github.com/gofiber/fiber/v2"

	"github.com/playinterativas-design/UniPos/internal/auth"
	"github.com/playinterativas-design/UniPos/internal/httperr"
	"github.com/playinterativas-design/UniPos/internal/models"
)

type SaleItemRequest struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Code      string  `json:"code"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Total     float64 `json:"total"`
}

type ProcessSaleRequest struct {
	Items         []SaleItemRequest `json:"items"`
	PaymentMethod string            `json:"payment_method"`
}

type CheckCartRequest struct {
	ProductID    string `json:"product_id"`
	ExistingQty  int    `json:"existing_qty"`
	RequestedQty int    `json:"requested_qty"`
}

// POST /api/sales
func ProcessSaleHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ProcessSaleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		items := make([]models.CartItem, 0, len(body.Items))
		for _, it := range body.Items {
			total := it.Total
			if total == 0 {
				total = float64(it.Quantity) * it.Price
			}
			items = append(items, models.CartItem{
				Product: models.Product{
					ID:    it.ProductID,
					Code:  it.Code,
					Name:  it.Name,
					Price: it.Price,
				},
				Quantity: it.Quantity,
				Total:    total,
			})
		}

		sale, err := svc.Process(c.Context(), items, body.PaymentMethod, auth.OperatorName(c))
		if err != nil {
			return httperr.Fiber(err)
		}
		return c.Status(fiber.StatusCreated).JSON(sale)
	}
}

// POST /api/sales/check-cart
func CheckCartHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CheckCartRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		product, err := svc.CheckCartQuantity(c.Context(), body.ProductID, body.ExistingQty, body.RequestedQty)
		if err != nil {
			return httperr.Fiber(err)
		}
		return c.JSON(fiber.Map{
			"ok":      true,
			"product": product,
		})
	}
}

// GET /api/sales
func ListSalesHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.List(c.Context()))
	}
}

// GET /api/sessions/:id/sales
func ListSessionSalesHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.ListBySession(c.Context(), c.Params("id")))
	}
}
