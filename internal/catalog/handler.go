package catalog

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/playinterativas-design/UniPos/internal/auth"
	"github.com/playinterativas-design/UniPos/internal/httperr"
)

func unescape(s string) (string, error) {
	return url.PathUnescape(s)
}

type CreateProductRequest struct {
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Category string  `json:"category"`
	Image    string  `json:"image"`
}

type UpdateProductRequest struct {
	Code     *string  `json:"code"`
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	Category *string  `json:"category"`
	Image    *string  `json:"image"`
}

type CategoryRequest struct {
	Name string `json:"name"`
}

// GET /api/products?q=
func ListProductsHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.ListProducts(c.Context(), c.Query("q")))
	}
}

// GET /api/products/:id
func GetProductHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		product, err := svc.GetProduct(c.Context(), c.Params("id"))
		if err != nil {
			return httperr.Fiber(err)
		}
		return c.JSON(product)
	}
}

// POST /api/products
func CreateProductHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		product, err := svc.AddProduct(c.Context(), ProductInput{
			Code:     body.Code,
			Name:     body.Name,
			Price:    body.Price,
			Stock:    body.Stock,
			Category: body.Category,
			Image:    body.Image,
		}, auth.OperatorName(c))
		if err != nil {
			return httperr.Fiber(err)
		}
		return c.Status(fiber.StatusCreated).JSON(product)
	}
}

// PUT /api/products/:id
func UpdateProductHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UpdateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		product, err := svc.EditProduct(c.Context(), c.Params("id"), ProductUpdate{
			Code:     body.Code,
			Name:     body.Name,
			Price:    body.Price,
			Category: body.Category,
			Image:    body.Image,
		})
		if err != nil {
			return httperr.Fiber(err)
		}
		return c.JSON(product)
	}
}

// DELETE /api/products/:id
func DeleteProductHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.DeleteProduct(c.Context(), c.Params("id")); err != nil {
			return httperr.Fiber(err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GET /api/categories
func ListCategoriesHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.ListCategories(c.Context()))
	}
}

// POST /api/categories
func CreateCategoryHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CategoryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}
		if err := svc.AddCategory(c.Context(), body.Name); err != nil {
			return httperr.Fiber(err)
		}
		return c.SendStatus(fiber.StatusCreated)
	}
}

// DELETE /api/categories/:name
func DeleteCategoryHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name, err := unescape(c.Params("name"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Nome de categoria inválido")
		}
		if err := svc.DeleteCategory(c.Context(), name); err != nil {
			return httperr.Fiber(err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
