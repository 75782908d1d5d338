package settings

import (
	"github.com/gofiber/fiber/v2"

	"github.com/playinterativas-design/UniPos/internal/httperr"
	"github.com/playinterativas-design/UniPos/internal/models"
)

type UpdateSettingsRequest struct {
	CompanyName        *string `json:"company_name"`
	NFCeEnabled        *bool   `json:"nfce_enabled"`
	SATEnabled         *bool   `json:"sat_enabled"`
	Environment        *string `json:"environment"`
	PrinterIP          *string `json:"printer_ip"`
	AllowNegativeStock *bool   `json:"allow_negative_stock"`
	SecurityPolicy     *string `json:"security_policy"`
}

type PaymentMethodRequest struct {
	Label       string              `json:"label"`
	Type        models.PaymentType  `json:"type"`
	Active      bool                `json:"active"`
	Detail      string              `json:"detail"`
	CardDetails *models.CardDetails `json:"card_details"`
}

type UpdatePaymentMethodRequest struct {
	Label       *string             `json:"label"`
	Type        *models.PaymentType `json:"type"`
	Active      *bool               `json:"active"`
	Detail      *string             `json:"detail"`
	CardDetails *models.CardDetails `json:"card_details"`
}

// GET /api/settings
func GetSettingsHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Get(c.Context()))
	}
}

// PUT /api/settings
func UpdateSettingsHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UpdateSettingsRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		out, err := svc.Update(c.Context(), SettingsUpdate{
			CompanyName:        body.CompanyName,
			NFCeEnabled:        body.NFCeEnabled,
			SATEnabled:         body.SATEnabled,
			Environment:        body.Environment,
			PrinterIP:          body.PrinterIP,
			AllowNegativeStock: body.AllowNegativeStock,
			SecurityPolicy:     body.SecurityPolicy,
		})
		if err != nil {
			return httperr.Fiber(err)
		}
		return c.JSON(out)
	}
}

// POST /api/settings/payment-methods
func AddPaymentMethodHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body PaymentMethodRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		method, err := svc.AddPaymentMethod(c.Context(), PaymentMethodInput{
			Label:       body.Label,
			Type:        body.Type,
			Active:      body.Active,
			Detail:      body.Detail,
			CardDetails: body.CardDetails,
		})
		if err != nil {
			return httperr.Fiber(err)
		}
		return c.Status(fiber.StatusCreated).JSON(method)
	}
}

// PUT /api/settings/payment-methods/:id
func UpdatePaymentMethodHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UpdatePaymentMethodRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		method, err := svc.EditPaymentMethod(c.Context(), c.Params("id"), PaymentMethodUpdate{
			Label:       body.Label,
			Type:        body.Type,
			Active:      body.Active,
			Detail:      body.Detail,
			CardDetails: body.CardDetails,
		})
		if err != nil {
			return httperr.Fiber(err)
		}
		return c.JSON(method)
	}
}

// DELETE /api/settings/payment-methods/:id
func RemovePaymentMethodHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.RemovePaymentMethod(c.Context(), c.Params("id")); err != nil {
			return httperr.Fiber(err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
