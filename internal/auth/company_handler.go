package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/playinterativas-design/UniPos/internal/httperr"
)

type RegisterCompanyRequest struct {
	CompanyName string `json:"company_name"`
	Document    string `json:"document"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Password    string `json:"password"`
}

type CompanyLoginRequest struct {
	Identifier string `json:"identifier"` // email ou CPF/CNPJ
	Password   string `json:"password"`
}

type RecoverPasswordRequest struct {
	Email string `json:"email"`
}

type UpdateCompanyRequest struct {
	CompanyName *string `json:"company_name"`
	Document    *string `json:"document"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Password    *string `json:"password"`
}

func companyJSON(c *fiber.Ctx, companyName, document, email, phone string) error {
	return c.JSON(fiber.Map{
		"company_name": companyName,
		"document":     document,
		"email":        email,
		"phone":        phone,
	})
}

func RegisterCompanyHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RegisterCompanyRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		company, err := svc.RegisterCompany(c.Context(), CompanyInput{
			CompanyName: body.CompanyName,
			Document:    body.Document,
			Email:       body.Email,
			Phone:       body.Phone,
			Password:    body.Password,
		})
		if err != nil {
			return httperr.Fiber(err)
		}

		c.Status(fiber.StatusCreated)
		return companyJSON(c, company.CompanyName, company.Document, company.Email, company.Phone)
	}
}

func CompanyLoginHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CompanyLoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		company, err := svc.LoginCompany(c.Context(), body.Identifier, body.Password)
		if err != nil {
			if errors.Is(err, ErrInvalidCredentials) {
				return fiber.NewError(fiber.StatusUnauthorized, err.Error())
			}
			return httperr.Fiber(err)
		}

		return companyJSON(c, company.CompanyName, company.Document, company.Email, company.Phone)
	}
}

func RecoverCompanyPasswordHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RecoverPasswordRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}
		return c.JSON(fiber.Map{"found": svc.RecoverCompanyPassword(body.Email)})
	}
}

func UpdateCompanyHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UpdateCompanyRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		company, err := svc.UpdateCompany(c.Context(), CompanyUpdate{
			CompanyName: body.CompanyName,
			Document:    body.Document,
			Email:       body.Email,
			Phone:       body.Phone,
			Password:    body.Password,
		})
		if err != nil {
			return httperr.Fiber(err)
		}

		return companyJSON(c, company.CompanyName, company.Document, company.Email, company.Phone)
	}
}

func DeleteCompanyHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.DeleteCompany(c.Context()); err != nil {
			return httperr.Fiber(err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
