package reports

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/playinterativas-design/UniPos/internal/httperr"
)

// GET /api/reports/sessions/:id
func SessionReportHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		report, err := svc.SessionReport(c.Context(), c.Params("id"))
		if err != nil {
			return httperr.Fiber(err)
		}
		return c.JSON(report)
	}
}

// GET /api/reports/sales-summary
func SalesSummaryHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Summary(c.Context()))
	}
}

// GET /api/reports/sessions/export — planilha com o histórico de caixas.
func ExportSessionsHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f, err := svc.SessionsXLSX(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao gerar planilha")
		}
		defer f.Close()

		buf, err := f.WriteToBuffer()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao gerar planilha")
		}

		filename := fmt.Sprintf("sessoes-%s.xlsx", time.Now().Format("2006-01-02"))
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
		return c.Send(buf.Bytes())
	}
}
