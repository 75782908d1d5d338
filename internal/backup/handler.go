package backup

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/playinterativas-design/UniPos/internal/store"
)

// GET /api/backup/export — baixa o estado completo como JSON.
func ExportHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filename := fmt.Sprintf("unipos-backup-%s.json", time.Now().Format("2006-01-02"))
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
		return c.JSON(st.Export())
	}
}

// POST /api/backup/import — substitui o estado inteiro pelo snapshot
// enviado. Não há merge: restauração é tudo ou nada.
func ImportHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var snap store.Snapshot
		if err := c.BodyParser(&snap); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Arquivo de backup inválido")
		}

		if err := st.Import(c.Context(), snap); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao restaurar backup")
		}
		return c.JSON(fiber.Map{"message": "Backup restaurado com sucesso"})
	}
}
