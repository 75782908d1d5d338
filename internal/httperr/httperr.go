package httperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/playinterativas-design/UniPos/internal/store"
)

// Fiber traduz os erros do núcleo para respostas HTTP. O texto do erro já
// vem pronto para o usuário.
func Fiber(err error) error {
	switch {
	case errors.Is(err, store.ErrInvalidAmount),
		errors.Is(err, store.ErrEmptyCart):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrProductNotFound),
		errors.Is(err, store.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrInvalidState),
		errors.Is(err, store.ErrNoActiveSession),
		errors.Is(err, store.ErrInsufficientStock),
		errors.Is(err, store.ErrDuplicateUsername),
		errors.Is(err, store.ErrDuplicateCode):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	default:
		return err
	}
}
