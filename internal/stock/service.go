package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/playinterativas-design/UniPos/internal/models"
	"github.com/playinterativas-design/UniPos/internal/store"
)

// Apply muta o estoque do produto e registra o movimento correspondente.
// Deve ser chamada dentro de um store.Update já em curso; o processador de
// vendas a reutiliza para manter a invariante NewStock == OldStock + Change
// em um único ponto.
func Apply(st *store.State, p *models.Product, delta int, typ models.MovementType, reason, operatorName, id string, ts time.Time) models.StockMovement {
	if reason == "" {
		reason = string(typ)
	}
	if operatorName == "" {
		operatorName = "Sistema"
	}

	mov := models.StockMovement{
		ID:           id,
		ProductID:    p.ID,
		ProductName:  p.Name,
		OldStock:     p.Stock,
		NewStock:     p.Stock + delta,
		Change:       delta,
		Type:         typ,
		Reason:       reason,
		OperatorName: operatorName,
		Timestamp:    ts,
	}
	p.Stock += delta
	st.Movements = append([]models.StockMovement{mov}, st.Movements...)
	return mov
}

type Service struct {
	store *store.Store
	now   func() time.Time
	newID func() string
}

func NewService(st *store.Store) *Service {
	return &Service{store: st, now: time.Now, newID: uuid.NewString}
}

// ApplyChange: operação genérica do livro de estoque. A política de estoque
// negativo de venda é checada pelo processador de vendas antes do commit,
// não aqui.
func (s *Service) ApplyChange(ctx context.Context, productID string, delta int, typ models.MovementType, reason, operatorName string) (models.Product, models.StockMovement, error) {
	switch typ {
	case models.MovementSale, models.MovementRestock, models.MovementAdjustment, models.MovementReturn:
	default:
		return models.Product{}, models.StockMovement{}, fmt.Errorf("%w: tipo de movimento %q", store.ErrInvalidState, typ)
	}

	var (
		product  models.Product
		movement models.StockMovement
	)
	err := s.store.Update(ctx, func(st *store.State) ([]string, error) {
		p := st.FindProduct(productID)
		if p == nil {
			return nil, store.ErrProductNotFound
		}
		movement = Apply(st, p, delta, typ, reason, operatorName, s.newID(), s.now())
		product = *p
		return []string{store.KeyProducts, store.KeyStockMovements}, nil
	})
	if err != nil {
		return models.Product{}, models.StockMovement{}, err
	}
	return product, movement, nil
}

// Restock: entrada de mercadoria.
func (s *Service) Restock(ctx context.Context, productID string, quantity int, reason, operatorName string) (models.Product, models.StockMovement, error) {
	if quantity <= 0 {
		return models.Product{}, models.StockMovement{}, fmt.Errorf("%w: quantidade deve ser positiva", store.ErrInvalidAmount)
	}
	return s.ApplyChange(ctx, productID, quantity, models.MovementRestock, reason, operatorName)
}

// Return: devolução de cliente, estoque volta para a prateleira.
func (s *Service) Return(ctx context.Context, productID string, quantity int, reason, operatorName string) (models.Product, models.StockMovement, error) {
	if quantity <= 0 {
		return models.Product{}, models.StockMovement{}, fmt.Errorf("%w: quantidade deve ser positiva", store.ErrInvalidAmount)
	}
	return s.ApplyChange(ctx, productID, quantity, models.MovementReturn, reason, operatorName)
}

// Adjust: correção manual de inventário para uma quantidade absoluta.
// Se o alvo for igual ao estoque atual a operação é um no-op e nenhum
// movimento é registrado.
func (s *Service) Adjust(ctx context.Context, productID string, target int, reason, operatorName string) (models.Product, bool, error) {
	if target < 0 {
		return models.Product{}, false, fmt.Errorf("%w: estoque alvo não pode ser negativo", store.ErrInvalidAmount)
	}

	var (
		product models.Product
		moved   bool
	)
	err := s.store.Update(ctx, func(st *store.State) ([]string, error) {
		p := st.FindProduct(productID)
		if p == nil {
			return nil, store.ErrProductNotFound
		}
		delta := target - p.Stock
		if delta == 0 {
			product = *p
			return nil, nil
		}
		Apply(st, p, delta, models.MovementAdjustment, reason, operatorName, s.newID(), s.now())
		product = *p
		moved = true
		return []string{store.KeyProducts, store.KeyStockMovements}, nil
	})
	if err != nil {
		return models.Product{}, false, err
	}
	return product, moved, nil
}

// Movements lista o livro de movimentos, mais recente primeiro, com filtros
// opcionais por produto e tipo.
func (s *Service) Movements(productID string, typ models.MovementType) []models.StockMovement {
	var out []models.StockMovement
	s.store.View(func(st *store.State) {
		for _, m := range st.Movements {
			if productID != "" && m.ProductID != productID {
				continue
			}
			if typ != "" && m.Type != typ {
				continue
			}
			out = append(out, m)
		}
	})
	return out
}
