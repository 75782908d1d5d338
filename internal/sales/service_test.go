package sales

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playinterativas-design/UniPos/internal/models"
	"github.com/playinterativas-design/UniPos/internal/storage"
	"github.com/playinterativas-design/UniPos/internal/store"
)

var testTime = time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	st := store.New(storage.NewMemoryBackend())
	err := st.Update(context.Background(), func(s *store.State) ([]string, error) {
		s.Products = []models.Product{
			{ID: "p1", Code: "1001", Name: "Camiseta", Price: 49.90, Stock: 10, Category: "Roupas"},
			{ID: "p2", Code: "1002", Name: "Tênis", Price: 299.90, Stock: 2, Category: "Calçados"},
		}
		s.CurrentSession = &models.CashSession{
			ID:         "sess-1",
			OperatorID: "op-1",
			OpenedAt:   testTime,
			StartValue: 100,
			Status:     models.SessionOpen,
		}
		return []string{store.KeyProducts, store.KeyCurrentSession}, nil
	})
	require.NoError(t, err)

	svc := NewService(st)
	svc.now = func() time.Time { return testTime }
	seq := 0
	svc.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	return svc, st
}

func cartItem(p models.Product, qty int) models.CartItem {
	return models.CartItem{Product: p, Quantity: qty, Total: float64(qty) * p.Price}
}

func TestProcessSale(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	items := []models.CartItem{
		cartItem(models.Product{ID: "p1", Name: "Camiseta", Price: 49.90}, 2),
		cartItem(models.Product{ID: "p2", Name: "Tênis", Price: 299.90}, 1),
	}

	sale, err := svc.Process(ctx, items, "Dinheiro", "Maria")
	require.NoError(t, err)

	assert.Equal(t, "sess-1", sale.SessionID)
	assert.InDelta(t, 2*49.90+299.90, sale.Total, 1e-9)
	assert.Equal(t, "Dinheiro", sale.PaymentMethod)
	assert.Len(t, sale.Items, 2)

	st.View(func(s *store.State) {
		assert.Equal(t, 8, s.FindProduct("p1").Stock)
		assert.Equal(t, 1, s.FindProduct("p2").Stock)
		assert.InDelta(t, sale.Total, s.CurrentSession.SalesTotal, 1e-9)
		require.Len(t, s.Sales, 1)
		require.Len(t, s.Movements, 2)
		for _, m := range s.Movements {
			assert.Equal(t, models.MovementSale, m.Type)
			assert.Equal(t, m.OldStock+m.Change, m.NewStock)
			assert.Negative(t, m.Change)
			assert.Equal(t, "Maria", m.OperatorName)
			assert.Contains(t, m.Reason, "Venda #")
		}
	})
}

func TestProcessRequiresOpenSession(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	err := st.Update(ctx, func(s *store.State) ([]string, error) {
		s.CurrentSession = nil
		return []string{store.KeyCurrentSession}, nil
	})
	require.NoError(t, err)

	_, err = svc.Process(ctx, []models.CartItem{cartItem(models.Product{ID: "p1"}, 1)}, "Pix", "Maria")
	assert.ErrorIs(t, err, store.ErrNoActiveSession)
}

func TestProcessRejectsEmptyCart(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Process(context.Background(), nil, "Pix", "Maria")
	assert.ErrorIs(t, err, store.ErrEmptyCart)
}

func TestProcessRejectsUnknownProduct(t *testing.T) {
	svc, _ := newTestService(t)

	items := []models.CartItem{cartItem(models.Product{ID: "ghost", Name: "Fantasma", Price: 10}, 1)}
	_, err := svc.Process(context.Background(), items, "Pix", "Maria")
	assert.ErrorIs(t, err, store.ErrProductNotFound)
}

func TestProcessRejectsNonPositiveQuantity(t *testing.T) {
	svc, _ := newTestService(t)

	items := []models.CartItem{cartItem(models.Product{ID: "p1", Name: "Camiseta", Price: 49.90}, 0)}
	_, err := svc.Process(context.Background(), items, "Pix", "Maria")
	assert.ErrorIs(t, err, store.ErrInvalidAmount)
}

// Falha em qualquer linha não pode deixar baixa parcial: a primeira linha é
// válida, a segunda estoura o estoque, e nada muda.
func TestProcessIsAllOrNothing(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	items := []models.CartItem{
		cartItem(models.Product{ID: "p1", Name: "Camiseta", Price: 49.90}, 2),
		cartItem(models.Product{ID: "p2", Name: "Tênis", Price: 299.90}, 5), // só tem 2
	}

	_, err := svc.Process(ctx, items, "Pix", "Maria")
	assert.ErrorIs(t, err, store.ErrInsufficientStock)

	st.View(func(s *store.State) {
		assert.Equal(t, 10, s.FindProduct("p1").Stock)
		assert.Equal(t, 2, s.FindProduct("p2").Stock)
		assert.Empty(t, s.Sales)
		assert.Empty(t, s.Movements)
		assert.Equal(t, 0.0, s.CurrentSession.SalesTotal)
	})
}

// Linhas repetidas do mesmo produto contam somadas: qty 2 + qty 1 contra
// estoque 2 passa linha a linha, mas o conjunto estoura e a venda inteira é
// recusada.
func TestProcessSumsDuplicateLinesAgainstStock(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	items := []models.CartItem{
		cartItem(models.Product{ID: "p2", Name: "Tênis", Price: 299.90}, 2),
		cartItem(models.Product{ID: "p2", Name: "Tênis", Price: 299.90}, 1),
	}

	_, err := svc.Process(ctx, items, "Pix", "Maria")
	assert.ErrorIs(t, err, store.ErrInsufficientStock)

	st.View(func(s *store.State) {
		assert.Equal(t, 2, s.FindProduct("p2").Stock)
		assert.Empty(t, s.Sales)
		assert.Empty(t, s.Movements)
	})

	// dentro do estoque, a soma das linhas repetidas é vendida normalmente
	items = []models.CartItem{
		cartItem(models.Product{ID: "p2", Name: "Tênis", Price: 299.90}, 1),
		cartItem(models.Product{ID: "p2", Name: "Tênis", Price: 299.90}, 1),
	}
	sale, err := svc.Process(ctx, items, "Pix", "Maria")
	require.NoError(t, err)
	assert.Len(t, sale.Items, 2)

	st.View(func(s *store.State) {
		assert.Equal(t, 0, s.FindProduct("p2").Stock)
		assert.Len(t, s.Movements, 2)
	})
}

func TestProcessAllowsNegativeStockWhenEnabled(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	err := st.Update(ctx, func(s *store.State) ([]string, error) {
		s.Settings.AllowNegativeStock = true
		return []string{store.KeySettings}, nil
	})
	require.NoError(t, err)

	items := []models.CartItem{cartItem(models.Product{ID: "p2", Name: "Tênis", Price: 299.90}, 5)}
	_, err = svc.Process(ctx, items, "Pix", "Maria")
	require.NoError(t, err)

	st.View(func(s *store.State) {
		assert.Equal(t, -3, s.FindProduct("p2").Stock)
	})
}

func TestCheckCartQuantity(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	product, err := svc.CheckCartQuantity(ctx, "p1", 0, 3)
	require.NoError(t, err)
	assert.Equal(t, "Camiseta", product.Name)

	// carrinho já tem 8, pedir mais 3 passa dos 10 disponíveis
	_, err = svc.CheckCartQuantity(ctx, "p1", 8, 3)
	assert.ErrorIs(t, err, store.ErrInsufficientStock)

	_, err = svc.CheckCartQuantity(ctx, "p1", 0, 0)
	assert.ErrorIs(t, err, store.ErrInvalidAmount)

	_, err = svc.CheckCartQuantity(ctx, "ghost", 0, 1)
	assert.ErrorIs(t, err, store.ErrProductNotFound)

	err = st.Update(ctx, func(s *store.State) ([]string, error) {
		s.Settings.AllowNegativeStock = true
		return []string{store.KeySettings}, nil
	})
	require.NoError(t, err)

	_, err = svc.CheckCartQuantity(ctx, "p1", 8, 3)
	assert.NoError(t, err)
}

func TestListOrdering(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.Process(ctx, []models.CartItem{cartItem(models.Product{ID: "p1", Name: "Camiseta", Price: 49.90}, 1)}, "Pix", "Maria")
	require.NoError(t, err)
	second, err := svc.Process(ctx, []models.CartItem{cartItem(models.Product{ID: "p1", Name: "Camiseta", Price: 49.90}, 1)}, "Dinheiro", "Maria")
	require.NoError(t, err)

	// List: mais recente primeiro
	all := svc.List(ctx)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)

	// ListBySession: ordem cronológica
	bySession := svc.ListBySession(ctx, "sess-1")
	require.Len(t, bySession, 2)
	assert.Equal(t, first.ID, bySession[0].ID)

	assert.Empty(t, svc.ListBySession(ctx, "outra"))
}
