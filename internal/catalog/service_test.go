package catalog

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

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	st := store.New(storage.NewMemoryBackend())
	err := st.Update(context.Background(), func(s *store.State) ([]string, error) {
		s.Categories = []string{"Roupas", "Sem Categoria"}
		return []string{store.KeyCategories}, nil
	})
	require.NoError(t, err)

	svc := NewService(st)
	svc.now = func() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) }
	seq := 0
	svc.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	return svc, st
}

func TestAddProductRecordsInitialStock(t *testing.T) {
	svc, st := newTestService(t)

	product, err := svc.AddProduct(context.Background(), ProductInput{
		Code:     "2001",
		Name:     "Boné",
		Price:    39.90,
		Stock:    20,
		Category: "Roupas",
	}, "Maria")
	require.NoError(t, err)

	assert.Equal(t, 20, product.Stock)
	assert.Equal(t, "Roupas", product.Category)

	st.View(func(s *store.State) {
		require.Len(t, s.Movements, 1)
		m := s.Movements[0]
		assert.Equal(t, models.MovementRestock, m.Type)
		assert.Equal(t, "Cadastro Inicial", m.Reason)
		assert.Equal(t, 0, m.OldStock)
		assert.Equal(t, 20, m.NewStock)
		assert.Equal(t, product.ID, m.ProductID)
	})
}

func TestAddProductDefaultsCategory(t *testing.T) {
	svc, _ := newTestService(t)

	product, err := svc.AddProduct(context.Background(), ProductInput{Code: "2002", Name: "Caneca", Price: 15}, "")
	require.NoError(t, err)
	assert.Equal(t, "Sem Categoria", product.Category)
}

func TestAddProductValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddProduct(ctx, ProductInput{Code: "", Name: "Sem Código", Price: 1}, "")
	assert.ErrorIs(t, err, store.ErrInvalidState)

	_, err = svc.AddProduct(ctx, ProductInput{Code: "2003", Name: "  ", Price: 1}, "")
	assert.ErrorIs(t, err, store.ErrInvalidState)

	_, err = svc.AddProduct(ctx, ProductInput{Code: "2003", Name: "Preço Ruim", Price: -1}, "")
	assert.ErrorIs(t, err, store.ErrInvalidAmount)
}

func TestAddProductRejectsDuplicateCode(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddProduct(ctx, ProductInput{Code: "2001", Name: "Boné", Price: 39.90}, "")
	require.NoError(t, err)

	_, err = svc.AddProduct(ctx, ProductInput{Code: "2001", Name: "Outro Boné", Price: 29.90}, "")
	assert.ErrorIs(t, err, store.ErrDuplicateCode)

	st.View(func(s *store.State) {
		assert.Len(t, s.Products, 1)
	})
}

func TestEditProduct(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	product, err := svc.AddProduct(ctx, ProductInput{Code: "2001", Name: "Boné", Price: 39.90, Stock: 5}, "")
	require.NoError(t, err)

	newName := "Boné Trucker"
	newPrice := 44.90
	out, err := svc.EditProduct(ctx, product.ID, ProductUpdate{Name: &newName, Price: &newPrice})
	require.NoError(t, err)

	assert.Equal(t, "Boné Trucker", out.Name)
	assert.Equal(t, 44.90, out.Price)
	assert.Equal(t, "2001", out.Code)
	// estoque não é editável pelo cadastro
	assert.Equal(t, 5, out.Stock)
}

func TestEditProductRejectsDuplicateCode(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddProduct(ctx, ProductInput{Code: "2001", Name: "Boné", Price: 39.90}, "")
	require.NoError(t, err)
	second, err := svc.AddProduct(ctx, ProductInput{Code: "2002", Name: "Caneca", Price: 15}, "")
	require.NoError(t, err)

	taken := "2001"
	_, err = svc.EditProduct(ctx, second.ID, ProductUpdate{Code: &taken})
	assert.ErrorIs(t, err, store.ErrDuplicateCode)

	// manter o próprio código não conta como duplicado
	own := "2002"
	_, err = svc.EditProduct(ctx, second.ID, ProductUpdate{Code: &own})
	assert.NoError(t, err)
}

func TestDeleteProductKeepsHistory(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	product, err := svc.AddProduct(ctx, ProductInput{Code: "2001", Name: "Boné", Price: 39.90, Stock: 3}, "")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(ctx, product.ID))

	st.View(func(s *store.State) {
		assert.Empty(t, s.Products)
		// o livro de movimentos sobrevive à exclusão
		require.Len(t, s.Movements, 1)
		assert.Equal(t, "Boné", s.Movements[0].ProductName)
	})

	assert.ErrorIs(t, svc.DeleteProduct(ctx, product.ID), store.ErrProductNotFound)
}

func TestListProductsFilter(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddProduct(ctx, ProductInput{Code: "2001", Name: "Boné Trucker", Price: 39.90}, "")
	require.NoError(t, err)
	_, err = svc.AddProduct(ctx, ProductInput{Code: "2002", Name: "Caneca", Price: 15}, "")
	require.NoError(t, err)

	assert.Len(t, svc.ListProducts(ctx, ""), 2)
	assert.Len(t, svc.ListProducts(ctx, "2001"), 1)    // código exato
	assert.Len(t, svc.ListProducts(ctx, "trucker"), 1) // nome, sem caixa
	assert.Empty(t, svc.ListProducts(ctx, "200"))      // código parcial não casa
}

func TestCategories(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddCategory(ctx, "Bebidas"))
	// repetir é no-op
	require.NoError(t, svc.AddCategory(ctx, "Bebidas"))
	assert.ErrorIs(t, svc.AddCategory(ctx, "  "), store.ErrInvalidState)

	categories := svc.ListCategories(ctx)
	assert.Equal(t, []string{"Roupas", "Sem Categoria", "Bebidas"}, categories)

	_, err := svc.AddProduct(ctx, ProductInput{Code: "3001", Name: "Suco", Price: 8, Category: "Bebidas"}, "")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCategory(ctx, "Bebidas"))
	st.View(func(s *store.State) {
		assert.Equal(t, "Sem Categoria", s.Products[0].Category)
	})

	assert.ErrorIs(t, svc.DeleteCategory(ctx, "Bebidas"), store.ErrNotFound)
}
