package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/playinterativas-design/UniPos/internal/models"
	"github.com/playinterativas-design/UniPos/internal/stock"
	"github.com/playinterativas-design/UniPos/internal/store"
)

const defaultCategory = "Sem Categoria"

// Service é o dono dos produtos e categorias. Vendas e movimentos guardam
// snapshots denormalizados, então edições e exclusões aqui nunca corrompem
// o histórico.
type Service struct {
	store *store.Store
	now   func() time.Time
	newID func() string
}

func NewService(st *store.Store) *Service {
	return &Service{store: st, now: time.Now, newID: uuid.NewString}
}

type ProductInput struct {
	Code     string
	Name     string
	Price    float64
	Stock    int
	Category string
	Image    string
}

// AddProduct cadastra o produto e registra o estoque inicial como RESTOCK
// no livro de movimentos (estoque anterior tratado como 0).
func (s *Service) AddProduct(ctx context.Context, input ProductInput, operatorName string) (models.Product, error) {
	input.Code = strings.TrimSpace(input.Code)
	input.Name = strings.TrimSpace(input.Name)

	if input.Code == "" || input.Name == "" {
		return models.Product{}, fmt.Errorf("%w: código e nome são obrigatórios", store.ErrInvalidState)
	}
	if input.Price < 0 {
		return models.Product{}, fmt.Errorf("%w: preço não pode ser negativo", store.ErrInvalidAmount)
	}
	if input.Category == "" {
		input.Category = defaultCategory
	}

	product := models.Product{
		ID:       s.newID(),
		Code:     input.Code,
		Name:     input.Name,
		Price:    input.Price,
		Stock:    0,
		Category: input.Category,
		Image:    input.Image,
	}

	err := s.store.Update(ctx, func(st *store.State) ([]string, error) {
		if st.FindProductByCode(product.Code) != nil {
			return nil, fmt.Errorf("%w: %q", store.ErrDuplicateCode, product.Code)
		}
		st.Products = append(st.Products, product)
		p := st.FindProduct(product.ID)
		stock.Apply(st, p, input.Stock, models.MovementRestock, "Cadastro Inicial", operatorName, s.newID(), s.now())
		product = *p
		return []string{store.KeyProducts, store.KeyStockMovements}, nil
	})
	if err != nil {
		return models.Product{}, err
	}
	return product, nil
}

type ProductUpdate struct {
	Code     *string
	Name     *string
	Price    *float64
	Category *string
	Image    *string
}

// EditProduct altera dados cadastrais. Estoque não passa por aqui: toda
// variação de quantidade entra pelo livro de movimentos.
func (s *Service) EditProduct(ctx context.Context, id string, updates ProductUpdate) (models.Product, error) {
	var out models.Product
	err := s.store.Update(ctx, func(st *store.State) ([]string, error) {
		p := st.FindProduct(id)
		if p == nil {
			return nil, store.ErrProductNotFound
		}

		if updates.Code != nil {
			code := strings.TrimSpace(*updates.Code)
			if code == "" {
				return nil, fmt.Errorf("%w: código não pode ser vazio", store.ErrInvalidState)
			}
			if other := st.FindProductByCode(code); other != nil && other.ID != id {
				return nil, fmt.Errorf("%w: %q", store.ErrDuplicateCode, code)
			}
			p.Code = code
		}
		if updates.Name != nil && strings.TrimSpace(*updates.Name) != "" {
			p.Name = strings.TrimSpace(*updates.Name)
		}
		if updates.Price != nil {
			if *updates.Price < 0 {
				return nil, fmt.Errorf("%w: preço não pode ser negativo", store.ErrInvalidAmount)
			}
			p.Price = *updates.Price
		}
		if updates.Category != nil && *updates.Category != "" {
			p.Category = *updates.Category
		}
		if updates.Image != nil {
			p.Image = *updates.Image
		}

		out = *p
		return []string{store.KeyProducts}, nil
	})
	if err != nil {
		return models.Product{}, err
	}
	return out, nil
}

// DeleteProduct remove do catálogo. Vendas e movimentos antigos continuam
// íntegros porque carregam seus próprios snapshots.
func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	return s.store.Update(ctx, func(st *store.State) ([]string, error) {
		for i := range st.Products {
			if st.Products[i].ID == id {
				st.Products = append(st.Products[:i], st.Products[i+1:]...)
				return []string{store.KeyProducts}, nil
			}
		}
		return nil, store.ErrProductNotFound
	})
}

// ListProducts retorna o catálogo; q filtra por código exato ou nome.
func (s *Service) ListProducts(ctx context.Context, q string) []models.Product {
	q = strings.TrimSpace(strings.ToLower(q))
	var out []models.Product
	s.store.View(func(st *store.State) {
		for _, p := range st.Products {
			if q != "" && p.Code != q && !strings.Contains(strings.ToLower(p.Name), q) {
				continue
			}
			out = append(out, p)
		}
	})
	return out
}

func (s *Service) GetProduct(ctx context.Context, id string) (models.Product, error) {
	var (
		product models.Product
		found   bool
	)
	s.store.View(func(st *store.State) {
		if p := st.FindProduct(id); p != nil {
			product = *p
			found = true
		}
	})
	if !found {
		return models.Product{}, store.ErrProductNotFound
	}
	return product, nil
}

func (s *Service) ListCategories(ctx context.Context) []string {
	var out []string
	s.store.View(func(st *store.State) {
		out = append(out, st.Categories...)
	})
	return out
}

func (s *Service) AddCategory(ctx context.Context, category string) error {
	category = strings.TrimSpace(category)
	if category == "" {
		return fmt.Errorf("%w: categoria não pode ser vazia", store.ErrInvalidState)
	}
	return s.store.Update(ctx, func(st *store.State) ([]string, error) {
		for _, c := range st.Categories {
			if c == category {
				return nil, nil // já existe, no-op
			}
		}
		st.Categories = append(st.Categories, category)
		return []string{store.KeyCategories}, nil
	})
}

// DeleteCategory remove a categoria e realoca os produtos dela para
// "Sem Categoria".
func (s *Service) DeleteCategory(ctx context.Context, category string) error {
	return s.store.Update(ctx, func(st *store.State) ([]string, error) {
		idx := -1
		for i, c := range st.Categories {
			if c == category {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("%w: categoria %q", store.ErrNotFound, category)
		}
		st.Categories = append(st.Categories[:idx], st.Categories[idx+1:]...)

		changed := []string{store.KeyCategories}
		for i := range st.Products {
			if st.Products[i].Category == category {
				st.Products[i].Category = defaultCategory
				if len(changed) == 1 {
					changed = append(changed, store.KeyProducts)
				}
			}
		}
		return changed, nil
	})
}
