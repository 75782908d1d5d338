package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/playinterativas-design/UniPos/internal/cashier"
	"github.com/playinterativas-design/UniPos/internal/models"
	"github.com/playinterativas-design/UniPos/internal/stock"
	"github.com/playinterativas-design/UniPos/internal/store"
)

// Service processa vendas contra o catálogo e a sessão de caixa aberta.
type Service struct {
	store *store.Store
	now   func() time.Time
	newID func() string
}

func NewService(st *store.Store) *Service {
	return &Service{store: st, now: time.Now, newID: uuid.NewString}
}

// Process valida e comita uma venda em duas fases dentro de um único
// Update: primeiro TODAS as linhas são checadas contra o estoque vivo do
// catálogo, depois o commit aplica um movimento SALE por linha, grava a
// venda e soma o total à sessão. Uma falha em qualquer linha não deixa
// nenhuma baixa parcial aplicada.
//
// Os totais dos itens foram congelados na mutação do carrinho e são
// confiados aqui; mudanças de preço no catálogo depois do carrinho aberto
// não alteram a venda.
func (s *Service) Process(ctx context.Context, items []models.CartItem, paymentMethod, operatorName string) (models.Sale, error) {
	var sale models.Sale
	err := s.store.Update(ctx, func(st *store.State) ([]string, error) {
		if st.CurrentSession == nil {
			return nil, store.ErrNoActiveSession
		}
		if len(items) == 0 {
			return nil, store.ErrEmptyCart
		}

		// fase 1: validação, nada é mutado. As quantidades são somadas por
		// produto antes da checagem: linhas repetidas do mesmo item não podem
		// passar individualmente e estourar o estoque no conjunto.
		total := 0.0
		requested := make(map[string]int, len(items))
		for _, item := range items {
			if item.Quantity <= 0 {
				return nil, fmt.Errorf("%w: quantidade inválida para %q", store.ErrInvalidAmount, item.Name)
			}
			p := st.FindProduct(item.Product.ID)
			if p == nil {
				return nil, fmt.Errorf("%w: %q", store.ErrProductNotFound, item.Name)
			}
			requested[p.ID] += item.Quantity
			if !st.Settings.AllowNegativeStock && requested[p.ID] > p.Stock {
				return nil, fmt.Errorf("%w: %q tem %d em estoque, venda pede %d",
					store.ErrInsufficientStock, p.Name, p.Stock, requested[p.ID])
			}
			total += item.Total
		}

		// fase 2: commit
		saleID := s.newID()
		ts := s.now()
		reason := fmt.Sprintf("Venda #%s", shortID(saleID))
		for _, item := range items {
			p := st.FindProduct(item.Product.ID)
			stock.Apply(st, p, -item.Quantity, models.MovementSale, reason, operatorName, s.newID(), ts)
		}

		sale = models.Sale{
			ID:            saleID,
			SessionID:     st.CurrentSession.ID,
			Items:         items,
			Total:         total,
			PaymentMethod: paymentMethod,
			Timestamp:     ts,
		}
		st.Sales = append(st.Sales, sale)

		if err := cashier.RecordSale(st, total); err != nil {
			return nil, err
		}

		return []string{store.KeyProducts, store.KeyStockMovements, store.KeySales, store.KeyCurrentSession}, nil
	})
	if err != nil {
		return models.Sale{}, err
	}
	return sale, nil
}

// CheckCartQuantity valida a inclusão de um item no carrinho contra o
// estoque vivo: o que já está no carrinho mais o pedido não pode passar do
// disponível, salvo quando a loja permite estoque negativo.
func (s *Service) CheckCartQuantity(ctx context.Context, productID string, existingQty, requestedQty int) (models.Product, error) {
	if requestedQty <= 0 {
		return models.Product{}, fmt.Errorf("%w: quantidade deve ser positiva", store.ErrInvalidAmount)
	}

	var (
		product models.Product
		found   bool
		allow   bool
	)
	s.store.View(func(st *store.State) {
		allow = st.Settings.AllowNegativeStock
		if p := st.FindProduct(productID); p != nil {
			product = *p
			found = true
		}
	})
	if !found {
		return models.Product{}, store.ErrProductNotFound
	}
	if !allow && existingQty+requestedQty > product.Stock {
		return models.Product{}, fmt.Errorf("%w: %q tem %d em estoque",
			store.ErrInsufficientStock, product.Name, product.Stock)
	}
	return product, nil
}

// List retorna as vendas, mais recente primeiro.
func (s *Service) List(ctx context.Context) []models.Sale {
	var out []models.Sale
	s.store.View(func(st *store.State) {
		for i := len(st.Sales) - 1; i >= 0; i-- {
			out = append(out, st.Sales[i])
		}
	})
	return out
}

// ListBySession retorna as vendas de uma sessão, na ordem em que ocorreram.
func (s *Service) ListBySession(ctx context.Context, sessionID string) []models.Sale {
	var out []models.Sale
	s.store.View(func(st *store.State) {
		for _, sale := range st.Sales {
			if sale.SessionID == sessionID {
				out = append(out, sale)
			}
		}
	})
	return out
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
