package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/playinterativas-design/UniPos/internal/models"
	"github.com/playinterativas-design/UniPos/internal/storage"
)

// Chaves do armazenamento, uma coleção por chave.
const (
	KeyCompanyAccount = "companyAccount"
	KeyProducts       = "products"
	KeyCategories     = "categories"
	KeyUsers          = "users"
	KeyCurrentSession = "currentSession"
	KeyCashSessions   = "cashSessions"
	KeySales          = "sales"
	KeyStockMovements = "stockMovements"
	KeySettings       = "settings"
)

// AllKeys na ordem de carga/gravação.
var AllKeys = []string{
	KeyCompanyAccount,
	KeyProducts,
	KeyCategories,
	KeyUsers,
	KeyCurrentSession,
	KeyCashSessions,
	KeySales,
	KeyStockMovements,
	KeySettings,
}

// State: todo o estado mutável da aplicação. Só é tocado dentro de
// View/Update, nunca diretamente.
type State struct {
	Company        *models.CompanyAccount
	Products       []models.Product
	Categories     []string
	Users          []models.User
	CurrentSession *models.CashSession
	Sessions       []models.CashSession // fechadas, mais recente primeiro
	Sales          []models.Sale
	Movements      []models.StockMovement // mais recente primeiro
	Settings       models.Settings
}

// FindProduct retorna um ponteiro para o produto dentro do estado, para
// mutação sob o lock do Store.
func (st *State) FindProduct(id string) *models.Product {
	for i := range st.Products {
		if st.Products[i].ID == id {
			return &st.Products[i]
		}
	}
	return nil
}

func (st *State) FindProductByCode(code string) *models.Product {
	for i := range st.Products {
		if st.Products[i].Code == code {
			return &st.Products[i]
		}
	}
	return nil
}

func (st *State) FindUser(id string) *models.User {
	for i := range st.Users {
		if st.Users[i].ID == id {
			return &st.Users[i]
		}
	}
	return nil
}

func (st *State) FindUserByUsername(username string) *models.User {
	for i := range st.Users {
		if st.Users[i].Username == username {
			return &st.Users[i]
		}
	}
	return nil
}

// clone copia o estado com slices próprios, para restauração quando a
// persistência falha no meio de um Update.
func (st *State) clone() State {
	out := State{
		Products:   append([]models.Product(nil), st.Products...),
		Categories: append([]string(nil), st.Categories...),
		Users:      append([]models.User(nil), st.Users...),
		Sessions:   append([]models.CashSession(nil), st.Sessions...),
		Sales:      append([]models.Sale(nil), st.Sales...),
		Movements:  append([]models.StockMovement(nil), st.Movements...),
		Settings:   st.Settings,
	}
	out.Settings.PaymentMethods = append([]models.PaymentMethodConfig(nil), st.Settings.PaymentMethods...)
	if st.Company != nil {
		company := *st.Company
		out.Company = &company
	}
	if st.CurrentSession != nil {
		session := *st.CurrentSession
		out.CurrentSession = &session
	}
	return out
}

// Store serializa todo acesso ao estado e persiste as coleções alteradas
// no backend após cada mutação bem-sucedida.
type Store struct {
	mu      sync.RWMutex
	backend storage.Backend
	state   State
}

func New(backend storage.Backend) *Store {
	return &Store{backend: backend}
}

// View executa fn sob lock de leitura. fn não deve reter referências ao
// estado depois de retornar.
func (s *Store) View(fn func(st *State)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.state)
}

// Update executa fn sob lock exclusivo. fn devolve as chaves das coleções
// que alterou; em caso de erro fn não pode ter mutado nada (validação
// primeiro, commit depois). Se a persistência falhar, o estado em memória
// volta ao que era antes de fn, para não divergir do armazenamento.
func (s *Store) Update(ctx context.Context, fn func(st *State) ([]string, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.state.clone()
	changed, err := fn(&s.state)
	if err != nil {
		return err
	}
	if err := s.persist(ctx, changed...); err != nil {
		s.state = prev
		return err
	}
	return nil
}

func (s *Store) persist(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		data, err := json.Marshal(s.collection(key))
		if err != nil {
			return fmt.Errorf("serialização da coleção %q falhou: %w", key, err)
		}
		if err := s.backend.Save(ctx, key, data); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) collection(key string) any {
	switch key {
	case KeyCompanyAccount:
		return s.state.Company
	case KeyProducts:
		return s.state.Products
	case KeyCategories:
		return s.state.Categories
	case KeyUsers:
		return s.state.Users
	case KeyCurrentSession:
		return s.state.CurrentSession
	case KeyCashSessions:
		return s.state.Sessions
	case KeySales:
		return s.state.Sales
	case KeyStockMovements:
		return s.state.Movements
	case KeySettings:
		return s.state.Settings
	default:
		return nil
	}
}

// Load carrega todas as coleções do backend, semeia os dados iniciais nas
// chaves ausentes e grava o resultado de volta.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range AllKeys {
		data, err := s.backend.Load(ctx, key)
		if err != nil {
			return err
		}
		if data == nil {
			s.seed(key)
			continue
		}
		if err := s.restore(key, data); err != nil {
			return fmt.Errorf("coleção %q corrompida: %w", key, err)
		}
	}

	return s.persist(ctx, AllKeys...)
}

func (s *Store) restore(key string, data []byte) error {
	switch key {
	case KeyCompanyAccount:
		return json.Unmarshal(data, &s.state.Company)
	case KeyProducts:
		return json.Unmarshal(data, &s.state.Products)
	case KeyCategories:
		return json.Unmarshal(data, &s.state.Categories)
	case KeyUsers:
		return json.Unmarshal(data, &s.state.Users)
	case KeyCurrentSession:
		return json.Unmarshal(data, &s.state.CurrentSession)
	case KeyCashSessions:
		return json.Unmarshal(data, &s.state.Sessions)
	case KeySales:
		return json.Unmarshal(data, &s.state.Sales)
	case KeyStockMovements:
		return json.Unmarshal(data, &s.state.Movements)
	case KeySettings:
		return json.Unmarshal(data, &s.state.Settings)
	default:
		return fmt.Errorf("chave desconhecida: %s", key)
	}
}
