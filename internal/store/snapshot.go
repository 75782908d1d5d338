package store

import (
	"context"

	"github.com/playinterativas-design/UniPos/internal/models"
)

// Snapshot: o estado completo em um único documento, para backup e
// restauração. load → save → load reproduz as coleções byte a byte.
type Snapshot struct {
	CompanyAccount *models.CompanyAccount `json:"companyAccount"`
	Products       []models.Product       `json:"products"`
	Categories     []string               `json:"categories"`
	Users          []models.User          `json:"users"`
	CurrentSession *models.CashSession    `json:"currentSession"`
	CashSessions   []models.CashSession   `json:"cashSessions"`
	Sales          []models.Sale          `json:"sales"`
	StockMovements []models.StockMovement `json:"stockMovements"`
	Settings       models.Settings        `json:"settings"`
}

// Export copia o estado atual para um Snapshot.
func (s *Store) Export() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Products:       append([]models.Product(nil), s.state.Products...),
		Categories:     append([]string(nil), s.state.Categories...),
		Users:          append([]models.User(nil), s.state.Users...),
		CashSessions:   append([]models.CashSession(nil), s.state.Sessions...),
		Sales:          append([]models.Sale(nil), s.state.Sales...),
		StockMovements: append([]models.StockMovement(nil), s.state.Movements...),
		Settings:       s.state.Settings,
	}
	if s.state.Company != nil {
		company := *s.state.Company
		snap.CompanyAccount = &company
	}
	if s.state.CurrentSession != nil {
		session := *s.state.CurrentSession
		snap.CurrentSession = &session
	}
	return snap
}

// Import substitui o estado inteiro pelo snapshot e persiste tudo.
func (s *Store) Import(ctx context.Context, snap Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = State{
		Company:        snap.CompanyAccount,
		Products:       snap.Products,
		Categories:     snap.Categories,
		Users:          snap.Users,
		CurrentSession: snap.CurrentSession,
		Sessions:       snap.CashSessions,
		Sales:          snap.Sales,
		Movements:      snap.StockMovements,
		Settings:       snap.Settings,
	}
	return s.persist(ctx, AllKeys...)
}
