package cashier

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/playinterativas-design/UniPos/internal/models"
	"github.com/playinterativas-design/UniPos/internal/store"
)

// Service governa a máquina de estados do caixa: ∅ → OPEN → CLOSED.
// Só pode existir uma sessão OPEN por vez em todo o sistema.
type Service struct {
	store *store.Store
	now   func() time.Time
	newID func() string
}

func NewService(st *store.Store) *Service {
	return &Service{store: st, now: time.Now, newID: uuid.NewString}
}

// Open abre o caixa com o fundo de troco informado.
func (s *Service) Open(ctx context.Context, operatorID, operatorName string, startValue float64) (models.CashSession, error) {
	if !validAmount(startValue) {
		return models.CashSession{}, fmt.Errorf("%w: fundo de troco deve ser um valor não negativo", store.ErrInvalidAmount)
	}
	if operatorID == "" {
		return models.CashSession{}, fmt.Errorf("%w: abertura de caixa exige operador autenticado", store.ErrInvalidState)
	}

	session := models.CashSession{
		ID:           s.newID(),
		OperatorID:   operatorID,
		OperatorName: operatorName,
		OpenedAt:     s.now(),
		StartValue:   startValue,
		SalesTotal:   0,
		Status:       models.SessionOpen,
	}

	err := s.store.Update(ctx, func(st *store.State) ([]string, error) {
		if st.CurrentSession != nil {
			return nil, fmt.Errorf("%w: já existe um caixa aberto", store.ErrInvalidState)
		}
		st.CurrentSession = &session
		return []string{store.KeyCurrentSession}, nil
	})
	if err != nil {
		return models.CashSession{}, err
	}
	return session, nil
}

// RecordSale soma o total de uma venda à sessão aberta. Chamada pelo
// processador de vendas dentro do mesmo Update que grava a venda.
func RecordSale(st *store.State, amount float64) error {
	if st.CurrentSession == nil {
		return store.ErrNoActiveSession
	}
	st.CurrentSession.SalesTotal += amount
	return nil
}

// Close fecha o caixa em contagem cega: o operador informa o valor contado
// sem ver o esperado; a diferença sai daqui. Transição definitiva, sem
// reabertura.
func (s *Service) Close(ctx context.Context, endValue float64) (models.CashSession, float64, error) {
	if !validAmount(endValue) {
		return models.CashSession{}, 0, fmt.Errorf("%w: valor contado deve ser um número não negativo", store.ErrInvalidAmount)
	}

	var closed models.CashSession
	err := s.store.Update(ctx, func(st *store.State) ([]string, error) {
		if st.CurrentSession == nil {
			return nil, store.ErrNoActiveSession
		}

		session := *st.CurrentSession
		closedAt := s.now()
		difference := endValue - session.Expected()

		session.Status = models.SessionClosed
		session.ClosedAt = &closedAt
		session.EndValue = &endValue
		session.Difference = &difference

		st.Sessions = append([]models.CashSession{session}, st.Sessions...)
		st.CurrentSession = nil
		closed = session
		return []string{store.KeyCurrentSession, store.KeyCashSessions}, nil
	})
	if err != nil {
		return models.CashSession{}, 0, err
	}
	return closed, *closed.Difference, nil
}

// Current retorna a sessão aberta.
func (s *Service) Current(ctx context.Context) (models.CashSession, error) {
	var (
		session models.CashSession
		found   bool
	)
	s.store.View(func(st *store.State) {
		if st.CurrentSession != nil {
			session = *st.CurrentSession
			found = true
		}
	})
	if !found {
		return models.CashSession{}, store.ErrNoActiveSession
	}
	return session, nil
}

// History lista as sessões fechadas, mais recente primeiro.
func (s *Service) History(ctx context.Context) []models.CashSession {
	var out []models.CashSession
	s.store.View(func(st *store.State) {
		out = append(out, st.Sessions...)
	})
	return out
}

func (s *Service) FindSession(ctx context.Context, id string) (models.CashSession, error) {
	var (
		session models.CashSession
		found   bool
	)
	s.store.View(func(st *store.State) {
		for _, sess := range st.Sessions {
			if sess.ID == id {
				session = sess
				found = true
				return
			}
		}
		if st.CurrentSession != nil && st.CurrentSession.ID == id {
			session = *st.CurrentSession
			found = true
		}
	})
	if !found {
		return models.CashSession{}, fmt.Errorf("%w: sessão %s", store.ErrNotFound, id)
	}
	return session, nil
}

func validAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
