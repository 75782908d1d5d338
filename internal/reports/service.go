package reports

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/playinterativas-design/UniPos/internal/models"
	"github.com/playinterativas-design/UniPos/internal/store"
)

type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// SessionReport: o relatório de fechamento — esperado vs contado vs
// diferença, com as vendas da sessão.
type SessionReport struct {
	Session    models.CashSession `json:"session"`
	Expected   float64            `json:"expected"`
	Counted    *float64           `json:"counted,omitempty"`
	Difference *float64           `json:"difference,omitempty"`
	SaleCount  int                `json:"sale_count"`
	Sales      []models.Sale      `json:"sales"`
}

func (s *Service) SessionReport(ctx context.Context, sessionID string) (SessionReport, error) {
	var (
		report SessionReport
		found  bool
	)
	s.store.View(func(st *store.State) {
		var session models.CashSession
		for _, sess := range st.Sessions {
			if sess.ID == sessionID {
				session = sess
				found = true
				break
			}
		}
		if !found && st.CurrentSession != nil && st.CurrentSession.ID == sessionID {
			session = *st.CurrentSession
			found = true
		}
		if !found {
			return
		}

		report = SessionReport{
			Session:    session,
			Expected:   session.Expected(),
			Counted:    session.EndValue,
			Difference: session.Difference,
		}
		for _, sale := range st.Sales {
			if sale.SessionID == sessionID {
				report.Sales = append(report.Sales, sale)
			}
		}
		report.SaleCount = len(report.Sales)
	})
	if !found {
		return SessionReport{}, fmt.Errorf("%w: sessão %s", store.ErrNotFound, sessionID)
	}
	return report, nil
}

type PaymentSummaryItem struct {
	PaymentMethod string  `json:"payment_method"`
	Count         int     `json:"count"`
	Total         float64 `json:"total"`
}

type SalesSummary struct {
	Items      []PaymentSummaryItem `json:"items"`
	SaleCount  int                  `json:"sale_count"`
	GrandTotal float64              `json:"grand_total"`
}

// Summary agrega as vendas por forma de pagamento.
func (s *Service) Summary(ctx context.Context) SalesSummary {
	summary := SalesSummary{}
	s.store.View(func(st *store.State) {
		index := map[string]int{}
		for _, sale := range st.Sales {
			i, ok := index[sale.PaymentMethod]
			if !ok {
				i = len(summary.Items)
				index[sale.PaymentMethod] = i
				summary.Items = append(summary.Items, PaymentSummaryItem{PaymentMethod: sale.PaymentMethod})
			}
			summary.Items[i].Count++
			summary.Items[i].Total += sale.Total
			summary.SaleCount++
			summary.GrandTotal += sale.Total
		}
	})
	return summary
}

// SessionsXLSX exporta o histórico de sessões fechadas para planilha.
func (s *Service) SessionsXLSX(ctx context.Context) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{"Sessão", "Operador", "Abertura", "Fechamento", "Fundo de Troco", "Total Vendido", "Esperado", "Contado", "Diferença"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	var sessions []models.CashSession
	s.store.View(func(st *store.State) {
		sessions = append(sessions, st.Sessions...)
	})

	for row, sess := range sessions {
		values := []any{
			sess.ID,
			sess.OperatorName,
			sess.OpenedAt.Format("2006-01-02 15:04"),
			"",
			sess.StartValue,
			sess.SalesTotal,
			sess.Expected(),
			nil,
			nil,
		}
		if sess.ClosedAt != nil {
			values[3] = sess.ClosedAt.Format("2006-01-02 15:04")
		}
		if sess.EndValue != nil {
			values[7] = *sess.EndValue
		}
		if sess.Difference != nil {
			values[8] = *sess.Difference
		}

		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
