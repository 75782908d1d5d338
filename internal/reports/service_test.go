package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playinterativas-design/UniPos/internal/models"
	"github.com/playinterativas-design/UniPos/internal/storage"
	"github.com/playinterativas-design/UniPos/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	st := store.New(storage.NewMemoryBackend())

	closedAt := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)
	endValue := 240.0
	difference := -10.0

	err := st.Update(context.Background(), func(s *store.State) ([]string, error) {
		s.Sessions = []models.CashSession{
			{
				ID:           "sess-1",
				OperatorName: "Maria",
				OpenedAt:     closedAt.Add(-8 * time.Hour),
				ClosedAt:     &closedAt,
				StartValue:   100,
				SalesTotal:   150,
				EndValue:     &endValue,
				Difference:   &difference,
				Status:       models.SessionClosed,
			},
		}
		s.CurrentSession = &models.CashSession{
			ID:           "sess-2",
			OperatorName: "João",
			OpenedAt:     closedAt.Add(time.Hour),
			StartValue:   80,
			Status:       models.SessionOpen,
		}
		s.Sales = []models.Sale{
			{ID: "sale-1", SessionID: "sess-1", Total: 100, PaymentMethod: "Dinheiro", Timestamp: closedAt.Add(-2 * time.Hour)},
			{ID: "sale-2", SessionID: "sess-1", Total: 50, PaymentMethod: "Pix", Timestamp: closedAt.Add(-time.Hour)},
			{ID: "sale-3", SessionID: "sess-2", Total: 30, PaymentMethod: "Pix", Timestamp: closedAt.Add(2 * time.Hour)},
		}
		return []string{store.KeyCashSessions, store.KeyCurrentSession, store.KeySales}, nil
	})
	require.NoError(t, err)
	return NewService(st)
}

func TestSessionReport(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	report, err := svc.SessionReport(ctx, "sess-1")
	require.NoError(t, err)

	assert.Equal(t, 250.0, report.Expected)
	require.NotNil(t, report.Counted)
	assert.Equal(t, 240.0, *report.Counted)
	require.NotNil(t, report.Difference)
	assert.Equal(t, -10.0, *report.Difference)
	assert.Equal(t, 2, report.SaleCount)
	require.Len(t, report.Sales, 2)
	assert.Equal(t, "sale-1", report.Sales[0].ID)

	// sessão aberta também tem relatório, sem contagem
	report, err = svc.SessionReport(ctx, "sess-2")
	require.NoError(t, err)
	assert.Nil(t, report.Counted)
	assert.Equal(t, 1, report.SaleCount)

	_, err = svc.SessionReport(ctx, "ghost")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSummaryByPaymentMethod(t *testing.T) {
	svc := newTestService(t)

	summary := svc.Summary(context.Background())
	assert.Equal(t, 3, summary.SaleCount)
	assert.InDelta(t, 180.0, summary.GrandTotal, 1e-9)
	require.Len(t, summary.Items, 2)

	byMethod := map[string]PaymentSummaryItem{}
	for _, item := range summary.Items {
		byMethod[item.PaymentMethod] = item
	}
	assert.Equal(t, 1, byMethod["Dinheiro"].Count)
	assert.InDelta(t, 100.0, byMethod["Dinheiro"].Total, 1e-9)
	assert.Equal(t, 2, byMethod["Pix"].Count)
	assert.InDelta(t, 80.0, byMethod["Pix"].Total, 1e-9)
}

func TestSessionsXLSX(t *testing.T) {
	svc := newTestService(t)

	f, err := svc.SessionsXLSX(context.Background())
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(0)

	header, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Sessão", header)

	id, err := f.GetCellValue(sheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "sess-1", id)

	operator, err := f.GetCellValue(sheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Maria", operator)

	counted, err := f.GetCellValue(sheet, "H2")
	require.NoError(t, err)
	assert.Equal(t, "240", counted)
}
