package models

import "time"

type SessionStatus string

const (
	SessionOpen   SessionStatus = "OPEN"
	SessionClosed SessionStatus = "CLOSED"
)

// CashSession: um período de operação do caixa, do suprimento inicial ao
// fechamento cego. Depois de CLOSED o registro é imutável.
type CashSession struct {
	ID           string        `json:"id"`
	OperatorID   string        `json:"operator_id"`
	OperatorName string        `json:"operator_name"`
	OpenedAt     time.Time     `json:"opened_at"`
	ClosedAt     *time.Time    `json:"closed_at,omitempty"`
	StartValue   float64       `json:"start_value"` // fundo de troco
	SalesTotal   float64       `json:"sales_total"` // total bruto vendido na sessão
	EndValue     *float64      `json:"end_value,omitempty"`   // valor contado no fechamento
	Difference   *float64      `json:"difference,omitempty"`  // EndValue - (StartValue + SalesTotal)
	Status       SessionStatus `json:"status"`
}

// Expected retorna o valor que deveria estar na gaveta.
func (s CashSession) Expected() float64 {
	return s.StartValue + s.SalesTotal
}
