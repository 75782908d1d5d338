package models

import "time"

type MovementType string

const (
	MovementSale       MovementType = "SALE"
	MovementRestock    MovementType = "RESTOCK"
	MovementAdjustment MovementType = "ADJUSTMENT"
	MovementReturn     MovementType = "RETURN"
)

// StockMovement: registro de auditoria de uma variação de estoque.
// Criado uma única vez, nunca alterado ou removido.
// Invariante: NewStock == OldStock + Change.
type StockMovement struct {
	ID           string       `json:"id"`
	ProductID    string       `json:"product_id"`
	ProductName  string       `json:"product_name"` // denormalizado no momento do movimento
	OldStock     int          `json:"old_stock"`
	NewStock     int          `json:"new_stock"`
	Change       int          `json:"change"`
	Type         MovementType `json:"type"`
	Reason       string       `json:"reason,omitempty"`
	OperatorName string       `json:"operator_name"`
	Timestamp    time.Time    `json:"timestamp"`
}
