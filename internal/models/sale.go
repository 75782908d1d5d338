package models

import "time"

// Sale é imutável depois de criada. Os itens carregam snapshots de nome e
// preço; edições no catálogo não corrompem o histórico.
type Sale struct {
	ID            string     `json:"id"`
	SessionID     string     `json:"session_id"`
	Items         []CartItem `json:"items"`
	Total         float64    `json:"total"`
	PaymentMethod string     `json:"payment_method"` // label livre, ligado às formas configuradas
	Timestamp     time.Time  `json:"timestamp"`
}
