package models

type PaymentType string

const (
	PaymentCash    PaymentType = "CASH"
	PaymentCredit  PaymentType = "CREDIT"
	PaymentDebit   PaymentType = "DEBIT"
	PaymentPix     PaymentType = "PIX"
	PaymentWallet  PaymentType = "WALLET"
	PaymentVoucher PaymentType = "VOUCHER"
	PaymentOther   PaymentType = "OTHER"
)

type CardDetails struct {
	HolderName string `json:"holder_name"`
	Number     string `json:"number"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

type PaymentMethodConfig struct {
	ID          string       `json:"id"`
	Label       string       `json:"label"` // nome exibido (ex: "Pix Principal")
	Type        PaymentType  `json:"type"`
	Active      bool         `json:"active"`
	Detail      string       `json:"detail,omitempty"` // chave Pix, ID da maquininha etc.
	CardDetails *CardDetails `json:"card_details,omitempty"`
}

type Settings struct {
	CompanyName        string                `json:"company_name"`
	NFCeEnabled        bool                  `json:"nfce_enabled"`
	SATEnabled         bool                  `json:"sat_enabled"`
	Environment        string                `json:"environment"` // HOMOLOGATION | PRODUCTION
	PrinterIP          string                `json:"printer_ip"`
	AllowNegativeStock bool                  `json:"allow_negative_stock"`
	SecurityPolicy     string                `json:"security_policy"`
	PaymentMethods     []PaymentMethodConfig `json:"payment_methods"`
}

// DefaultSettings: configuração inicial de uma loja recém-criada.
func DefaultSettings() Settings {
	return Settings{
		CompanyName: "Loja Universal",
		NFCeEnabled: true,
		SATEnabled:  false,
		Environment: "HOMOLOGATION",
		PrinterIP:   "192.168.1.100",
		PaymentMethods: []PaymentMethodConfig{
			{ID: "CASH", Label: "Dinheiro", Type: PaymentCash, Active: true},
			{ID: "DEBIT", Label: "Débito", Type: PaymentDebit, Active: true},
			{ID: "CREDIT", Label: "Crédito", Type: PaymentCredit, Active: true},
			{ID: "PIX", Label: "Pix", Type: PaymentPix, Active: true},
		},
	}
}
