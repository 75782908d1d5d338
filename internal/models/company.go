package models

type CompanyAccount struct {
	CompanyName  string `json:"company_name"`
	Document     string `json:"document"` // CPF ou CNPJ
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	PasswordHash string `json:"password_hash"`
}
