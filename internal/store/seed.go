package store

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/playinterativas-design/UniPos/internal/models"
)

// Dados de demonstração, usados quando o backend ainda não tem a coleção.
func seedProducts() []models.Product {
	return []models.Product{
		{ID: "1", Code: "1001", Name: "Camiseta Algodão Premium", Price: 49.90, Stock: 50, Category: "Roupas"},
		{ID: "2", Code: "1002", Name: "Tênis de Corrida", Price: 299.90, Stock: 12, Category: "Calçados"},
		{ID: "3", Code: "1003", Name: "Colar de Prata", Price: 150.00, Stock: 5, Category: "Joias"},
		{ID: "4", Code: "1004", Name: "Combo X-Burguer", Price: 35.00, Stock: 100, Category: "Alimentação"},
	}
}

func seedCategories() []string {
	return []string{"Roupas", "Calçados", "Joias", "Alimentação", "Bebidas", "Eletrônicos", "Casa", "Sem Categoria"}
}

// seedUsers cria as contas de demonstração. As senhas vêm de
// SEED_ADMIN_PASSWORD e SEED_OPERATOR_PASSWORD; sem elas, usa o padrão de
// desenvolvimento com aviso no log.
func seedUsers() []models.User {
	adminPwd := envOr("SEED_ADMIN_PASSWORD", "1234")
	operatorPwd := envOr("SEED_OPERATOR_PASSWORD", "1234")
	if os.Getenv("SEED_ADMIN_PASSWORD") == "" || os.Getenv("SEED_OPERATOR_PASSWORD") == "" {
		log.Println("[WARN] Usando senhas padrão de desenvolvimento. Defina SEED_ADMIN_PASSWORD e SEED_OPERATOR_PASSWORD.")
	}

	return []models.User{
		{ID: "1", Name: "Administrador", Username: "admin", PasswordHash: mustHash(adminPwd), Role: models.RoleAdmin, IsActive: true},
		{ID: "2", Name: "Operador João", Username: "op1", PasswordHash: mustHash(operatorPwd), Role: models.RoleOperator, IsActive: true},
	}
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("[FATAL] Falha ao gerar hash da senha inicial: %v", err)
	}
	return string(hash)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (s *Store) seed(key string) {
	switch key {
	case KeyProducts:
		s.state.Products = seedProducts()
	case KeyCategories:
		s.state.Categories = seedCategories()
	case KeyUsers:
		s.state.Users = seedUsers()
	case KeySettings:
		s.state.Settings = models.DefaultSettings()
	case KeyCashSessions:
		s.state.Sessions = []models.CashSession{}
	case KeySales:
		s.state.Sales = []models.Sale{}
	case KeyStockMovements:
		s.state.Movements = []models.StockMovement{}
	}
	// companyAccount e currentSession começam nulos
}
