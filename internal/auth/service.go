package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/playinterativas-design/UniPos/internal/models"
	"github.com/playinterativas-design/UniPos/internal/store"
)

// ErrInvalidCredentials é deliberadamente genérico: não revela se o usuário
// existe.
var ErrInvalidCredentials = errors.New("usuário ou senha inválidos")

type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// LoginOperator valida as credenciais de um operador ativo.
func (s *Service) LoginOperator(ctx context.Context, username, password string) (models.User, error) {
	username = strings.TrimSpace(username)

	var user models.User
	found := false
	s.store.View(func(st *store.State) {
		if u := st.FindUserByUsername(username); u != nil && u.IsActive {
			user = *u
			found = true
		}
	})
	if !found {
		return models.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

type CompanyInput struct {
	CompanyName string
	Document    string
	Email       string
	Phone       string
	Password    string
}

// RegisterCompany cria a conta da loja. Só pode existir uma.
func (s *Service) RegisterCompany(ctx context.Context, input CompanyInput) (models.CompanyAccount, error) {
	input.CompanyName = strings.TrimSpace(input.CompanyName)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))

	if input.CompanyName == "" || input.Email == "" || input.Password == "" {
		return models.CompanyAccount{}, fmt.Errorf("%w: nome da empresa, email e senha são obrigatórios", store.ErrInvalidState)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.CompanyAccount{}, fmt.Errorf("falha ao gerar hash da senha: %w", err)
	}

	company := models.CompanyAccount{
		CompanyName:  input.CompanyName,
		Document:     input.Document,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: string(hash),
	}

	err = s.store.Update(ctx, func(st *store.State) ([]string, error) {
		if st.Company != nil {
			return nil, fmt.Errorf("%w: já existe uma empresa cadastrada", store.ErrInvalidState)
		}
		st.Company = &company
		st.Settings.CompanyName = company.CompanyName
		return []string{store.KeyCompanyAccount, store.KeySettings}, nil
	})
	if err != nil {
		return models.CompanyAccount{}, err
	}
	return company, nil
}

// LoginCompany aceita email ou CPF/CNPJ como identificador, como na tela de
// entrada da loja.
func (s *Service) LoginCompany(ctx context.Context, identifier, password string) (models.CompanyAccount, error) {
	var company *models.CompanyAccount
	s.store.View(func(st *store.State) {
		if st.Company != nil {
			cp := *st.Company
			company = &cp
		}
	})
	if company == nil {
		return models.CompanyAccount{}, ErrInvalidCredentials
	}

	matches := company.Email == strings.TrimSpace(strings.ToLower(identifier)) ||
		digitsOnly(company.Document) == digitsOnly(identifier)
	if !matches {
		return models.CompanyAccount{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(company.PasswordHash), []byte(password)); err != nil {
		return models.CompanyAccount{}, ErrInvalidCredentials
	}
	return *company, nil
}

// RecoverCompanyPassword confirma apenas se o email pertence à conta.
func (s *Service) RecoverCompanyPassword(email string) bool {
	email = strings.TrimSpace(strings.ToLower(email))
	ok := false
	s.store.View(func(st *store.State) {
		ok = st.Company != nil && st.Company.Email == email
	})
	return ok
}

type CompanyUpdate struct {
	CompanyName *string
	Document    *string
	Email       *string
	Phone       *string
	Password    *string
}

func (s *Service) UpdateCompany(ctx context.Context, updates CompanyUpdate) (models.CompanyAccount, error) {
	var out models.CompanyAccount
	err := s.store.Update(ctx, func(st *store.State) ([]string, error) {
		if st.Company == nil {
			return nil, fmt.Errorf("%w: nenhuma empresa cadastrada", store.ErrNotFound)
		}

		changed := []string{store.KeyCompanyAccount}
		if updates.CompanyName != nil && *updates.CompanyName != "" {
			st.Company.CompanyName = strings.TrimSpace(*updates.CompanyName)
			st.Settings.CompanyName = st.Company.CompanyName
			changed = append(changed, store.KeySettings)
		}
		if updates.Document != nil {
			st.Company.Document = *updates.Document
		}
		if updates.Email != nil && *updates.Email != "" {
			st.Company.Email = strings.TrimSpace(strings.ToLower(*updates.Email))
		}
		if updates.Phone != nil {
			st.Company.Phone = *updates.Phone
		}
		if updates.Password != nil && *updates.Password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(*updates.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, fmt.Errorf("falha ao gerar hash da senha: %w", err)
			}
			st.Company.PasswordHash = string(hash)
		}

		out = *st.Company
		return changed, nil
	})
	if err != nil {
		return models.CompanyAccount{}, err
	}
	return out, nil
}

func (s *Service) DeleteCompany(ctx context.Context) error {
	return s.store.Update(ctx, func(st *store.State) ([]string, error) {
		if st.Company == nil {
			return nil, fmt.Errorf("%w: nenhuma empresa cadastrada", store.ErrNotFound)
		}
		st.Company = nil
		return []string{store.KeyCompanyAccount}, nil
	})
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
