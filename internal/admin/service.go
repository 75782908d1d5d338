package admin

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/playinterativas-design/UniPos/internal/models"
	"github.com/playinterativas-design/UniPos/internal/store"
)

// Service administra os operadores da loja.
type Service struct {
	store *store.Store
	newID func() string
}

func NewService(st *store.Store) *Service {
	return &Service{store: st, newID: uuid.NewString}
}

type UserInput struct {
	Name     string
	Username string
	Password string
	Role     models.UserRole
}

func (s *Service) CreateUser(ctx context.Context, input UserInput) (models.User, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Username = strings.TrimSpace(input.Username)

	if input.Name == "" || input.Username == "" || input.Password == "" {
		return models.User{}, fmt.Errorf("%w: nome, usuário e senha são obrigatórios", store.ErrInvalidState)
	}
	switch input.Role {
	case models.RoleAdmin, models.RoleOperator:
	default:
		return models.User{}, fmt.Errorf("%w: perfil %q desconhecido", store.ErrInvalidState, input.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("falha ao gerar hash da senha: %w", err)
	}

	user := models.User{
		ID:           s.newID(),
		Name:         input.Name,
		Username:     input.Username,
		PasswordHash: string(hash),
		Role:         input.Role,
		IsActive:     true,
	}

	err = s.store.Update(ctx, func(st *store.State) ([]string, error) {
		if st.FindUserByUsername(user.Username) != nil {
			return nil, fmt.Errorf("%w: %q", store.ErrDuplicateUsername, user.Username)
		}
		st.Users = append(st.Users, user)
		return []string{store.KeyUsers}, nil
	})
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// ToggleUser ativa/desativa o operador. Operador inativo não faz login.
func (s *Service) ToggleUser(ctx context.Context, id string) (models.User, error) {
	var out models.User
	err := s.store.Update(ctx, func(st *store.State) ([]string, error) {
		u := st.FindUser(id)
		if u == nil {
			return nil, fmt.Errorf("%w: usuário %s", store.ErrNotFound, id)
		}
		u.IsActive = !u.IsActive
		out = *u
		return []string{store.KeyUsers}, nil
	})
	if err != nil {
		return models.User{}, err
	}
	return out, nil
}

func (s *Service) ListUsers(ctx context.Context) []models.User {
	var out []models.User
	s.store.View(func(st *store.State) {
		out = append(out, st.Users...)
	})
	return out
}
