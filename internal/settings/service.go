package settings

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/playinterativas-design/UniPos/internal/models"
	"github.com/playinterativas-design/UniPos/internal/store"
)

type Service struct {
	store *store.Store
	newID func() string
}

func NewService(st *store.Store) *Service {
	return &Service{store: st, newID: uuid.NewString}
}

func (s *Service) Get(ctx context.Context) models.Settings {
	var out models.Settings
	s.store.View(func(st *store.State) {
		out = st.Settings
	})
	return out
}

type SettingsUpdate struct {
	CompanyName        *string
	NFCeEnabled        *bool
	SATEnabled         *bool
	Environment        *string
	PrinterIP          *string
	AllowNegativeStock *bool
	SecurityPolicy     *string
}

func (s *Service) Update(ctx context.Context, updates SettingsUpdate) (models.Settings, error) {
	var out models.Settings
	err := s.store.Update(ctx, func(st *store.State) ([]string, error) {
		if updates.CompanyName != nil && *updates.CompanyName != "" {
			st.Settings.CompanyName = *updates.CompanyName
		}
		if updates.NFCeEnabled != nil {
			st.Settings.NFCeEnabled = *updates.NFCeEnabled
		}
		if updates.SATEnabled != nil {
			st.Settings.SATEnabled = *updates.SATEnabled
		}
		if updates.Environment != nil {
			env := strings.ToUpper(*updates.Environment)
			if env != "HOMOLOGATION" && env != "PRODUCTION" {
				return nil, fmt.Errorf("%w: ambiente %q desconhecido", store.ErrInvalidState, env)
			}
			st.Settings.Environment = env
		}
		if updates.PrinterIP != nil {
			st.Settings.PrinterIP = *updates.PrinterIP
		}
		if updates.AllowNegativeStock != nil {
			st.Settings.AllowNegativeStock = *updates.AllowNegativeStock
		}
		if updates.SecurityPolicy != nil {
			st.Settings.SecurityPolicy = *updates.SecurityPolicy
		}
		out = st.Settings
		return []string{store.KeySettings}, nil
	})
	if err != nil {
		return models.Settings{}, err
	}
	return out, nil
}

type PaymentMethodInput struct {
	Label       string
	Type        models.PaymentType
	Active      bool
	Detail      string
	CardDetails *models.CardDetails
}

func validPaymentType(t models.PaymentType) bool {
	switch t {
	case models.PaymentCash, models.PaymentCredit, models.PaymentDebit,
		models.PaymentPix, models.PaymentWallet, models.PaymentVoucher, models.PaymentOther:
		return true
	}
	return false
}

func (s *Service) AddPaymentMethod(ctx context.Context, input PaymentMethodInput) (models.PaymentMethodConfig, error) {
	input.Label = strings.TrimSpace(input.Label)
	if input.Label == "" {
		return models.PaymentMethodConfig{}, fmt.Errorf("%w: label é obrigatório", store.ErrInvalidState)
	}
	if !validPaymentType(input.Type) {
		return models.PaymentMethodConfig{}, fmt.Errorf("%w: tipo de pagamento %q desconhecido", store.ErrInvalidState, input.Type)
	}

	method := models.PaymentMethodConfig{
		ID:          s.newID(),
		Label:       input.Label,
		Type:        input.Type,
		Active:      input.Active,
		Detail:      input.Detail,
		CardDetails: input.CardDetails,
	}

	err := s.store.Update(ctx, func(st *store.State) ([]string, error) {
		st.Settings.PaymentMethods = append(st.Settings.PaymentMethods, method)
		return []string{store.KeySettings}, nil
	})
	if err != nil {
		return models.PaymentMethodConfig{}, err
	}
	return method, nil
}

type PaymentMethodUpdate struct {
	Label       *string
	Type        *models.PaymentType
	Active      *bool
	Detail      *string
	CardDetails *models.CardDetails
}

func (s *Service) EditPaymentMethod(ctx context.Context, id string, updates PaymentMethodUpdate) (models.PaymentMethodConfig, error) {
	var out models.PaymentMethodConfig
	err := s.store.Update(ctx, func(st *store.State) ([]string, error) {
		for i := range st.Settings.PaymentMethods {
			pm := &st.Settings.PaymentMethods[i]
			if pm.ID != id {
				continue
			}
			if updates.Label != nil && strings.TrimSpace(*updates.Label) != "" {
				pm.Label = strings.TrimSpace(*updates.Label)
			}
			if updates.Type != nil {
				if !validPaymentType(*updates.Type) {
					return nil, fmt.Errorf("%w: tipo de pagamento %q desconhecido", store.ErrInvalidState, *updates.Type)
				}
				pm.Type = *updates.Type
			}
			if updates.Active != nil {
				pm.Active = *updates.Active
			}
			if updates.Detail != nil {
				pm.Detail = *updates.Detail
			}
			if updates.CardDetails != nil {
				pm.CardDetails = updates.CardDetails
			}
			out = *pm
			return []string{store.KeySettings}, nil
		}
		return nil, fmt.Errorf("%w: forma de pagamento %s", store.ErrNotFound, id)
	})
	if err != nil {
		return models.PaymentMethodConfig{}, err
	}
	return out, nil
}

func (s *Service) RemovePaymentMethod(ctx context.Context, id string) error {
	return s.store.Update(ctx, func(st *store.State) ([]string, error) {
		for i := range st.Settings.PaymentMethods {
			if st.Settings.PaymentMethods[i].ID == id {
				st.Settings.PaymentMethods = append(st.Settings.PaymentMethods[:i], st.Settings.PaymentMethods[i+1:]...)
				return []string{store.KeySettings}, nil
			}
		}
		return nil, fmt.Errorf("%w: forma de pagamento %s", store.ErrNotFound, id)
	})
}
