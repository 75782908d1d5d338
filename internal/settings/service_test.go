package settings

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playinterativas-design/UniPos/internal/models"
	"github.com/playinterativas-design/UniPos/internal/storage"
	"github.com/playinterativas-design/UniPos/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	st := store.New(storage.NewMemoryBackend())
	err := st.Update(context.Background(), func(s *store.State) ([]string, error) {
		s.Settings = models.DefaultSettings()
		return []string{store.KeySettings}, nil
	})
	require.NoError(t, err)

	svc := NewService(st)
	seq := 0
	svc.newID = func() string {
		seq++
		return fmt.Sprintf("pm-%d", seq)
	}
	return svc
}

func TestUpdateSettings(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	name := "Mercadinho Central"
	allow := true
	env := "production"
	out, err := svc.Update(ctx, SettingsUpdate{
		CompanyName:        &name,
		AllowNegativeStock: &allow,
		Environment:        &env,
	})
	require.NoError(t, err)

	assert.Equal(t, "Mercadinho Central", out.CompanyName)
	assert.True(t, out.AllowNegativeStock)
	assert.Equal(t, "PRODUCTION", out.Environment)
	// campos não enviados ficam como estavam
	assert.True(t, out.NFCeEnabled)
}

func TestUpdateSettingsRejectsUnknownEnvironment(t *testing.T) {
	svc := newTestService(t)

	env := "STAGING"
	_, err := svc.Update(context.Background(), SettingsUpdate{Environment: &env})
	assert.ErrorIs(t, err, store.ErrInvalidState)
}

func TestAddPaymentMethod(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	method, err := svc.AddPaymentMethod(ctx, PaymentMethodInput{
		Label:  "Pix Secundário",
		Type:   models.PaymentPix,
		Active: true,
		Detail: "chave@loja.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "pm-1", method.ID)

	settings := svc.Get(ctx)
	assert.Len(t, settings.PaymentMethods, 5)
}

func TestAddPaymentMethodValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddPaymentMethod(ctx, PaymentMethodInput{Label: "  ", Type: models.PaymentPix})
	assert.ErrorIs(t, err, store.ErrInvalidState)

	_, err = svc.AddPaymentMethod(ctx, PaymentMethodInput{Label: "Fiado", Type: "FIADO"})
	assert.ErrorIs(t, err, store.ErrInvalidState)
}

func TestEditPaymentMethod(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	label := "Dinheiro Vivo"
	active := false
	out, err := svc.EditPaymentMethod(ctx, "CASH", PaymentMethodUpdate{Label: &label, Active: &active})
	require.NoError(t, err)
	assert.Equal(t, "Dinheiro Vivo", out.Label)
	assert.False(t, out.Active)
	assert.Equal(t, models.PaymentCash, out.Type)

	bad := models.PaymentType("FIADO")
	_, err = svc.EditPaymentMethod(ctx, "CASH", PaymentMethodUpdate{Type: &bad})
	assert.ErrorIs(t, err, store.ErrInvalidState)

	_, err = svc.EditPaymentMethod(ctx, "ghost", PaymentMethodUpdate{Label: &label})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRemovePaymentMethod(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.RemovePaymentMethod(ctx, "PIX"))
	assert.Len(t, svc.Get(ctx).PaymentMethods, 3)

	assert.ErrorIs(t, svc.RemovePaymentMethod(ctx, "PIX"), store.ErrNotFound)
}
