package shopconfig

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
	shopRepo "github.com/primebarbervip/PrimeBarberClub/internal/infra/storage/shop"
	"github.com/primebarbervip/PrimeBarberClub/internal/service/shopconfig/models"
	"github.com/primebarbervip/PrimeBarberClub/pkg/ptr"
)

type fakeShopRepo struct {
	config *domain.ShopConfig
}

func (f *fakeShopRepo) Get(_ context.Context) (*domain.ShopConfig, error) {
	if f.config == nil {
		return nil, shopRepo.ErrConfigNotFound
	}
	return f.config, nil
}

func (f *fakeShopRepo) Upsert(_ context.Context, cfg *domain.ShopConfig) (*domain.ShopConfig, error) {
	f.config = cfg
	return cfg, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGet_FallsBackToDefaults(t *testing.T) {
	svc := NewService(&fakeShopRepo{}, nopLogger{})

	resp, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "PrimeBarberClub", resp.Name)
	assert.False(t, resp.Maintenance)
}

func TestUpdate_PartialFields(t *testing.T) {
	repo := &fakeShopRepo{config: &domain.ShopConfig{
		ID:      1,
		Name:    "PrimeBarberClub",
		Address: ptr.Ptr("Calle Mayor 5, Madrid"),
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Update(context.Background(), &models.UpdateShopConfigRequest{
		MapsURL: ptr.Ptr("https://maps.example.com/primebarberclub"),
		Logo:    ptr.Ptr("https://cdn.example.com/logo.png"),
	}, domain.RoleAdmin)
	require.NoError(t, err)

	require.NotNil(t, resp.MapsURL)
	assert.Equal(t, "https://maps.example.com/primebarberclub", *resp.MapsURL)
	require.NotNil(t, resp.Logo)
	assert.Equal(t, "https://cdn.example.com/logo.png", *resp.Logo)

	// omitted fields keep their stored value
	require.NotNil(t, resp.Address)
	assert.Equal(t, "Calle Mayor 5, Madrid", *resp.Address)
	assert.Equal(t, "PrimeBarberClub", resp.Name)
}

func TestUpdate_MaintenanceToggle(t *testing.T) {
	repo := &fakeShopRepo{config: &domain.ShopConfig{ID: 1, Name: "PrimeBarberClub"}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Update(context.Background(), &models.UpdateShopConfigRequest{
		Maintenance: ptr.Ptr(true),
	}, domain.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, resp.Maintenance)
}

func TestUpdate_Validation(t *testing.T) {
	svc := NewService(&fakeShopRepo{}, nopLogger{})

	_, err := svc.Update(context.Background(), &models.UpdateShopConfigRequest{
		Name: ptr.Ptr(""),
	}, domain.RoleAdmin)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_AdminOnly(t *testing.T) {
	svc := NewService(&fakeShopRepo{}, nopLogger{})

	_, err := svc.Update(context.Background(), &models.UpdateShopConfigRequest{}, domain.RoleBarber)
	assert.ErrorIs(t, err, ErrAccessDenied)
}
