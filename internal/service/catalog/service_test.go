package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
	barberRepo "github.com/primebarbervip/PrimeBarberClub/internal/infra/storage/barber"
	catalogRepo "github.com/primebarbervip/PrimeBarberClub/internal/infra/storage/catalog"
	"github.com/primebarbervip/PrimeBarberClub/internal/service/catalog/models"
)

type fakeCatalogRepo struct {
	services   map[int64]*domain.Service
	nextID     int64
	components map[int64][]int64
}

func newFakeCatalogRepo(services ...*domain.Service) *fakeCatalogRepo {
	f := &fakeCatalogRepo{
		services:   make(map[int64]*domain.Service),
		components: make(map[int64][]int64),
	}
	for _, s := range services {
		f.services[s.ID] = s
		if s.ID > f.nextID {
			f.nextID = s.ID
		}
	}
	return f
}

func (f *fakeCatalogRepo) Create(_ context.Context, svc *domain.Service) (*domain.Service, error) {
	f.nextID++
	created := *svc
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.services[created.ID] = &created
	return &created, nil
}

func (f *fakeCatalogRepo) Update(_ context.Context, svc *domain.Service) error {
	existing, ok := f.services[svc.ID]
	if !ok {
		return catalogRepo.ErrServiceNotFound
	}
	updated := *svc
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()
	f.services[svc.ID] = &updated
	return nil
}

func (f *fakeCatalogRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.services[id]; !ok {
		return catalogRepo.ErrServiceNotFound
	}
	delete(f.services, id)
	return nil
}

func (f *fakeCatalogRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	if s, ok := f.services[id]; ok {
		copy := *s
		return &copy, nil
	}
	return nil, catalogRepo.ErrServiceNotFound
}

func (f *fakeCatalogRepo) ListByBarber(_ context.Context, barberID int64, onlyActive bool) ([]domain.Service, error) {
	var out []domain.Service
	for _, s := range f.services {
		if s.BarberID != barberID {
			continue
		}
		if onlyActive && !s.Active {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeCatalogRepo) SetComponents(_ context.Context, serviceID int64, componentIDs []int64) error {
	f.components[serviceID] = componentIDs
	if s, ok := f.services[serviceID]; ok {
		s.ComponentIDs = componentIDs
	}
	return nil
}

type fakeBarberRepo struct {
	barber *domain.Barber
}

func (f *fakeBarberRepo) GetByID(_ context.Context, id int64) (*domain.Barber, error) {
	if f.barber == nil || f.barber.ID != id {
		return nil, barberRepo.ErrBarberNotFound
	}
	return f.barber, nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const (
	ownerUserID = int64(10)
	adminID     = int64(1)
)

func corteClasico() *domain.Service {
	return &domain.Service{ID: 1, BarberID: 1, Name: "Corte clásico", Price: 15, DurationMinutes: 45, Active: true}
}

func arregloBarba() *domain.Service {
	return &domain.Service{ID: 2, BarberID: 1, Name: "Arreglo de barba", Price: 10, DurationMinutes: 30, Active: true}
}

type fixture struct {
	catalog *fakeCatalogRepo
	tx      *fakeTxManager
	service *Service
}

func newFixture(services ...*domain.Service) *fixture {
	f := &fixture{
		catalog: newFakeCatalogRepo(services...),
		tx:      &fakeTxManager{},
	}
	barbers := &fakeBarberRepo{barber: &domain.Barber{ID: 1, UserID: ownerUserID, Name: "Marco", Active: true}}
	f.service = NewService(f.catalog, barbers, f.tx, nopLogger{})
	return f
}

func comboRequest(componentIDs ...int64) *models.SaveServiceRequest {
	return &models.SaveServiceRequest{
		BarberID:        1,
		Name:            "Corte + barba",
		Price:           22,
		DurationMinutes: 60,
		Active:          true,
		ComponentIDs:    componentIDs,
	}
}

func TestSave_CreatesComboInOneTransaction(t *testing.T) {
	f := newFixture(corteClasico(), arregloBarba())

	resp, err := f.service.Save(context.Background(), comboRequest(1, 2), ownerUserID, domain.RoleBarber)
	require.NoError(t, err)

	assert.Equal(t, 1, f.tx.calls, "service row and components are written together")
	assert.Equal(t, "Corte + barba", resp.Name)
	assert.ElementsMatch(t, []int64{1, 2}, resp.ComponentIDs)
	assert.ElementsMatch(t, []int64{1, 2}, f.catalog.components[resp.ID])
}

func TestSave_UpdateExisting(t *testing.T) {
	f := newFixture(corteClasico())

	req := &models.SaveServiceRequest{
		ID:              1,
		BarberID:        1,
		Name:            "Corte premium",
		Price:           20,
		DurationMinutes: 45,
		Active:          true,
	}
	resp, err := f.service.Save(context.Background(), req, ownerUserID, domain.RoleBarber)
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Corte premium", resp.Name)
	assert.Equal(t, 20.0, resp.Price)
}

func TestSave_UpdateForeignServiceReadsNotFound(t *testing.T) {
	other := corteClasico()
	other.BarberID = 2
	f := newFixture(other)

	req := &models.SaveServiceRequest{
		ID:              1,
		BarberID:        1,
		Name:            "Corte",
		Price:           15,
		DurationMinutes: 45,
	}
	_, err := f.service.Save(context.Background(), req, ownerUserID, domain.RoleBarber)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestSave_ComponentValidation(t *testing.T) {
	t.Run("combo cannot contain itself", func(t *testing.T) {
		f := newFixture(corteClasico())

		req := comboRequest(1)
		req.ID = 1
		req.Name = "Corte clásico"

		_, err := f.service.Save(context.Background(), req, ownerUserID, domain.RoleBarber)
		assert.ErrorIs(t, err, ErrInvalidComponent)
	})

	t.Run("unknown component", func(t *testing.T) {
		f := newFixture(corteClasico())

		_, err := f.service.Save(context.Background(), comboRequest(99), ownerUserID, domain.RoleBarber)
		assert.ErrorIs(t, err, ErrInvalidComponent)
	})

	t.Run("component of another barber", func(t *testing.T) {
		foreign := arregloBarba()
		foreign.BarberID = 2
		f := newFixture(corteClasico(), foreign)

		_, err := f.service.Save(context.Background(), comboRequest(1, 2), ownerUserID, domain.RoleBarber)
		assert.ErrorIs(t, err, ErrInvalidComponent)
	})

	t.Run("nested combos are rejected", func(t *testing.T) {
		combo := arregloBarba()
		combo.ComponentIDs = []int64{1}
		f := newFixture(corteClasico(), combo)

		_, err := f.service.Save(context.Background(), comboRequest(2), ownerUserID, domain.RoleBarber)
		assert.ErrorIs(t, err, ErrInvalidComponent)
	})
}

func TestSave_InputValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.SaveServiceRequest)
	}{
		{"empty name", func(r *models.SaveServiceRequest) { r.Name = "" }},
		{"negative price", func(r *models.SaveServiceRequest) { r.Price = -1 }},
		{"duration too short", func(r *models.SaveServiceRequest) { r.DurationMinutes = 5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := comboRequest()
			tt.mutate(req)

			_, err := f.service.Save(context.Background(), req, ownerUserID, domain.RoleBarber)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestSave_AccessControl(t *testing.T) {
	f := newFixture()

	_, err := f.service.Save(context.Background(), comboRequest(), 999, domain.RoleClient)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = f.service.Save(context.Background(), comboRequest(), adminID, domain.RoleAdmin)
	assert.NoError(t, err, "admins edit any catalog")
}

func TestListByBarber_Visibility(t *testing.T) {
	inactive := arregloBarba()
	inactive.Active = false
	f := newFixture(corteClasico(), inactive)

	t.Run("clients see only active services", func(t *testing.T) {
		resp, err := f.service.ListByBarber(context.Background(), 1, 999, domain.RoleClient)
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Total)
		assert.Equal(t, "Corte clásico", resp.Services[0].Name)
	})

	t.Run("the owner sees everything", func(t *testing.T) {
		resp, err := f.service.ListByBarber(context.Background(), 1, ownerUserID, domain.RoleClient)
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Total)
	})

	t.Run("unknown barber", func(t *testing.T) {
		_, err := f.service.ListByBarber(context.Background(), 99, 999, domain.RoleClient)
		assert.ErrorIs(t, err, ErrBarberNotFound)
	})
}

func TestListByBarber_CompatibilityIsBidirectional(t *testing.T) {
	combo := &domain.Service{
		ID: 3, BarberID: 1, Name: "Corte + barba",
		Price: 22, DurationMinutes: 60, Active: true,
		ComponentIDs: []int64{1, 2},
	}
	f := newFixture(corteClasico(), arregloBarba(), combo)

	resp, err := f.service.ListByBarber(context.Background(), 1, 999, domain.RoleClient)
	require.NoError(t, err)

	byID := map[int64]models.ServiceResponse{}
	for _, s := range resp.Services {
		byID[s.ID] = s
	}
	assert.ElementsMatch(t, []int64{1, 2}, byID[3].CompatibleIDs, "the combo points at its components")
	assert.ElementsMatch(t, []int64{3}, byID[1].CompatibleIDs, "a component points back at the combo")
	assert.ElementsMatch(t, []int64{3}, byID[2].CompatibleIDs)
}

func TestDelete(t *testing.T) {
	t.Run("owner deletes own service", func(t *testing.T) {
		f := newFixture(corteClasico())

		err := f.service.Delete(context.Background(), 1, ownerUserID, domain.RoleBarber)
		require.NoError(t, err)
		assert.Empty(t, f.catalog.services)
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		f := newFixture(corteClasico())

		err := f.service.Delete(context.Background(), 1, 999, domain.RoleClient)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("unknown service", func(t *testing.T) {
		f := newFixture()

		err := f.service.Delete(context.Background(), 1, ownerUserID, domain.RoleBarber)
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})
}
