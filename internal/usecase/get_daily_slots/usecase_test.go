package get_daily_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ktnb/ARS-ReservationService/internal/domain"
	menuRepo "github.com/ktnb/ARS-ReservationService/internal/infra/storage/menu"
	"github.com/ktnb/ARS-ReservationService/internal/integrations/tenantservice"
	"github.com/ktnb/ARS-ReservationService/pkg/types"
)

var jst = time.FixedZone("JST", 9*60*60)

type stubReservationRepo struct {
	reservations []*domain.Reservation
	gotFilter    domain.TenantReservationsFilter
}

func (s *stubReservationRepo) GetByTenantWithFilter(_ context.Context, filter domain.TenantReservationsFilter) ([]*domain.Reservation, error) {
	s.gotFilter = filter
	return s.reservations, nil
}

type stubScheduleRepo struct {
	tenantHours domain.WeeklySchedule
	staffHours  map[int64]domain.WeeklySchedule
}

func (s *stubScheduleRepo) GetTenantHours(_ context.Context, _ int64) (domain.WeeklySchedule, error) {
	return s.tenantHours, nil
}

func (s *stubScheduleRepo) GetStaffHours(_ context.Context, _, staffID int64) (domain.WeeklySchedule, error) {
	return s.staffHours[staffID], nil
}

type stubMenuRepo struct {
	menu *domain.ReservationMenu
	err  error
}

func (s *stubMenuRepo) GetByTenant(_ context.Context, _ int64) (*domain.ReservationMenu, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.menu, nil
}

type stubTenantClient struct {
	tenants map[int64]*tenantservice.Tenant
	staff   map[int64]*tenantservice.StaffMember
}

func (s *stubTenantClient) GetTenant(_ context.Context, tenantID int64) (*tenantservice.Tenant, error) {
	tenant, ok := s.tenants[tenantID]
	if !ok {
		return nil, tenantservice.ErrTenantNotFound
	}
	return tenant, nil
}

func (s *stubTenantClient) GetStaffMember(_ context.Context, _, staffID int64) (*tenantservice.StaffMember, error) {
	member, ok := s.staff[staffID]
	if !ok {
		return nil, tenantservice.ErrStaffNotFound
	}
	return member, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mondayHours() domain.WeeklySchedule {
	return domain.WeeklySchedule{
		{DayOfWeek: time.Monday, StartTime: types.TimeString("09:00"), EndTime: types.TimeString("12:00")},
	}
}

func newStubClient() *stubTenantClient {
	return &stubTenantClient{
		tenants: map[int64]*tenantservice.Tenant{1: {ID: 1, Name: "Salon"}},
		staff:   map[int64]*tenantservice.StaffMember{7: {ID: 7, TenantID: 1, IsActive: true}},
	}
}

func TestExecute_TenantScope(t *testing.T) {
	// 2024-06-03 - понедельник
	booked := time.Date(2024, 6, 3, 10, 0, 0, 0, jst).UTC()
	repo := &stubReservationRepo{
		reservations: []*domain.Reservation{
			{ID: 1, TenantID: 1, StartAt: booked, Status: domain.StatusConfirmed},
		},
	}

	uc := NewUseCase(
		repo,
		&stubScheduleRepo{tenantHours: mondayHours()},
		&stubMenuRepo{menu: domain.DefaultMenu()},
		newStubClient(),
		jst,
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		TenantID: 1,
		Date:     time.Date(2024, 6, 3, 0, 0, 0, 0, jst),
	})
	require.NoError(t, err)

	assert.Equal(t, "2024-06-03", resp.Date)
	require.Len(t, resp.Slots, 6)

	assert.Equal(t, "2024-06-03T01:00:00Z", resp.Slots[2].Datetime) // 10:00 JST
	assert.True(t, resp.Slots[2].IsBooked)
	assert.False(t, resp.Slots[0].IsBooked)
	assert.False(t, resp.Slots[3].IsBooked)

	// Окно выборки расширено назад ради броней, перетекающих через полночь
	require.NotNil(t, repo.gotFilter.StartAt)
	dayStart := time.Date(2024, 6, 3, 0, 0, 0, 0, jst)
	assert.True(t, repo.gotFilter.StartAt.Before(dayStart))
}

func TestExecute_StaffScopeUsesOwnHours(t *testing.T) {
	schedules := &stubScheduleRepo{
		tenantHours: mondayHours(),
		staffHours: map[int64]domain.WeeklySchedule{
			7: {
				{DayOfWeek: time.Monday, StartTime: types.TimeString("10:00"), EndTime: types.TimeString("11:00")},
			},
		},
	}

	uc := NewUseCase(
		&stubReservationRepo{},
		schedules,
		&stubMenuRepo{menu: domain.DefaultMenu()},
		newStubClient(),
		jst,
		nopLogger{},
	)

	staffID := int64(7)
	resp, err := uc.Execute(context.Background(), &Request{
		TenantID: 1,
		Date:     time.Date(2024, 6, 3, 0, 0, 0, 0, jst),
		StaffID:  &staffID,
	})
	require.NoError(t, err)

	// У сотрудника свой, более узкий график: два слота вместо шести
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "2024-06-03T01:00:00Z", resp.Slots[0].Datetime)
	assert.Equal(t, "2024-06-03T01:30:00Z", resp.Slots[1].Datetime)
}

func TestExecute_UnassignedScopeIgnoresStaffReservations(t *testing.T) {
	staffID := int64(7)
	start := time.Date(2024, 6, 3, 9, 0, 0, 0, jst).UTC()
	repo := &stubReservationRepo{
		reservations: []*domain.Reservation{
			{ID: 1, TenantID: 1, StaffID: &staffID, StartAt: start, Status: domain.StatusConfirmed},
		},
	}

	// Меню не настроено - применяется меню по умолчанию
	uc := NewUseCase(
		repo,
		&stubScheduleRepo{tenantHours: mondayHours()},
		&stubMenuRepo{err: menuRepo.ErrMenuNotFound},
		newStubClient(),
		jst,
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		TenantID:   1,
		Date:       time.Date(2024, 6, 3, 0, 0, 0, 0, jst),
		Unassigned: true,
	})
	require.NoError(t, err)

	// Бронь закреплена за сотрудником и не занимает "свободную" область
	require.Len(t, resp.Slots, 6)
	for _, slot := range resp.Slots {
		assert.False(t, slot.IsBooked)
	}
}

func TestExecute_TenantNotFound(t *testing.T) {
	uc := NewUseCase(
		&stubReservationRepo{},
		&stubScheduleRepo{},
		&stubMenuRepo{menu: domain.DefaultMenu()},
		newStubClient(),
		jst,
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		TenantID: 99,
		Date:     time.Date(2024, 6, 3, 0, 0, 0, 0, jst),
	})
	assert.ErrorIs(t, err, ErrTenantNotFound)
}

func TestExecute_StaffNotFound(t *testing.T) {
	uc := NewUseCase(
		&stubReservationRepo{},
		&stubScheduleRepo{tenantHours: mondayHours()},
		&stubMenuRepo{menu: domain.DefaultMenu()},
		newStubClient(),
		jst,
		nopLogger{},
	)

	staffID := int64(404)
	_, err := uc.Execute(context.Background(), &Request{
		TenantID: 1,
		Date:     time.Date(2024, 6, 3, 0, 0, 0, 0, jst),
		StaffID:  &staffID,
	})
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(
		&stubReservationRepo{},
		&stubScheduleRepo{},
		&stubMenuRepo{menu: domain.DefaultMenu()},
		newStubClient(),
		jst,
		nopLogger{},
	)

	staffID := int64(7)
	_, err := uc.Execute(context.Background(), &Request{
		TenantID:   1,
		Date:       time.Date(2024, 6, 3, 0, 0, 0, 0, jst),
		StaffID:    &staffID,
		Unassigned: true,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
