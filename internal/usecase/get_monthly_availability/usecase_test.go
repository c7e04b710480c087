package get_monthly_availability

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
}

func (s *stubReservationRepo) GetByTenantWithFilter(_ context.Context, _ domain.TenantReservationsFilter) ([]*domain.Reservation, error) {
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

func (s *stubScheduleRepo) GetAllStaffHours(_ context.Context, _ int64) (map[int64]domain.WeeklySchedule, error) {
	return s.staffHours, nil
}

type stubMenuRepo struct{}

func (stubMenuRepo) GetByTenant(_ context.Context, _ int64) (*domain.ReservationMenu, error) {
	return nil, menuRepo.ErrMenuNotFound
}

type stubTenantClient struct {
	tenants map[int64]*tenantservice.Tenant
	staff   []tenantservice.StaffMember
}

func (s *stubTenantClient) GetTenant(_ context.Context, tenantID int64) (*tenantservice.Tenant, error) {
	tenant, ok := s.tenants[tenantID]
	if !ok {
		return nil, tenantservice.ErrTenantNotFound
	}
	return tenant, nil
}

func (s *stubTenantClient) GetStaffMembers(_ context.Context, _ int64) ([]tenantservice.StaffMember, error) {
	return s.staff, nil
}

func (s *stubTenantClient) GetStaffMember(_ context.Context, _, staffID int64) (*tenantservice.StaffMember, error) {
	for i := range s.staff {
		if s.staff[i].ID == staffID {
			return &s.staff[i], nil
		}
	}
	return nil, tenantservice.ErrStaffNotFound
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newUseCaseForTest(reservations []*domain.Reservation, staffHours map[int64]domain.WeeklySchedule) *UseCase {
	schedules := &stubScheduleRepo{
		tenantHours: domain.WeeklySchedule{
			{DayOfWeek: time.Monday, StartTime: types.TimeString("09:00"), EndTime: types.TimeString("12:00")},
		},
		staffHours: staffHours,
	}
	client := &stubTenantClient{
		tenants: map[int64]*tenantservice.Tenant{1: {ID: 1, Name: "Salon"}},
		staff: []tenantservice.StaffMember{
			{ID: 7, TenantID: 1, IsActive: true},
		},
	}
	return NewUseCase(&stubReservationRepo{reservations: reservations}, schedules, stubMenuRepo{}, client, jst, nopLogger{})
}

func TestExecute_PublicCalendar(t *testing.T) {
	uc := newUseCaseForTest(nil, nil)

	resp, err := uc.Execute(context.Background(), &Request{TenantID: 1, Year: 2024, Month: 6})
	require.NoError(t, err)

	require.Len(t, resp.Days, 30)
	assert.Empty(t, resp.Staff)

	// Открыты только понедельники: 3, 10, 17, 24 июня 2024
	open := make([]string, 0)
	for _, day := range resp.Days {
		if day.HasAvailability {
			open = append(open, day.Date)
		}
	}
	assert.Equal(t, []string{"2024-06-03", "2024-06-10", "2024-06-17", "2024-06-24"}, open)
}

func TestExecute_FullCalendarWithStaff(t *testing.T) {
	staffHours := map[int64]domain.WeeklySchedule{
		7: {
			{DayOfWeek: time.Monday, StartTime: types.TimeString("10:00"), EndTime: types.TimeString("11:00")},
		},
	}
	uc := newUseCaseForTest(nil, staffHours)

	resp, err := uc.Execute(context.Background(), &Request{TenantID: 1, Year: 2024, Month: 6, Full: true})
	require.NoError(t, err)

	require.Len(t, resp.Staff, 1)
	assert.Equal(t, int64(7), resp.Staff[0].StaffID)
	require.Len(t, resp.Staff[0].Days, 30)
	assert.True(t, resp.Staff[0].Days[2].HasAvailability) // понедельник 3 июня
	assert.False(t, resp.Staff[0].Days[3].HasAvailability)
}

func TestExecute_FullCalendarWithoutStaff(t *testing.T) {
	schedules := &stubScheduleRepo{
		tenantHours: domain.WeeklySchedule{
			{DayOfWeek: time.Monday, StartTime: types.TimeString("09:00"), EndTime: types.TimeString("12:00")},
		},
	}
	client := &stubTenantClient{
		tenants: map[int64]*tenantservice.Tenant{1: {ID: 1, Name: "Salon"}},
	}
	uc := NewUseCase(&stubReservationRepo{}, schedules, stubMenuRepo{}, client, jst, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{TenantID: 1, Year: 2024, Month: 6, Full: true})
	require.NoError(t, err)

	// Разбивка по сотрудникам присутствует и в пустом виде
	require.NotNil(t, resp.Staff)
	assert.Len(t, resp.Staff, 0)
	require.Len(t, resp.Days, 30)
}

func TestExecute_StaffCalendar(t *testing.T) {
	staffID := int64(7)
	staffHours := map[int64]domain.WeeklySchedule{
		7: {
			{DayOfWeek: time.Monday, StartTime: types.TimeString("10:00"), EndTime: types.TimeString("11:00")},
		},
	}

	// Две брони закрывают оба слота сотрудника 3 июня
	reservations := []*domain.Reservation{
		{ID: 1, TenantID: 1, StaffID: &staffID, Status: domain.StatusConfirmed,
			StartAt: time.Date(2024, 6, 3, 10, 0, 0, 0, jst).UTC()},
		{ID: 2, TenantID: 1, StaffID: &staffID, Status: domain.StatusConfirmed,
			StartAt: time.Date(2024, 6, 3, 10, 30, 0, 0, jst).UTC()},
	}
	uc := newUseCaseForTest(reservations, staffHours)

	resp, err := uc.Execute(context.Background(), &Request{TenantID: 1, Year: 2024, Month: 6, StaffID: &staffID})
	require.NoError(t, err)

	require.Len(t, resp.Days, 30)
	assert.False(t, resp.Days[2].HasAvailability)  // 3 июня занят полностью
	assert.True(t, resp.Days[9].HasAvailability)   // 10 июня свободен
	assert.False(t, resp.Days[10].HasAvailability) // 11 июня - не понедельник
}

func TestExecute_InvalidPeriod(t *testing.T) {
	uc := newUseCaseForTest(nil, nil)

	_, err := uc.Execute(context.Background(), &Request{TenantID: 1, Year: 2024, Month: 13})
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = uc.Execute(context.Background(), &Request{TenantID: 1, Year: 0, Month: 6})
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestExecute_StaffNotFound(t *testing.T) {
	uc := newUseCaseForTest(nil, nil)

	staffID := int64(404)
	_, err := uc.Execute(context.Background(), &Request{TenantID: 1, Year: 2024, Month: 6, StaffID: &staffID})
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestExecute_TenantNotFound(t *testing.T) {
	uc := newUseCaseForTest(nil, nil)

	_, err := uc.Execute(context.Background(), &Request{TenantID: 2, Year: 2024, Month: 6})
	assert.ErrorIs(t, err, ErrTenantNotFound)
}
