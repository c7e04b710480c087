package create_reservation

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
	created      *domain.Reservation
}

func (s *stubReservationRepo) Create(_ context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	created := *reservation
	created.ID = 42
	created.CreatedAt = time.Now().UTC()
	created.UpdatedAt = created.CreatedAt
	s.created = &created
	return &created, nil
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

type stubMenuRepo struct{}

func (stubMenuRepo) GetByTenant(_ context.Context, _ int64) (*domain.ReservationMenu, error) {
	return nil, menuRepo.ErrMenuNotFound
}

type stubTenantClient struct{}

func (stubTenantClient) GetTenant(_ context.Context, tenantID int64) (*tenantservice.Tenant, error) {
	if tenantID != 1 {
		return nil, tenantservice.ErrTenantNotFound
	}
	return &tenantservice.Tenant{ID: 1, Name: "Salon"}, nil
}

func (stubTenantClient) GetStaffMember(_ context.Context, _, staffID int64) (*tenantservice.StaffMember, error) {
	if staffID != 7 {
		return nil, tenantservice.ErrStaffNotFound
	}
	return &tenantservice.StaffMember{ID: 7, TenantID: 1, IsActive: true}, nil
}

type stubTxManager struct{}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newUseCaseForTest(repo *stubReservationRepo) *UseCase {
	schedules := &stubScheduleRepo{
		tenantHours: domain.WeeklySchedule{
			{DayOfWeek: time.Monday, StartTime: types.TimeString("09:00"), EndTime: types.TimeString("12:00")},
		},
		staffHours: map[int64]domain.WeeklySchedule{
			7: {
				{DayOfWeek: time.Monday, StartTime: types.TimeString("10:00"), EndTime: types.TimeString("11:00")},
			},
		},
	}

	uc := NewUseCase(repo, schedules, stubMenuRepo{}, stubTenantClient{}, stubTxManager{}, jst, nopLogger{})
	// 2024-06-03 - понедельник
	uc.timeProvider = fixedTimeProvider{now: time.Date(2024, 6, 1, 12, 0, 0, 0, jst)}
	return uc
}

func TestExecute_CreatesReservation(t *testing.T) {
	repo := &stubReservationRepo{}
	uc := newUseCaseForTest(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		TenantID:     1,
		StartAt:      time.Date(2024, 6, 3, 10, 0, 0, 0, jst).UTC(),
		CustomerName: "Tanaka",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "2024-06-03T01:00:00Z", resp.Datetime)
	assert.Equal(t, 30, resp.DurationMinutes)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)

	require.NotNil(t, repo.created)
	require.NotNil(t, repo.created.DurationMinutes)
	assert.Equal(t, 30, *repo.created.DurationMinutes)
	assert.Equal(t, time.UTC, repo.created.StartAt.Location())
}

func TestExecute_SlotTaken(t *testing.T) {
	repo := &stubReservationRepo{
		reservations: []*domain.Reservation{
			{ID: 1, TenantID: 1, Status: domain.StatusConfirmed,
				StartAt: time.Date(2024, 6, 3, 10, 0, 0, 0, jst).UTC()},
		},
	}
	uc := newUseCaseForTest(repo)

	_, err := uc.Execute(context.Background(), &Request{
		TenantID:     1,
		StartAt:      time.Date(2024, 6, 3, 10, 0, 0, 0, jst).UTC(),
		CustomerName: "Tanaka",
	})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_StaffScopeIgnoresUnassignedReservations(t *testing.T) {
	// Бронь без сотрудника не мешает брони, закрепленной за сотрудником
	repo := &stubReservationRepo{
		reservations: []*domain.Reservation{
			{ID: 1, TenantID: 1, Status: domain.StatusConfirmed,
				StartAt: time.Date(2024, 6, 3, 10, 0, 0, 0, jst).UTC()},
		},
	}
	uc := newUseCaseForTest(repo)

	staffID := int64(7)
	resp, err := uc.Execute(context.Background(), &Request{
		TenantID:     1,
		StaffID:      &staffID,
		StartAt:      time.Date(2024, 6, 3, 10, 0, 0, 0, jst).UTC(),
		CustomerName: "Tanaka",
	})
	require.NoError(t, err)
	assert.Equal(t, &staffID, resp.StaffID)
}

func TestExecute_OutsideBusinessHours(t *testing.T) {
	uc := newUseCaseForTest(&stubReservationRepo{})

	// 13:00 - за пределами рабочих часов 09:00-12:00
	_, err := uc.Execute(context.Background(), &Request{
		TenantID:     1,
		StartAt:      time.Date(2024, 6, 3, 13, 0, 0, 0, jst).UTC(),
		CustomerName: "Tanaka",
	})
	assert.ErrorIs(t, err, ErrOutsideBusinessHours)

	// 10:15 - не совпадает с началом слота
	_, err = uc.Execute(context.Background(), &Request{
		TenantID:     1,
		StartAt:      time.Date(2024, 6, 3, 10, 15, 0, 0, jst).UTC(),
		CustomerName: "Tanaka",
	})
	assert.ErrorIs(t, err, ErrOutsideBusinessHours)
}

func TestExecute_DateInPast(t *testing.T) {
	uc := newUseCaseForTest(&stubReservationRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		TenantID:     1,
		StartAt:      time.Date(2024, 5, 27, 10, 0, 0, 0, jst).UTC(),
		CustomerName: "Tanaka",
	})
	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestExecute_TenantNotFound(t *testing.T) {
	uc := newUseCaseForTest(&stubReservationRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		TenantID:     2,
		StartAt:      time.Date(2024, 6, 3, 10, 0, 0, 0, jst).UTC(),
		CustomerName: "Tanaka",
	})
	assert.ErrorIs(t, err, ErrTenantNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newUseCaseForTest(&stubReservationRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		TenantID:     1,
		StartAt:      time.Date(2024, 6, 3, 10, 0, 0, 0, jst).UTC(),
		CustomerName: "   ",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
