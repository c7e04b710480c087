package get_monthly_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ktnb/ARS-ReservationService/internal/availability"
	"github.com/ktnb/ARS-ReservationService/internal/domain"
	menuRepo "github.com/ktnb/ARS-ReservationService/internal/infra/storage/menu"
	tenantClient "github.com/ktnb/ARS-ReservationService/internal/integrations/tenantservice"
)

// UseCase use case для получения календаря доступности на месяц
type UseCase struct {
	reservationRepo ReservationRepository
	scheduleRepo    ScheduleRepository
	menuRepo        MenuRepository
	tenantClient    TenantServiceClient
	location        *time.Location
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	scheduleRepo ScheduleRepository,
	menuRepo MenuRepository,
	tenantClient TenantServiceClient,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		scheduleRepo:    scheduleRepo,
		menuRepo:        menuRepo,
		tenantClient:    tenantClient,
		location:        location,
		logger:          logger,
	}
}

// Execute выполняет use case получения календаря месяца.
// Публичная форма: дни тенанта либо дни одного сотрудника.
// Административная (Full): дни тенанта плюс разбивка по всем активным сотрудникам
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetMonthlyAvailability: tenant=%d, period=%d-%02d, staff=%v, full=%v",
		req.TenantID, req.Year, req.Month, req.StaffID, req.Full)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetMonthlyAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование тенанта
	if _, err := uc.tenantClient.GetTenant(ctx, req.TenantID); err != nil {
		if errors.Is(err, tenantClient.ErrTenantNotFound) {
			uc.logger.Warn("GetMonthlyAvailability: tenant id=%d not found", req.TenantID)
			return nil, ErrTenantNotFound
		}
		uc.logger.Error("GetMonthlyAvailability: failed to get tenant id=%d: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: failed to get tenant: %v", ErrInternal, err)
	}

	// 3. Рабочие часы тенанта
	tenantHours, err := uc.scheduleRepo.GetTenantHours(ctx, req.TenantID)
	if err != nil {
		uc.logger.Error("GetMonthlyAvailability: failed to get tenant hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get tenant hours: %v", ErrInternal, err)
	}

	// 4. Состав сотрудников для расчета
	staffIDs, staffSchedules, err := uc.resolveStaff(ctx, req)
	if err != nil {
		return nil, err
	}

	// 5. Меню тенанта (или меню по умолчанию)
	menu, err := uc.menuRepo.GetByTenant(ctx, req.TenantID)
	if err != nil {
		if !errors.Is(err, menuRepo.ErrMenuNotFound) {
			uc.logger.Error("GetMonthlyAvailability: failed to get menu: %v", err)
			return nil, fmt.Errorf("%w: failed to get menu: %v", ErrInternal, err)
		}
		menu = domain.DefaultMenu()
	}

	// 6. Активные брони месяца одним запросом. Нижняя граница окна сдвинута
	// назад: бронь, начавшаяся в прошлом месяце у полуночи, может занимать
	// первые слоты первого дня
	monthStart := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, uc.location)
	monthEnd := monthStart.AddDate(0, 1, 0)
	windowStart := monthStart.Add(-time.Duration(domain.MaxSlotDurationMinutes) * time.Minute)

	reservations, err := uc.reservationRepo.GetByTenantWithFilter(ctx, domain.TenantReservationsFilter{
		TenantID: req.TenantID,
		StartAt:  &windowStart,
		EndAt:    &monthEnd,
	})
	if err != nil {
		uc.logger.Error("GetMonthlyAvailability: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 7. Расчет календаря
	monthly, err := availability.ForMonth(
		req.Year, req.Month, tenantHours, staffSchedules, staffIDs, menu, reservations, uc.location)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidYear) || errors.Is(err, availability.ErrInvalidMonth) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPeriod, err)
		}
		uc.logger.Error("GetMonthlyAvailability: failed to compute calendar: %v", err)
		return nil, fmt.Errorf("%w: failed to compute calendar: %v", ErrInternal, err)
	}

	resp := &Response{
		TenantID: req.TenantID,
		Year:     req.Year,
		Month:    req.Month,
	}

	if req.StaffID != nil {
		// Публичный календарь одного сотрудника
		resp.Days = toDays(monthly.Staff[0].Days)
	} else {
		resp.Days = toDays(monthly.Days)
	}

	if req.Full {
		resp.Staff = make([]StaffCalendar, len(monthly.Staff))
		for i, staff := range monthly.Staff {
			resp.Staff[i] = StaffCalendar{
				StaffID: staff.StaffID,
				Days:    toDays(staff.Days),
			}
		}
	}

	uc.logger.Info("GetMonthlyAvailability: computed %d days for tenant=%d, period=%d-%02d",
		len(resp.Days), req.TenantID, req.Year, req.Month)

	return resp, nil
}

// resolveStaff определяет, для каких сотрудников считать календарь:
// один явно запрошенный, все активные (административная форма) или никто
func (uc *UseCase) resolveStaff(ctx context.Context, req *Request) ([]int64, map[int64]domain.WeeklySchedule, error) {
	if req.StaffID != nil {
		staffID := *req.StaffID
		if _, err := uc.tenantClient.GetStaffMember(ctx, req.TenantID, staffID); err != nil {
			if errors.Is(err, tenantClient.ErrStaffNotFound) {
				uc.logger.Warn("GetMonthlyAvailability: staff id=%d not found for tenant=%d", staffID, req.TenantID)
				return nil, nil, ErrStaffNotFound
			}
			uc.logger.Error("GetMonthlyAvailability: failed to get staff id=%d: %v", staffID, err)
			return nil, nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
		}

		hours, err := uc.scheduleRepo.GetStaffHours(ctx, req.TenantID, staffID)
		if err != nil {
			uc.logger.Error("GetMonthlyAvailability: failed to get staff hours: %v", err)
			return nil, nil, fmt.Errorf("%w: failed to get staff hours: %v", ErrInternal, err)
		}
		return []int64{staffID}, map[int64]domain.WeeklySchedule{staffID: hours}, nil
	}

	if !req.Full {
		return nil, nil, nil
	}

	members, err := uc.tenantClient.GetStaffMembers(ctx, req.TenantID)
	if err != nil {
		uc.logger.Error("GetMonthlyAvailability: failed to list staff for tenant=%d: %v", req.TenantID, err)
		return nil, nil, fmt.Errorf("%w: failed to list staff: %v", ErrInternal, err)
	}

	schedules, err := uc.scheduleRepo.GetAllStaffHours(ctx, req.TenantID)
	if err != nil {
		uc.logger.Error("GetMonthlyAvailability: failed to get staff hours: %v", err)
		return nil, nil, fmt.Errorf("%w: failed to get staff hours: %v", ErrInternal, err)
	}

	staffIDs := make([]int64, len(members))
	for i, member := range members {
		staffIDs[i] = member.ID
	}
	return staffIDs, schedules, nil
}

// toDays сводит дни к публичной форме без почасовых слотов
func toDays(days []domain.DayAvailability) []Day {
	result := make([]Day, len(days))
	for i, day := range days {
		result[i] = Day{
			Date:            day.Date.Format(domain.DateFormat),
			HasAvailability: day.HasAvailability,
		}
	}
	return result
}
