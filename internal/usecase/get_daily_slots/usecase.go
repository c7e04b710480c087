package get_daily_slots

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

// UseCase use case для получения слотов одного календарного дня
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

// Execute выполняет use case получения слотов дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDailySlots: tenant=%d, date=%s, staff=%v, unassigned=%v",
		req.TenantID, req.Date.Format(domain.DateFormat), req.StaffID, req.Unassigned)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDailySlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование тенанта
	if _, err := uc.tenantClient.GetTenant(ctx, req.TenantID); err != nil {
		if errors.Is(err, tenantClient.ErrTenantNotFound) {
			uc.logger.Warn("GetDailySlots: tenant id=%d not found", req.TenantID)
			return nil, ErrTenantNotFound
		}
		uc.logger.Error("GetDailySlots: failed to get tenant id=%d: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: failed to get tenant: %v", ErrInternal, err)
	}

	// 3. Определяем область запроса и источник рабочих часов
	scope, schedule, err := uc.resolveScope(ctx, req)
	if err != nil {
		return nil, err
	}

	// 4. Получаем меню тенанта (или меню по умолчанию)
	menu, err := uc.menuRepo.GetByTenant(ctx, req.TenantID)
	if err != nil {
		if !errors.Is(err, menuRepo.ErrMenuNotFound) {
			uc.logger.Error("GetDailySlots: failed to get menu for tenant=%d: %v", req.TenantID, err)
			return nil, fmt.Errorf("%w: failed to get menu: %v", ErrInternal, err)
		}
		menu = domain.DefaultMenu()
	}

	// 5. Получаем активные брони, способные пересечь слоты этого дня.
	// Нижняя граница окна сдвинута назад: бронь, начавшаяся до полуночи,
	// может занимать первые слоты дня.
	year, month, day := req.Date.Date()
	dayStart := time.Date(year, month, day, 0, 0, 0, 0, uc.location)
	dayEnd := dayStart.AddDate(0, 0, 1)

	windowStart := dayStart.Add(-time.Duration(domain.MaxSlotDurationMinutes) * time.Minute)
	filter := domain.TenantReservationsFilter{
		TenantID: req.TenantID,
		StartAt:  &windowStart,
		EndAt:    &dayEnd,
	}

	reservations, err := uc.reservationRepo.GetByTenantWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetDailySlots: failed to get reservations for tenant=%d: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 6. Считаем доступность дня для выбранной области
	scoped := availability.FilterReservations(scope, reservations)

	dayAvailability, err := availability.ForDay(year, month, day, schedule, menu, scoped, uc.location)
	if err != nil {
		uc.logger.Error("GetDailySlots: failed to compute slots for tenant=%d: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: failed to compute slots: %v", ErrInternal, err)
	}

	slots := make([]Slot, len(dayAvailability.Slots))
	for i, slot := range dayAvailability.Slots {
		slots[i] = Slot{
			Datetime: slot.StartAt.UTC().Format(time.RFC3339),
			IsBooked: !slot.Available,
		}
	}

	uc.logger.Info("GetDailySlots: generated %d slots for tenant=%d, date=%s",
		len(slots), req.TenantID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:     req.Date.Format(domain.DateFormat),
		TenantID: req.TenantID,
		StaffID:  req.StaffID,
		Slots:    slots,
	}, nil
}

// resolveScope определяет область запроса и подбирает расписание для неё.
// Для сотрудника проверяет его существование и берёт ТОЛЬКО его часы:
// отсутствие настроенных часов означает "закрыт", часы тенанта не наследуются
func (uc *UseCase) resolveScope(ctx context.Context, req *Request) (availability.Scope, domain.WeeklySchedule, error) {
	if req.StaffID != nil {
		staffID := *req.StaffID
		if _, err := uc.tenantClient.GetStaffMember(ctx, req.TenantID, staffID); err != nil {
			if errors.Is(err, tenantClient.ErrStaffNotFound) {
				uc.logger.Warn("GetDailySlots: staff id=%d not found for tenant=%d", staffID, req.TenantID)
				return availability.Scope{}, nil, ErrStaffNotFound
			}
			uc.logger.Error("GetDailySlots: failed to get staff id=%d: %v", staffID, err)
			return availability.Scope{}, nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
		}

		schedule, err := uc.scheduleRepo.GetStaffHours(ctx, req.TenantID, staffID)
		if err != nil {
			uc.logger.Error("GetDailySlots: failed to get staff hours for staff=%d: %v", staffID, err)
			return availability.Scope{}, nil, fmt.Errorf("%w: failed to get staff hours: %v", ErrInternal, err)
		}
		return availability.StaffScope(staffID), schedule, nil
	}

	schedule, err := uc.scheduleRepo.GetTenantHours(ctx, req.TenantID)
	if err != nil {
		uc.logger.Error("GetDailySlots: failed to get tenant hours for tenant=%d: %v", req.TenantID, err)
		return availability.Scope{}, nil, fmt.Errorf("%w: failed to get tenant hours: %v", ErrInternal, err)
	}

	if req.Unassigned {
		return availability.UnassignedScope(), schedule, nil
	}
	return availability.TenantScope(), schedule, nil
}
