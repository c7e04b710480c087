package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ktnb/ARS-ReservationService/internal/availability"
	"github.com/ktnb/ARS-ReservationService/internal/domain"
	menuRepo "github.com/ktnb/ARS-ReservationService/internal/infra/storage/menu"
	tenantClient "github.com/ktnb/ARS-ReservationService/internal/integrations/tenantservice"
	"github.com/ktnb/ARS-ReservationService/pkg/ptr"
)

// UseCase use case для создания брони
type UseCase struct {
	reservationRepo ReservationRepository
	scheduleRepo    ScheduleRepository
	menuRepo        MenuRepository
	tenantClient    TenantServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	location        *time.Location
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	scheduleRepo ScheduleRepository,
	menuRepo MenuRepository,
	tenantClient TenantServiceClient,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		scheduleRepo:    scheduleRepo,
		menuRepo:        menuRepo,
		tenantClient:    tenantClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		location:        location,
		logger:          logger,
	}
}

// Execute выполняет use case создания брони.
// Проверка доступности слота и вставка выполняются в одной сериализуемой
// транзакции, чтобы две конкурирующие брони не заняли один слот
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: tenant=%d, staff=%v, start=%s",
		req.TenantID, req.StaffID, req.StartAt.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Запрошенное время не должно быть в прошлом
	now := uc.timeProvider.Now()
	if !req.StartAt.After(now) {
		uc.logger.Warn("CreateReservation: requested time %s is in the past", req.StartAt.Format(time.RFC3339))
		return nil, ErrDateInPast
	}

	// 3. Проверяем существование тенанта
	if _, err := uc.tenantClient.GetTenant(ctx, req.TenantID); err != nil {
		if errors.Is(err, tenantClient.ErrTenantNotFound) {
			uc.logger.Warn("CreateReservation: tenant id=%d not found", req.TenantID)
			return nil, ErrTenantNotFound
		}
		uc.logger.Error("CreateReservation: failed to get tenant id=%d: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: failed to get tenant: %v", ErrInternal, err)
	}

	// 4. Проверяем существование сотрудника, если бронь закрепляется
	if req.StaffID != nil {
		if _, err := uc.tenantClient.GetStaffMember(ctx, req.TenantID, *req.StaffID); err != nil {
			if errors.Is(err, tenantClient.ErrStaffNotFound) {
				uc.logger.Warn("CreateReservation: staff id=%d not found for tenant=%d", *req.StaffID, req.TenantID)
				return nil, ErrStaffNotFound
			}
			uc.logger.Error("CreateReservation: failed to get staff id=%d: %v", *req.StaffID, err)
			return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
		}
	}

	var result *domain.Reservation

	// 5. Проверка слота и вставка в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Рабочие часы области: свои у сотрудника, иначе часы тенанта
		schedule, err := uc.resolveSchedule(txCtx, req)
		if err != nil {
			return err
		}

		// 5.2. Меню тенанта (или меню по умолчанию)
		menu, err := uc.menuRepo.GetByTenant(txCtx, req.TenantID)
		if err != nil {
			if !errors.Is(err, menuRepo.ErrMenuNotFound) {
				uc.logger.Error("CreateReservation: failed to get menu: %v", err)
				return fmt.Errorf("%w: failed to get menu: %v", ErrInternal, err)
			}
			menu = domain.DefaultMenu()
		}

		// 5.3. Запрошенный момент обязан совпасть с одним из слотов дня
		local := req.StartAt.In(uc.location)
		year, month, day := local.Date()

		slots, err := availability.GenerateSlots(year, month, day, schedule, menu, uc.location)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to generate slots: %v", err)
			return fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
		}

		if !slotExists(slots, req.StartAt) {
			uc.logger.Warn("CreateReservation: %s does not match any slot for tenant=%d",
				req.StartAt.Format(time.RFC3339), req.TenantID)
			return ErrOutsideBusinessHours
		}

		// 5.4. Активные брони, способные пересечь запрошенный интервал
		dayStart := time.Date(year, month, day, 0, 0, 0, 0, uc.location)
		windowStart := dayStart.Add(-time.Duration(domain.MaxSlotDurationMinutes) * time.Minute)
		windowEnd := dayStart.AddDate(0, 0, 1)

		reservations, err := uc.reservationRepo.GetByTenantWithFilter(txCtx, domain.TenantReservationsFilter{
			TenantID: req.TenantID,
			StartAt:  &windowStart,
			EndAt:    &windowEnd,
		})
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 5.5. Проверяем пересечения только в своей области
		scoped := availability.FilterReservations(uc.scope(req), reservations)
		if availability.IsInstantBlocked(req.StartAt, menu.DurationMinutes, scoped) {
			uc.logger.Warn("CreateReservation: slot %s already taken for tenant=%d",
				req.StartAt.Format(time.RFC3339), req.TenantID)
			return ErrSlotNotAvailable
		}

		// 5.6. Сохраняем бронь с денормализацией меню
		reservation := &domain.Reservation{
			TenantID:        req.TenantID,
			StaffID:         req.StaffID,
			StartAt:         req.StartAt.UTC(),
			DurationMinutes: ptr.Ptr(menu.DurationMinutes),
			Status:          domain.StatusConfirmed,
			MenuName:        menu.Name,
			CustomerName:    req.CustomerName,
			CustomerEmail:   req.CustomerEmail,
			Notes:           req.Notes,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		TenantID:        result.TenantID,
		StaffID:         result.StaffID,
		Datetime:        result.StartAt.UTC().Format(time.RFC3339),
		DurationMinutes: result.EffectiveDuration(),
		Status:          string(result.Status),
		MenuName:        result.MenuName,
		CustomerName:    result.CustomerName,
		CustomerEmail:   result.CustomerEmail,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt.UTC().Format(time.RFC3339),
	}, nil
}

// scope возвращает область проверки пересечений для запроса
func (uc *UseCase) scope(req *Request) availability.Scope {
	if req.StaffID != nil {
		return availability.StaffScope(*req.StaffID)
	}
	return availability.TenantScope()
}

// resolveSchedule выбирает рабочие часы области запроса
func (uc *UseCase) resolveSchedule(ctx context.Context, req *Request) (domain.WeeklySchedule, error) {
	if req.StaffID != nil {
		schedule, err := uc.scheduleRepo.GetStaffHours(ctx, req.TenantID, *req.StaffID)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get staff hours for staff=%d: %v", *req.StaffID, err)
			return nil, fmt.Errorf("%w: failed to get staff hours: %v", ErrInternal, err)
		}
		return schedule, nil
	}

	schedule, err := uc.scheduleRepo.GetTenantHours(ctx, req.TenantID)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to get tenant hours for tenant=%d: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: failed to get tenant hours: %v", ErrInternal, err)
	}
	return schedule, nil
}

// slotExists проверяет, что момент совпадает с началом одного из слотов
func slotExists(slots []domain.TimeSlot, startAt time.Time) bool {
	for _, slot := range slots {
		if slot.StartAt.Equal(startAt) {
			return true
		}
	}
	return false
}
