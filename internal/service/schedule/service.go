package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/ktnb/ARS-ReservationService/internal/domain"
	menuRepo "github.com/ktnb/ARS-ReservationService/internal/infra/storage/menu"
	tenantClient "github.com/ktnb/ARS-ReservationService/internal/integrations/tenantservice"
	"github.com/ktnb/ARS-ReservationService/internal/service/schedule/models"
)

// Service сервис для управления расписанием тенанта:
// рабочие часы тенанта, рабочие часы сотрудников и меню
type Service struct {
	scheduleRepo ScheduleRepository
	menuRepo     MenuRepository
	tenantClient TenantServiceClient
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	scheduleRepo ScheduleRepository,
	menuRepo MenuRepository,
	tenantClient TenantServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		menuRepo:     menuRepo,
		tenantClient: tenantClient,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetSchedule возвращает полное расписание тенанта: рабочие часы,
// часы всех настроенных сотрудников и меню
func (s *Service) GetSchedule(ctx context.Context, tenantID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("GetSchedule: fetching schedule for tenant=%d", tenantID)

	if err := s.checkTenantExists(ctx, tenantID); err != nil {
		return nil, err
	}

	tenantHours, err := s.scheduleRepo.GetTenantHours(ctx, tenantID)
	if err != nil {
		s.logger.Error("GetSchedule: failed to fetch tenant hours for tenant=%d: %v", tenantID, err)
		return nil, fmt.Errorf("%w: GetSchedule - tenant hours: %v", ErrInternal, err)
	}

	staffHours, err := s.scheduleRepo.GetAllStaffHours(ctx, tenantID)
	if err != nil {
		s.logger.Error("GetSchedule: failed to fetch staff hours for tenant=%d: %v", tenantID, err)
		return nil, fmt.Errorf("%w: GetSchedule - staff hours: %v", ErrInternal, err)
	}

	menu, isDefault, err := s.resolveMenu(ctx, tenantID)
	if err != nil {
		s.logger.Error("GetSchedule: failed to fetch menu for tenant=%d: %v", tenantID, err)
		return nil, fmt.Errorf("%w: GetSchedule - menu: %v", ErrInternal, err)
	}

	staff := make([]models.StaffHoursPayload, 0, len(staffHours))
	for staffID, hours := range staffHours {
		staff = append(staff, models.StaffHoursPayload{
			StaffID:       staffID,
			BusinessHours: models.FromDomainSchedule(hours),
		})
	}

	s.logger.Info("GetSchedule: successfully fetched schedule for tenant=%d (staff=%d)", tenantID, len(staff))
	return &models.ScheduleResponse{
		TenantID:      tenantID,
		BusinessHours: models.FromDomainSchedule(tenantHours),
		Staff:         staff,
		Menu:          models.FromDomainMenu(menu, isDefault),
	}, nil
}

// UpdateTenantHours полностью заменяет рабочие часы тенанта.
// Проверяет, что после замены часы всех уже настроенных сотрудников
// по-прежнему лежат внутри часов тенанта
func (s *Service) UpdateTenantHours(ctx context.Context, req *models.UpdateTenantHoursRequest) error {
	s.logger.Info("UpdateTenantHours: updating hours for tenant=%d by admin=%d", req.TenantID, req.AdminID)

	if err := s.checkTenantExists(ctx, req.TenantID); err != nil {
		return err
	}

	schedule, err := s.toDomainSchedule(req.BusinessHours)
	if err != nil {
		s.logger.Warn("UpdateTenantHours: invalid hours for tenant=%d: %v", req.TenantID, err)
		return err
	}

	staffHours, err := s.scheduleRepo.GetAllStaffHours(ctx, req.TenantID)
	if err != nil {
		s.logger.Error("UpdateTenantHours: failed to fetch staff hours for tenant=%d: %v", req.TenantID, err)
		return fmt.Errorf("%w: UpdateTenantHours - staff hours: %v", ErrInternal, err)
	}

	for staffID, hours := range staffHours {
		for _, interval := range hours {
			if !schedule.ContainsInterval(interval) {
				s.logger.Warn("UpdateTenantHours: staff=%d hours no longer fit tenant=%d hours", staffID, req.TenantID)
				return fmt.Errorf("%w: staff %d interval %s %s-%s",
					ErrStaffHoursNotSubset, staffID, interval.DayOfWeek, interval.StartTime, interval.EndTime)
			}
		}
	}

	err = s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		return s.scheduleRepo.ReplaceTenantHours(ctx, req.TenantID, schedule)
	})
	if err != nil {
		s.logger.Error("UpdateTenantHours: failed to replace hours for tenant=%d: %v", req.TenantID, err)
		return fmt.Errorf("%w: UpdateTenantHours - replace: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateTenantHours: successfully updated hours for tenant=%d", req.TenantID)
	return nil
}

// UpdateStaffHours полностью заменяет рабочие часы сотрудника.
// Часы сотрудника обязаны лежать внутри рабочих часов тенанта
func (s *Service) UpdateStaffHours(ctx context.Context, req *models.UpdateStaffHoursRequest) error {
	s.logger.Info("UpdateStaffHours: updating hours for staff=%d of tenant=%d by admin=%d",
		req.StaffID, req.TenantID, req.AdminID)

	if err := s.checkTenantExists(ctx, req.TenantID); err != nil {
		return err
	}

	if _, err := s.tenantClient.GetStaffMember(ctx, req.TenantID, req.StaffID); err != nil {
		if errors.Is(err, tenantClient.ErrStaffNotFound) {
			s.logger.Warn("UpdateStaffHours: staff=%d not found for tenant=%d", req.StaffID, req.TenantID)
			return ErrStaffNotFound
		}
		s.logger.Error("UpdateStaffHours: tenant service error for staff=%d: %v", req.StaffID, err)
		return fmt.Errorf("%w: UpdateStaffHours - tenant service: %v", ErrInternal, err)
	}

	schedule, err := s.toDomainSchedule(req.BusinessHours)
	if err != nil {
		s.logger.Warn("UpdateStaffHours: invalid hours for staff=%d: %v", req.StaffID, err)
		return err
	}

	tenantHours, err := s.scheduleRepo.GetTenantHours(ctx, req.TenantID)
	if err != nil {
		s.logger.Error("UpdateStaffHours: failed to fetch tenant hours for tenant=%d: %v", req.TenantID, err)
		return fmt.Errorf("%w: UpdateStaffHours - tenant hours: %v", ErrInternal, err)
	}

	for _, interval := range schedule {
		if !tenantHours.ContainsInterval(interval) {
			s.logger.Warn("UpdateStaffHours: staff=%d interval outside tenant=%d hours", req.StaffID, req.TenantID)
			return fmt.Errorf("%w: interval %s %s-%s",
				ErrStaffHoursNotSubset, interval.DayOfWeek, interval.StartTime, interval.EndTime)
		}
	}

	err = s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		return s.scheduleRepo.ReplaceStaffHours(ctx, req.TenantID, req.StaffID, schedule)
	})
	if err != nil {
		s.logger.Error("UpdateStaffHours: failed to replace hours for staff=%d: %v", req.StaffID, err)
		return fmt.Errorf("%w: UpdateStaffHours - replace: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStaffHours: successfully updated hours for staff=%d of tenant=%d", req.StaffID, req.TenantID)
	return nil
}

// UpdateMenu создает или обновляет меню тенанта
func (s *Service) UpdateMenu(ctx context.Context, req *models.UpdateMenuRequest) (*models.MenuPayload, error) {
	s.logger.Info("UpdateMenu: updating menu for tenant=%d by admin=%d", req.TenantID, req.AdminID)

	if err := s.checkTenantExists(ctx, req.TenantID); err != nil {
		return nil, err
	}

	menu := req.ToDomainMenu()
	if err := menu.Validate(); err != nil {
		s.logger.Warn("UpdateMenu: invalid menu for tenant=%d: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidMenu, err)
	}

	updated, err := s.menuRepo.Upsert(ctx, menu)
	if err != nil {
		s.logger.Error("UpdateMenu: failed to upsert menu for tenant=%d: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: UpdateMenu - upsert: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateMenu: successfully updated menu for tenant=%d", req.TenantID)
	payload := models.FromDomainMenu(updated, false)
	return &payload, nil
}

// checkTenantExists проверяет существование тенанта через TenantService
func (s *Service) checkTenantExists(ctx context.Context, tenantID int64) error {
	if _, err := s.tenantClient.GetTenant(ctx, tenantID); err != nil {
		if errors.Is(err, tenantClient.ErrTenantNotFound) {
			s.logger.Warn("checkTenantExists: tenant=%d not found", tenantID)
			return ErrTenantNotFound
		}
		s.logger.Error("checkTenantExists: tenant service error for tenant=%d: %v", tenantID, err)
		return fmt.Errorf("%w: tenant service: %v", ErrInternal, err)
	}
	return nil
}

// resolveMenu возвращает меню тенанта или меню по умолчанию, если оно не настроено
func (s *Service) resolveMenu(ctx context.Context, tenantID int64) (*domain.ReservationMenu, bool, error) {
	menu, err := s.menuRepo.GetByTenant(ctx, tenantID)
	if err != nil {
		if errors.Is(err, menuRepo.ErrMenuNotFound) {
			return domain.DefaultMenu(), true, nil
		}
		return nil, false, err
	}
	return menu, false, nil
}

// toDomainSchedule конвертирует и валидирует интервалы запроса:
// каждый интервал корректен и интервалы одного дня не пересекаются
func (s *Service) toDomainSchedule(payload []models.IntervalPayload) (domain.WeeklySchedule, error) {
	schedule := make(domain.WeeklySchedule, 0, len(payload))
	for _, p := range payload {
		if p.DayOfWeek < 0 || p.DayOfWeek > 6 {
			return nil, fmt.Errorf("%w: day of week %d out of range", ErrInvalidInput, p.DayOfWeek)
		}
		interval := p.ToDomainInterval()
		if err := interval.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInterval, err)
		}
		for _, existing := range schedule {
			if existing.Overlaps(interval) {
				return nil, fmt.Errorf("%w: %s %s-%s",
					ErrOverlappingIntervals, interval.DayOfWeek, interval.StartTime, interval.EndTime)
			}
		}
		schedule = append(schedule, interval)
	}
	return schedule, nil
}
