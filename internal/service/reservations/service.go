package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/ktnb/ARS-ReservationService/internal/domain"
	reservationRepo "github.com/ktnb/ARS-ReservationService/internal/infra/storage/reservation"
	tenantClient "github.com/ktnb/ARS-ReservationService/internal/integrations/tenantservice"
	"github.com/ktnb/ARS-ReservationService/internal/service/reservations/models"
)

// Service сервис для работы с бронями (админский кабинет)
type Service struct {
	reservationRepo ReservationRepository
	tenantClient    TenantServiceClient
	logger          Logger
}

// NewService создает новый экземпляр сервиса броней
func NewService(
	reservationRepo ReservationRepository,
	tenantClient TenantServiceClient,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		tenantClient:    tenantClient,
		logger:          logger,
	}
}

// GetByID получает бронь по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(reservation), nil
}

// GetTenantReservations получает брони тенанта с гибкой фильтрацией
// Поддерживает фильтрацию по сотруднику, периоду, статусу и включению
// неактивных броней. Используется админским календарём и списком броней.
func (s *Service) GetTenantReservations(ctx context.Context, req *models.GetTenantReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetTenantReservations: fetching reservations for tenant=%d by admin=%d", req.TenantID, req.AdminID)

	// Проверяем существование тенанта
	if _, err := s.tenantClient.GetTenant(ctx, req.TenantID); err != nil {
		if errors.Is(err, tenantClient.ErrTenantNotFound) {
			s.logger.Warn("GetTenantReservations: tenant id=%d not found", req.TenantID)
			return nil, ErrTenantNotFound
		}
		s.logger.Error("GetTenantReservations: failed to get tenant id=%d: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: failed to get tenant: %v", ErrInternal, err)
	}

	// Временной диапазон должен быть упорядочен
	if req.From != nil && req.To != nil && !req.From.Before(*req.To) {
		s.logger.Warn("GetTenantReservations: invalid time range for tenant=%d", req.TenantID)
		return nil, ErrInvalidTimeRange
	}

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetTenantReservations: invalid filter for tenant=%d: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.GetByTenantWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetTenantReservations: repository error for tenant=%d: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: GetTenantReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetTenantReservations: successfully fetched %d reservations for tenant=%d",
		len(reservations), req.TenantID)
	return models.FromDomainReservationList(reservations), nil
}

// Cancel отменяет бронь от имени администратора тенанта
func (s *Service) Cancel(ctx context.Context, reservationID int64, req *models.CancelReservationRequest) error {
	s.logger.Info("Cancel: cancelling reservation id=%d by admin=%d", reservationID, req.AdminID)

	// Получаем бронь
	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем, можно ли отменить бронь
	if !reservation.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%d cannot be cancelled, status=%s", reservationID, reservation.Status)
		return ErrCannotCancel
	}

	var reason *string
	if req.CancellationReason != "" {
		reason = &req.CancellationReason
	}

	if err := s.reservationRepo.Cancel(ctx, reservationID, domain.StatusCancelledByTenant, reason); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found during cancellation", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%d", reservationID)
	return nil
}

// UpdateStatus обновляет статус брони (completed, no_show)
func (s *Service) UpdateStatus(ctx context.Context, reservationID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating reservation id=%d to status=%s by admin=%d",
		reservationID, req.Status, req.AdminID)

	if _, err := s.reservationRepo.GetByID(ctx, reservationID); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("UpdateStatus: reservation id=%d not found", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("UpdateStatus: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Валидируем и конвертируем статус
	newStatus, err := models.ToDomainReservationStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for reservation id=%d", req.Status, reservationID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if err := s.reservationRepo.UpdateStatus(ctx, reservationID, newStatus); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("UpdateStatus: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated reservation id=%d to status=%s", reservationID, newStatus)
	return nil
}
