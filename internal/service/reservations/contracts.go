package reservations

import (
	"context"

	"github.com/ktnb/ARS-ReservationService/internal/domain"
	"github.com/ktnb/ARS-ReservationService/internal/integrations/tenantservice"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByTenantWithFilter(ctx context.Context, filter domain.TenantReservationsFilter) ([]*domain.Reservation, error)
	Cancel(ctx context.Context, id int64, status domain.ReservationStatus, reason *string) error
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
}

// TenantServiceClient интерфейс клиента для TenantService
type TenantServiceClient interface {
	GetTenant(ctx context.Context, tenantID int64) (*tenantservice.Tenant, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
