package create_reservation

import (
	"context"
	"time"

	"github.com/ktnb/ARS-ReservationService/internal/domain"
	"github.com/ktnb/ARS-ReservationService/internal/integrations/tenantservice"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	GetByTenantWithFilter(ctx context.Context, filter domain.TenantReservationsFilter) ([]*domain.Reservation, error)
}

// ScheduleRepository интерфейс репозитория рабочих часов
type ScheduleRepository interface {
	GetTenantHours(ctx context.Context, tenantID int64) (domain.WeeklySchedule, error)
	GetStaffHours(ctx context.Context, tenantID, staffID int64) (domain.WeeklySchedule, error)
}

// MenuRepository интерфейс репозитория меню
type MenuRepository interface {
	GetByTenant(ctx context.Context, tenantID int64) (*domain.ReservationMenu, error)
}

// TenantServiceClient интерфейс клиента для TenantService
type TenantServiceClient interface {
	GetTenant(ctx context.Context, tenantID int64) (*tenantservice.Tenant, error)
	GetStaffMember(ctx context.Context, tenantID, staffID int64) (*tenantservice.StaffMember, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
