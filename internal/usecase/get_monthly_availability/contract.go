package get_monthly_availability

import (
	"context"

	"github.com/ktnb/ARS-ReservationService/internal/domain"
	"github.com/ktnb/ARS-ReservationService/internal/integrations/tenantservice"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	// GetByTenantWithFilter получает брони тенанта по фильтру (только активные)
	GetByTenantWithFilter(ctx context.Context, filter domain.TenantReservationsFilter) ([]*domain.Reservation, error)
}

// ScheduleRepository интерфейс репозитория рабочих часов
type ScheduleRepository interface {
	GetTenantHours(ctx context.Context, tenantID int64) (domain.WeeklySchedule, error)
	GetStaffHours(ctx context.Context, tenantID, staffID int64) (domain.WeeklySchedule, error)
	GetAllStaffHours(ctx context.Context, tenantID int64) (map[int64]domain.WeeklySchedule, error)
}

// MenuRepository интерфейс репозитория меню
type MenuRepository interface {
	GetByTenant(ctx context.Context, tenantID int64) (*domain.ReservationMenu, error)
}

// TenantServiceClient интерфейс клиента для TenantService
type TenantServiceClient interface {
	GetTenant(ctx context.Context, tenantID int64) (*tenantservice.Tenant, error)
	GetStaffMembers(ctx context.Context, tenantID int64) ([]tenantservice.StaffMember, error)
	GetStaffMember(ctx context.Context, tenantID, staffID int64) (*tenantservice.StaffMember, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
