package schedule

import (
	"context"

	"github.com/ktnb/ARS-ReservationService/internal/domain"
	"github.com/ktnb/ARS-ReservationService/internal/integrations/tenantservice"
)

// ScheduleRepository интерфейс репозитория рабочих часов
type ScheduleRepository interface {
	GetTenantHours(ctx context.Context, tenantID int64) (domain.WeeklySchedule, error)
	GetStaffHours(ctx context.Context, tenantID, staffID int64) (domain.WeeklySchedule, error)
	GetAllStaffHours(ctx context.Context, tenantID int64) (map[int64]domain.WeeklySchedule, error)
	ReplaceTenantHours(ctx context.Context, tenantID int64, schedule domain.WeeklySchedule) error
	ReplaceStaffHours(ctx context.Context, tenantID, staffID int64, schedule domain.WeeklySchedule) error
}

// MenuRepository интерфейс репозитория меню
type MenuRepository interface {
	GetByTenant(ctx context.Context, tenantID int64) (*domain.ReservationMenu, error)
	Upsert(ctx context.Context, menu *domain.ReservationMenu) (*domain.ReservationMenu, error)
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

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
