package update_schedule

import (
	"context"

	"github.com/ktnb/ARS-ReservationService/internal/service/schedule/models"
)

type ScheduleService interface {
	UpdateTenantHours(ctx context.Context, req *models.UpdateTenantHoursRequest) error
	UpdateStaffHours(ctx context.Context, req *models.UpdateStaffHoursRequest) error
	UpdateMenu(ctx context.Context, req *models.UpdateMenuRequest) (*models.MenuPayload, error)
	GetSchedule(ctx context.Context, tenantID int64) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
