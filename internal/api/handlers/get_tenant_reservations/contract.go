package get_tenant_reservations

import (
	"context"

	"github.com/ktnb/ARS-ReservationService/internal/service/reservations/models"
)

type ReservationsService interface {
	GetTenantReservations(ctx context.Context, req *models.GetTenantReservationsRequest) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
