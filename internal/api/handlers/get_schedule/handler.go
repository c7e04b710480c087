package get_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ktnb/ARS-ReservationService/internal/api/handlers"
	"github.com/ktnb/ARS-ReservationService/internal/service/schedule"
)

const (
	msgInvalidTenantID = "некорректный ID тенанта"
	msgTenantNotFound  = "тенант не найден"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/tenants/{tenantId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	tenantID, err := strconv.ParseInt(vars["tenantId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/schedule - Invalid tenant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	result, err := h.service.GetSchedule(r.Context(), tenantID)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrTenantNotFound):
			h.logger.Warn("GET /tenants/{id}/schedule - Tenant not found: tenant_id=%d", tenantID)
			handlers.RespondNotFound(w, msgTenantNotFound)

		default:
			h.logger.Error("GET /tenants/{id}/schedule - Failed to get schedule: tenant_id=%d, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tenants/{id}/schedule - Schedule retrieved successfully: tenant_id=%d", tenantID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
