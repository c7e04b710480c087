package update_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ktnb/ARS-ReservationService/internal/api/handlers"
	"github.com/ktnb/ARS-ReservationService/internal/api/middleware"
	"github.com/ktnb/ARS-ReservationService/internal/service/schedule"
	"github.com/ktnb/ARS-ReservationService/internal/service/schedule/models"
)

const (
	msgInvalidTenantID     = "некорректный ID тенанта"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgMissingAdminID      = "отсутствует ID администратора"
	msgEmptyRequest        = "запрос не содержит изменений"
	msgTenantNotFound      = "тенант не найден"
	msgStaffNotFound       = "сотрудник не найден"
	msgInvalidInterval     = "некорректный интервал рабочих часов"
	msgOverlappingInterval = "интервалы рабочих часов пересекаются"
	msgStaffHoursNotSubset = "часы сотрудника выходят за рабочие часы тенанта"
	msgInvalidMenu         = "некорректная конфигурация меню"
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

// Handle PUT /api/v1/tenants/{tenantId}/schedule
// Секции businessHours, staff и menu заменяются независимо;
// отсутствующие секции не трогаются
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	tenantID, err := strconv.ParseInt(vars["tenantId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /tenants/{id}/schedule - Invalid tenant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	adminID, ok := middleware.GetAdminID(r.Context())
	if !ok {
		h.logger.Warn("PUT /tenants/{id}/schedule - Missing admin ID")
		handlers.RespondUnauthorized(w, msgMissingAdminID)
		return
	}

	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /tenants/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.BusinessHours == nil && len(req.Staff) == 0 && req.Menu == nil {
		h.logger.Warn("PUT /tenants/{id}/schedule - Empty request: tenant_id=%d", tenantID)
		handlers.RespondBadRequest(w, msgEmptyRequest)
		return
	}

	if req.BusinessHours != nil {
		err := h.service.UpdateTenantHours(r.Context(), &models.UpdateTenantHoursRequest{
			AdminID:       adminID,
			TenantID:      tenantID,
			BusinessHours: toServiceIntervals(*req.BusinessHours),
		})
		if err != nil {
			h.respondServiceError(w, tenantID, err)
			return
		}
	}

	for _, staff := range req.Staff {
		err := h.service.UpdateStaffHours(r.Context(), &models.UpdateStaffHoursRequest{
			AdminID:       adminID,
			TenantID:      tenantID,
			StaffID:       staff.StaffID,
			BusinessHours: toServiceIntervals(staff.BusinessHours),
		})
		if err != nil {
			h.respondServiceError(w, tenantID, err)
			return
		}
	}

	if req.Menu != nil {
		_, err := h.service.UpdateMenu(r.Context(), &models.UpdateMenuRequest{
			AdminID:         adminID,
			TenantID:        tenantID,
			Name:            req.Menu.Name,
			DurationMinutes: req.Menu.DurationMinutes,
			StartMinutes:    req.Menu.StartMinutes,
		})
		if err != nil {
			h.respondServiceError(w, tenantID, err)
			return
		}
	}

	// Возвращаем итоговое расписание
	result, err := h.service.GetSchedule(r.Context(), tenantID)
	if err != nil {
		h.respondServiceError(w, tenantID, err)
		return
	}

	h.logger.Info("PUT /tenants/{id}/schedule - Schedule updated successfully: tenant_id=%d, admin_id=%d",
		tenantID, adminID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, tenantID int64, err error) {
	switch {
	case errors.Is(err, schedule.ErrTenantNotFound):
		h.logger.Warn("PUT /tenants/{id}/schedule - Tenant not found: tenant_id=%d", tenantID)
		handlers.RespondNotFound(w, msgTenantNotFound)

	case errors.Is(err, schedule.ErrStaffNotFound):
		h.logger.Warn("PUT /tenants/{id}/schedule - Staff not found: tenant_id=%d, error=%v", tenantID, err)
		handlers.RespondNotFound(w, msgStaffNotFound)

	case errors.Is(err, schedule.ErrInvalidInterval), errors.Is(err, schedule.ErrInvalidInput):
		h.logger.Warn("PUT /tenants/{id}/schedule - Invalid interval: tenant_id=%d, error=%v", tenantID, err)
		handlers.RespondBadRequest(w, msgInvalidInterval)

	case errors.Is(err, schedule.ErrOverlappingIntervals):
		h.logger.Warn("PUT /tenants/{id}/schedule - Overlapping intervals: tenant_id=%d, error=%v", tenantID, err)
		handlers.RespondBadRequest(w, msgOverlappingInterval)

	case errors.Is(err, schedule.ErrStaffHoursNotSubset):
		h.logger.Warn("PUT /tenants/{id}/schedule - Staff hours not subset: tenant_id=%d, error=%v", tenantID, err)
		handlers.RespondError(w, http.StatusConflict, msgStaffHoursNotSubset)

	case errors.Is(err, schedule.ErrInvalidMenu):
		h.logger.Warn("PUT /tenants/{id}/schedule - Invalid menu: tenant_id=%d, error=%v", tenantID, err)
		handlers.RespondBadRequest(w, msgInvalidMenu)

	default:
		h.logger.Error("PUT /tenants/{id}/schedule - Failed to update schedule: tenant_id=%d, error=%v", tenantID, err)
		handlers.RespondInternalError(w)
	}
}
