package get_daily_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/ktnb/ARS-ReservationService/internal/api/handlers"
	getDailySlots "github.com/ktnb/ARS-ReservationService/internal/usecase/get_daily_slots"
)

const (
	msgInvalidTenantID = "некорректный ID тенанта"
	msgInvalidStaffID  = "некорректный ID сотрудника"
	msgMissingDate     = "дата обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidScope    = "некорректный параметр scope"
	msgTenantNotFound  = "тенант не найден"
	msgStaffNotFound   = "сотрудник не найден"
	msgInvalidRequest  = "некорректные параметры запроса"
)

type Handler struct {
	useCase  GetDailySlotsUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase GetDailySlotsUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/tenants/{tenantId}/available-slots
// Query params: date (required, YYYY-MM-DD), staffId | scope=unassigned (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	tenantID, err := strconv.ParseInt(vars["tenantId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/available-slots - Invalid tenant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /tenants/{id}/available-slots - Missing date: tenant_id=%d", tenantID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	var staffID *int64
	if staffIDStr := r.URL.Query().Get("staffId"); staffIDStr != "" {
		id, err := strconv.ParseInt(staffIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /tenants/{id}/available-slots - Invalid staff ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStaffID)
			return
		}
		staffID = &id
	}

	unassigned := false
	if scope := r.URL.Query().Get("scope"); scope != "" {
		if scope != "unassigned" {
			h.logger.Warn("GET /tenants/{id}/available-slots - Invalid scope: %s", scope)
			handlers.RespondBadRequest(w, msgInvalidScope)
			return
		}
		unassigned = true
	}

	useCaseReq, err := ToUseCaseRequest(tenantID, dateStr, staffID, unassigned, h.location)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getDailySlots.ErrTenantNotFound):
			h.logger.Warn("GET /tenants/{id}/available-slots - Tenant not found: tenant_id=%d", tenantID)
			handlers.RespondNotFound(w, msgTenantNotFound)

		case errors.Is(err, getDailySlots.ErrStaffNotFound):
			h.logger.Warn("GET /tenants/{id}/available-slots - Staff not found: tenant_id=%d, staff_id=%v", tenantID, staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, getDailySlots.ErrInvalidInput), errors.Is(err, getDailySlots.ErrInvalidDate):
			h.logger.Warn("GET /tenants/{id}/available-slots - Invalid request: tenant_id=%d, error=%v", tenantID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /tenants/{id}/available-slots - Failed to get slots: tenant_id=%d, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tenants/{id}/available-slots - Slots retrieved successfully: tenant_id=%d, date=%s, slots_count=%d",
		tenantID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
