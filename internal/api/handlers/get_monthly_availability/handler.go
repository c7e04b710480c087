package get_monthly_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ktnb/ARS-ReservationService/internal/api/handlers"
	getMonthlyAvailability "github.com/ktnb/ARS-ReservationService/internal/usecase/get_monthly_availability"
)

const (
	msgInvalidTenantID = "некорректный ID тенанта"
	msgInvalidStaffID  = "некорректный ID сотрудника"
	msgMissingPeriod   = "параметры year и month обязательны"
	msgInvalidPeriod   = "некорректный год или месяц"
	msgTenantNotFound  = "тенант не найден"
	msgStaffNotFound   = "сотрудник не найден"
	msgInvalidRequest  = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetMonthlyAvailabilityUseCase
	full    bool
	logger  Logger
}

// NewHandler создает обработчик публичного календаря
func NewHandler(useCase GetMonthlyAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// NewFullHandler создает обработчик административного календаря
// с разбивкой по сотрудникам
func NewFullHandler(useCase GetMonthlyAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		full:    true,
		logger:  logger,
	}
}

// Handle GET /api/v1/tenants/{tenantId}/availability[/full]
// Query params: year (required), month (required), staffId (optional, public only)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	tenantID, err := strconv.ParseInt(vars["tenantId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/availability - Invalid tenant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	yearStr := r.URL.Query().Get("year")
	monthStr := r.URL.Query().Get("month")
	if yearStr == "" || monthStr == "" {
		h.logger.Warn("GET /tenants/{id}/availability - Missing period: tenant_id=%d", tenantID)
		handlers.RespondBadRequest(w, msgMissingPeriod)
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/availability - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/availability - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	var staffID *int64
	if staffIDStr := r.URL.Query().Get("staffId"); staffIDStr != "" && !h.full {
		id, err := strconv.ParseInt(staffIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /tenants/{id}/availability - Invalid staff ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStaffID)
			return
		}
		staffID = &id
	}

	result, err := h.useCase.Execute(r.Context(), &getMonthlyAvailability.Request{
		TenantID: tenantID,
		Year:     year,
		Month:    month,
		StaffID:  staffID,
		Full:     h.full,
	})
	if err != nil {
		switch {
		case errors.Is(err, getMonthlyAvailability.ErrTenantNotFound):
			h.logger.Warn("GET /tenants/{id}/availability - Tenant not found: tenant_id=%d", tenantID)
			handlers.RespondNotFound(w, msgTenantNotFound)

		case errors.Is(err, getMonthlyAvailability.ErrStaffNotFound):
			h.logger.Warn("GET /tenants/{id}/availability - Staff not found: tenant_id=%d, staff_id=%v", tenantID, staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, getMonthlyAvailability.ErrInvalidPeriod):
			h.logger.Warn("GET /tenants/{id}/availability - Invalid period: tenant_id=%d, year=%d, month=%d", tenantID, year, month)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, getMonthlyAvailability.ErrInvalidInput):
			h.logger.Warn("GET /tenants/{id}/availability - Invalid request: tenant_id=%d, error=%v", tenantID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /tenants/{id}/availability - Failed to get calendar: tenant_id=%d, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tenants/{id}/availability - Calendar retrieved successfully: tenant_id=%d, period=%d-%02d",
		tenantID, year, month)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
