package get_tenant_reservations

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/ktnb/ARS-ReservationService/internal/api/handlers"
	"github.com/ktnb/ARS-ReservationService/internal/api/middleware"
	"github.com/ktnb/ARS-ReservationService/internal/service/reservations"
	"github.com/ktnb/ARS-ReservationService/internal/service/reservations/models"
)

const (
	msgInvalidTenantID  = "некорректный ID тенанта"
	msgInvalidStaffID   = "некорректный ID сотрудника"
	msgInvalidPeriod    = "некорректный формат периода, ожидается RFC3339"
	msgInvalidTimeRange = "начало периода должно быть раньше конца"
	msgInvalidStatus    = "некорректный статус"
	msgMissingAdminID   = "отсутствует ID администратора"
	msgTenantNotFound   = "тенант не найден"
)

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/tenants/{tenantId}/reservations
// Query params: from, to (RFC3339), staffId, scope=unassigned, status,
// includeInactive - все опциональны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	tenantID, err := strconv.ParseInt(vars["tenantId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/reservations - Invalid tenant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	adminID, ok := middleware.GetAdminID(r.Context())
	if !ok {
		h.logger.Warn("GET /tenants/{id}/reservations - Missing admin ID")
		handlers.RespondUnauthorized(w, msgMissingAdminID)
		return
	}

	query := r.URL.Query()

	req := &models.GetTenantReservationsRequest{
		AdminID:         adminID,
		TenantID:        tenantID,
		UnassignedOnly:  query.Get("scope") == "unassigned",
		IncludeInactive: query.Get("includeInactive") == "true",
	}

	if staffIDStr := query.Get("staffId"); staffIDStr != "" {
		staffID, err := strconv.ParseInt(staffIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /tenants/{id}/reservations - Invalid staff ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStaffID)
			return
		}
		req.StaffID = &staffID
	}

	if fromStr := query.Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			h.logger.Warn("GET /tenants/{id}/reservations - Invalid from: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)
			return
		}
		req.From = &from
	}

	if toStr := query.Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			h.logger.Warn("GET /tenants/{id}/reservations - Invalid to: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)
			return
		}
		req.To = &to
	}

	if statusStr := query.Get("status"); statusStr != "" {
		req.Status = &statusStr
	}

	result, err := h.service.GetTenantReservations(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrTenantNotFound):
			h.logger.Warn("GET /tenants/{id}/reservations - Tenant not found: tenant_id=%d", tenantID)
			handlers.RespondNotFound(w, msgTenantNotFound)

		case errors.Is(err, reservations.ErrInvalidTimeRange):
			h.logger.Warn("GET /tenants/{id}/reservations - Invalid time range: tenant_id=%d", tenantID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, reservations.ErrInvalidStatus), errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /tenants/{id}/reservations - Invalid request: tenant_id=%d, error=%v", tenantID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /tenants/{id}/reservations - Failed to get reservations: tenant_id=%d, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tenants/{id}/reservations - Reservations retrieved successfully: tenant_id=%d, count=%d",
		tenantID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
