package create_reservation

import (
	"errors"
	"net/http"

	"github.com/ktnb/ARS-ReservationService/internal/api/handlers"
	createReservation "github.com/ktnb/ARS-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDatetime      = "некорректный формат времени, ожидается ISO-8601"
	msgTenantNotFound       = "тенант не найден"
	msgStaffNotFound        = "сотрудник не найден"
	msgSlotNotAvailable     = "выбранный временной слот недоступен"
	msgOutsideBusinessHours = "время за пределами рабочих часов"
	msgDateInPast           = "время брони уже прошло"
	msgInvalidRequest       = "некорректные параметры запроса"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Invalid datetime: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDatetime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrSlotNotAvailable):
			h.logger.Warn("POST /reservations - Slot not available: tenant_id=%d, datetime=%s", req.TenantID, req.Datetime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createReservation.ErrOutsideBusinessHours):
			h.logger.Warn("POST /reservations - Outside business hours: tenant_id=%d, datetime=%s", req.TenantID, req.Datetime)
			handlers.RespondError(w, http.StatusConflict, msgOutsideBusinessHours)

		case errors.Is(err, createReservation.ErrTenantNotFound):
			h.logger.Warn("POST /reservations - Tenant not found: tenant_id=%d", req.TenantID)
			handlers.RespondNotFound(w, msgTenantNotFound)

		case errors.Is(err, createReservation.ErrStaffNotFound):
			h.logger.Warn("POST /reservations - Staff not found: tenant_id=%d, staff_id=%v", req.TenantID, req.StaffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, createReservation.ErrDateInPast):
			h.logger.Warn("POST /reservations - Date in past: tenant_id=%d, datetime=%s", req.TenantID, req.Datetime)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid request: tenant_id=%d, error=%v", req.TenantID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: tenant_id=%d, error=%v", req.TenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, tenant_id=%d",
		result.ID, result.TenantID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
