package get_daily_slots

import (
	"time"

	"github.com/ktnb/ARS-ReservationService/internal/domain"
	getDailySlots "github.com/ktnb/ARS-ReservationService/internal/usecase/get_daily_slots"
)

// DailySlotsResponse HTTP response model
type DailySlotsResponse struct {
	Date     string `json:"date"`
	TenantID int64  `json:"tenantId"`
	StaffID  *int64 `json:"staffId,omitempty"`
	Slots    []Slot `json:"slots"`
}

// Slot один слот дня
type Slot struct {
	Datetime string `json:"datetime"`
	IsBooked bool   `json:"is_booked"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDailySlots.Response) *DailySlotsResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = Slot{
			Datetime: slot.Datetime,
			IsBooked: slot.IsBooked,
		}
	}

	return &DailySlotsResponse{
		Date:     resp.Date,
		TenantID: resp.TenantID,
		StaffID:  resp.StaffID,
		Slots:    slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(tenantID int64, dateStr string, staffID *int64, unassigned bool, loc *time.Location) (*getDailySlots.Request, error) {
	// Дата интерпретируется в часовом поясе тенанта
	date, err := time.ParseInLocation(domain.DateFormat, dateStr, loc)
	if err != nil {
		return nil, err
	}

	return &getDailySlots.Request{
		TenantID:   tenantID,
		Date:       date,
		StaffID:    staffID,
		Unassigned: unassigned,
	}, nil
}
