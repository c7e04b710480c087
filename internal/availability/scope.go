package availability

import "github.com/ktnb/ARS-ReservationService/internal/domain"

// ScopeKind вид области расчёта доступности
type ScopeKind string

const (
	// ScopeTenant расписание тенанта, блокируют все активные брони
	ScopeTenant ScopeKind = "tenant"

	// ScopeUnassigned расписание тенанта, блокируют только брони
	// без назначенного сотрудника
	ScopeUnassigned ScopeKind = "unassigned"

	// ScopeStaff расписание конкретного сотрудника, блокируют только его брони
	ScopeStaff ScopeKind = "staff"
)

// Scope область, для которой считается доступность
type Scope struct {
	Kind    ScopeKind
	StaffID int64 // заполняется только для ScopeStaff
}

// TenantScope область всего тенанта
func TenantScope() Scope {
	return Scope{Kind: ScopeTenant}
}

// UnassignedScope область броней без сотрудника
func UnassignedScope() Scope {
	return Scope{Kind: ScopeUnassigned}
}

// StaffScope область одного сотрудника
func StaffScope(staffID int64) Scope {
	return Scope{Kind: ScopeStaff, StaffID: staffID}
}

// ResolveIntervals выбирает источник рабочих часов для области.
// ScopeTenant и ScopeUnassigned используют часы тенанта. ScopeStaff - только
// собственные часы сотрудника: отсутствие у сотрудника интервалов на день
// означает "закрыт", часы тенанта НЕ наследуются.
func ResolveIntervals(
	scope Scope,
	tenantSchedule domain.WeeklySchedule,
	staffSchedules map[int64]domain.WeeklySchedule,
) domain.WeeklySchedule {
	if scope.Kind == ScopeStaff {
		return staffSchedules[scope.StaffID]
	}
	return tenantSchedule
}

// FilterReservations возвращает брони, участвующие в проверке пересечений
// для области. Предикат фильтрации определяется областью, а не резолвером
// пересечений.
func FilterReservations(scope Scope, reservations []*domain.Reservation) []*domain.Reservation {
	filtered := make([]*domain.Reservation, 0, len(reservations))

	for _, r := range reservations {
		switch scope.Kind {
		case ScopeUnassigned:
			if r.StaffID == nil {
				filtered = append(filtered, r)
			}
		case ScopeStaff:
			if r.StaffID != nil && *r.StaffID == scope.StaffID {
				filtered = append(filtered, r)
			}
		default:
			// ScopeTenant: любая активная бронь занимает время тенанта
			filtered = append(filtered, r)
		}
	}

	return filtered
}
