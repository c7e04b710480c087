package get_monthly_availability

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getMonthlyAvailability "github.com/ktnb/ARS-ReservationService/internal/usecase/get_monthly_availability"
)

func TestFromUseCaseResponse_FullWithoutStaff(t *testing.T) {
	resp := FromUseCaseResponse(&getMonthlyAvailability.Response{
		TenantID: 1,
		Year:     2024,
		Month:    6,
		Days:     []getMonthlyAvailability.Day{{Date: "2024-06-03", HasAvailability: true}},
		Staff:    []getMonthlyAvailability.StaffCalendar{},
	})

	body, err := json.Marshal(resp)
	require.NoError(t, err)

	// В административной форме ключ staff присутствует даже без сотрудников
	assert.Contains(t, string(body), `"staff":[]`)
}

func TestFromUseCaseResponse_PublicOmitsStaff(t *testing.T) {
	resp := FromUseCaseResponse(&getMonthlyAvailability.Response{
		TenantID: 1,
		Year:     2024,
		Month:    6,
		Days:     []getMonthlyAvailability.Day{{Date: "2024-06-03", HasAvailability: true}},
	})

	body, err := json.Marshal(resp)
	require.NoError(t, err)

	assert.NotContains(t, string(body), `"staff"`)
}

func TestFromUseCaseResponse_FullWithStaff(t *testing.T) {
	resp := FromUseCaseResponse(&getMonthlyAvailability.Response{
		TenantID: 1,
		Year:     2024,
		Month:    6,
		Days:     []getMonthlyAvailability.Day{{Date: "2024-06-03", HasAvailability: true}},
		Staff: []getMonthlyAvailability.StaffCalendar{
			{StaffID: 7, Days: []getMonthlyAvailability.Day{{Date: "2024-06-03", HasAvailability: false}}},
		},
	})

	require.NotNil(t, resp.Staff)
	require.Len(t, *resp.Staff, 1)
	assert.Equal(t, int64(7), (*resp.Staff)[0].StaffID)
	assert.False(t, (*resp.Staff)[0].Days[0].HasAvailability)
}
