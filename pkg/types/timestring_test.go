package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Validate(t *testing.T) {
	valid := []string{"00:00", "09:30", "23:59"}
	for _, s := range valid {
		assert.NoError(t, TimeString(s).Validate(), s)
	}

	invalid := []string{"", "24:00", "09:60", "09-30", "0930", "09:30:00"}
	for _, s := range invalid {
		assert.Error(t, TimeString(s).Validate(), s)
	}
}

func TestTimeString_Minutes(t *testing.T) {
	minutes, err := TimeString("09:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 570, minutes)

	_, err = TimeString("25:00").Minutes()
	assert.Error(t, err)
}

func TestTimeString_AddMinutes(t *testing.T) {
	result, err := TimeString("09:30").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), result)

	// Выход за границы суток запрещен
	_, err = TimeString("23:45").AddMinutes(30)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)

	_, err = TimeString("00:10").AddMinutes(-20)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore(TimeString("10:00")))
	assert.False(t, TimeString("10:00").IsBefore(TimeString("10:00")))
	assert.True(t, TimeString("10:30").IsAfter(TimeString("10:00")))
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2024, 6, 3, 9, 5, 0, 0, time.UTC)
	assert.Equal(t, TimeString("09:05"), NewTimeString(moment))
}
