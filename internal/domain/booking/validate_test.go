package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Segunda-feira, meio-dia.
var testNow = time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

func TestValidateSlotAcceptsFutureWeekday(t *testing.T) {
	err := ValidateSlot("2025-06-10", "10:00", testNow)
	assert.NoError(t, err)
}

func TestValidateSlotRejectsPast(t *testing.T) {
	err := ValidateSlot("2025-05-01", "10:00", testNow)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Não é possível agendar no passado.", vErr.Reason)
}

func TestValidateSlotRejectsExactlyNow(t *testing.T) {
	// "não estritamente depois de agora" é rejeitado
	err := ValidateSlot("2025-06-02", "12:00", testNow)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Não é possível agendar no passado.", vErr.Reason)
}

func TestValidateSlotRejectsSundayRegardlessOfHour(t *testing.T) {
	for _, hm := range []string{"09:00", "12:00", "19:00"} {
		err := ValidateSlot("2025-06-08", hm, testNow)

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr, "hour %s", hm)
		assert.Equal(t, "Fechado aos domingos.", vErr.Reason)
	}
}

func TestValidateSlotBusinessHoursBoundaries(t *testing.T) {
	tests := []struct {
		hm    string
		valid bool
	}{
		{"08:59", false},
		{"09:00", true},
		{"19:00", true},
		// a regra olha só a hora: qualquer minuto das 19h passa
		{"19:59", true},
		{"20:00", false},
	}

	for _, tt := range tests {
		err := ValidateSlot("2025-06-10", tt.hm, testNow)
		if tt.valid {
			assert.NoError(t, err, "slot %s", tt.hm)
			continue
		}

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr, "slot %s", tt.hm)
		assert.Equal(t, "Horário apenas entre 09:00 e 19:00.", vErr.Reason)
	}
}

func TestValidateSlotRejectsGarbageInput(t *testing.T) {
	err := ValidateSlot("10/06/2025", "dez horas", testNow)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Data ou hora inválida.", vErr.Reason)
}
