package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/depanneo/booking-platform/shared/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string {
	return &s
}

func TestReservationValidator_Validate(t *testing.T) {
	now := time.Date(2026, 3, 2, 18, 30, 0, 0, time.UTC)
	validator := NewReservationValidator(func() time.Time { return now })

	tests := []struct {
		name           string
		input          *ReservationInput
		expectedFields []string
	}{
		{
			name:  "minimal input",
			input: &ReservationInput{Address: "1 rue de Rivoli", PostalCode: "75001"},
		},
		{
			name: "today with a slot",
			input: &ReservationInput{
				Address:       "1 rue de Rivoli",
				PostalCode:    "75001",
				DateRequested: ptr("2026-03-02"),
				TimeSlot:      ptr("soir"),
			},
		},
		{
			name:           "missing address and postal code",
			input:          &ReservationInput{},
			expectedFields: []string{"address", "postal_code"},
		},
		{
			name:           "postal code with four digits",
			input:          &ReservationInput{Address: "1 rue de Rivoli", PostalCode: "7500"},
			expectedFields: []string{"postal_code"},
		},
		{
			name:           "postal code with letters",
			input:          &ReservationInput{Address: "1 rue de Rivoli", PostalCode: "2A004"},
			expectedFields: []string{"postal_code"},
		},
		{
			name: "date without slot",
			input: &ReservationInput{
				Address:       "1 rue de Rivoli",
				PostalCode:    "75001",
				DateRequested: ptr("2026-03-10"),
			},
			expectedFields: []string{"time_slot"},
		},
		{
			name: "date with an empty slot",
			input: &ReservationInput{
				Address:       "1 rue de Rivoli",
				PostalCode:    "75001",
				DateRequested: ptr("2026-06-01"),
				TimeSlot:      ptr(""),
			},
			expectedFields: []string{"time_slot"},
		},
		{
			name: "date with a blank slot",
			input: &ReservationInput{
				Address:       "1 rue de Rivoli",
				PostalCode:    "75001",
				DateRequested: ptr("2026-06-01"),
				TimeSlot:      ptr("   "),
			},
			expectedFields: []string{"time_slot"},
		},
		{
			name: "slot without date",
			input: &ReservationInput{
				Address:    "1 rue de Rivoli",
				PostalCode: "75001",
				TimeSlot:   ptr("matin"),
			},
			expectedFields: []string{"time_slot"},
		},
		{
			name: "yesterday",
			input: &ReservationInput{
				Address:       "1 rue de Rivoli",
				PostalCode:    "75001",
				DateRequested: ptr("2026-03-01"),
				TimeSlot:      ptr("matin"),
			},
			expectedFields: []string{"date_requested"},
		},
		{
			name: "malformed date",
			input: &ReservationInput{
				Address:       "1 rue de Rivoli",
				PostalCode:    "75001",
				DateRequested: ptr("02/03/2026"),
				TimeSlot:      ptr("matin"),
			},
			expectedFields: []string{"date_requested"},
		},
		{
			name: "description too long",
			input: &ReservationInput{
				Address:     "1 rue de Rivoli",
				PostalCode:  "75001",
				Description: ptr(strings.Repeat("x", 1001)),
			},
			expectedFields: []string{"description"},
		},
		{
			name:           "nil input",
			input:          nil,
			expectedFields: []string{"reservation"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.Validate(tt.input)

			if len(tt.expectedFields) == 0 {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))

			var fields []string
			for _, fe := range apperrors.FieldErrors(err) {
				fields = append(fields, fe.Param)
				assert.NotEmpty(t, fe.Msg)
			}
			assert.ElementsMatch(t, tt.expectedFields, fields)
		})
	}
}

func TestReservationInput_ParsedDate(t *testing.T) {
	in := &ReservationInput{}
	date, err := in.ParsedDate()
	require.NoError(t, err)
	assert.Nil(t, date)

	in.DateRequested = ptr("2026-03-10")
	date, err = in.ParsedDate()
	require.NoError(t, err)
	require.NotNil(t, date)
	assert.Equal(t, time.March, date.Month())
	assert.Equal(t, 10, date.Day())
}
