package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPatientDefaults(t *testing.T) {
	patient, err := NewPatient("Jane Doe", "555-0100", "2026-08-12")

	assert.NoError(t, err)
	assert.Equal(t, StatusPending, patient.Status)
	assert.False(t, patient.CreatedAt.IsZero())
	assert.False(t, patient.UpdatedAt.Before(patient.CreatedAt))
}

func TestNewPatientValidation(t *testing.T) {
	cases := []struct {
		name       string
		pName      string
		phone      string
		missedDate string
	}{
		{"missing name", "", "555-0100", "2026-08-12"},
		{"missing phone", "Jane Doe", "", "2026-08-12"},
		{"missing date", "Jane Doe", "555-0100", ""},
		{"malformed date", "Jane Doe", "555-0100", "12/08/2026"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			patient, err := NewPatient(tc.pName, tc.phone, tc.missedDate)
			assert.Error(t, err)
			assert.Nil(t, patient)
		})
	}
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusContacted.Valid())
	assert.True(t, StatusRebooked.Valid())
	assert.False(t, Status("archived").Valid())
	assert.False(t, Status("").Valid())
}
