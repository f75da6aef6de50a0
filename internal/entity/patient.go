package entity

import (
	"errors"
	"time"
)

var (
	ErrPatientNotFound    = errors.New("patient not found")
	ErrPatientRebooked    = errors.New("patient already rebooked")
	ErrPhoneAlreadyExists = errors.New("phone already registered")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusContacted Status = "contacted"
	StatusRebooked  Status = "rebooked"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusContacted, StatusRebooked:
		return true
	}
	return false
}

// Entidade: Patient
type Patient struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"` // natural dedup key, unique in the store
	MissedDate string    `json:"missedDate"`
	Status     Status    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ContactedPatient is the projection returned by the send-reminder transition.
type ContactedPatient struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Status Status `json:"status"`
}

// Factory
func NewPatient(name, phone, missedDate string) (*Patient, error) {
	patient := &Patient{
		Name:       name,
		Phone:      phone,
		MissedDate: missedDate,
		Status:     StatusPending,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := patient.Validate(); err != nil {
		return nil, err
	}

	return patient, nil
}

func (p *Patient) Validate() error {
	if p.Name == "" {
		return errors.New("name is required")
	}
	if p.Phone == "" {
		return errors.New("phone is required")
	}
	if p.MissedDate == "" {
		return errors.New("missed date is required")
	}
	if _, err := time.Parse("2006-01-02", p.MissedDate); err != nil {
		return errors.New("missed date must be a valid date (YYYY-MM-DD)")
	}
	if !p.Status.Valid() {
		return errors.New("status must be pending, contacted or rebooked")
	}
	return nil
}
