package usecase

import "github.com/sunriseclinic/recall-api/internal/entity"

type ListPatientsInput struct {
	Search string
	Status string
	Page   int // 0 when absent or unparseable
	Limit  int // 0 when absent or unparseable
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type ListPatientsOutput struct {
	Data       []entity.Patient `json:"data"`
	Pagination Pagination       `json:"pagination"`
}

type SendReminderOutput struct {
	Patient *entity.ContactedPatient `json:"patient"`
	Message string                   `json:"message"`
}
