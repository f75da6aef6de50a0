package usecase

import (
	"context"

	"github.com/sunriseclinic/recall-api/internal/entity"
	"github.com/sunriseclinic/recall-api/internal/infra/queue"
)

// PatientFilter is a conjunction: both predicates apply when set.
type PatientFilter struct {
	Search string        // case-insensitive substring on name OR phone
	Status entity.Status // equality, empty means no filter
}

type PatientRepositoryInterface interface {
	List(ctx context.Context, filter PatientFilter, page, limit int) ([]entity.Patient, int, error)
	SetContacted(ctx context.Context, id int) (*entity.ContactedPatient, error)
}

type ReminderPublisherInterface interface {
	PublishReminder(ctx context.Context, payload queue.ReminderPayload) error
}

type MessageRenderer interface {
	Render(name string) (string, error)
}
