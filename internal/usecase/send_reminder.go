package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/sunriseclinic/recall-api/internal/infra/queue"
)

type SendReminderUseCase struct {
	Repo      PatientRepositoryInterface
	Renderer  MessageRenderer
	Publisher ReminderPublisherInterface // nil when no broker is configured
}

func NewSendReminderUseCase(
	repo PatientRepositoryInterface,
	renderer MessageRenderer,
	publisher ReminderPublisherInterface,
) *SendReminderUseCase {
	return &SendReminderUseCase{
		Repo:      repo,
		Renderer:  renderer,
		Publisher: publisher,
	}
}

// Execute flips the patient to contacted and hands the would-be SMS to the
// reminder exchange. No delivery happens here; downstream gateways own that.
func (uc *SendReminderUseCase) Execute(ctx context.Context, id int) (*SendReminderOutput, error) {
	patient, err := uc.Repo.SetContacted(ctx, id)
	if err != nil {
		return nil, err
	}

	message, err := uc.Renderer.Render(patient.Name)
	if err != nil {
		return nil, err
	}

	if uc.Publisher != nil {
		payload := queue.ReminderPayload{
			EventID:     uuid.New().String(),
			PatientID:   patient.ID,
			Name:        patient.Name,
			Phone:       patient.Phone,
			Message:     message,
			RequestedAt: time.Now().UTC(),
		}

		// Best-effort: the transition already committed, so a broker hiccup
		// must not fail the request.
		if err := uc.Publisher.PublishReminder(ctx, payload); err != nil {
			log.Error().Err(err).Int("patient_id", patient.ID).Msg("reminder publish failed")
		} else {
			log.Info().Str("event_id", payload.EventID).Int("patient_id", patient.ID).Msg("reminder queued")
		}
	}

	return &SendReminderOutput{
		Patient: patient,
		Message: message,
	}, nil
}
