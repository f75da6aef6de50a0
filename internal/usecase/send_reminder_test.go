package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sunriseclinic/recall-api/internal/entity"
	"github.com/sunriseclinic/recall-api/internal/infra/queue"
	"github.com/sunriseclinic/recall-api/internal/infra/sms"
)

func newRenderer(t *testing.T) *sms.Renderer {
	t.Helper()
	r, err := sms.NewRenderer("Sunrise Family Clinic")
	assert.NoError(t, err)
	return r
}

func TestSendReminderSuccess(t *testing.T) {
	mockRepo := new(MockPatientRepository)
	mockPublisher := new(MockReminderPublisher)

	contacted := &entity.ContactedPatient{
		ID:     1,
		Name:   "Jane Doe",
		Phone:  "555-0100",
		Status: entity.StatusContacted,
	}

	mockRepo.On("SetContacted", mock.Anything, 1).Return(contacted, nil)
	mockPublisher.On("PublishReminder", mock.Anything, mock.MatchedBy(func(p queue.ReminderPayload) bool {
		return p.PatientID == 1 &&
			p.Phone == "555-0100" &&
			p.EventID != "" &&
			p.Message == "Hi Jane Doe, you missed your appointment at Sunrise Family Clinic. Reply YES to rebook."
	})).Return(nil)

	uc := NewSendReminderUseCase(mockRepo, newRenderer(t), mockPublisher)

	output, err := uc.Execute(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, entity.StatusContacted, output.Patient.Status)
	assert.Equal(t, "Hi Jane Doe, you missed your appointment at Sunrise Family Clinic. Reply YES to rebook.", output.Message)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestSendReminderNotFound(t *testing.T) {
	mockRepo := new(MockPatientRepository)
	mockRepo.On("SetContacted", mock.Anything, 9999).Return(nil, entity.ErrPatientNotFound)

	uc := NewSendReminderUseCase(mockRepo, newRenderer(t), nil)

	output, err := uc.Execute(context.Background(), 9999)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, entity.ErrPatientNotFound)
}

func TestSendReminderRebookedGuard(t *testing.T) {
	mockRepo := new(MockPatientRepository)
	mockRepo.On("SetContacted", mock.Anything, 5).Return(nil, entity.ErrPatientRebooked)

	uc := NewSendReminderUseCase(mockRepo, newRenderer(t), nil)

	output, err := uc.Execute(context.Background(), 5)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, entity.ErrPatientRebooked)
}

func TestSendReminderPublishFailureStillSucceeds(t *testing.T) {
	mockRepo := new(MockPatientRepository)
	mockPublisher := new(MockReminderPublisher)

	contacted := &entity.ContactedPatient{ID: 2, Name: "Marcus Webb", Phone: "555-0101", Status: entity.StatusContacted}
	mockRepo.On("SetContacted", mock.Anything, 2).Return(contacted, nil)
	mockPublisher.On("PublishReminder", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	uc := NewSendReminderUseCase(mockRepo, newRenderer(t), mockPublisher)

	output, err := uc.Execute(context.Background(), 2)

	assert.NoError(t, err)
	assert.Equal(t, 2, output.Patient.ID)
	mockPublisher.AssertExpectations(t)
}

func TestSendReminderWithoutPublisher(t *testing.T) {
	mockRepo := new(MockPatientRepository)
	contacted := &entity.ContactedPatient{ID: 3, Name: "Lucy Tran", Phone: "555-0108", Status: entity.StatusContacted}
	mockRepo.On("SetContacted", mock.Anything, 3).Return(contacted, nil)

	uc := NewSendReminderUseCase(mockRepo, newRenderer(t), nil)

	output, err := uc.Execute(context.Background(), 3)

	assert.NoError(t, err)
	assert.Equal(t, "Hi Lucy Tran, you missed your appointment at Sunrise Family Clinic. Reply YES to rebook.", output.Message)
}
