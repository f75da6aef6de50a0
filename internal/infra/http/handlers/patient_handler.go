package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/sunriseclinic/recall-api/internal/entity"
	"github.com/sunriseclinic/recall-api/internal/infra/http/middleware"
	"github.com/sunriseclinic/recall-api/internal/usecase"
)

type PatientHandler struct {
	ListUC *usecase.ListPatientsUseCase
	SendUC *usecase.SendReminderUseCase
}

func NewPatientHandler(listUC *usecase.ListPatientsUseCase, sendUC *usecase.SendReminderUseCase) *PatientHandler {
	return &PatientHandler{
		ListUC: listUC,
		SendUC: sendUC,
	}
}

// HandleList (GET /api/patients)
// Bad query input never fails the request; it falls back to defaults.
func (h *PatientHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	input := usecase.ListPatientsInput{
		Search: q.Get("search"),
		Status: q.Get("status"),
	}
	// strconv failures leave the zero value and the use case substitutes it
	input.Page, _ = strconv.Atoi(q.Get("page"))
	input.Limit, _ = strconv.Atoi(q.Get("limit"))

	output, err := h.ListUC.Execute(r.Context(), input)
	if err != nil {
		log.Error().Err(err).Msg("failed to list patients")
		respondError(w, http.StatusInternalServerError, "LIST_PATIENTS_FAILED")
		return
	}

	respondJSON(w, http.StatusOK, output)
}

// HandleSendSMS (POST /api/patients/{id}/send-sms)
func (h *PatientHandler) HandleSendSMS(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		verr := usecase.ValidationError{Field: "id", Message: "must be an integer"}
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "INVALID_PATIENT_ID",
			"message": verr.Error(),
		})
		return
	}

	output, err := h.SendUC.Execute(r.Context(), id)
	switch {
	case errors.Is(err, entity.ErrPatientNotFound):
		middleware.RecordReminder("not_found")
		respondError(w, http.StatusNotFound, "PATIENT_NOT_FOUND")
		return
	case errors.Is(err, entity.ErrPatientRebooked):
		middleware.RecordReminder("rebooked")
		respondError(w, http.StatusConflict, "PATIENT_REBOOKED")
		return
	case err != nil:
		log.Error().Err(err).Int("patient_id", id).Msg("failed to send reminder")
		middleware.RecordReminder("error")
		respondError(w, http.StatusInternalServerError, "SEND_SMS_FAILED")
		return
	}

	middleware.RecordReminder("sent")
	respondJSON(w, http.StatusOK, output)
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, status int, code string) {
	respondJSON(w, status, map[string]string{"error": code})
}
