package sms

import (
	"bytes"
	"fmt"
	"text/template"
)

const reminderTemplate = "Hi {{.Name}}, you missed your appointment at {{.Clinic}}. Reply YES to rebook."

type reminderData struct {
	Name   string
	Clinic string
}

// Renderer produces the reminder text returned by the send-sms endpoint.
type Renderer struct {
	clinic string
	tmpl   *template.Template
}

func NewRenderer(clinicName string) (*Renderer, error) {
	t, err := template.New("reminder").Parse(reminderTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse reminder template: %w", err)
	}

	return &Renderer{clinic: clinicName, tmpl: t}, nil
}

func (r *Renderer) Render(name string) (string, error) {
	var body bytes.Buffer
	if err := r.tmpl.Execute(&body, reminderData{Name: name, Clinic: r.clinic}); err != nil {
		return "", fmt.Errorf("failed to render reminder message: %w", err)
	}
	return body.String(), nil
}
