package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// Mailer sends the notification emails the tasks carry.
type Mailer interface {
	SendAdmissionReceivedEmail(to, studentName, classApplying, applicationID string) error
	SendContactReceivedEmail(to, name, replyTo, subject, message string) error
}

func (j *JobService) handleAdmissionReceivedTask(ctx context.Context, t *asynq.Task) error {
	var p AdmissionReceivedPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal admission payload: %w", err)
	}

	j.logger.Info().
		Str("type", "admission_received").
		Str("application_id", p.ApplicationID).
		Msg("Processing admission acknowledgement task")

	if err := j.mailer.SendAdmissionReceivedEmail(p.To, p.StudentName, p.ClassApplying, p.ApplicationID); err != nil {
		j.logger.Error().
			Str("type", "admission_received").
			Str("application_id", p.ApplicationID).
			Err(err).
			Msg("Failed to send admission acknowledgement")
		return err
	}

	j.logger.Info().
		Str("type", "admission_received").
		Str("application_id", p.ApplicationID).
		Msg("Successfully sent admission acknowledgement")

	return nil
}

func (j *JobService) handleContactReceivedTask(ctx context.Context, t *asynq.Task) error {
	var p ContactReceivedPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal contact payload: %w", err)
	}

	j.logger.Info().
		Str("type", "contact_received").
		Str("subject", p.Subject).
		Msg("Processing contact notification task")

	if err := j.mailer.SendContactReceivedEmail(p.To, p.Name, p.Email, p.Subject, p.Message); err != nil {
		j.logger.Error().
			Str("type", "contact_received").
			Err(err).
			Msg("Failed to send contact notification")
		return err
	}

	return nil
}
