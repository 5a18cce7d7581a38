package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TaskAdmissionReceived acknowledges a new application to the applicant.
	TaskAdmissionReceived = "email:admission_received"

	// TaskContactReceived forwards a new contact message to the school office.
	TaskContactReceived = "email:contact_received"
)

// AdmissionReceivedPayload is the JSON payload of TaskAdmissionReceived.
type AdmissionReceivedPayload struct {
	To            string `json:"to"`
	StudentName   string `json:"student_name"`
	ClassApplying string `json:"class_applying"`
	ApplicationID string `json:"application_id"`
}

// ContactReceivedPayload is the JSON payload of TaskContactReceived.
type ContactReceivedPayload struct {
	To      string `json:"to"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// NewAdmissionReceivedTask builds the acknowledgement task: up to 3 retries
// on the default queue, 30s per attempt.
func NewAdmissionReceivedTask(p AdmissionReceivedPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskAdmissionReceived,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}

// NewContactReceivedTask builds the office notification task on the
// critical queue.
func NewContactReceivedTask(p ContactReceivedPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskContactReceived,
		payload,
		asynq.MaxRetry(5),
		asynq.Queue("critical"),
		asynq.Timeout(30*time.Second),
	), nil
}
