package scheduler

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TaskDeepDiveEmail = "assessment.deepdive_email"

// DeepDiveEmailPayload identifies the assessment a follow-up email
// should be generated for. The token is used instead of the ID so the
// worker goes through the same expiry check as report retrieval.
type DeepDiveEmailPayload struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

func NewDeepDiveEmailTask(payload DeepDiveEmailPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskDeepDiveEmail, data), nil
}

func ParseDeepDiveEmailPayload(task *asynq.Task) (DeepDiveEmailPayload, error) {
	var payload DeepDiveEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return DeepDiveEmailPayload{}, err
	}
	return payload, nil
}
