package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TaskWelcome is the task type string Asynq uses to route welcome
	// email jobs to their handler.
	TaskWelcome = "email:welcome"
)

// WelcomeEmailPayload is the JSON payload for the welcome email task.
type WelcomeEmailPayload struct {
	To       string `json:"to"`
	Username string `json:"username"`
}

// NewWelcomeEmailTask builds the Asynq task for a welcome email:
// 3 retries, default queue, 30 second handler timeout.
func NewWelcomeEmailTask(to, username string) (*asynq.Task, error) {
	payload, err := json.Marshal(WelcomeEmailPayload{
		To:       to,
		Username: username,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskWelcome,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}

// EnqueueWelcomeEmail enqueues a welcome email job for a new user.
func (j *JobService) EnqueueWelcomeEmail(to, username string) error {
	task, err := NewWelcomeEmailTask(to, username)
	if err != nil {
		return err
	}

	info, err := j.Client.Enqueue(task)
	if err != nil {
		return err
	}

	j.logger.Info().
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Msg("enqueued welcome email task")

	return nil
}
