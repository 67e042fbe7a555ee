package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/fennelworks/catalog-api/internal/config"
	"github.com/fennelworks/catalog-api/internal/lib/email"
)

// emailSender is the slice of the email client the handlers use.
type emailSender interface {
	SendWelcomeEmail(to, username string) error
}

// InitHandlers wires the dependencies task handlers need. Must be
// called before Start.
func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger) {
	j.emailClient = email.NewClient(cfg, logger)
}

// handleWelcomeEmailTask processes a welcome email task: decode the
// payload and send through the email client. A returned error makes
// Asynq schedule a retry.
func (j *JobService) handleWelcomeEmailTask(ctx context.Context, t *asynq.Task) error {
	var p WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal welcome email payload: %w", err)
	}

	j.logger.Info().
		Str("type", "welcome").
		Str("to", p.To).
		Msg("processing welcome email task")

	if err := j.emailClient.SendWelcomeEmail(p.To, p.Username); err != nil {
		j.logger.Error().
			Str("type", "welcome").
			Str("to", p.To).
			Err(err).
			Msg("failed to send welcome email")
		return err
	}

	j.logger.Info().
		Str("type", "welcome").
		Str("to", p.To).
		Msg("sent welcome email")

	return nil
}
