package worker

// email_worker.go
// Processes notification jobs from QueueEmail: a bar owner is told about each
// new review of their bar.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/acero08/RutaCervezera-sub000/internal/infra"
)

// ResenaEmailPayload is the job envelope sent to QueueEmail when a review is
// created.
type ResenaEmailPayload struct {
	ToEmail    string `json:"to_email"`
	BarNombre  string `json:"bar_nombre"`
	Puntuacion int    `json:"puntuacion"`
	Comentario string `json:"comentario"`
}

// EmailWorker sends review notifications via SMTP.
type EmailWorker struct {
	mailer *infra.Mailer
}

func NewEmailWorker(mailer *infra.Mailer) *EmailWorker {
	return &EmailWorker{mailer: mailer}
}

func (w *EmailWorker) Process(_ context.Context, raw json.RawMessage) {
	var payload ResenaEmailPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("email_worker: invalid payload")
		return
	}
	if payload.ToEmail == "" {
		log.Warn().Msg("email_worker: empty to_email — skipping")
		return
	}

	subject := fmt.Sprintf("Nueva resena de %s", payload.BarNombre)
	body := fmt.Sprintf("Tu bar %s recibio una resena de %d estrellas:\n\n%s",
		payload.BarNombre, payload.Puntuacion, payload.Comentario)

	if err := w.mailer.Send(payload.ToEmail, subject, body); err != nil {
		log.Error().Err(err).Str("to", payload.ToEmail).Msg("email_worker: failed to send email")
		return
	}
	log.Info().Str("to", payload.ToEmail).Msg("email_worker: notification sent")
}
