package audit

import (
	"context"
	"time"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
	"github.com/jhoicas/stock-ledger/pkg/logger"
)

// Actor identidad ya autenticada (del token), solo para atribución en auditoría.
type Actor struct {
	UserID   int64
	Username string
	Role     string
}

// Recorder registra "quién hizo qué sobre qué, cuándo" en activity_logs.
// Es best-effort y corre FUERA de la transacción del ledger: un fallo al
// escribir auditoría se loggea y jamás revierte la mutación que describe.
type Recorder struct {
	repo repository.ActivityLogRepository
	log  *logger.Logger
}

// NewRecorder construye el recorder.
func NewRecorder(repo repository.ActivityLogRepository, log *logger.Logger) *Recorder {
	return &Recorder{repo: repo, log: log}
}

// Record inserta una entrada de auditoría. Actor nil = operación sin actor, no se registra.
func (r *Recorder) Record(ctx context.Context, actor *Actor, action, target, details string) {
	if actor == nil {
		return
	}
	entry := &entity.ActivityLog{
		UserID:    actor.UserID,
		Action:    action,
		Target:    target,
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
	if err := r.repo.Insert(ctx, entry); err != nil {
		r.log.Warn().
			Err(err).
			Str("action", action).
			Str("target", target).
			Int64("user_id", actor.UserID).
			Msg("no se pudo escribir el registro de auditoría")
	}
}
