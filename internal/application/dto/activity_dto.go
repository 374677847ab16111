package dto

import (
	"time"

	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// ActivityLogDTO entrada de auditoría con username y rol resueltos en lectura.
type ActivityLogDTO struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Action    string    `json:"action"`
	Target    string    `json:"target"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Username  string    `json:"username"`
	UserRole  string    `json:"user_role"`
}

// ToActivityLogDTO mapea la fila unida al DTO.
func ToActivityLogDTO(r repository.ActivityLogRow) ActivityLogDTO {
	return ActivityLogDTO{
		ID:        r.ID,
		UserID:    r.UserID,
		Action:    r.Action,
		Target:    r.Target,
		Details:   r.Details,
		Timestamp: r.Timestamp,
		Username:  r.Username,
		UserRole:  r.UserRole,
	}
}

// ActivityLogResponse listado de auditoría (más reciente primero).
type ActivityLogResponse struct {
	Logs []ActivityLogDTO `json:"logs"`
}
