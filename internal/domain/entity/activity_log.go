package entity

import "time"

// ActivityLog es una entrada append-only del registro de auditoría:
// quién hizo qué sobre qué y cuándo. Es advisory: no participa de la
// atomicidad del ledger.
type ActivityLog struct {
	ID        int64
	UserID    int64
	Action    string // "Add Product", "Sell Product", "Delete Add History", ...
	Target    string // ej. "product Paracetamol", "user maria"
	Details   string
	Timestamp time.Time
}
