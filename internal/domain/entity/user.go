package entity

import "time"

// Roles válidos para User.
const (
	RoleSuperadmin = "superadmin"
	RoleAdmin      = "admin"
	RoleEditor     = "editor"
	RoleViewer     = "viewer"
)

// User representa un usuario del sistema.
type User struct {
	ID           int64
	Username     string // único
	Name         string // nombre completo, opcional
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // superadmin, admin, editor, viewer
	CreatedAt    time.Time
}
