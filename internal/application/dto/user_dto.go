package dto

import (
	"time"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token JWT más los datos del usuario autenticado.
type LoginResponse struct {
	Success bool    `json:"success"`
	Token   string  `json:"token"`
	User    UserDTO `json:"user"`
}

// RegisterRequest alta de usuario. El rol que el creador puede asignar
// depende de sus capacidades (superadmin: cualquiera; admin: editor/viewer).
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// UserDTO usuario sin hash de password.
type UserDTO struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// ToUserDTO mapea la entidad al DTO.
func ToUserDTO(u *entity.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// UsersResponse listado de usuarios.
type UsersResponse struct {
	Success bool      `json:"success"`
	Users   []UserDTO `json:"users"`
}

// UpdateProfileRequest cambios del propio perfil; los campos nil no se tocan.
type UpdateProfileRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
}
