package repository

import (
	"context"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create persiste un nuevo usuario y rellena u.ID.
	// Devuelve domain.ErrDuplicate si el username ya existe.
	Create(ctx context.Context, u *entity.User) error
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	// Update persiste nombre, hash de password y rol.
	Update(ctx context.Context, u *entity.User) error
	Delete(ctx context.Context, id int64) (deleted bool, err error)
}
