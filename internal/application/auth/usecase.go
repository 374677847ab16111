package auth

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stock-ledger/internal/application/audit"
	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
	"github.com/jhoicas/stock-ledger/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase autenticación y gestión de usuarios. La creación de roles respeta
// la matriz de capacidades: superadmin crea cualquier rol, admin solo
// editor/viewer; el resto no crea usuarios.
type UseCase struct {
	userRepo repository.UserRepository
	recorder *audit.Recorder
	jwtCfg   JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, recorder *audit.Recorder, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, recorder: recorder, jwtCfg: jwtCfg}
}

// Login verifica username/password, genera JWT y retorna token + usuario.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Success: true,
		Token:   token,
		User:    dto.ToUserDTO(user),
	}, nil
}

// Register crea un usuario. El actor debe poder crear el rol pedido
// (ErrForbidden si no); username duplicado devuelve ErrUsernameTaken.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest, actor *audit.Actor) (*dto.UserDTO, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleViewer
	}
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}
	if actor == nil || !entity.CanCreateRole(actor.Role, role) {
		return nil, domain.ErrForbidden
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Username:     in.Username,
		Name:         in.Name,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		if err == domain.ErrDuplicate {
			return nil, domain.ErrUsernameTaken
		}
		return nil, err
	}

	uc.recorder.Record(ctx, actor, "Create User", "user "+user.Username,
		fmt.Sprintf("Created new user with role %s", role))
	out := dto.ToUserDTO(user)
	return &out, nil
}

// ListUsers devuelve todos los usuarios.
func (uc *UseCase) ListUsers(ctx context.Context) ([]dto.UserDTO, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, dto.ToUserDTO(u))
	}
	return out, nil
}

// DeleteUser elimina un usuario. Nadie puede borrar su propia cuenta.
func (uc *UseCase) DeleteUser(ctx context.Context, id int64, actor *audit.Actor) error {
	if actor != nil && actor.UserID == id {
		return domain.ErrForbidden
	}
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	ok, err := uc.userRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrUserNotFound
	}

	uc.recorder.Record(ctx, actor, "Delete User", "user "+user.Username, "Deleted user account")
	return nil
}

// GetByID devuelve un usuario por id (para /users/me).
func (uc *UseCase) GetByID(ctx context.Context, id int64) (*dto.UserDTO, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	out := dto.ToUserDTO(user)
	return &out, nil
}

// UpdateProfile actualiza nombre y/o password del propio usuario.
func (uc *UseCase) UpdateProfile(ctx context.Context, userID int64, in dto.UpdateProfileRequest, actor *audit.Actor) (*dto.UserDTO, error) {
	if in.Name == nil && in.Password == nil {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Password != nil {
		if *in.Password == "" {
			return nil, domain.ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	uc.recorder.Record(ctx, actor, "Update Profile", "user "+user.Username, "Updated own profile")
	out := dto.ToUserDTO(user)
	return &out, nil
}

// EnsureSuperadmin crea el superadmin por defecto si no existe (arranque).
func (uc *UseCase) EnsureSuperadmin(ctx context.Context, username, password string) error {
	existing, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := &entity.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         entity.RoleSuperadmin,
		CreatedAt:    time.Now().UTC(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil && err != domain.ErrDuplicate {
		return err
	}
	return nil
}
