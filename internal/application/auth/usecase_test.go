package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stock-ledger/internal/application/audit"
	"github.com/jhoicas/stock-ledger/internal/application/auth"
	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
	"github.com/jhoicas/stock-ledger/pkg/logger"
)

// fakeUserRepo store de usuarios en memoria indexado por username.
type fakeUserRepo struct {
	nextID int64
	users  map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if _, ok := r.users[u.Username]; ok {
		return domain.ErrDuplicate
	}
	r.nextID++
	u.ID = r.nextID
	clone := *u
	r.users[u.Username] = &clone
	return nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	if u, ok := r.users[username]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	clone := *u
	r.users[u.Username] = &clone
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) (bool, error) {
	for name, u := range r.users {
		if u.ID == id {
			delete(r.users, name)
			return true, nil
		}
	}
	return false, nil
}

type nullActivityRepo struct{}

func (nullActivityRepo) Insert(context.Context, *entity.ActivityLog) error { return nil }
func (nullActivityRepo) ListRecent(context.Context, int) ([]repository.ActivityLogRow, error) {
	return nil, nil
}

func newAuthFixture() (*auth.UseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	uc := auth.NewUseCase(repo, audit.NewRecorder(nullActivityRepo{}, log), auth.JWTConfig{
		Secret:     "secreto-de-test",
		ExpMinutes: 60,
		Issuer:     "stock-ledger-test",
	})
	return uc, repo
}

func seedUser(t *testing.T, repo *fakeUserRepo, username, password, role string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.User{Username: username, PasswordHash: string(hash), Role: role}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func actorFor(u *entity.User) *audit.Actor {
	return &audit.Actor{UserID: u.ID, Username: u.Username, Role: u.Role}
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesCorrectas(t *testing.T) {
	uc, repo := newAuthFixture()
	seedUser(t, repo, "ana", "clave123", entity.RoleAdmin)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "ana", Password: "clave123"})
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "ana", out.User.Username)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, repo := newAuthFixture()
	seedUser(t, repo, "ana", "clave123", entity.RoleAdmin)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "ana", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := newAuthFixture()

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Register — matriz de creación de roles
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_SuperadminCreaCualquierRol(t *testing.T) {
	uc, repo := newAuthFixture()
	super := seedUser(t, repo, "root", "clave", entity.RoleSuperadmin)
	ctx := context.Background()

	for _, role := range []string{entity.RoleSuperadmin, entity.RoleAdmin, entity.RoleEditor, entity.RoleViewer} {
		out, err := uc.Register(ctx, dto.RegisterRequest{
			Username: "user-" + role, Password: "clave", Role: role,
		}, actorFor(super))
		require.NoError(t, err, "superadmin debe poder crear rol %s", role)
		assert.Equal(t, role, out.Role)
	}
}

func TestRegister_AdminNoCreaAdminNiSuperadmin(t *testing.T) {
	uc, repo := newAuthFixture()
	admin := seedUser(t, repo, "admin", "clave", entity.RoleAdmin)
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Username: "e1", Password: "clave", Role: entity.RoleEditor}, actorFor(admin))
	require.NoError(t, err, "admin sí crea editores")

	_, err = uc.Register(ctx, dto.RegisterRequest{Username: "a2", Password: "clave", Role: entity.RoleAdmin}, actorFor(admin))
	assert.ErrorIs(t, err, domain.ErrForbidden, "admin no escala a admin")

	_, err = uc.Register(ctx, dto.RegisterRequest{Username: "s2", Password: "clave", Role: entity.RoleSuperadmin}, actorFor(admin))
	assert.ErrorIs(t, err, domain.ErrForbidden, "admin no escala a superadmin")
}

func TestRegister_EditorYViewerNoCreanUsuarios(t *testing.T) {
	uc, repo := newAuthFixture()
	editor := seedUser(t, repo, "editor", "clave", entity.RoleEditor)
	viewer := seedUser(t, repo, "viewer", "clave", entity.RoleViewer)
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Username: "x", Password: "clave", Role: entity.RoleViewer}, actorFor(editor))
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = uc.Register(ctx, dto.RegisterRequest{Username: "y", Password: "clave", Role: entity.RoleViewer}, actorFor(viewer))
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRegister_RolPorDefectoEsViewer(t *testing.T) {
	uc, repo := newAuthFixture()
	super := seedUser(t, repo, "root", "clave", entity.RoleSuperadmin)

	out, err := uc.Register(context.Background(), dto.RegisterRequest{Username: "nuevo", Password: "clave"}, actorFor(super))
	require.NoError(t, err)
	assert.Equal(t, entity.RoleViewer, out.Role)
}

func TestRegister_UsernameDuplicado(t *testing.T) {
	uc, repo := newAuthFixture()
	super := seedUser(t, repo, "root", "clave", entity.RoleSuperadmin)
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Username: "ana", Password: "clave"}, actorFor(super))
	require.NoError(t, err)
	_, err = uc.Register(ctx, dto.RegisterRequest{Username: "ana", Password: "otra"}, actorFor(super))
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestRegister_RolDesconocido(t *testing.T) {
	uc, repo := newAuthFixture()
	super := seedUser(t, repo, "root", "clave", entity.RoleSuperadmin)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Username: "x", Password: "clave", Role: "jefe"}, actorFor(super))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// DeleteUser / UpdateProfile / EnsureSuperadmin
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteUser_NoPuedeBorrarseASiMismo(t *testing.T) {
	uc, repo := newAuthFixture()
	admin := seedUser(t, repo, "admin", "clave", entity.RoleAdmin)

	err := uc.DeleteUser(context.Background(), admin.ID, actorFor(admin))
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, ok := repo.users["admin"]
	assert.True(t, ok, "la cuenta propia debe seguir existiendo")
}

func TestDeleteUser_EliminaOtraCuenta(t *testing.T) {
	uc, repo := newAuthFixture()
	admin := seedUser(t, repo, "admin", "clave", entity.RoleAdmin)
	victim := seedUser(t, repo, "viejo", "clave", entity.RoleViewer)

	require.NoError(t, uc.DeleteUser(context.Background(), victim.ID, actorFor(admin)))
	_, ok := repo.users["viejo"]
	assert.False(t, ok)
}

func TestDeleteUser_Inexistente(t *testing.T) {
	uc, repo := newAuthFixture()
	admin := seedUser(t, repo, "admin", "clave", entity.RoleAdmin)

	err := uc.DeleteUser(context.Background(), 999, actorFor(admin))
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUpdateProfile_CamposAusentesQuedanIntactos(t *testing.T) {
	uc, repo := newAuthFixture()
	u := seedUser(t, repo, "ana", "clave123", entity.RoleEditor)
	nombre := "Ana Pérez"

	out, err := uc.UpdateProfile(context.Background(), u.ID, dto.UpdateProfileRequest{Name: &nombre}, actorFor(u))
	require.NoError(t, err)
	assert.Equal(t, "Ana Pérez", out.Name)

	// La password no cambió: el login original sigue funcionando.
	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "ana", Password: "clave123"})
	assert.NoError(t, err)
}

func TestUpdateProfile_CambioDePassword(t *testing.T) {
	uc, repo := newAuthFixture()
	u := seedUser(t, repo, "ana", "vieja", entity.RoleEditor)
	nueva := "nueva-clave"

	_, err := uc.UpdateProfile(context.Background(), u.ID, dto.UpdateProfileRequest{Password: &nueva}, actorFor(u))
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "ana", Password: "nueva-clave"})
	assert.NoError(t, err)
	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "ana", Password: "vieja"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestUpdateProfile_SinCampos(t *testing.T) {
	uc, repo := newAuthFixture()
	u := seedUser(t, repo, "ana", "clave", entity.RoleEditor)

	_, err := uc.UpdateProfile(context.Background(), u.ID, dto.UpdateProfileRequest{}, actorFor(u))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEnsureSuperadmin_EsIdempotente(t *testing.T) {
	uc, repo := newAuthFixture()
	ctx := context.Background()

	require.NoError(t, uc.EnsureSuperadmin(ctx, "superadmin", "admin123"))
	first := repo.users["superadmin"]
	require.NotNil(t, first)
	assert.Equal(t, entity.RoleSuperadmin, first.Role)

	require.NoError(t, uc.EnsureSuperadmin(ctx, "superadmin", "otra-clave"))
	second := repo.users["superadmin"]
	assert.Equal(t, first.PasswordHash, second.PasswordHash,
		"el seed no debe re-escribir un superadmin existente")
}
