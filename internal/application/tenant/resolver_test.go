package tenant_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Taller-api/internal/application/tenant"
	"github.com/jhoicas/Taller-api/internal/domain"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de UserRepository
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byID map[string]*entity.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u *entity.User) error { return nil }
func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return f.byID[id], nil
}
func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) List(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) Update(ctx context.Context, u *entity.User) error { return nil }
func (f *fakeUserRepo) Delete(ctx context.Context, id string) error      { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Tests Resolve
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: gerente con empresa asignada → devuelve el companyID.
func TestResolve_GerenteConEmpresa(t *testing.T) {
	companyID := "11111111-1111-1111-1111-111111111111"
	repo := &fakeUserRepo{byID: map[string]*entity.User{
		"u1": {ID: "u1", Role: entity.RoleManager, CompanyID: &companyID},
	}}

	got, err := tenant.NewResolver(repo).Resolve(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, companyID, got)
}

// Caso 2: usuario sin empresa asignada → ErrTenantNotResolved.
func TestResolve_UsuarioSinEmpresa(t *testing.T) {
	repo := &fakeUserRepo{byID: map[string]*entity.User{
		"u1": {ID: "u1", Role: entity.RoleManager},
	}}

	_, err := tenant.NewResolver(repo).Resolve(context.Background(), "u1")
	assert.ErrorIs(t, err, domain.ErrTenantNotResolved)
}

// Caso 3: usuario inexistente → mismo error que sin empresa, sin distinguir.
func TestResolve_UsuarioInexistente(t *testing.T) {
	repo := &fakeUserRepo{byID: map[string]*entity.User{}}

	_, err := tenant.NewResolver(repo).Resolve(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrTenantNotResolved)
}

// Caso 4: empresa asignada pero vacía → ErrTenantNotResolved.
func TestResolve_EmpresaVacia(t *testing.T) {
	empty := ""
	repo := &fakeUserRepo{byID: map[string]*entity.User{
		"u1": {ID: "u1", Role: entity.RoleManager, CompanyID: &empty},
	}}

	_, err := tenant.NewResolver(repo).Resolve(context.Background(), "u1")
	assert.ErrorIs(t, err, domain.ErrTenantNotResolved)
}
