package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/internal/application/notification"
	"github.com/jhoicas/Taller-api/internal/application/usecase"
	"github.com/jhoicas/Taller-api/internal/domain"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
	"github.com/jhoicas/Taller-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List(_ context.Context, _, _ int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	delete(f.users, id)
	return nil
}

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
	dependent map[string]bool
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{
		companies: map[string]*entity.Company{},
		dependent: map[string]bool{},
	}
}

func (f *fakeCompanyRepo) Create(_ context.Context, c *entity.Company) error {
	f.companies[c.ID] = c
	return nil
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	return f.companies[id], nil
}

func (f *fakeCompanyRepo) List(_ context.Context, _, _ int) ([]*entity.Company, error) {
	out := make([]*entity.Company, 0, len(f.companies))
	for _, c := range f.companies {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCompanyRepo) Update(_ context.Context, c *entity.Company) error {
	f.companies[c.ID] = c
	return nil
}

func (f *fakeCompanyRepo) Delete(_ context.Context, id string) error {
	delete(f.companies, id)
	return nil
}

func (f *fakeCompanyRepo) HasDependents(_ context.Context, id string) (bool, error) {
	return f.dependent[id], nil
}

type fakeEnqueuer struct {
	sent []notification.EmailMessage
}

func (f *fakeEnqueuer) Enqueue(_ context.Context, msg notification.EmailMessage) error {
	f.sent = append(f.sent, msg)
	return nil
}

const testCompanyID = "10000000-0000-0000-0000-000000000001"

func seedCompany(companies *fakeCompanyRepo) {
	companies.companies[testCompanyID] = &entity.Company{
		ID:    testCompanyID,
		Name:  "Taller El Progreso",
		TaxID: "900123456-7",
	}
}

func newUserUC(users *fakeUserRepo, companies *fakeCompanyRepo, emails *fakeEnqueuer) *usecase.UserUseCase {
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return usecase.NewUserUseCase(users, companies, emails, log)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests UserUseCase.Create — flujo de invitación
// ──────────────────────────────────────────────────────────────────────────────

// Alta sin contraseña: se genera una aleatoria, se guarda su hash y se envía
// el correo de bienvenida con la contraseña en claro.
func TestUserCreate_SinPassword_GeneraYEnviaCorreo(t *testing.T) {
	users := newFakeUserRepo()
	companies := newFakeCompanyRepo()
	seedCompany(companies)
	emails := &fakeEnqueuer{}
	uc := newUserUC(users, companies, emails)

	companyID := testCompanyID
	out, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Name:      "Carlos Gerente",
		Email:     "carlos@taller.com",
		Role:      entity.RoleManager,
		CompanyID: &companyID,
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	stored := users.users[out.ID]
	require.NotNil(t, stored)
	require.NotNil(t, stored.PasswordHash, "debe guardarse un hash de la contraseña generada")

	require.Len(t, emails.sent, 1, "debe encolarse el correo de bienvenida")
	msg := emails.sent[0]
	assert.Equal(t, "carlos@taller.com", msg.To)
	assert.Contains(t, msg.HTML, "Carlos Gerente")

	// El hash guardado no debe validar una contraseña arbitraria.
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(*stored.PasswordHash), []byte("otra-clave")))
}

// Alta con contraseña explícita: no se envía correo de bienvenida.
func TestUserCreate_ConPassword_NoEnviaCorreo(t *testing.T) {
	users := newFakeUserRepo()
	companies := newFakeCompanyRepo()
	emails := &fakeEnqueuer{}
	uc := newUserUC(users, companies, emails)

	out, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Name:     "Ana Cliente",
		Email:    "ana@example.com",
		Password: "clave-segura",
		Role:     entity.RoleClient,
	})
	require.NoError(t, err)

	stored := users.users[out.ID]
	require.NotNil(t, stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*stored.PasswordHash), []byte("clave-segura")))
	assert.Empty(t, emails.sent, "con contraseña explícita no hay correo de invitación")
}

// Un gerente sin empresa asignada no puede crearse.
func TestUserCreate_GerenteSinEmpresa_RetornaError(t *testing.T) {
	uc := newUserUC(newFakeUserRepo(), newFakeCompanyRepo(), &fakeEnqueuer{})

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Name:  "Gerente Suelto",
		Email: "suelto@taller.com",
		Role:  entity.RoleManager,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// La empresa referenciada debe existir.
func TestUserCreate_EmpresaInexistente_RetornaNotFound(t *testing.T) {
	uc := newUserUC(newFakeUserRepo(), newFakeCompanyRepo(), &fakeEnqueuer{})

	companyID := "20000000-0000-0000-0000-000000000099"
	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Name:      "Gerente Huérfano",
		Email:     "huerfano@taller.com",
		Role:      entity.RoleManager,
		CompanyID: &companyID,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El email es único en todo el sistema.
func TestUserCreate_EmailDuplicado_RetornaError(t *testing.T) {
	users := newFakeUserRepo()
	users.users["u1"] = &entity.User{ID: "u1", Email: "dup@example.com", Role: entity.RoleClient}
	uc := newUserUC(users, newFakeCompanyRepo(), &fakeEnqueuer{})

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Name:     "Otro",
		Email:    "dup@example.com",
		Password: "123456",
		Role:     entity.RoleClient,
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests UserUseCase.Update — semántica de parche
// ──────────────────────────────────────────────────────────────────────────────

func strPtr(s string) *string { return &s }

// Un parche que solo trae el nombre conserva email, rol y empresa.
func TestUserUpdate_SoloNombre_PreservaLosDemasCampos(t *testing.T) {
	users := newFakeUserRepo()
	companyID := testCompanyID
	users.users["u1"] = &entity.User{
		ID:        "u1",
		Name:      "Carlos Gerente",
		Email:     "carlos@taller.com",
		Role:      entity.RoleManager,
		CompanyID: &companyID,
	}
	uc := newUserUC(users, newFakeCompanyRepo(), &fakeEnqueuer{})

	out, err := uc.Update(context.Background(), "u1", dto.UpdateUserRequest{
		Name: strPtr("Carlos A. Gerente"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Carlos A. Gerente", out.Name)
	assert.Equal(t, "carlos@taller.com", out.Email, "el email no viene en el parche y debe conservarse")
	assert.Equal(t, entity.RoleManager, out.Role)
	require.NotNil(t, out.CompanyID)
	assert.Equal(t, testCompanyID, *out.CompanyID)
}

// Cambiar el email a uno ya usado por otro usuario falla.
func TestUserUpdate_EmailDeOtroUsuario_RetornaError(t *testing.T) {
	users := newFakeUserRepo()
	users.users["u1"] = &entity.User{ID: "u1", Email: "uno@example.com", Role: entity.RoleClient}
	users.users["u2"] = &entity.User{ID: "u2", Email: "dos@example.com", Role: entity.RoleClient}
	uc := newUserUC(users, newFakeCompanyRepo(), &fakeEnqueuer{})

	_, err := uc.Update(context.Background(), "u1", dto.UpdateUserRequest{
		Email: strPtr("dos@example.com"),
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CompanyUseCase.Delete — borrado protegido
// ──────────────────────────────────────────────────────────────────────────────

// Una empresa con usuarios, clientes u órdenes asociadas no se borra.
func TestCompanyDelete_ConDependientes_RetornaConflict(t *testing.T) {
	companies := newFakeCompanyRepo()
	seedCompany(companies)
	companies.dependent[testCompanyID] = true
	uc := usecase.NewCompanyUseCase(companies)

	err := uc.Delete(context.Background(), testCompanyID)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NotNil(t, companies.companies[testCompanyID], "la empresa debe seguir existiendo")
}

// Sin dependientes el borrado procede.
func TestCompanyDelete_SinDependientes_Borra(t *testing.T) {
	companies := newFakeCompanyRepo()
	seedCompany(companies)
	uc := usecase.NewCompanyUseCase(companies)

	require.NoError(t, uc.Delete(context.Background(), testCompanyID))
	assert.Nil(t, companies.companies[testCompanyID])
}

// Empresa inexistente.
func TestCompanyDelete_Inexistente_RetornaNotFound(t *testing.T) {
	uc := usecase.NewCompanyUseCase(newFakeCompanyRepo())
	assert.ErrorIs(t, uc.Delete(context.Background(), "no-existe"), domain.ErrNotFound)
}
