package serviceorder_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/internal/application/serviceorder"
	"github.com/jhoicas/Taller-api/internal/domain"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
	"github.com/jhoicas/Taller-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeResolver struct {
	companyByUser map[string]string
}

func (f *fakeResolver) Resolve(ctx context.Context, userID string) (string, error) {
	companyID, ok := f.companyByUser[userID]
	if !ok {
		return "", domain.ErrTenantNotResolved
	}
	return companyID, nil
}

type fakeOrderRepo struct {
	orders map[string]*entity.ServiceOrder
	items  map[string][]*entity.ServiceOrderItem

	failCreateItem bool
	listItemsCalls int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders: map[string]*entity.ServiceOrder{},
		items:  map[string][]*entity.ServiceOrderItem{},
	}
}

func (f *fakeOrderRepo) Create(ctx context.Context, o *entity.ServiceOrder) error {
	cp := *o
	f.orders[o.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) CreateItem(ctx context.Context, it *entity.ServiceOrderItem) error {
	if f.failCreateItem {
		return errors.New("fallo simulado insertando item")
	}
	cp := *it
	f.items[it.ServiceOrderID] = append(f.items[it.ServiceOrderID], &cp)
	return nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, companyID, id string) (*entity.ServiceOrder, error) {
	o, ok := f.orders[id]
	if !ok || o.CompanyID != companyID {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.ServiceOrder, error) {
	var out []*entity.ServiceOrder
	for _, o := range f.orders {
		if o.CompanyID == companyID {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ListItems(ctx context.Context, orderID string) ([]*entity.ServiceOrderItem, error) {
	f.listItemsCalls++
	var out []*entity.ServiceOrderItem
	for _, it := range f.items[orderID] {
		cp := *it
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeOrderRepo) Update(ctx context.Context, o *entity.ServiceOrder) error {
	cp := *o
	f.orders[o.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) UpdateItem(ctx context.Context, it *entity.ServiceOrderItem) error {
	for i, existing := range f.items[it.ServiceOrderID] {
		if existing.ID == it.ID {
			cp := *it
			f.items[it.ServiceOrderID][i] = &cp
			return nil
		}
	}
	return nil
}

func (f *fakeOrderRepo) DeleteItems(ctx context.Context, orderID string) error {
	delete(f.items, orderID)
	return nil
}

func (f *fakeOrderRepo) Delete(ctx context.Context, id string) error {
	delete(f.orders, id)
	return nil
}

func (f *fakeOrderRepo) AdminGetByID(ctx context.Context, id string) (*entity.ServiceOrder, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) AdminList(ctx context.Context) ([]*entity.ServiceOrder, error) {
	var out []*entity.ServiceOrder
	for _, o := range f.orders {
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

// fakeTxRunner simula la atomicidad: toma una copia del estado, corre fn y
// restaura la copia si fn falla.
type fakeTxRunner struct {
	repo *fakeOrderRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(orders repository.ServiceOrderRepository) error) error {
	ordersSnap := map[string]*entity.ServiceOrder{}
	for k, v := range f.repo.orders {
		cp := *v
		ordersSnap[k] = &cp
	}
	itemsSnap := map[string][]*entity.ServiceOrderItem{}
	for k, list := range f.repo.items {
		for _, it := range list {
			cp := *it
			itemsSnap[k] = append(itemsSnap[k], &cp)
		}
	}

	if err := fn(f.repo); err != nil {
		f.repo.orders = ordersSnap
		f.repo.items = itemsSnap
		return err
	}
	return nil
}

type fakeCustomerRepo struct {
	byID map[string]*entity.Customer
}

func (f *fakeCustomerRepo) Create(ctx context.Context, c *entity.Customer) error { return nil }
func (f *fakeCustomerRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Customer, error) {
	c, ok := f.byID[id]
	if !ok || c.CompanyID != companyID {
		return nil, nil
	}
	return c, nil
}
func (f *fakeCustomerRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Customer, error) {
	return nil, nil
}
func (f *fakeCustomerRepo) Update(ctx context.Context, c *entity.Customer) error { return nil }
func (f *fakeCustomerRepo) Delete(ctx context.Context, companyID, id string) error { return nil }

type fakeProductRepo struct {
	byID map[string]*entity.Product
}

func (f *fakeProductRepo) Create(ctx context.Context, p *entity.Product) error { return nil }
func (f *fakeProductRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Product, error) {
	p, ok := f.byID[id]
	if !ok || p.CompanyID != companyID {
		return nil, nil
	}
	return p, nil
}
func (f *fakeProductRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Update(ctx context.Context, p *entity.Product) error { return nil }
func (f *fakeProductRepo) Delete(ctx context.Context, companyID, id string) error { return nil }

type fakeServiceRepo struct {
	byID map[string]*entity.Service
}

func (f *fakeServiceRepo) Create(ctx context.Context, s *entity.Service) error { return nil }
func (f *fakeServiceRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Service, error) {
	s, ok := f.byID[id]
	if !ok || s.CompanyID != companyID {
		return nil, nil
	}
	return s, nil
}
func (f *fakeServiceRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Service, error) {
	return nil, nil
}
func (f *fakeServiceRepo) Update(ctx context.Context, s *entity.Service) error { return nil }
func (f *fakeServiceRepo) Delete(ctx context.Context, companyID, id string) error { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Armado del escenario
// ──────────────────────────────────────────────────────────────────────────────

const (
	companyA  = "aaaaaaaa-aaaa-4aaa-8aaa-aaaaaaaaaaaa"
	companyB  = "bbbbbbbb-bbbb-4bbb-8bbb-bbbbbbbbbbbb"
	managerA  = "11111111-1111-4111-8111-111111111111"
	managerB  = "22222222-2222-4222-8222-222222222222"
	customerA = "33333333-3333-4333-8333-333333333333"
	customerB = "44444444-4444-4444-8444-444444444444"
	serviceA  = "55555555-5555-4555-8555-555555555555"
	productA  = "66666666-6666-4666-8666-666666666666"
)

type scenario struct {
	uc        *serviceorder.UseCase
	orderRepo *fakeOrderRepo
}

func newScenario() *scenario {
	orderRepo := newFakeOrderRepo()
	resolver := &fakeResolver{companyByUser: map[string]string{
		managerA: companyA,
		managerB: companyB,
	}}
	customers := &fakeCustomerRepo{byID: map[string]*entity.Customer{
		customerA: {ID: customerA, CompanyID: companyA, Name: "Carlos"},
		customerB: {ID: customerB, CompanyID: companyB, Name: "Berta"},
	}}
	products := &fakeProductRepo{byID: map[string]*entity.Product{
		productA: {ID: productA, CompanyID: companyA, Description: "Pantalla"},
	}}
	services := &fakeServiceRepo{byID: map[string]*entity.Service{
		serviceA: {ID: serviceA, CompanyID: companyA, Description: "Cambio de pantalla"},
	}}
	uc := serviceorder.NewUseCase(resolver, orderRepo, customers, products, services, &fakeTxRunner{repo: orderRepo})
	return &scenario{uc: uc, orderRepo: orderRepo}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func createRequest() dto.CreateServiceOrderRequest {
	return dto.CreateServiceOrderRequest{
		CustomerID:  customerA,
		DeviceBrand: "Samsung",
		DeviceModel: "A52",
		ServiceOrderItems: []dto.ServiceOrderItemRequest{
			{ItemType: entity.ItemTypeService, ItemID: serviceA, Quantity: dec("1"), UnitPrice: dec("150000")},
			{ItemType: entity.ItemTypeProduct, ItemID: productA, Quantity: dec("2"), UnitPrice: dec("80000.50")},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

// El total de cada línea lo calcula el servidor como unitPrice × quantity.
func TestCreate_TotalesCalculadosEnServidor(t *testing.T) {
	s := newScenario()

	resp, err := s.uc.Create(context.Background(), managerA, createRequest())
	require.NoError(t, err)

	require.Len(t, resp.ServiceOrderItems, 2)
	assert.True(t, dec("150000").Equal(resp.ServiceOrderItems[0].Total),
		"total de la primera línea: 150000 × 1")
	assert.True(t, dec("160001").Equal(resp.ServiceOrderItems[1].Total),
		"total de la segunda línea: 80000.50 × 2, sin error de redondeo")

	assert.Equal(t, entity.OrderStatusOpen, resp.Status, "la orden nace en estado open")
	assert.False(t, resp.OpenedAt.IsZero(), "openedAt lo fija el servidor")
	assert.Equal(t, companyA, resp.CompanyID)
	assert.Equal(t, managerA, resp.ResponsibleUserID)
}

// Cliente de otra empresa → ErrNotFound, sin revelar que el id existe.
func TestCreate_ClienteDeOtraEmpresa(t *testing.T) {
	s := newScenario()

	req := createRequest()
	req.CustomerID = customerB // pertenece a companyB

	_, err := s.uc.Create(context.Background(), managerA, req)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, s.orderRepo.orders, "no debe persistir nada")
}

// Item que no existe en el catálogo de la empresa → ErrInvalidInput.
func TestCreate_ItemInexistenteEnCatalogo(t *testing.T) {
	s := newScenario()

	req := createRequest()
	req.ServiceOrderItems[0].ItemID = "99999999-9999-4999-8999-999999999999"

	_, err := s.uc.Create(context.Background(), managerA, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Cantidad cero o negativa → ErrInvalidInput.
func TestCreate_CantidadInvalida(t *testing.T) {
	s := newScenario()

	req := createRequest()
	req.ServiceOrderItems[0].Quantity = dec("0")

	_, err := s.uc.Create(context.Background(), managerA, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Si falla el insert de una línea, la orden tampoco queda persistida.
func TestCreate_FalloEnItem_NoDejaOrdenHuerfana(t *testing.T) {
	s := newScenario()
	s.orderRepo.failCreateItem = true

	_, err := s.uc.Create(context.Background(), managerA, createRequest())
	require.Error(t, err)

	assert.Empty(t, s.orderRepo.orders, "la transacción debe revertir la cabecera")
	assert.Empty(t, s.orderRepo.items, "la transacción debe revertir las líneas")
}

// Gerente sin empresa asignada → ErrTenantNotResolved.
func TestCreate_GerenteSinEmpresa(t *testing.T) {
	s := newScenario()

	_, err := s.uc.Create(context.Background(), "no-existe", createRequest())
	assert.ErrorIs(t, err, domain.ErrTenantNotResolved)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Get / List
// ──────────────────────────────────────────────────────────────────────────────

// Una orden de otra empresa se comporta como inexistente.
func TestGet_OrdenDeOtraEmpresa(t *testing.T) {
	s := newScenario()

	resp, err := s.uc.Create(context.Background(), managerA, createRequest())
	require.NoError(t, err)

	_, err = s.uc.Get(context.Background(), managerB, resp.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := s.uc.Get(context.Background(), managerA, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, got.ID)
	assert.Len(t, got.ServiceOrderItems, 2)
}

// List solo devuelve órdenes de la empresa del gerente.
func TestList_SoloOrdenesDeLaEmpresa(t *testing.T) {
	s := newScenario()

	_, err := s.uc.Create(context.Background(), managerA, createRequest())
	require.NoError(t, err)

	listA, err := s.uc.List(context.Background(), managerA)
	require.NoError(t, err)
	assert.Len(t, listA, 1)

	listB, err := s.uc.List(context.Background(), managerB)
	require.NoError(t, err)
	assert.Empty(t, listB)
}

// List devuelve solo cabeceras: no consulta las líneas de ninguna orden.
func TestList_SoloCabeceras_SinConsultarLineas(t *testing.T) {
	s := newScenario()

	created, err := s.uc.Create(context.Background(), managerA, createRequest())
	require.NoError(t, err)

	s.orderRepo.listItemsCalls = 0
	list, err := s.uc.List(context.Background(), managerA)
	require.NoError(t, err)

	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
	assert.Zero(t, s.orderRepo.listItemsCalls,
		"el listado no debe leer las líneas, eso es solo de Get")
}

// AdminList también es un listado de solo cabeceras.
func TestAdminList_SoloCabeceras(t *testing.T) {
	s := newScenario()

	_, err := s.uc.Create(context.Background(), managerA, createRequest())
	require.NoError(t, err)

	s.orderRepo.listItemsCalls = 0
	list, err := s.uc.AdminList(context.Background())
	require.NoError(t, err)

	assert.Len(t, list, 1)
	assert.Zero(t, s.orderRepo.listItemsCalls)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Update
// ──────────────────────────────────────────────────────────────────────────────

func strPtr(s string) *string { return &s }

// Línea con id se actualiza y su total se recalcula; línea sin id se inserta;
// las líneas no mencionadas quedan intactas.
func TestUpdate_ActualizaInsertaYPreservaLineas(t *testing.T) {
	s := newScenario()

	created, err := s.uc.Create(context.Background(), managerA, createRequest())
	require.NoError(t, err)

	existing := created.ServiceOrderItems[0]
	req := dto.UpdateServiceOrderRequest{
		Status: strPtr(entity.OrderStatusInProgress),
		ServiceOrderItems: []dto.ServiceOrderItemRequest{
			// actualizar la primera línea con nueva cantidad
			{ID: existing.ID, ItemType: existing.ItemType, ItemID: existing.ItemID, Quantity: dec("3"), UnitPrice: dec("150000")},
			// insertar una línea nueva
			{ItemType: entity.ItemTypeProduct, ItemID: productA, Quantity: dec("1"), UnitPrice: dec("50000")},
		},
	}

	updated, err := s.uc.Update(context.Background(), managerA, created.ID, req)
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusInProgress, updated.Status)
	require.Len(t, updated.ServiceOrderItems, 3, "2 originales + 1 insertada; la no mencionada queda intacta")

	byID := map[string]dto.ServiceOrderItemResponse{}
	for _, it := range updated.ServiceOrderItems {
		byID[it.ID] = it
	}
	assert.True(t, dec("450000").Equal(byID[existing.ID].Total),
		"la línea actualizada recalcula su total: 150000 × 3")

	untouched := created.ServiceOrderItems[1]
	assert.True(t, untouched.Total.Equal(byID[untouched.ID].Total),
		"la línea ausente del payload conserva su total")
}

// Un parche de solo estado no toca ningún otro campo de la cabecera.
func TestUpdate_SoloEstado_PreservaLosDemasCampos(t *testing.T) {
	s := newScenario()

	req := createRequest()
	req.Notes = "pantalla rota, cliente avisado"
	req.ClientSignature = "firma-base64"
	created, err := s.uc.Create(context.Background(), managerA, req)
	require.NoError(t, err)

	updated, err := s.uc.Update(context.Background(), managerA, created.ID, dto.UpdateServiceOrderRequest{
		Status: strPtr(entity.OrderStatusCompleted),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusCompleted, updated.Status)
	assert.Equal(t, "pantalla rota, cliente avisado", updated.Notes,
		"las notas no vienen en el parche y deben conservarse")
	assert.Equal(t, "firma-base64", updated.ClientSignature,
		"la firma no viene en el parche y debe conservarse")
	assert.Equal(t, created.CustomerID, updated.CustomerID)
	assert.Equal(t, created.DeviceBrand, updated.DeviceBrand)
	assert.Len(t, updated.ServiceOrderItems, 2, "las líneas tampoco cambian")
}

// Actualizar una orden de otra empresa → ErrNotFound.
func TestUpdate_OrdenDeOtraEmpresa(t *testing.T) {
	s := newScenario()

	created, err := s.uc.Create(context.Background(), managerA, createRequest())
	require.NoError(t, err)

	_, err = s.uc.Update(context.Background(), managerB, created.ID, dto.UpdateServiceOrderRequest{
		Status: strPtr(entity.OrderStatusInProgress),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Estado fuera del conjunto conocido → ErrInvalidInput.
func TestUpdate_EstadoDesconocido(t *testing.T) {
	s := newScenario()

	created, err := s.uc.Create(context.Background(), managerA, createRequest())
	require.NoError(t, err)

	_, err = s.uc.Update(context.Background(), managerA, created.ID, dto.UpdateServiceOrderRequest{
		Status: strPtr("archivada"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Delete
// ──────────────────────────────────────────────────────────────────────────────

// Delete elimina la orden y sus líneas.
func TestDelete_EliminaOrdenYLineas(t *testing.T) {
	s := newScenario()

	created, err := s.uc.Create(context.Background(), managerA, createRequest())
	require.NoError(t, err)

	require.NoError(t, s.uc.Delete(context.Background(), managerA, created.ID))
	assert.Empty(t, s.orderRepo.orders)
	assert.Empty(t, s.orderRepo.items)
}

// Borrar una orden de otra empresa → ErrNotFound y nada cambia.
func TestDelete_OrdenDeOtraEmpresa(t *testing.T) {
	s := newScenario()

	created, err := s.uc.Create(context.Background(), managerA, createRequest())
	require.NoError(t, err)

	err = s.uc.Delete(context.Background(), managerB, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, s.orderRepo.orders, 1, "la orden debe seguir existiendo")
}
