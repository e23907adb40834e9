package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/internal/domain"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
	"github.com/jhoicas/Taller-api/internal/domain/repository"
)

// TenantResolver traduce el usuario autenticado a su empresa.
type TenantResolver interface {
	Resolve(ctx context.Context, userID string) (string, error)
}

// CustomerUseCase clientes de la empresa del gerente. Toda operación resuelve
// la empresa primero; un cliente de otra empresa se comporta como inexistente.
type CustomerUseCase struct {
	resolver  TenantResolver
	customers repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso de clientes.
func NewCustomerUseCase(resolver TenantResolver, customers repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{resolver: resolver, customers: customers}
}

// Create registra un cliente en la empresa del gerente.
func (uc *CustomerUseCase) Create(ctx context.Context, managerID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	companyID, err := uc.resolver.Resolve(ctx, managerID)
	if err != nil {
		return nil, err
	}

	customer := &entity.Customer{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		Address:      in.Address,
		RegisteredAt: time.Now(),
	}
	if err := uc.customers.Create(ctx, customer); err != nil {
		return nil, err
	}
	return dto.NewCustomerResponse(customer), nil
}

// Get devuelve un cliente de la empresa del gerente.
func (uc *CustomerUseCase) Get(ctx context.Context, managerID, id string) (*dto.CustomerResponse, error) {
	companyID, err := uc.resolver.Resolve(ctx, managerID)
	if err != nil {
		return nil, err
	}
	customer, err := uc.customers.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return dto.NewCustomerResponse(customer), nil
}

// List devuelve los clientes de la empresa, paginados.
func (uc *CustomerUseCase) List(ctx context.Context, managerID string, page dto.PageRequest) ([]*dto.CustomerResponse, error) {
	companyID, err := uc.resolver.Resolve(ctx, managerID)
	if err != nil {
		return nil, err
	}
	page.Normalize()
	customers, err := uc.customers.ListByCompany(ctx, companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, dto.NewCustomerResponse(c))
	}
	return out, nil
}

// Update aplica un parche sobre un cliente de la empresa del gerente; los
// campos ausentes del payload conservan su valor.
func (uc *CustomerUseCase) Update(ctx context.Context, managerID, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	companyID, err := uc.resolver.Resolve(ctx, managerID)
	if err != nil {
		return nil, err
	}
	customer, err := uc.customers.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		customer.Name = *in.Name
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.Address != nil {
		customer.Address = *in.Address
	}

	if err := uc.customers.Update(ctx, customer); err != nil {
		return nil, err
	}
	return dto.NewCustomerResponse(customer), nil
}

// Delete elimina un cliente de la empresa del gerente.
func (uc *CustomerUseCase) Delete(ctx context.Context, managerID, id string) error {
	companyID, err := uc.resolver.Resolve(ctx, managerID)
	if err != nil {
		return err
	}
	customer, err := uc.customers.GetByID(ctx, companyID, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	return uc.customers.Delete(ctx, companyID, id)
}
