package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/internal/domain"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
	"github.com/jhoicas/Taller-api/internal/domain/repository"
)

// ServiceUseCase catálogo de servicios de la empresa del gerente.
type ServiceUseCase struct {
	resolver TenantResolver
	services repository.ServiceRepository
}

// NewServiceUseCase construye el caso de uso de servicios.
func NewServiceUseCase(resolver TenantResolver, services repository.ServiceRepository) *ServiceUseCase {
	return &ServiceUseCase{resolver: resolver, services: services}
}

// Create registra un servicio en el catálogo de la empresa.
func (uc *ServiceUseCase) Create(ctx context.Context, managerID string, in dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	companyID, err := uc.resolver.Resolve(ctx, managerID)
	if err != nil {
		return nil, err
	}
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
	}

	service := &entity.Service{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Description: in.Description,
		Price:       in.Price,
		CreatedAt:   time.Now(),
	}
	if err := uc.services.Create(ctx, service); err != nil {
		return nil, err
	}
	return dto.NewServiceResponse(service), nil
}

// Get devuelve un servicio del catálogo de la empresa.
func (uc *ServiceUseCase) Get(ctx context.Context, managerID, id string) (*dto.ServiceResponse, error) {
	companyID, err := uc.resolver.Resolve(ctx, managerID)
	if err != nil {
		return nil, err
	}
	service, err := uc.services.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, domain.ErrNotFound
	}
	return dto.NewServiceResponse(service), nil
}

// List devuelve el catálogo de servicios, paginado.
func (uc *ServiceUseCase) List(ctx context.Context, managerID string, page dto.PageRequest) ([]*dto.ServiceResponse, error) {
	companyID, err := uc.resolver.Resolve(ctx, managerID)
	if err != nil {
		return nil, err
	}
	page.Normalize()
	services, err := uc.services.ListByCompany(ctx, companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, dto.NewServiceResponse(s))
	}
	return out, nil
}

// Update aplica un parche sobre un servicio del catálogo; los campos ausentes
// del payload conservan su valor.
func (uc *ServiceUseCase) Update(ctx context.Context, managerID, id string, in dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	companyID, err := uc.resolver.Resolve(ctx, managerID)
	if err != nil {
		return nil, err
	}
	service, err := uc.services.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, domain.ErrNotFound
	}
	if in.Price != nil && in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
	}

	if in.Description != nil {
		service.Description = *in.Description
	}
	if in.Price != nil {
		service.Price = *in.Price
	}

	if err := uc.services.Update(ctx, service); err != nil {
		return nil, err
	}
	return dto.NewServiceResponse(service), nil
}

// Delete elimina un servicio del catálogo.
func (uc *ServiceUseCase) Delete(ctx context.Context, managerID, id string) error {
	companyID, err := uc.resolver.Resolve(ctx, managerID)
	if err != nil {
		return err
	}
	service, err := uc.services.GetByID(ctx, companyID, id)
	if err != nil {
		return err
	}
	if service == nil {
		return domain.ErrNotFound
	}
	return uc.services.Delete(ctx, companyID, id)
}
