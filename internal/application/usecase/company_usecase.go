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

// CompanyUseCase administración de empresas (solo administrador general).
type CompanyUseCase struct {
	companies repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso de empresas.
func NewCompanyUseCase(companies repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{companies: companies}
}

// Create registra una empresa nueva.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      in.Name,
		TaxID:     in.TaxID,
		Address:   in.Address,
		Phone:     in.Phone,
		CreatedAt: time.Now(),
	}
	if err := uc.companies.Create(ctx, company); err != nil {
		return nil, err
	}
	return dto.NewCompanyResponse(company), nil
}

// Get devuelve una empresa por id.
func (uc *CompanyUseCase) Get(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	company, err := uc.companies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return dto.NewCompanyResponse(company), nil
}

// List devuelve las empresas paginadas.
func (uc *CompanyUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.CompanyResponse, error) {
	page.Normalize()
	companies, err := uc.companies.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, dto.NewCompanyResponse(c))
	}
	return out, nil
}

// Update aplica un parche sobre una empresa existente; los campos ausentes
// del payload conservan su valor.
func (uc *CompanyUseCase) Update(ctx context.Context, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.companies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		company.Name = *in.Name
	}
	if in.TaxID != nil {
		company.TaxID = *in.TaxID
	}
	if in.Address != nil {
		company.Address = *in.Address
	}
	if in.Phone != nil {
		company.Phone = *in.Phone
	}

	if err := uc.companies.Update(ctx, company); err != nil {
		return nil, err
	}
	return dto.NewCompanyResponse(company), nil
}

// Delete elimina una empresa sin dependientes. Si todavía tiene usuarios,
// clientes u órdenes asociadas devuelve ErrConflict en lugar de borrar en
// cascada.
func (uc *CompanyUseCase) Delete(ctx context.Context, id string) error {
	company, err := uc.companies.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}

	hasDeps, err := uc.companies.HasDependents(ctx, id)
	if err != nil {
		return err
	}
	if hasDeps {
		return fmt.Errorf("%w: la empresa tiene usuarios, clientes u órdenes asociadas", domain.ErrConflict)
	}
	return uc.companies.Delete(ctx, id)
}
