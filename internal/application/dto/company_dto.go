package dto

import (
	"time"

	"github.com/jhoicas/Taller-api/internal/domain/entity"
)

// CreateCompanyRequest alta de empresa (solo administrador general).
type CreateCompanyRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	TaxID   string `json:"taxId" validate:"omitempty,min=5"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// UpdateCompanyRequest parche de empresa: solo se escriben los campos
// presentes en el payload.
type UpdateCompanyRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=2"`
	TaxID   *string `json:"taxId" validate:"omitempty,min=5"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
}

// CompanyResponse representación pública de una empresa.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"taxId,omitempty"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewCompanyResponse convierte la entidad a su representación de API.
func NewCompanyResponse(c *entity.Company) *CompanyResponse {
	return &CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		TaxID:     c.TaxID,
		Address:   c.Address,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
	}
}
