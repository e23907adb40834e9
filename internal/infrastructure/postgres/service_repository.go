package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Taller-api/internal/domain"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
	"github.com/jhoicas/Taller-api/internal/domain/repository"
)

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

// ServiceRepo implementación de ServiceRepository (usable con pool o tx).
type ServiceRepo struct {
	q Querier
}

// NewServiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewServiceRepository(q Querier) *ServiceRepo {
	return &ServiceRepo{q: q}
}

// Create persiste un nuevo servicio del catálogo.
func (r *ServiceRepo) Create(ctx context.Context, service *entity.Service) error {
	query := `
		INSERT INTO services (id, company_id, description, price, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		service.ID, service.CompanyID, service.Description, service.Price, service.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

// GetByID obtiene un servicio de la empresa. (nil, nil) si no existe o es de otra.
func (r *ServiceRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Service, error) {
	query := `
		SELECT id, company_id, description, price, created_at
		FROM services WHERE company_id = $1 AND id = $2`
	var s entity.Service
	err := r.q.QueryRow(ctx, query, companyID, id).Scan(
		&s.ID, &s.CompanyID, &s.Description, &s.Price, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return &s, nil
}

// ListByCompany lista servicios de la empresa con paginación.
func (r *ServiceRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Service, error) {
	query := `
		SELECT id, company_id, description, price, created_at
		FROM services WHERE company_id = $1 ORDER BY description LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	var list []*entity.Service
	for rows.Next() {
		var s entity.Service
		if err := rows.Scan(&s.ID, &s.CompanyID, &s.Description, &s.Price, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update modifica un servicio. El WHERE incluye company_id.
func (r *ServiceRepo) Update(ctx context.Context, service *entity.Service) error {
	query := `
		UPDATE services SET description = $3, price = $4
		WHERE company_id = $1 AND id = $2`
	tag, err := r.q.Exec(ctx, query,
		service.CompanyID, service.ID, service.Description, service.Price,
	)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un servicio de la empresa.
func (r *ServiceRepo) Delete(ctx context.Context, companyID, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM services WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
