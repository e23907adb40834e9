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

var _ repository.ServiceOrderRepository = (*ServiceOrderRepo)(nil)

const serviceOrderColumns = `
	id, company_id, customer_id, responsible_user_id,
	device_brand, device_model, device_color, device_imei, device_password,
	device_condition, device_accessories, has_warranty, has_invoice,
	opened_at, closed_at, estimated_budget_date, estimated_pickup_date,
	status, notes, responsibility_term, client_signature, technician_signature`

// ServiceOrderRepo implementación de ServiceOrderRepository (usable con pool
// o tx; las mutaciones del agregado llegan siempre atadas a una tx vía TxRunner).
type ServiceOrderRepo struct {
	q Querier
}

// NewServiceOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewServiceOrderRepository(q Querier) *ServiceOrderRepo {
	return &ServiceOrderRepo{q: q}
}

func scanServiceOrder(row pgx.Row) (*entity.ServiceOrder, error) {
	var o entity.ServiceOrder
	err := row.Scan(
		&o.ID, &o.CompanyID, &o.CustomerID, &o.ResponsibleUserID,
		&o.DeviceBrand, &o.DeviceModel, &o.DeviceColor, &o.DeviceIMEI, &o.DevicePassword,
		&o.DeviceCondition, &o.DeviceAccessories, &o.HasWarranty, &o.HasInvoice,
		&o.OpenedAt, &o.ClosedAt, &o.EstimatedBudgetDate, &o.EstimatedPickupDate,
		&o.Status, &o.Notes, &o.ResponsibilityTerm, &o.ClientSignature, &o.TechnicianSignature,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create persiste la cabecera de una orden.
func (r *ServiceOrderRepo) Create(ctx context.Context, order *entity.ServiceOrder) error {
	query := `
		INSERT INTO service_orders (` + serviceOrderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`
	_, err := r.q.Exec(ctx, query,
		order.ID, order.CompanyID, order.CustomerID, order.ResponsibleUserID,
		order.DeviceBrand, order.DeviceModel, order.DeviceColor, order.DeviceIMEI, order.DevicePassword,
		order.DeviceCondition, order.DeviceAccessories, order.HasWarranty, order.HasInvoice,
		order.OpenedAt, order.ClosedAt, order.EstimatedBudgetDate, order.EstimatedPickupDate,
		order.Status, order.Notes, order.ResponsibilityTerm, order.ClientSignature, order.TechnicianSignature,
	)
	if err != nil {
		return fmt.Errorf("insert service order: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de la orden.
func (r *ServiceOrderRepo) CreateItem(ctx context.Context, item *entity.ServiceOrderItem) error {
	query := `
		INSERT INTO service_order_items (id, service_order_id, item_type, item_id, quantity, unit_price, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.ServiceOrderID, item.Item.Type, item.Item.ID,
		item.Quantity, item.UnitPrice, item.Total,
	)
	if err != nil {
		return fmt.Errorf("insert service order item: %w", err)
	}
	return nil
}

// GetByID obtiene una orden de la empresa. (nil, nil) si no existe o es de otra.
func (r *ServiceOrderRepo) GetByID(ctx context.Context, companyID, id string) (*entity.ServiceOrder, error) {
	query := `SELECT ` + serviceOrderColumns + ` FROM service_orders WHERE company_id = $1 AND id = $2`
	order, err := scanServiceOrder(r.q.QueryRow(ctx, query, companyID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service order: %w", err)
	}
	return order, nil
}

// ListByCompany lista las órdenes de la empresa, la más reciente primero.
func (r *ServiceOrderRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.ServiceOrder, error) {
	query := `SELECT ` + serviceOrderColumns + ` FROM service_orders WHERE company_id = $1 ORDER BY opened_at DESC`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list service orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.ServiceOrder
	for rows.Next() {
		order, err := scanServiceOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service order: %w", err)
		}
		list = append(list, order)
	}
	return list, rows.Err()
}

// ListItems lista las líneas de una orden.
func (r *ServiceOrderRepo) ListItems(ctx context.Context, orderID string) ([]*entity.ServiceOrderItem, error) {
	query := `
		SELECT id, service_order_id, item_type, item_id, quantity, unit_price, total
		FROM service_order_items WHERE service_order_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list service order items: %w", err)
	}
	defer rows.Close()

	var list []*entity.ServiceOrderItem
	for rows.Next() {
		var it entity.ServiceOrderItem
		if err := rows.Scan(&it.ID, &it.ServiceOrderID, &it.Item.Type, &it.Item.ID,
			&it.Quantity, &it.UnitPrice, &it.Total); err != nil {
			return nil, fmt.Errorf("scan service order item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Update modifica la cabecera de una orden.
func (r *ServiceOrderRepo) Update(ctx context.Context, order *entity.ServiceOrder) error {
	query := `
		UPDATE service_orders SET
			customer_id = $2, device_brand = $3, device_model = $4, device_color = $5,
			device_imei = $6, device_password = $7, device_condition = $8, device_accessories = $9,
			has_warranty = $10, has_invoice = $11, closed_at = $12,
			estimated_budget_date = $13, estimated_pickup_date = $14,
			status = $15, notes = $16, responsibility_term = $17,
			client_signature = $18, technician_signature = $19
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		order.ID, order.CustomerID, order.DeviceBrand, order.DeviceModel, order.DeviceColor,
		order.DeviceIMEI, order.DevicePassword, order.DeviceCondition, order.DeviceAccessories,
		order.HasWarranty, order.HasInvoice, order.ClosedAt,
		order.EstimatedBudgetDate, order.EstimatedPickupDate,
		order.Status, order.Notes, order.ResponsibilityTerm,
		order.ClientSignature, order.TechnicianSignature,
	)
	if err != nil {
		return fmt.Errorf("update service order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateItem actualiza una línea, acotada por (id, service_order_id) para no
// tocar líneas de otra orden.
func (r *ServiceOrderRepo) UpdateItem(ctx context.Context, item *entity.ServiceOrderItem) error {
	query := `
		UPDATE service_order_items SET item_type = $3, item_id = $4, quantity = $5, unit_price = $6, total = $7
		WHERE id = $1 AND service_order_id = $2`
	tag, err := r.q.Exec(ctx, query,
		item.ID, item.ServiceOrderID, item.Item.Type, item.Item.ID,
		item.Quantity, item.UnitPrice, item.Total,
	)
	if err != nil {
		return fmt.Errorf("update service order item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteItems elimina todas las líneas de una orden.
func (r *ServiceOrderRepo) DeleteItems(ctx context.Context, orderID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM service_order_items WHERE service_order_id = $1`, orderID); err != nil {
		return fmt.Errorf("delete service order items: %w", err)
	}
	return nil
}

// Delete elimina la cabecera de una orden.
func (r *ServiceOrderRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM service_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AdminGetByID obtiene cualquier orden sin filtrar por empresa.
func (r *ServiceOrderRepo) AdminGetByID(ctx context.Context, id string) (*entity.ServiceOrder, error) {
	query := `SELECT ` + serviceOrderColumns + ` FROM service_orders WHERE id = $1`
	order, err := scanServiceOrder(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service order (admin): %w", err)
	}
	return order, nil
}

// AdminList lista todas las órdenes del sistema, la más reciente primero.
func (r *ServiceOrderRepo) AdminList(ctx context.Context) ([]*entity.ServiceOrder, error) {
	query := `SELECT ` + serviceOrderColumns + ` FROM service_orders ORDER BY opened_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list service orders (admin): %w", err)
	}
	defer rows.Close()

	var list []*entity.ServiceOrder
	for rows.Next() {
		order, err := scanServiceOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service order (admin): %w", err)
		}
		list = append(list, order)
	}
	return list, rows.Err()
}
