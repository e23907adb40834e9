package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Taller-api/internal/domain/entity"
	"github.com/jhoicas/Taller-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para el tablero del gerente.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// GetCompanyStatistics arma las estadísticas de la empresa: conteo de órdenes
// por estado, total de clientes y la facturación de las órdenes completadas
// (suma de los totales de línea).
func (r *ReportRepo) GetCompanyStatistics(ctx context.Context, companyID string) (*repository.CompanyStatistics, error) {
	stats := &repository.CompanyStatistics{
		OrdersByStatus: map[string]int{
			entity.OrderStatusOpen:       0,
			entity.OrderStatusInProgress: 0,
			entity.OrderStatusCompleted:  0,
			entity.OrderStatusCancelled:  0,
		},
		TotalRevenue: decimal.Zero,
	}

	rows, err := r.q.Query(ctx,
		`SELECT status, COUNT(*) FROM service_orders WHERE company_id = $1 GROUP BY status`, companyID)
	if err != nil {
		return nil, fmt.Errorf("count orders by status: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan order count: %w", err)
		}
		stats.OrdersByStatus[status] = count
		stats.TotalOrders += count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM customers WHERE company_id = $1`, companyID).
		Scan(&stats.TotalCustomers); err != nil {
		return nil, fmt.Errorf("count customers: %w", err)
	}

	if err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(i.total), 0)
		FROM service_order_items i
		JOIN service_orders o ON o.id = i.service_order_id
		WHERE o.company_id = $1 AND o.status = $2`,
		companyID, entity.OrderStatusCompleted).
		Scan(&stats.TotalRevenue); err != nil {
		return nil, fmt.Errorf("sum revenue: %w", err)
	}

	return stats, nil
}
