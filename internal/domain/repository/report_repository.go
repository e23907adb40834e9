package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// CompanyStatistics resultado agregado para el tablero del gerente.
type CompanyStatistics struct {
	TotalOrders    int
	OrdersByStatus map[string]int
	TotalCustomers int
	// TotalRevenue = suma de los totales de línea de las órdenes completadas.
	TotalRevenue decimal.Decimal
}

// ReportRepository consultas de solo lectura para estadísticas por empresa.
type ReportRepository interface {
	GetCompanyStatistics(ctx context.Context, companyID string) (*CompanyStatistics, error)
}
