package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Taller-api/internal/domain/repository"
)

// StatisticsResponse tablero de la empresa del gerente.
// totalRevenue suma los totales de línea de las órdenes completadas.
type StatisticsResponse struct {
	TotalOrders    int             `json:"totalOrders"`
	OrdersByStatus map[string]int  `json:"ordersByStatus"`
	TotalCustomers int             `json:"totalCustomers"`
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
}

// NewStatisticsResponse convierte el agregado del repositorio a su representación de API.
func NewStatisticsResponse(s *repository.CompanyStatistics) *StatisticsResponse {
	return &StatisticsResponse{
		TotalOrders:    s.TotalOrders,
		OrdersByStatus: s.OrdersByStatus,
		TotalCustomers: s.TotalCustomers,
		TotalRevenue:   s.TotalRevenue,
	}
}
