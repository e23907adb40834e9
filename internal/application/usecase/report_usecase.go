package usecase

import (
	"context"

	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/internal/domain/repository"
)

// ReportUseCase estadísticas de la empresa del gerente.
type ReportUseCase struct {
	resolver TenantResolver
	reports  repository.ReportRepository
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(resolver TenantResolver, reports repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{resolver: resolver, reports: reports}
}

// Statistics devuelve el tablero de la empresa: total de órdenes, conteo por
// estado, total de clientes y la facturación de las órdenes completadas.
func (uc *ReportUseCase) Statistics(ctx context.Context, managerID string) (*dto.StatisticsResponse, error) {
	companyID, err := uc.resolver.Resolve(ctx, managerID)
	if err != nil {
		return nil, err
	}
	stats, err := uc.reports.GetCompanyStatistics(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return dto.NewStatisticsResponse(stats), nil
}
