// Package analytics contiene los casos de uso de lectura que alimentan el
// dashboard: resumen de costos, conteos por tipo y alertas de vencimiento.
package analytics

import (
	"fmt"
	"time"

	"github.com/SocketStudioec/ITAssetManager/internal/application/dto"
	"github.com/SocketStudioec/ITAssetManager/internal/domain/assets"
	"github.com/SocketStudioec/ITAssetManager/internal/domain/costing"
	"github.com/SocketStudioec/ITAssetManager/internal/domain/entity"
	"github.com/SocketStudioec/ITAssetManager/internal/domain/repository"
)

// DashboardUseCase genera el resumen del dashboard de una empresa.
//
// Carga las cuatro colecciones en paralelo (son consultas read-only
// independientes) y delega los cálculos en los servicios de dominio puros.
type DashboardUseCase struct {
	assetRepo       repository.AssetRepository
	contractRepo    repository.ContractRepository
	licenseRepo     repository.LicenseRepository
	maintenanceRepo repository.MaintenanceRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	assetRepo repository.AssetRepository,
	contractRepo repository.ContractRepository,
	licenseRepo repository.LicenseRepository,
	maintenanceRepo repository.MaintenanceRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		assetRepo:       assetRepo,
		contractRepo:    contractRepo,
		licenseRepo:     licenseRepo,
		maintenanceRepo: maintenanceRepo,
	}
}

// GetSummary construye el DashboardSummaryDTO de la empresa al instante `now`.
func (uc *DashboardUseCase) GetSummary(companyID string, now time.Time) (*dto.DashboardSummaryDTO, error) {
	type assetsResult struct {
		list []*entity.Asset
		err  error
	}
	type contractsResult struct {
		list []*entity.Contract
		err  error
	}
	type licensesResult struct {
		list []*entity.License
		err  error
	}
	type maintenanceResult struct {
		list []*entity.MaintenanceRecord
		err  error
	}

	assetsCh := make(chan assetsResult, 1)
	contractsCh := make(chan contractsResult, 1)
	licensesCh := make(chan licensesResult, 1)
	maintenanceCh := make(chan maintenanceResult, 1)

	go func() {
		list, err := uc.assetRepo.ListByCompany(companyID)
		assetsCh <- assetsResult{list, err}
	}()
	go func() {
		list, err := uc.contractRepo.ListByCompany(companyID)
		contractsCh <- contractsResult{list, err}
	}()
	go func() {
		list, err := uc.licenseRepo.ListByCompany(companyID)
		licensesCh <- licensesResult{list, err}
	}()
	go func() {
		list, err := uc.maintenanceRepo.ListByCompany(companyID)
		maintenanceCh <- maintenanceResult{list, err}
	}()

	as := <-assetsCh
	cs := <-contractsCh
	ls := <-licensesCh
	ms := <-maintenanceCh

	if as.err != nil {
		return nil, fmt.Errorf("dashboard: activos: %w", as.err)
	}
	if cs.err != nil {
		return nil, fmt.Errorf("dashboard: contratos: %w", cs.err)
	}
	if ls.err != nil {
		return nil, fmt.Errorf("dashboard: licencias: %w", ls.err)
	}
	if ms.err != nil {
		return nil, fmt.Errorf("dashboard: mantenimientos: %w", ms.err)
	}

	summary := costing.Summarize(as.list, cs.list, ls.list, ms.list)

	return &dto.DashboardSummaryDTO{
		Costs: dto.CostSummaryDTO{
			MonthlyTotal: summary.MonthlyTotal.Round(2),
			AnnualTotal:  summary.AnnualTotal.Round(2),
			Breakdown: map[string]dto.CategoryCostDTO{
				"assets":         toCategoryDTO(summary.Assets),
				"infrastructure": toCategoryDTO(summary.Infrastructure),
				"contracts":      toCategoryDTO(summary.Contracts),
				"licenses":       toCategoryDTO(summary.Licenses),
				"maintenance":    toCategoryDTO(summary.Maintenance),
			},
		},
		Assets: dto.AssetOverviewDTO{
			Total:        len(as.list),
			CountsByType: costing.CountsByType(as.list),
			Alerts:       expirationAlerts(as.list, now),
		},
		GeneratedAt: now,
	}, nil
}

func toCategoryDTO(c costing.CategoryTotals) dto.CategoryCostDTO {
	return dto.CategoryCostDTO{Monthly: c.Monthly.Round(2), Annual: c.Annual.Round(2)}
}

// expirationAlerts evalúa cada activo y devuelve solo los que tienen algún
// campo vencido o por vencer dentro de la ventana de 30 días.
func expirationAlerts(list []*entity.Asset, now time.Time) []dto.AssetAlertDTO {
	var alerts []dto.AssetAlertDTO
	for _, a := range list {
		status, fields := assets.EvaluateAsset(a, now)
		if status == assets.StatusNone {
			continue
		}
		alert := dto.AssetAlertDTO{
			AssetID:   a.ID,
			AssetName: a.Name,
			Type:      a.Type,
			Status:    string(status),
		}
		for _, f := range fields {
			alert.Fields = append(alert.Fields, dto.ExpiringFieldDTO{
				Field:  f.Field,
				Date:   f.Date,
				Status: string(f.Status),
			})
		}
		alerts = append(alerts, alert)
	}
	return alerts
}
