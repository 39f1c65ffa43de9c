// Package costing calcula los resúmenes de costos del dashboard (servicio de
// dominio puro: opera sobre entidades ya cargadas, sin tocar la base).
package costing

import (
	"github.com/shopspring/decimal"

	"github.com/SocketStudioec/ITAssetManager/internal/domain/entity"
)

// CategoryTotals costos mensual y anual de una categoría del desglose.
type CategoryTotals struct {
	Monthly decimal.Decimal
	Annual  decimal.Decimal
}

// Summary totales de costos de una empresa con desglose por categoría.
// Los costos ausentes cuentan como 0; nunca hay montos negativos de entrada.
type Summary struct {
	MonthlyTotal   decimal.Decimal
	AnnualTotal    decimal.Decimal
	Assets         CategoryTotals
	Infrastructure CategoryTotals
	Contracts      CategoryTotals
	Licenses       CategoryTotals
	Maintenance    CategoryTotals
}

// Summarize acumula los costos de todas las entidades de la empresa.
//
// Mensual: costo mensual de activos + los cuatro costos de infraestructura
// (dominio/SSL/hosting/servidor) + contratos + licencias.
// Anual: costo anual de activos + contratos + licencias + el gasto puntual de
// mantenimiento (se contabiliza en la vista anual).
func Summarize(
	assets []*entity.Asset,
	contracts []*entity.Contract,
	licenses []*entity.License,
	maintenance []*entity.MaintenanceRecord,
) Summary {
	var s Summary

	for _, a := range assets {
		s.Assets.Monthly = s.Assets.Monthly.Add(a.MonthlyCost)
		s.Assets.Annual = s.Assets.Annual.Add(a.AnnualCost)
		s.Infrastructure.Monthly = s.Infrastructure.Monthly.Add(a.InfraCost())
	}
	for _, c := range contracts {
		s.Contracts.Monthly = s.Contracts.Monthly.Add(c.MonthlyCost)
		s.Contracts.Annual = s.Contracts.Annual.Add(c.AnnualCost)
	}
	for _, l := range licenses {
		s.Licenses.Monthly = s.Licenses.Monthly.Add(l.MonthlyCost)
		s.Licenses.Annual = s.Licenses.Annual.Add(l.AnnualCost)
	}
	for _, m := range maintenance {
		s.Maintenance.Annual = s.Maintenance.Annual.Add(m.Cost)
	}

	s.MonthlyTotal = s.Assets.Monthly.
		Add(s.Infrastructure.Monthly).
		Add(s.Contracts.Monthly).
		Add(s.Licenses.Monthly)
	s.AnnualTotal = s.Assets.Annual.
		Add(s.Contracts.Annual).
		Add(s.Licenses.Annual).
		Add(s.Maintenance.Annual)

	return s
}

// CountsByType cuenta activos por tipo. Siempre incluye los cuatro tipos
// conocidos, con 0 para los que no tienen activos.
func CountsByType(assets []*entity.Asset) map[string]int {
	counts := map[string]int{
		entity.AssetTypePhysical:    0,
		entity.AssetTypeApplication: 0,
		entity.AssetTypeLicense:     0,
		entity.AssetTypeContract:    0,
	}
	for _, a := range assets {
		counts[a.Type]++
	}
	return counts
}
