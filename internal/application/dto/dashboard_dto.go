package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryCostDTO costos mensual y anual de una categoría del desglose.
type CategoryCostDTO struct {
	Monthly decimal.Decimal `json:"monthly"`
	Annual  decimal.Decimal `json:"annual"`
}

// CostSummaryDTO totales de costos con desglose por categoría.
type CostSummaryDTO struct {
	MonthlyTotal decimal.Decimal            `json:"monthlyTotal"`
	AnnualTotal  decimal.Decimal            `json:"annualTotal"`
	Breakdown    map[string]CategoryCostDTO `json:"breakdown"`
}

// ExpiringFieldDTO campo vencido o por vencer de un activo.
type ExpiringFieldDTO struct {
	Field  string    `json:"field"` // warranty | domain | ssl | hosting | server
	Date   time.Time `json:"date"`
	Status string    `json:"status"` // expiring_soon | expired
}

// AssetAlertDTO activo con al menos un campo vencido o por vencer.
type AssetAlertDTO struct {
	AssetID   string             `json:"assetId"`
	AssetName string             `json:"assetName"`
	Type      string             `json:"type"`
	Status    string             `json:"status"` // agregado: expired > expiring_soon
	Fields    []ExpiringFieldDTO `json:"fields"`
}

// AssetOverviewDTO conteos por tipo y alertas de vencimiento.
type AssetOverviewDTO struct {
	Total        int             `json:"total"`
	CountsByType map[string]int  `json:"countsByType"`
	Alerts       []AssetAlertDTO `json:"alerts"`
}

// DashboardSummaryDTO respuesta de GET /dashboard/:companyId/summary.
type DashboardSummaryDTO struct {
	Costs       CostSummaryDTO   `json:"costs"`
	Assets      AssetOverviewDTO `json:"assets"`
	GeneratedAt time.Time        `json:"generatedAt"`
}
