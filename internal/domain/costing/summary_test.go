package costing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/SocketStudioec/ITAssetManager/internal/domain/costing"
	"github.com/SocketStudioec/ITAssetManager/internal/domain/entity"
)

func d(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func TestSummarize_CostosDeInfraestructuraSumanAlTotalMensual(t *testing.T) {
	// Dos activos: uno con solo costo mensual y otro con costo mensual más
	// costo de dominio. El total mensual debe ser 10 + 20 + 5 = 35.
	assets := []*entity.Asset{
		{Name: "laptop", Type: entity.AssetTypePhysical, MonthlyCost: d(10)},
		{Name: "sitio-web", Type: entity.AssetTypeApplication, MonthlyCost: d(20), DomainCost: d(5)},
	}

	s := costing.Summarize(assets, nil, nil, nil)

	assert.True(t, s.MonthlyTotal.Equal(d(35)),
		"total mensual esperado 35, obtenido %s", s.MonthlyTotal)
	assert.True(t, s.Assets.Monthly.Equal(d(30)))
	assert.True(t, s.Infrastructure.Monthly.Equal(d(5)))
}

func TestSummarize_CostosAusentesCuentanComoCero(t *testing.T) {
	// Entidades con decimales en su valor cero (equivalente a NULL en la DB).
	assets := []*entity.Asset{{Name: "monitor", Type: entity.AssetTypePhysical}}
	contracts := []*entity.Contract{{Name: "soporte"}}

	s := costing.Summarize(assets, contracts, nil, nil)

	assert.True(t, s.MonthlyTotal.IsZero())
	assert.True(t, s.AnnualTotal.IsZero())
}

func TestSummarize_TodasLasCategorias(t *testing.T) {
	assets := []*entity.Asset{
		{Type: entity.AssetTypeApplication, MonthlyCost: d(100), AnnualCost: d(1200),
			SSLCost: d(8), HostingCost: d(12)},
	}
	contracts := []*entity.Contract{{MonthlyCost: d(50), AnnualCost: d(600)}}
	licenses := []*entity.License{{MonthlyCost: d(30), AnnualCost: d(360)}}
	maintenance := []*entity.MaintenanceRecord{{Cost: d(200)}, {Cost: d(150)}}

	s := costing.Summarize(assets, contracts, licenses, maintenance)

	// Mensual: 100 + (8+12) + 50 + 30 = 200
	assert.True(t, s.MonthlyTotal.Equal(d(200)), "mensual: %s", s.MonthlyTotal)
	// Anual: 1200 + 600 + 360 + 350 = 2510 (mantenimiento entra en la vista anual)
	assert.True(t, s.AnnualTotal.Equal(d(2510)), "anual: %s", s.AnnualTotal)
	assert.True(t, s.Maintenance.Annual.Equal(d(350)))
}

func TestCountsByType_IncluyeTiposSinActivos(t *testing.T) {
	assets := []*entity.Asset{
		{Type: entity.AssetTypePhysical},
		{Type: entity.AssetTypePhysical},
		{Type: entity.AssetTypeApplication},
	}

	counts := costing.CountsByType(assets)

	assert.Equal(t, 2, counts[entity.AssetTypePhysical])
	assert.Equal(t, 1, counts[entity.AssetTypeApplication])
	assert.Equal(t, 0, counts[entity.AssetTypeLicense])
	assert.Equal(t, 0, counts[entity.AssetTypeContract])
}
