package analytics_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SocketStudioec/ITAssetManager/internal/application/analytics"
	"github.com/SocketStudioec/ITAssetManager/internal/domain/entity"
)

// Fakes read-only: el dashboard solo lista.

type fakeAssets struct {
	list []*entity.Asset
	err  error
}

func (f *fakeAssets) Create(*entity.Asset) error                  { return nil }
func (f *fakeAssets) GetByID(string, string) (*entity.Asset, error) { return nil, nil }
func (f *fakeAssets) ListByCompany(string) ([]*entity.Asset, error) { return f.list, f.err }
func (f *fakeAssets) CountByCompany(string) (int, error)          { return len(f.list), nil }
func (f *fakeAssets) Update(*entity.Asset) error                  { return nil }
func (f *fakeAssets) Delete(string, string) error                 { return nil }

type fakeContracts struct{ list []*entity.Contract }

func (f *fakeContracts) Create(*entity.Contract) error                     { return nil }
func (f *fakeContracts) GetByID(string, string) (*entity.Contract, error)  { return nil, nil }
func (f *fakeContracts) ListByCompany(string) ([]*entity.Contract, error)  { return f.list, nil }
func (f *fakeContracts) Update(*entity.Contract) error                     { return nil }
func (f *fakeContracts) Delete(string, string) error                       { return nil }

type fakeLicenses struct{ list []*entity.License }

func (f *fakeLicenses) Create(*entity.License) error                    { return nil }
func (f *fakeLicenses) GetByID(string, string) (*entity.License, error) { return nil, nil }
func (f *fakeLicenses) ListByCompany(string) ([]*entity.License, error) { return f.list, nil }
func (f *fakeLicenses) Update(*entity.License) error                    { return nil }
func (f *fakeLicenses) Delete(string, string) error                     { return nil }

type fakeMaintenance struct{ list []*entity.MaintenanceRecord }

func (f *fakeMaintenance) Create(*entity.MaintenanceRecord) error { return nil }
func (f *fakeMaintenance) GetByID(string, string) (*entity.MaintenanceRecord, error) {
	return nil, nil
}
func (f *fakeMaintenance) ListByCompany(string) ([]*entity.MaintenanceRecord, error) {
	return f.list, nil
}
func (f *fakeMaintenance) ListByAsset(string, string) ([]*entity.MaintenanceRecord, error) {
	return nil, nil
}
func (f *fakeMaintenance) Update(*entity.MaintenanceRecord) error { return nil }
func (f *fakeMaintenance) Delete(string, string) error            { return nil }

func days(n int) *time.Time {
	t := time.Now().AddDate(0, 0, n)
	return &t
}

func TestGetSummary_TotalesYDesglose(t *testing.T) {
	assetsRepo := &fakeAssets{list: []*entity.Asset{
		{ID: "a1", Type: entity.AssetTypePhysical, MonthlyCost: decimal.NewFromInt(10)},
		{ID: "a2", Type: entity.AssetTypeApplication,
			MonthlyCost: decimal.NewFromInt(20),
			DomainCost:  decimal.NewFromInt(5)},
	}}
	contractsRepo := &fakeContracts{list: []*entity.Contract{
		{MonthlyCost: decimal.NewFromInt(100), AnnualCost: decimal.NewFromInt(1200)},
	}}
	licensesRepo := &fakeLicenses{list: []*entity.License{
		{MonthlyCost: decimal.NewFromInt(8), AnnualCost: decimal.NewFromInt(96)},
	}}
	maintRepo := &fakeMaintenance{list: []*entity.MaintenanceRecord{
		{Cost: decimal.NewFromInt(40)},
	}}

	uc := analytics.NewDashboardUseCase(assetsRepo, contractsRepo, licensesRepo, maintRepo)
	out, err := uc.GetSummary("empresa-a", time.Now())
	require.NoError(t, err)

	// 10 + 20 + 5 (infra) + 100 + 8 = 143 mensual.
	assert.True(t, out.Costs.MonthlyTotal.Equal(decimal.NewFromInt(143)),
		"monthlyTotal esperado 143, fue %s", out.Costs.MonthlyTotal)
	// 1200 + 96 + 40 (mantenimiento) = 1336 anual.
	assert.True(t, out.Costs.AnnualTotal.Equal(decimal.NewFromInt(1336)),
		"annualTotal esperado 1336, fue %s", out.Costs.AnnualTotal)

	assert.True(t, out.Costs.Breakdown["infrastructure"].Monthly.Equal(decimal.NewFromInt(5)))
	assert.True(t, out.Costs.Breakdown["maintenance"].Annual.Equal(decimal.NewFromInt(40)))

	assert.Equal(t, 2, out.Assets.Total)
	assert.Equal(t, 1, out.Assets.CountsByType[entity.AssetTypePhysical])
	assert.Equal(t, 1, out.Assets.CountsByType[entity.AssetTypeApplication])
	assert.Equal(t, 0, out.Assets.CountsByType[entity.AssetTypeLicense], "los tipos sin activos aparecen en 0")
}

func TestGetSummary_AlertasDeVencimiento(t *testing.T) {
	assetsRepo := &fakeAssets{list: []*entity.Asset{
		{ID: "ok", Name: "sin vencimientos", Type: entity.AssetTypePhysical},
		{ID: "soon", Name: "dominio por vencer", Type: entity.AssetTypeApplication,
			DomainExpiry: days(10)},
		{ID: "bad", Name: "ssl vencido y hosting por vencer", Type: entity.AssetTypeApplication,
			SSLExpiry:     days(-3),
			HostingExpiry: days(15)},
	}}
	uc := analytics.NewDashboardUseCase(assetsRepo, &fakeContracts{}, &fakeLicenses{}, &fakeMaintenance{})

	out, err := uc.GetSummary("empresa-a", time.Now())
	require.NoError(t, err)

	require.Len(t, out.Assets.Alerts, 2, "los activos sin vencimientos no generan alerta")

	byID := map[string]int{}
	for i, a := range out.Assets.Alerts {
		byID[a.AssetID] = i
	}

	soon := out.Assets.Alerts[byID["soon"]]
	assert.Equal(t, "expiring_soon", soon.Status)
	require.Len(t, soon.Fields, 1)
	assert.Equal(t, "domain", soon.Fields[0].Field)

	// Con un campo vencido y otro por vencer, gana expired.
	bad := out.Assets.Alerts[byID["bad"]]
	assert.Equal(t, "expired", bad.Status)
	assert.Len(t, bad.Fields, 2)
}

func TestGetSummary_PropagaErroresDeLectura(t *testing.T) {
	assetsRepo := &fakeAssets{err: errors.New("conexión perdida")}
	uc := analytics.NewDashboardUseCase(assetsRepo, &fakeContracts{}, &fakeLicenses{}, &fakeMaintenance{})

	_, err := uc.GetSummary("empresa-a", time.Now())
	assert.Error(t, err)
}
