package assets_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/SocketStudioec/ITAssetManager/internal/domain/assets"
	"github.com/SocketStudioec/ITAssetManager/internal/domain/entity"
)

// Instante de referencia fijo para que los tests no dependan del reloj.
var ref = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func TestEvaluate_FechaPasadaPorUnMilisegundo_EsExpired(t *testing.T) {
	date := ref.Add(-time.Millisecond)
	assert.Equal(t, assets.StatusExpired, assets.Evaluate(date, ref))
}

func TestEvaluate_Fecha29DiasAdelante_EsExpiringSoon(t *testing.T) {
	date := ref.Add(29 * 24 * time.Hour)
	assert.Equal(t, assets.StatusExpiringSoon, assets.Evaluate(date, ref))
}

func TestEvaluate_Fecha31DiasAdelante_EsNone(t *testing.T) {
	date := ref.Add(31 * 24 * time.Hour)
	assert.Equal(t, assets.StatusNone, assets.Evaluate(date, ref))
}

func TestEvaluate_BordeExactoDeLaVentana_EsExpiringSoon(t *testing.T) {
	// Exactamente ref y exactamente ref+30d quedan dentro de la ventana.
	assert.Equal(t, assets.StatusExpiringSoon, assets.Evaluate(ref, ref))
	assert.Equal(t, assets.StatusExpiringSoon, assets.Evaluate(ref.Add(assets.ExpiringSoonWindow), ref))
}

func TestEvaluateAsset_SinFechas_EsNone(t *testing.T) {
	a := &entity.Asset{Name: "Laptop sin garantía registrada"}
	st, flagged := assets.EvaluateAsset(a, ref)
	assert.Equal(t, assets.StatusNone, st)
	assert.Empty(t, flagged)
}

func TestEvaluateAsset_ExpiredTienePrioridadSobreExpiringSoon(t *testing.T) {
	past := ref.Add(-48 * time.Hour)
	soon := ref.Add(10 * 24 * time.Hour)
	a := &entity.Asset{
		Name:         "sitio-corporativo",
		Type:         entity.AssetTypeApplication,
		DomainExpiry: &past,
		SSLExpiry:    &soon,
	}
	st, flagged := assets.EvaluateAsset(a, ref)
	assert.Equal(t, assets.StatusExpired, st,
		"con un campo vencido y otro por vencer el agregado debe ser expired")
	assert.Len(t, flagged, 2)
}

func TestEvaluateAsset_SoloVentana_EsExpiringSoon(t *testing.T) {
	soon := ref.Add(5 * 24 * time.Hour)
	far := ref.Add(200 * 24 * time.Hour)
	a := &entity.Asset{
		Name:          "servidor-archivos",
		HostingExpiry: &soon,
		ServerExpiry:  &far,
	}
	st, flagged := assets.EvaluateAsset(a, ref)
	assert.Equal(t, assets.StatusExpiringSoon, st)
	assert.Len(t, flagged, 1, "solo el campo dentro de la ventana se reporta")
	assert.Equal(t, "hosting", flagged[0].Field)
}
