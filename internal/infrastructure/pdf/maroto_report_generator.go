// Package pdf implementa la generación del Reporte de Costos de TI en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + RUC/cédula  │  Fecha de generación        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Costo mensual / Costo anual                        │
//	│  TABLA: Categoría | Mensual | Anual                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  INVENTARIO: conteo de activos por tipo                      │
//	│  ALERTAS: activos vencidos o por vencer (30 días)            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"sort"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/SocketStudioec/ITAssetManager/internal/application/dto"
	"github.com/SocketStudioec/ITAssetManager/internal/application/reports"
	"github.com/SocketStudioec/ITAssetManager/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 170, Green: 40, Blue: 40}
)

// Etiquetas legibles por categoría del desglose y por tipo de activo.
var (
	categoryLabels = map[string]string{
		"assets":         "Activos",
		"infrastructure": "Infraestructura (dominio/SSL/hosting/servidor)",
		"contracts":      "Contratos",
		"licenses":       "Licencias",
		"maintenance":    "Mantenimiento",
	}
	typeLabels = map[string]string{
		entity.AssetTypePhysical:    "Físicos",
		entity.AssetTypeApplication: "Aplicaciones",
		entity.AssetTypeLicense:     "Licencias",
		entity.AssetTypeContract:    "Contratos",
	}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ reports.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa reports.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateCostReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateCostReport(
	company *entity.Company,
	summary *dto.DashboardSummaryDTO,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Costos de TI", true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(company, summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(totalsRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(breakdownHeaderRow())
	for _, r := range breakdownRows(summary) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(inventoryRow(summary))

	if len(summary.Assets.Alerts) > 0 {
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		for _, r := range alertRows(summary.Assets.Alerts) {
			m.AddRows(r)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa + identificación (izq) y fecha de generación (der).
func headerRow(company *entity.Company, summary *dto.DashboardSummaryDTO) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Identificación: "+company.TaxID+"   |   Plan: "+company.Plan, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE COSTOS DE TI", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+summary.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// totalsRow: costo mensual y anual en grande.
func totalsRow(summary *dto.DashboardSummaryDTO) core.Row {
	big := func(label, value string) []core.Component {
		return []core.Component{
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1,
			}),
			text.New("$"+value, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 6,
			}),
		}
	}
	return row.New(16).Add(
		col.New(6).Add(big("COSTO MENSUAL", summary.Costs.MonthlyTotal.StringFixed(2))...),
		col.New(6).Add(big("COSTO ANUAL", summary.Costs.AnnualTotal.StringFixed(2))...),
	)
}

// breakdownHeaderRow: cabecera de la tabla de desglose.
func breakdownHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Categoría", 6, align.Left),
		h("Mensual", 3, align.Right),
		h("Anual", 3, align.Right),
	)
}

// breakdownRows: una fila por categoría, en orden estable.
func breakdownRows(summary *dto.DashboardSummaryDTO) []core.Row {
	keys := make([]string, 0, len(summary.Costs.Breakdown))
	for k := range summary.Costs.Breakdown {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := make([]core.Row, 0, len(keys))
	for _, k := range keys {
		cat := summary.Costs.Breakdown[k]
		label := categoryLabels[k]
		if label == "" {
			label = k
		}
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(label, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New("$"+cat.Monthly.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New("$"+cat.Annual.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// inventoryRow: conteo de activos por tipo en una línea.
func inventoryRow(summary *dto.DashboardSummaryDTO) core.Row {
	counts := summary.Assets.CountsByType
	detail := fmt.Sprintf("Físicos: %d   |   Aplicaciones: %d   |   Licencias: %d   |   Contratos: %d",
		counts[entity.AssetTypePhysical], counts[entity.AssetTypeApplication],
		counts[entity.AssetTypeLicense], counts[entity.AssetTypeContract])
	return row.New(12).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("INVENTARIO: %d activos", summary.Assets.Total), props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(detail, props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// alertRows: activos con vencimientos, un renglón por activo.
func alertRows(alerts []dto.AssetAlertDTO) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("ALERTAS DE VENCIMIENTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorAlert, Top: 1,
			}),
		)),
	}
	for _, a := range alerts {
		label := typeLabels[a.Type]
		if label == "" {
			label = a.Type
		}
		detail := fmt.Sprintf("%s (%s): %d campo(s), estado %s", a.AssetName, label, len(a.Fields), a.Status)
		rows = append(rows, row.New(5).Add(
			col.New(12).Add(text.New(detail, props.Text{Size: 8, Top: 1, Color: colorGray})),
		))
	}
	return rows
}
