// Package pdf genera el Informe de Existencias de la bodega con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la bodega  │  Fecha del informe          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  UVA:      lote | variedad | viñedo | Kg                     │
//	│  GRANEL:   tanque | lote | etapa | Lts                       │
//	│  BOTELLAS: sku | nombre | añada | ubicación | uds            │
//	│  INSUMOS:  id | material | proveedor | uds                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: totales por familia + asientos en el libro          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

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

	"github.com/tu-usuario/bodega-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 92, Green: 33, Blue: 78}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator genera el informe de existencias en PDF.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInventoryReport genera el PDF del estado actual y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryReport(
	_ context.Context,
	data *entity.WineryData,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Informe de Existencias", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionTitleRow(fmt.Sprintf("UVA (%d lotes)", len(data.Grapes))))
	m.AddRows(grapeHeaderRow())
	for _, r := range grapeRows(data.Grapes) {
		m.AddRows(r)
	}

	m.AddRows(sectionTitleRow(fmt.Sprintf("VINO A GRANEL (%d tanques)", len(data.Bulk))))
	m.AddRows(bulkHeaderRow())
	for _, r := range bulkRows(data.Bulk) {
		m.AddRows(r)
	}

	m.AddRows(sectionTitleRow(fmt.Sprintf("BOTELLAS (%d referencias)", len(data.Finished))))
	m.AddRows(finishedHeaderRow())
	for _, r := range finishedRows(data.Finished) {
		m.AddRows(r)
	}

	m.AddRows(sectionTitleRow(fmt.Sprintf("INSUMOS (%d materiales)", len(data.Materials))))
	m.AddRows(materialHeaderRow())
	for _, r := range materialRows(data.Materials) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(data))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar informe: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Gestor de Vinos — Informe de Existencias", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Control integral de bodega", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Fecha: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(10).Add(
		col.New(12).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 3,
		})),
	)
}

func headerCell(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a, Color: colorGray, Top: 1,
	}))
}

func cell(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{
		Size: 8, Align: a, Top: 1,
	}))
}

func grapeHeaderRow() core.Row {
	return row.New(6).Add(
		headerCell("Lote", 4, align.Left),
		headerCell("Variedad", 3, align.Left),
		headerCell("Viñedo", 3, align.Left),
		headerCell("Kg", 2, align.Right),
	)
}

func grapeRows(grapes []entity.GrapeBatch) []core.Row {
	result := make([]core.Row, 0, len(grapes))
	for _, g := range grapes {
		result = append(result, row.New(6).Add(
			cell(g.ID, 4, align.Left),
			cell(g.Variety, 3, align.Left),
			cell(g.Vineyard, 3, align.Left),
			cell(formatQty(g.Weight), 2, align.Right),
		))
	}
	return result
}

func bulkHeaderRow() core.Row {
	return row.New(6).Add(
		headerCell("Tanque", 3, align.Left),
		headerCell("Lote", 3, align.Left),
		headerCell("Etapa", 4, align.Left),
		headerCell("Lts", 2, align.Right),
	)
}

func bulkRows(bulk []entity.BulkWine) []core.Row {
	result := make([]core.Row, 0, len(bulk))
	for _, b := range bulk {
		result = append(result, row.New(6).Add(
			cell(b.ID, 3, align.Left),
			cell(b.BatchID, 3, align.Left),
			cell(b.Stage, 4, align.Left),
			cell(formatQty(b.Volume), 2, align.Right),
		))
	}
	return result
}

func finishedHeaderRow() core.Row {
	return row.New(6).Add(
		headerCell("SKU", 3, align.Left),
		headerCell("Nombre", 4, align.Left),
		headerCell("Añada", 1, align.Center),
		headerCell("Ubicación", 2, align.Left),
		headerCell("Uds", 2, align.Right),
	)
}

func finishedRows(finished []entity.FinishedWine) []core.Row {
	result := make([]core.Row, 0, len(finished))
	for _, f := range finished {
		result = append(result, row.New(6).Add(
			cell(f.ID, 3, align.Left),
			cell(f.Name, 4, align.Left),
			cell(strconv.Itoa(f.Vintage), 1, align.Center),
			cell(f.Location, 2, align.Left),
			cell(formatQty(f.Quantity), 2, align.Right),
		))
	}
	return result
}

func materialHeaderRow() core.Row {
	return row.New(6).Add(
		headerCell("ID", 3, align.Left),
		headerCell("Material", 4, align.Left),
		headerCell("Proveedor", 3, align.Left),
		headerCell("Uds", 2, align.Right),
	)
}

func materialRows(materials []entity.PackagingMaterial) []core.Row {
	result := make([]core.Row, 0, len(materials))
	for _, m := range materials {
		result = append(result, row.New(6).Add(
			cell(m.ID, 3, align.Left),
			cell(m.Name, 4, align.Left),
			cell(m.Supplier, 3, align.Left),
			cell(formatQty(m.Quantity), 2, align.Right),
		))
	}
	return result
}

func footerRow(data *entity.WineryData) core.Row {
	var kg, lts, bottles, units float64
	for _, g := range data.Grapes {
		kg += g.Weight
	}
	for _, b := range data.Bulk {
		lts += b.Volume
	}
	for _, f := range data.Finished {
		bottles += f.Quantity
	}
	for _, m := range data.Materials {
		units += m.Quantity
	}

	totals := fmt.Sprintf("Totales: %s Kg de uva  |  %s Lts a granel  |  %s botellas  |  %s insumos",
		formatQty(kg), formatQty(lts), formatQty(bottles), formatQty(units))

	return row.New(12).Add(
		col.New(12).Add(
			text.New(totals, props.Text{Style: fontstyle.Bold, Size: 9, Top: 2}),
			text.New(fmt.Sprintf("Asientos en el libro de movimientos: %d", len(data.Movements)), props.Text{
				Size: 8, Top: 8, Color: colorGray,
			}),
		),
	)
}

func formatQty(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
