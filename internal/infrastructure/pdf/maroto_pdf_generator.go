// Package pdf genera el reporte de rentabilidad por canal de un producto.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Producto + SKU         │  Fecha de generación       │
//	│  COSTO BASE: costo unitario + impuesto                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Canal | Ingreso neto | Costos | Utilidad | Margen    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Ingreso / Utilidad / Margen promedio / Mejor canal │
//	│  ERRORES: canales activos que no se pudieron evaluar         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
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

	"github.com/jhoicas/Rentabilidad-api/internal/application/dto"
	"github.com/jhoicas/Rentabilidad-api/internal/application/usecase"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/entity"
	"github.com/jhoicas/Rentabilidad-api/pkg/money"
)

var _ usecase.ReportGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorLoss    = &props.Color{Red: 170, Green: 30, Blue: 30}
	colorGain    = &props.Color{Red: 20, Green: 120, Blue: 60}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa usecase.ReportGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	fmt *money.Formatter
	now func() time.Time
}

// NewMarotoPDFGenerator construye el generador con el formato de montos del reporte.
func NewMarotoPDFGenerator(f *money.Formatter) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{fmt: f, now: time.Now}
}

// GenerateProfitabilityPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateProfitabilityPDF(
	_ context.Context,
	product *entity.Product,
	portfolio *dto.PortfolioResponse,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Rentabilidad por canal - "+product.SKU, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(product))
	m.AddRows(g.baseRow(product))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	if len(portfolio.Channels) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("El producto no tiene canales activos.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)))
	}
	m.AddRows(g.channelRows(portfolio.Channels)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(portfolio))
	m.AddRows(errorRows(portfolio.Channels)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoPDFGenerator) headerRow(product *entity.Product) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(product.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("SKU: "+product.SKU, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("RENTABILIDAD POR CANAL", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+g.now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func (g *MarotoPDFGenerator) baseRow(product *entity.Product) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Costo unitario: %s   |   Impuesto: %s   |   Moneda: %s",
			g.fmt.Amount(product.CostItem),
			g.fmt.Percent(product.TaxPercent),
			g.fmt.Currency(),
		), props.Text{Size: 8, Top: 2, Color: colorGray}),
	))
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Canal", 3, align.Left),
		h("Ingreso neto", 2, align.Right),
		h("Costos", 2, align.Right),
		h("Utilidad neta", 2, align.Right),
		h("Margen", 1, align.Right),
		h("ROI", 2, align.Right),
	)
}

// channelRows: una fila por canal activo; los inválidos se marcan sin cifras.
func (g *MarotoPDFGenerator) channelRows(channels []dto.ChannelProfitabilityResponse) []core.Row {
	result := make([]core.Row, 0, len(channels))
	for _, ch := range channels {
		cell := func(s string, size int, c *props.Color) core.Col {
			return col.New(size).Add(text.New(s, props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1, Color: c,
			}))
		}
		name := col.New(3).Add(text.New(ch.DisplayName, props.Text{Size: 8, Top: 1, Left: 1}))

		if !ch.IsValid {
			result = append(result, row.New(7).Add(
				name,
				col.New(9).Add(text.New("No evaluable: revisar datos del canal", props.Text{
					Size: 8, Align: align.Center, Top: 1, Color: colorLoss,
				})),
			))
			continue
		}

		profitColor := colorGain
		if ch.NetProfit.IsNegative() {
			profitColor = colorLoss
		}
		result = append(result, row.New(7).Add(
			name,
			cell(g.fmt.Amount(ch.NetRevenue), 2, nil),
			cell(g.fmt.Amount(ch.Costs.TotalCosts), 2, nil),
			cell(g.fmt.Amount(ch.NetProfit), 2, profitColor),
			cell(g.fmt.Percent(ch.MarginPercent), 1, profitColor),
			cell(g.fmt.Percent(ch.ROIPercent), 2, nil),
		))
	}
	return result
}

func (g *MarotoPDFGenerator) totalsRow(p *dto.PortfolioResponse) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	best := "-"
	for _, ch := range p.Channels {
		if ch.Type == p.BestChannel {
			best = ch.DisplayName
		}
	}

	return row.New(26).Add(
		col.New(4),
		col.New(4).Add(
			label("Ingreso total:"),
			text.New("Utilidad total:", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 5}),
			text.New("Margen promedio:", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 10}),
			text.New("Mejor canal:", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 2, Top: 15, Color: colorPrimary}),
		),
		col.New(4).Add(
			value(g.fmt.Amount(p.TotalRevenue), 0),
			value(g.fmt.Amount(p.TotalProfit), 5),
			value(fmt.Sprintf("%s (%d de %d canales)", g.fmt.Percent(p.AverageMargin), p.ValidChannels, p.ActiveChannels), 10),
			text.New(best, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 1, Top: 15, Color: colorPrimary}),
		),
	)
}

// errorRows detalla por qué un canal activo no se pudo evaluar.
func errorRows(channels []dto.ChannelProfitabilityResponse) []core.Row {
	var rows []core.Row
	for _, ch := range channels {
		if ch.IsValid {
			continue
		}
		msgs := make([]string, 0, len(ch.Errors))
		for _, e := range ch.Errors {
			msgs = append(msgs, e.Message)
		}
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New(ch.DisplayName+": "+strings.Join(msgs, "; "), props.Text{
				Size: 7, Color: colorLoss, Top: 1,
			}),
		)))
	}
	return rows
}
