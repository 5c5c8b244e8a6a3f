// Package pdf genera el reporte imprimible de inventario con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda  │  Fecha de generación        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: Ventas / Crecimiento / Productos / Alertas           │
//	│  MEJOR Y PEOR VENDIDO                                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Categoría | Stock | Reorden | Precio | …  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda                                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/retail-dashboard-api/internal/application/dto"
	"github.com/jhoicas/retail-dashboard-api/internal/application/ports"
	"github.com/jhoicas/retail-dashboard-api/internal/domain/inventory"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 176, Green: 32, Blue: 32}
	colorWarning = &props.Color{Red: 191, Green: 120, Blue: 0}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa ports.InventoryReportGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

var _ ports.InventoryReportGenerator = (*MarotoPDFGenerator)(nil)

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInventoryReport genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInventoryReport(ctx context.Context, report ports.InventoryReport) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	store := nonEmpty(report.StoreName, "Retail Dashboard")

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de inventario", true).
		WithAuthor(store, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(store, report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpiRow(report.Dashboard, report.Inventory))
	m.AddRows(sellersRow(report.Dashboard))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(report.Inventory.Products)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la tienda (izq) y fecha de generación (der).
func headerRow(store string, report ports.InventoryReport) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(store, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Panel de ventas e inventario", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// kpiRow: cuatro indicadores del par vigente.
func kpiRow(d dto.DashboardSnapshot, inv dto.InventorySnapshot) core.Row {
	kpi := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 12, Top: 6, Align: align.Center}),
		)
	}
	return row.New(16).Add(
		kpi("Ventas totales", "$"+formatMoney(strconv.FormatInt(d.TotalSales, 10))),
		kpi("Proyección", "$"+formatMoney(strconv.FormatInt(d.ForecastedGrowth, 10))),
		kpi("Productos", strconv.Itoa(inv.TotalProducts)),
		kpi("Stock bajo / agotado", fmt.Sprintf("%d / %d", inv.LowStockAlerts, inv.OutOfStock)),
	)
}

// sellersRow: mejor y peor vendido, si existen.
func sellersRow(d dto.DashboardSnapshot) core.Row {
	summary := func(title string, p *dto.ProductSummary) core.Col {
		body := "—"
		if p != nil {
			body = fmt.Sprintf("%s (%d u, $%s)", p.Name, p.TotalQuantity,
				formatMoney(decimal.NewFromFloat(p.TotalRevenue).StringFixed(0)))
		}
		return col.New(6).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(body, props.Text{Size: 8, Top: 6}),
		)
	}
	return row.New(12).Add(
		summary("MÁS VENDIDO", d.BestSellingProduct),
		summary("MENOS VENDIDO", d.WorstSellingProduct),
	)
}

// tableHeaderRow: cabecera de la tabla de inventario.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 4, align.Left),
		h("Categoría", 2, align.Left),
		h("Stock", 1, align.Center),
		h("Reorden", 1, align.Center),
		h("Precio", 2, align.Right),
		h("Estado", 2, align.Center),
	)
}

// tableDetailRows: una fila por producto, en el orden del inventario.
func tableDetailRows(products []dto.InventoryProductDTO) []core.Row {
	result := make([]core.Row, 0, len(products))
	for _, p := range products {
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(p.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(p.Category, props.Text{Size: 7, Top: 1.5, Left: 1, Color: colorGray})),
			col.New(1).Add(text.New(strconv.Itoa(p.Stock), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(strconv.Itoa(p.ReorderLevel), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(
				"$"+formatMoney(decimal.NewFromFloat(p.Price).StringFixed(0)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(p.Status, props.Text{
				Style: fontstyle.Bold, Size: 7, Align: align.Center, Top: 1.5,
				Color: statusColor(p.Status),
			})),
		))
	}
	return result
}

func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Punto de reorden = máx(10, 20% del stock). Cifras calculadas sobre los datos cargados al momento de generar el reporte.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func statusColor(status string) *props.Color {
	switch status {
	case inventory.StatusOutOfStock:
		return colorDanger
	case inventory.StatusLowStock:
		return colorWarning
	default:
		return colorGray
	}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "-1000000" → "-1.000.000"
func formatMoney(s string) string {
	sign := ""
	if len(s) > 0 && s[0] == '-' {
		sign, s = "-", s[1:]
	}
	n := len(s)
	if n <= 3 {
		return sign + s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf)
}
