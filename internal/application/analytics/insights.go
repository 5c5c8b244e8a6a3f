package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/retail-dashboard-api/internal/application/dto"
	"github.com/jhoicas/retail-dashboard-api/internal/application/ports"
	"github.com/jhoicas/retail-dashboard-api/internal/domain/entity"
)

var (
	nextMonthFactor = decimal.RequireFromString("1.14")
	demandFactor    = decimal.RequireFromString("1.2")
)

const (
	highDemandAbove = 100
	confidenceMin   = 80 // confianza en [80, 99]
	confidenceSpan  = 20
	growthMin       = -5 // crecimiento en [-5, 14]
	growthSpan      = 20
)

// Forecast proyecta ingresos del próximo mes y la demanda de los productos del
// top. La confianza no sale de ningún modelo: es un valor aleatorio de la fuente inyectada.
func Forecast(snaps Snapshots, rnd ports.RandomSource, now time.Time) dto.ForecastDTO {
	stockByName := make(map[string]int, len(snaps.Inventory.Products))
	for _, p := range snaps.Inventory.Products {
		stockByName[p.Name] = p.Stock
	}

	dash := snaps.Dashboard
	out := dto.ForecastDTO{
		CurrentRevenue:   dash.TotalSales,
		NextMonthRevenue: roundInt(decimal.NewFromInt(dash.TotalSales).Mul(nextMonthFactor)),
		ForecastedGrowth: dash.ForecastedGrowth,
		DemandForecast:   make([]dto.DemandForecastDTO, 0, len(dash.TopProducts)),
		GeneratedAt:      now,
	}

	confidenceSum := 0
	for _, p := range dash.TopProducts {
		stock, known := stockByName[p.Name]
		f := dto.DemandForecastDTO{
			Product:         p.Name,
			CurrentStock:    stock,
			CurrentDemand:   p.Demand,
			PredictedDemand: int(decimal.NewFromInt(int64(p.Demand)).Mul(demandFactor).Floor().IntPart()),
			Confidence:      confidenceMin + rnd.IntN(confidenceSpan),
			Recommendation:  recommendation(p.Demand, stock, known),
		}
		confidenceSum += f.Confidence
		out.DemandForecast = append(out.DemandForecast, f)
	}
	if n := len(out.DemandForecast); n > 0 {
		out.ConfidenceLevel = confidenceSum / n
	}
	return out
}

func recommendation(demand, stock int, stockKnown bool) string {
	switch {
	case stockKnown && stock == 0:
		return dto.RecommendRestock
	case demand > highDemandAbove:
		return dto.RecommendIncrease
	default:
		return dto.RecommendMaintain
	}
}

// SalesAnalytics resumen por categoría y top de productos con crecimiento aleatorio.
func SalesAnalytics(records []entity.SalesRecord, dash dto.DashboardSnapshot, rnd ports.RandomSource) dto.SalesAnalyticsDTO {
	out := dto.SalesAnalyticsDTO{
		TotalRevenue:    dash.TotalSales,
		TotalOrders:     len(records),
		SalesByCategory: salesByCategory(records),
		TopProducts:     make([]dto.ProductSalesDTO, 0, len(dash.TopProducts)),
	}
	if len(records) > 0 {
		avg := TotalRevenue(records).Div(decimal.NewFromInt(int64(len(records))))
		out.AverageOrderValue = roundInt(avg)
	}
	for _, p := range dash.TopProducts {
		out.TopProducts = append(out.TopProducts, dto.ProductSalesDTO{
			Name:    p.Name,
			Revenue: p.Revenue,
			Units:   p.Demand,
			Growth:  growthMin + rnd.IntN(growthSpan),
		})
	}
	return out
}

func salesByCategory(records []entity.SalesRecord) []dto.CategorySalesDTO {
	type acc struct {
		revenue decimal.Decimal
		orders  int
	}
	index := make(map[string]int)
	names := make([]string, 0)
	accs := make([]acc, 0)
	total := decimal.Zero
	for _, r := range records {
		i, ok := index[r.Category]
		if !ok {
			i = len(accs)
			index[r.Category] = i
			names = append(names, r.Category)
			accs = append(accs, acc{revenue: decimal.Zero})
		}
		rev := r.Revenue()
		accs[i].revenue = accs[i].revenue.Add(rev)
		accs[i].orders++
		total = total.Add(rev)
	}

	out := make([]dto.CategorySalesDTO, 0, len(accs))
	hundred := decimal.NewFromInt(100)
	for i, a := range accs {
		c := dto.CategorySalesDTO{
			Category: names[i],
			Revenue:  roundInt(a.revenue),
			Orders:   a.orders,
		}
		if total.IsPositive() {
			c.Percentage = int(roundInt(a.revenue.Mul(hundred).Div(total)))
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Revenue > out[j].Revenue })
	return out
}
