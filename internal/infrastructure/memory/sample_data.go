package memory

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/retail-dashboard-api/internal/domain/entity"
)

type sampleRow struct {
	name     string
	quantity int
	price    int64
	stock    int
	category string
}

const (
	catFood      = "Food & Beverages"
	catHealth    = "Health & Beauty"
	catHousehold = "Household"
	sampleDate   = "2024-01-15"
)

var sampleRows = []sampleRow{
	{"Rice Bag (Premium Basmati)", 45, 1200, 85, catFood},
	{"Milk Packet (1 Liter)", 150, 50, 180, catFood},
	{"Sugar Pack (1 KG)", 35, 45, 65, catFood},
	{"Cooking Oil (1 Liter)", 25, 160, 45, catFood},
	{"Wheat Flour (5 KG)", 30, 245, 35, catFood},
	{"Onion Bag (2 KG)", 85, 35, 95, catFood},
	{"Potato Bag (3 KG)", 70, 40, 80, catFood},
	{"Tea Pack (250g)", 25, 120, 15, catFood},
	{"Soap Bar (Premium)", 40, 35, 120, catHealth},
	{"Banana (Per Dozen)", 120, 30, 150, catFood},
	{"Tomato Pack (1 KG)", 95, 60, 140, catFood},
	{"Bread Loaf (White)", 110, 25, 125, catFood},
	{"Egg Tray (30 pieces)", 65, 180, 75, catFood},
	{"Chicken (1 KG)", 35, 280, 25, catFood},
	{"Fish (1 KG)", 20, 320, 18, catFood},
	{"Yogurt Cup (200ml)", 80, 15, 95, catFood},
	{"Cheese Block (200g)", 15, 85, 22, catFood},
	{"Biscuits Pack", 55, 40, 85, catFood},
	{"Noodles Pack", 75, 12, 110, catFood},
	{"Shampoo Bottle (200ml)", 25, 95, 45, catHealth},
	{"Toothpaste Tube", 45, 55, 65, catHealth},
	{"Detergent Powder (1 KG)", 30, 120, 35, catHousehold},
	{"Toilet Paper (4 rolls)", 40, 80, 55, catHousehold},
	{"Garlic (500g)", 60, 25, 70, catFood},
	{"Ginger (500g)", 50, 30, 60, catFood},
}

// SampleSalesRecords los 25 productos de ejemplo con los que arranca el panel.
func SampleSalesRecords(now time.Time) []entity.SalesRecord {
	out := make([]entity.SalesRecord, 0, len(sampleRows))
	for i, r := range sampleRows {
		out = append(out, entity.SalesRecord{
			ID:          fmt.Sprintf("sample_%d", i+1),
			ProductName: r.name,
			Quantity:    r.quantity,
			Price:       decimal.NewFromInt(r.price),
			Stock:       r.stock,
			Category:    r.category,
			Date:        sampleDate,
			CreatedAt:   now,
		})
	}
	return out
}
