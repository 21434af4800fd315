//-------------------------------------------------------------------------
//
// retail-etl
//
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package warehouse

import (
	"time"

	"github.com/retaildata/retail-etl/internal/datagen"
	"github.com/retaildata/retail-etl/internal/dataset"
)

// FactRow is a sale enriched with the derived profit measure.
// Profit is nil when the referenced product is absent from the product table.
type FactRow struct {
	TransactionID int
	CustomerID    int
	ProductID     int
	StoreID       int
	SaleDate      time.Time
	Quantity      int
	UnitPrice     float64
	TotalAmount   float64
	Profit        *float64
}

// BuildFacts left-joins sales against products on product_id and computes
// profit = total_amount - quantity * unit_cost for each matched row.
// Unmatched rows are kept with a nil profit, not rejected.
func BuildFacts(sales []dataset.Sale, products []dataset.Product) []FactRow {
	costByID := make(map[int]float64, len(products))
	for _, p := range products {
		costByID[p.ID] = p.UnitCost
	}

	facts := make([]FactRow, 0, len(sales))
	for _, s := range sales {
		f := FactRow{
			TransactionID: s.TransactionID,
			CustomerID:    s.CustomerID,
			ProductID:     s.ProductID,
			StoreID:       s.StoreID,
			SaleDate:      s.Date,
			Quantity:      s.Quantity,
			UnitPrice:     s.UnitPrice,
			TotalAmount:   s.TotalAmount,
		}
		if cost, ok := costByID[s.ProductID]; ok {
			profit := datagen.Round2(s.TotalAmount - float64(s.Quantity)*cost)
			f.Profit = &profit
		}
		facts = append(facts, f)
	}
	return facts
}
