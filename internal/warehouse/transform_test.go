package warehouse

import (
	"testing"
	"time"

	"github.com/retaildata/retail-etl/internal/dataset"
)

func TestBuildFactsProfit(t *testing.T) {
	products := []dataset.Product{
		{ID: 1, Name: "Widget", Category: "Toys", Brand: "Acme", UnitCost: 6.00, UnitPrice: 10.00},
		{ID: 2, Name: "Gadget", Category: "Electronics", Brand: "Acme", UnitCost: 30.00, UnitPrice: 50.00},
	}
	sales := []dataset.Sale{
		{TransactionID: 100001, CustomerID: 1, ProductID: 1, StoreID: 1,
			Date: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
			Quantity: 2, UnitPrice: 10.00, TotalAmount: 20.00},
		{TransactionID: 100002, CustomerID: 2, ProductID: 2, StoreID: 1,
			Date: time.Date(2023, 11, 5, 0, 0, 0, 0, time.UTC),
			Quantity: 3, UnitPrice: 50.00, TotalAmount: 150.00},
	}

	facts := BuildFacts(sales, products)
	if len(facts) != 2 {
		t.Fatalf("Expected 2 facts, got %d", len(facts))
	}

	// 20.00 - 2*6.00 = 8.00
	if facts[0].Profit == nil || *facts[0].Profit != 8.00 {
		t.Errorf("Fact 0 profit = %v, want 8.00", facts[0].Profit)
	}
	// 150.00 - 3*30.00 = 60.00
	if facts[1].Profit == nil || *facts[1].Profit != 60.00 {
		t.Errorf("Fact 1 profit = %v, want 60.00", facts[1].Profit)
	}
}

func TestBuildFactsUnknownProduct(t *testing.T) {
	products := []dataset.Product{
		{ID: 1, UnitCost: 6.00, UnitPrice: 10.00},
	}
	sales := []dataset.Sale{
		{TransactionID: 100001, ProductID: 99, Quantity: 1,
			Date:      time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
			UnitPrice: 10.00, TotalAmount: 10.00},
	}

	facts := BuildFacts(sales, products)
	if len(facts) != 1 {
		t.Fatalf("Unmatched sale should still produce a fact row, got %d rows", len(facts))
	}
	if facts[0].Profit != nil {
		t.Errorf("Unmatched product should yield nil profit, got %v", *facts[0].Profit)
	}
}

func TestBuildFactsCarriesSaleColumns(t *testing.T) {
	products := []dataset.Product{{ID: 3, UnitCost: 1.00, UnitPrice: 2.00}}
	date := time.Date(2024, 12, 24, 0, 0, 0, 0, time.UTC)
	sales := []dataset.Sale{
		{TransactionID: 654321, CustomerID: 7, ProductID: 3, StoreID: 4,
			Date: date, Quantity: 5, UnitPrice: 2.00, TotalAmount: 10.00},
	}

	f := BuildFacts(sales, products)[0]
	if f.TransactionID != 654321 || f.CustomerID != 7 || f.ProductID != 3 ||
		f.StoreID != 4 || f.Quantity != 5 {
		t.Errorf("Fact row lost sale columns: %+v", f)
	}
	if !f.SaleDate.Equal(date) {
		t.Errorf("Fact sale date %v, want %v", f.SaleDate, date)
	}
	if f.UnitPrice != 2.00 || f.TotalAmount != 10.00 {
		t.Errorf("Fact amounts wrong: %+v", f)
	}
	if f.Profit == nil || *f.Profit != 5.00 {
		t.Errorf("Fact profit = %v, want 5.00", f.Profit)
	}
}

// End-to-end over the file formats: a seeded small dataset written to disk
// and read back yields one fact row per sale, each with profit present.
func TestBuildFactsFromGeneratedFiles(t *testing.T) {
	dir := t.TempDir()
	ds := dataset.NewGenerator(dataset.Config{
		Customers: 5,
		Products:  3,
		Stores:    2,
		Sales:     10,
		StartDate: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		Seed:      99,
	}).Generate()

	if err := dataset.WriteAll(dir, ds); err != nil {
		t.Fatalf("WriteAll failed: %v", err)
	}

	products, err := dataset.ReadProducts(dir + "/" + dataset.ProductsFile)
	if err != nil {
		t.Fatal(err)
	}
	sales, err := dataset.ReadSales(dir + "/" + dataset.SalesFile)
	if err != nil {
		t.Fatal(err)
	}

	facts := BuildFacts(sales, products)
	if len(facts) != 10 {
		t.Fatalf("Expected 10 fact rows, got %d", len(facts))
	}
	for i, f := range facts {
		// Generated product ids always resolve, so profit is always set.
		if f.Profit == nil {
			t.Errorf("Fact %d has nil profit", i)
		}
	}
}
