package warehouse

import (
	"testing"
	"time"

	"github.com/retaildata/retail-etl/internal/dataset"
)

func TestCustomerRows(t *testing.T) {
	signup := time.Date(2022, 3, 15, 0, 0, 0, 0, time.UTC)
	rows := customerRows([]dataset.Customer{
		{ID: 1, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
			City: "Chicago", SignupDate: signup},
	})

	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}
	if len(rows[0]) != len(dimCustomerColumns) {
		t.Fatalf("Row has %d values, want %d", len(rows[0]), len(dimCustomerColumns))
	}
	if rows[0][0] != 1 || rows[0][1] != "Ada" || rows[0][4] != "Chicago" {
		t.Errorf("Row values wrong: %v", rows[0])
	}
}

func TestStoreAndProductRows(t *testing.T) {
	sRows := storeRows([]dataset.Store{
		{ID: 2, Name: "Northside", City: "Phoenix", Region: "West", Manager: "Sam Hill"},
	})
	if len(sRows) != 1 || len(sRows[0]) != len(dimStoreColumns) {
		t.Fatalf("Store row shape wrong: %v", sRows)
	}

	pRows := productRows([]dataset.Product{
		{ID: 3, Name: "Widget", Category: "Toys", Brand: "Acme", UnitCost: 6.00, UnitPrice: 10.00},
	})
	if len(pRows) != 1 || len(pRows[0]) != len(dimProductColumns) {
		t.Fatalf("Product row shape wrong: %v", pRows)
	}
	if pRows[0][4] != 6.00 || pRows[0][5] != 10.00 {
		t.Errorf("Product row prices wrong: %v", pRows[0])
	}
}

func TestFactRowsNilProfit(t *testing.T) {
	profit := 8.00
	facts := []FactRow{
		{TransactionID: 100001, Profit: &profit},
		{TransactionID: 100002, Profit: nil},
	}

	rows := factRows(facts)
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	for _, row := range rows {
		if len(row) != len(salesFactColumns) {
			t.Fatalf("Row has %d values, want %d", len(row), len(salesFactColumns))
		}
	}
	if rows[0][8] != 8.00 {
		t.Errorf("Matched row profit = %v, want 8.00", rows[0][8])
	}
	// Unmatched rows carry a nil profit so the column loads as NULL.
	if rows[1][8] != nil {
		t.Errorf("Unmatched row profit = %v, want nil", rows[1][8])
	}
}
