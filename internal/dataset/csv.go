//-------------------------------------------------------------------------
//
// retail-etl
//
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// File names for the generated CSV files, one per entity.
const (
	CustomersFile = "customers.csv"
	StoresFile    = "stores.csv"
	ProductsFile  = "products.csv"
	SalesFile     = "sales_transactions.csv"
)

const dateFormat = "2006-01-02"

// Column orders are fixed; readers reject files whose header differs.
var (
	customerColumns = []string{"customer_id", "first_name", "last_name", "email", "city", "signup_date"}
	storeColumns    = []string{"store_id", "store_name", "city", "region", "manager_name"}
	productColumns  = []string{"product_id", "product_name", "category", "brand", "unit_cost", "unit_price"}
	saleColumns     = []string{"transaction_id", "customer_id", "product_id", "store_id", "date", "quantity", "unit_price", "total_amount"}
)

// WriteAll writes the dataset as four CSV files under dir,
// creating the directory if absent.
func WriteAll(dir string, ds *Dataset) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	records := make([][]string, 0, len(ds.Customers))
	for _, c := range ds.Customers {
		records = append(records, []string{
			strconv.Itoa(c.ID),
			c.FirstName,
			c.LastName,
			c.Email,
			c.City,
			c.SignupDate.Format(dateFormat),
		})
	}
	if err := writeFile(filepath.Join(dir, CustomersFile), customerColumns, records); err != nil {
		return err
	}

	records = records[:0]
	for _, s := range ds.Stores {
		records = append(records, []string{
			strconv.Itoa(s.ID),
			s.Name,
			s.City,
			s.Region,
			s.Manager,
		})
	}
	if err := writeFile(filepath.Join(dir, StoresFile), storeColumns, records); err != nil {
		return err
	}

	records = records[:0]
	for _, p := range ds.Products {
		records = append(records, []string{
			strconv.Itoa(p.ID),
			p.Name,
			p.Category,
			p.Brand,
			money(p.UnitCost),
			money(p.UnitPrice),
		})
	}
	if err := writeFile(filepath.Join(dir, ProductsFile), productColumns, records); err != nil {
		return err
	}

	records = records[:0]
	for _, s := range ds.Sales {
		records = append(records, []string{
			strconv.Itoa(s.TransactionID),
			strconv.Itoa(s.CustomerID),
			strconv.Itoa(s.ProductID),
			strconv.Itoa(s.StoreID),
			s.Date.Format(dateFormat),
			strconv.Itoa(s.Quantity),
			money(s.UnitPrice),
			money(s.TotalAmount),
		})
	}
	return writeFile(filepath.Join(dir, SalesFile), saleColumns, records)
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func writeFile(path string, header []string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	// WriteAll flushes and reports any buffered write error.
	if err := w.WriteAll(records); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// ReadCustomers parses a customers CSV file.
func ReadCustomers(path string) ([]Customer, error) {
	records, err := readFile(path, customerColumns)
	if err != nil {
		return nil, err
	}

	customers := make([]Customer, 0, len(records))
	for i, rec := range records {
		c := Customer{
			FirstName: rec[1],
			LastName:  rec[2],
			Email:     rec[3],
			City:      rec[4],
		}
		if c.ID, err = strconv.Atoi(rec[0]); err != nil {
			return nil, rowError(path, i, "customer_id", err)
		}
		if c.SignupDate, err = time.Parse(dateFormat, rec[5]); err != nil {
			return nil, rowError(path, i, "signup_date", err)
		}
		customers = append(customers, c)
	}
	return customers, nil
}

// ReadStores parses a stores CSV file.
func ReadStores(path string) ([]Store, error) {
	records, err := readFile(path, storeColumns)
	if err != nil {
		return nil, err
	}

	stores := make([]Store, 0, len(records))
	for i, rec := range records {
		s := Store{
			Name:    rec[1],
			City:    rec[2],
			Region:  rec[3],
			Manager: rec[4],
		}
		if s.ID, err = strconv.Atoi(rec[0]); err != nil {
			return nil, rowError(path, i, "store_id", err)
		}
		stores = append(stores, s)
	}
	return stores, nil
}

// ReadProducts parses a products CSV file.
func ReadProducts(path string) ([]Product, error) {
	records, err := readFile(path, productColumns)
	if err != nil {
		return nil, err
	}

	products := make([]Product, 0, len(records))
	for i, rec := range records {
		p := Product{
			Name:     rec[1],
			Category: rec[2],
			Brand:    rec[3],
		}
		if p.ID, err = strconv.Atoi(rec[0]); err != nil {
			return nil, rowError(path, i, "product_id", err)
		}
		if p.UnitCost, err = strconv.ParseFloat(rec[4], 64); err != nil {
			return nil, rowError(path, i, "unit_cost", err)
		}
		if p.UnitPrice, err = strconv.ParseFloat(rec[5], 64); err != nil {
			return nil, rowError(path, i, "unit_price", err)
		}
		products = append(products, p)
	}
	return products, nil
}

// ReadSales parses a sales transactions CSV file.
func ReadSales(path string) ([]Sale, error) {
	records, err := readFile(path, saleColumns)
	if err != nil {
		return nil, err
	}

	sales := make([]Sale, 0, len(records))
	for i, rec := range records {
		var s Sale
		if s.TransactionID, err = strconv.Atoi(rec[0]); err != nil {
			return nil, rowError(path, i, "transaction_id", err)
		}
		if s.CustomerID, err = strconv.Atoi(rec[1]); err != nil {
			return nil, rowError(path, i, "customer_id", err)
		}
		if s.ProductID, err = strconv.Atoi(rec[2]); err != nil {
			return nil, rowError(path, i, "product_id", err)
		}
		if s.StoreID, err = strconv.Atoi(rec[3]); err != nil {
			return nil, rowError(path, i, "store_id", err)
		}
		if s.Date, err = time.Parse(dateFormat, rec[4]); err != nil {
			return nil, rowError(path, i, "date", err)
		}
		if s.Quantity, err = strconv.Atoi(rec[5]); err != nil {
			return nil, rowError(path, i, "quantity", err)
		}
		if s.UnitPrice, err = strconv.ParseFloat(rec[6], 64); err != nil {
			return nil, rowError(path, i, "unit_price", err)
		}
		if s.TotalAmount, err = strconv.ParseFloat(rec[7], 64); err != nil {
			return nil, rowError(path, i, "total_amount", err)
		}
		sales = append(sales, s)
	}
	return sales, nil
}

func readFile(path string, columns []string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(columns)

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: missing header row", path)
	}

	for i, col := range records[0] {
		if col != columns[i] {
			return nil, fmt.Errorf("%s: unexpected header column %q, want %q",
				path, col, columns[i])
		}
	}
	return records[1:], nil
}

func rowError(path string, row int, column string, err error) error {
	// row is zero-based over data rows; +2 accounts for the header.
	return fmt.Errorf("%s line %d: invalid %s: %w", path, row+2, column, err)
}
