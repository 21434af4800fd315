//-------------------------------------------------------------------------
//
// retail-etl
//
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package warehouse

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/retaildata/retail-etl/internal/dataset"
	"github.com/retaildata/retail-etl/internal/db"
	"github.com/retaildata/retail-etl/internal/logging"
)

// Loader moves the generated CSV files into the warehouse.
type Loader struct {
	pool    *pgxpool.Pool
	dataDir string
}

// NewLoader creates a loader reading from dataDir.
func NewLoader(pool *pgxpool.Pool, dataDir string) *Loader {
	return &Loader{pool: pool, dataDir: dataDir}
}

// Run loads the dimension tables verbatim, then builds and loads the fact
// table. Each destination table is dropped, recreated, and COPY-loaded inside
// one transaction, so readers never observe a partially replaced table and
// re-running against the same files is idempotent. Returns rows written per
// destination table.
func (l *Loader) Run(ctx context.Context) (map[string]int64, error) {
	customers, err := dataset.ReadCustomers(filepath.Join(l.dataDir, dataset.CustomersFile))
	if err != nil {
		return nil, err
	}
	stores, err := dataset.ReadStores(filepath.Join(l.dataDir, dataset.StoresFile))
	if err != nil {
		return nil, err
	}
	products, err := dataset.ReadProducts(filepath.Join(l.dataDir, dataset.ProductsFile))
	if err != nil {
		return nil, err
	}
	sales, err := dataset.ReadSales(filepath.Join(l.dataDir, dataset.SalesFile))
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64)

	// Dimension tables load one-to-one from their files.
	if err := l.replaceTable(ctx, DimCustomerTable, createDimCustomerSQL,
		dimCustomerColumns, customerRows(customers)); err != nil {
		return nil, err
	}
	counts[DimCustomerTable] = int64(len(customers))

	if err := l.replaceTable(ctx, DimStoreTable, createDimStoreSQL,
		dimStoreColumns, storeRows(stores)); err != nil {
		return nil, err
	}
	counts[DimStoreTable] = int64(len(stores))

	if err := l.replaceTable(ctx, DimProductTable, createDimProductSQL,
		dimProductColumns, productRows(products)); err != nil {
		return nil, err
	}
	counts[DimProductTable] = int64(len(products))

	// The profit join runs in-process against the file-derived product
	// table, so the fact load does not depend on dim_product being loaded.
	facts := BuildFacts(sales, products)
	if err := l.replaceTable(ctx, SalesFactTable, createSalesFactSQL,
		salesFactColumns, factRows(facts)); err != nil {
		return nil, err
	}
	counts[SalesFactTable] = int64(len(facts))

	if err := db.SaveLoadMetadata(ctx, l.pool, counts); err != nil {
		return nil, err
	}

	return counts, nil
}

// replaceTable drops, recreates, and bulk loads a destination table in a
// single transaction. DDL is transactional in PostgreSQL, so the swap is
// atomic per table.
func (l *Loader) replaceTable(ctx context.Context, table, createSQL string,
	columns []string, rows [][]any) error {

	tx, err := l.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for %s: %w", table, err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
		return fmt.Errorf("failed to drop %s: %w", table, err)
	}
	if _, err := tx.Exec(ctx, createSQL); err != nil {
		return fmt.Errorf("failed to create %s: %w", table, err)
	}

	n, err := tx.CopyFrom(ctx, pgx.Identifier{table}, columns, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("failed to copy into %s: %w", table, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit %s: %w", table, err)
	}

	logging.Info().
		Str("table", table).
		Int64("rows", n).
		Msg("Table loaded")
	return nil
}

func customerRows(customers []dataset.Customer) [][]any {
	rows := make([][]any, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, []any{c.ID, c.FirstName, c.LastName, c.Email, c.City, c.SignupDate})
	}
	return rows
}

func storeRows(stores []dataset.Store) [][]any {
	rows := make([][]any, 0, len(stores))
	for _, s := range stores {
		rows = append(rows, []any{s.ID, s.Name, s.City, s.Region, s.Manager})
	}
	return rows
}

func productRows(products []dataset.Product) [][]any {
	rows := make([][]any, 0, len(products))
	for _, p := range products {
		rows = append(rows, []any{p.ID, p.Name, p.Category, p.Brand, p.UnitCost, p.UnitPrice})
	}
	return rows
}

func factRows(facts []FactRow) [][]any {
	rows := make([][]any, 0, len(facts))
	for _, f := range facts {
		var profit any
		if f.Profit != nil {
			profit = *f.Profit
		}
		rows = append(rows, []any{
			f.TransactionID, f.CustomerID, f.ProductID, f.StoreID,
			f.SaleDate, f.Quantity, f.UnitPrice, f.TotalAmount, profit,
		})
	}
	return rows
}
