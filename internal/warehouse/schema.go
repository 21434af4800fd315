//-------------------------------------------------------------------------
//
// retail-etl
//
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package warehouse loads the generated dataset into a PostgreSQL warehouse
// as three dimension tables and one profit-enriched fact table.
package warehouse

// Destination table names.
const (
	DimCustomerTable = "dim_customer"
	DimStoreTable    = "dim_store"
	DimProductTable  = "dim_product"
	SalesFactTable   = "sales_fact"
)

// Destination tables carry no primary keys: every run fully replaces them,
// and transaction ids in the fact table are allowed to collide.
const createDimCustomerSQL = `
CREATE TABLE dim_customer (
    customer_id  INTEGER NOT NULL,
    first_name   TEXT NOT NULL,
    last_name    TEXT NOT NULL,
    email        TEXT NOT NULL,
    city         TEXT NOT NULL,
    signup_date  DATE NOT NULL
)`

const createDimStoreSQL = `
CREATE TABLE dim_store (
    store_id     INTEGER NOT NULL,
    store_name   TEXT NOT NULL,
    city         TEXT NOT NULL,
    region       TEXT NOT NULL,
    manager_name TEXT NOT NULL
)`

const createDimProductSQL = `
CREATE TABLE dim_product (
    product_id   INTEGER NOT NULL,
    product_name TEXT NOT NULL,
    category     TEXT NOT NULL,
    brand        TEXT NOT NULL,
    unit_cost    NUMERIC(10,2) NOT NULL,
    unit_price   NUMERIC(10,2) NOT NULL
)`

const createSalesFactSQL = `
CREATE TABLE sales_fact (
    transaction_id INTEGER NOT NULL,
    customer_id    INTEGER NOT NULL,
    product_id     INTEGER NOT NULL,
    store_id       INTEGER NOT NULL,
    sale_date      DATE NOT NULL,
    quantity       INTEGER NOT NULL,
    unit_price     NUMERIC(10,2) NOT NULL,
    total_amount   NUMERIC(12,2) NOT NULL,
    profit         NUMERIC(12,2)
)`

// Destination column orders, matching the CREATE TABLE statements.
var (
	dimCustomerColumns = []string{"customer_id", "first_name", "last_name", "email", "city", "signup_date"}
	dimStoreColumns    = []string{"store_id", "store_name", "city", "region", "manager_name"}
	dimProductColumns  = []string{"product_id", "product_name", "category", "brand", "unit_cost", "unit_price"}
	salesFactColumns   = []string{"transaction_id", "customer_id", "product_id", "store_id", "sale_date", "quantity", "unit_price", "total_amount", "profit"}
)
