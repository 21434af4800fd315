//-------------------------------------------------------------------------
//
// retail-etl
//
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package dataset defines the synthetic retail entities and generates
// randomized datasets as CSV files.
package dataset

import "time"

// Customer is a dimension row with no references out.
type Customer struct {
	ID         int
	FirstName  string
	LastName   string
	Email      string
	City       string
	SignupDate time.Time
}

// Store is a dimension row with no references out.
type Store struct {
	ID      int
	Name    string
	City    string
	Region  string
	Manager string
}

// Product is a dimension row. UnitCost is always 60% of UnitPrice.
type Product struct {
	ID        int
	Name      string
	Category  string
	Brand     string
	UnitCost  float64
	UnitPrice float64
}

// Sale is a fact row referencing the three dimensions by id.
// TransactionID is a random 6-digit number and is not guaranteed unique.
type Sale struct {
	TransactionID int
	CustomerID    int
	ProductID     int
	StoreID       int
	Date          time.Time
	Quantity      int
	UnitPrice     float64
	TotalAmount   float64
}

// Dataset holds one complete generation run.
type Dataset struct {
	Customers []Customer
	Stores    []Store
	Products  []Product
	Sales     []Sale
}
