//-------------------------------------------------------------------------
//
// retail-etl
//
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package dataset

import (
	"time"

	"github.com/retaildata/retail-etl/internal/datagen"
)

// Reference data
var cities = []string{"New York", "Los Angeles", "Chicago", "Houston", "Phoenix"}
var regions = []string{"North", "South", "East", "West"}
var categories = []string{"Electronics", "Clothing", "Home & Garden", "Books", "Toys", "Sports"}

const numBrands = 20

// Config controls dataset generation.
type Config struct {
	// Customers, Products, Stores and Sales are the row counts to generate.
	Customers int
	Products  int
	Stores    int
	Sales     int

	// StartDate and EndDate bound the sale dates (inclusive).
	StartDate time.Time
	EndDate   time.Time

	// Seed seeds the random generator. Zero means time-derived,
	// so each run produces a different dataset.
	Seed uint64
}

// Generator produces a randomized retail dataset.
type Generator struct {
	faker  *datagen.Faker
	cfg    Config
	brands []string
}

// NewGenerator creates a generator for the given configuration.
func NewGenerator(cfg Config) *Generator {
	var f *datagen.Faker
	if cfg.Seed != 0 {
		f = datagen.NewFakerWithSeed(cfg.Seed)
	} else {
		f = datagen.NewFaker()
	}

	brands := make([]string, numBrands)
	for i := range brands {
		brands[i] = f.Company()
	}

	return &Generator{faker: f, cfg: cfg, brands: brands}
}

// Generate produces a complete dataset. Dimension tables are generated
// first so sales can reference product prices.
func (g *Generator) Generate() *Dataset {
	ds := &Dataset{
		Customers: g.generateCustomers(),
		Stores:    g.generateStores(),
		Products:  g.generateProducts(),
	}
	ds.Sales = g.generateSales(ds.Products)
	return ds
}

func (g *Generator) generateCustomers() []Customer {
	customers := make([]Customer, g.cfg.Customers)
	for i := range customers {
		customers[i] = Customer{
			ID:        i + 1,
			FirstName: g.faker.FirstName(),
			LastName:  g.faker.LastName(),
			Email:     g.faker.Email(),
			City:      datagen.Choose(g.faker, cities),
			// Signup falls within the year before the sales window opens.
			SignupDate: g.cfg.StartDate.AddDate(0, 0, -g.faker.Int(0, 365)),
		}
	}
	return customers
}

func (g *Generator) generateStores() []Store {
	stores := make([]Store, g.cfg.Stores)
	for i := range stores {
		stores[i] = Store{
			ID:      i + 1,
			Name:    g.faker.Company(),
			City:    datagen.Choose(g.faker, cities),
			Region:  datagen.Choose(g.faker, regions),
			Manager: g.faker.Name(),
		}
	}
	return stores
}

func (g *Generator) generateProducts() []Product {
	products := make([]Product, g.cfg.Products)
	for i := range products {
		category := datagen.Choose(g.faker, categories)
		price := g.faker.Float64(5.00, 200.00)

		// Category-specific price adjustment
		switch category {
		case "Electronics":
			price *= g.faker.Float64(1.2, 2.0)
		case "Clothing":
			price *= g.faker.Float64(0.5, 1.5)
		}

		products[i] = Product{
			ID:       i + 1,
			Name:     g.faker.ProductName(),
			Category: category,
			Brand:    datagen.Choose(g.faker, g.brands),
			// Cost is 60% of price
			UnitCost:  datagen.Round2(price * 0.6),
			UnitPrice: datagen.Round2(price),
		}
	}
	return products
}

func (g *Generator) generateSales(products []Product) []Sale {
	days := int(g.cfg.EndDate.Sub(g.cfg.StartDate).Hours() / 24)

	sales := make([]Sale, g.cfg.Sales)
	for i := range sales {
		date := g.cfg.StartDate.AddDate(0, 0, g.faker.Int(0, days))

		// Seasonal uplift in Q4 (Nov, Dec)
		var quantity int
		if date.Month() == time.November || date.Month() == time.December {
			quantity = g.faker.Int(1, 5)
		} else {
			quantity = g.faker.Int(1, 3)
		}

		product := datagen.Choose(g.faker, products)

		sales[i] = Sale{
			TransactionID: g.faker.Int(100000, 999999),
			CustomerID:    g.faker.Int(1, g.cfg.Customers),
			ProductID:     product.ID,
			StoreID:       g.faker.Int(1, g.cfg.Stores),
			Date:          date,
			Quantity:      quantity,
			UnitPrice:     product.UnitPrice,
			TotalAmount:   datagen.Round2(product.UnitPrice * float64(quantity)),
		}
	}
	return sales
}
