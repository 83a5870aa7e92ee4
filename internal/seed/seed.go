package seed

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/lumenlake/warehouse/internal/clock"
	"github.com/lumenlake/warehouse/internal/schema"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	timeDays  = 90
	saleCount = 200
)

// EnsureSampleData populates the warehouse with the demonstration dataset:
// a literal catalog of customers and products, a trailing 90-day calendar and
// randomized sales. Seeding is a no-op when customers already exist, so it is
// safe to run on every startup. All rows commit in a single transaction.
func EnsureSampleData(conn *gorm.DB, clk clock.Clock, node *snowflake.Node, log *zap.Logger) error {
	var count int64
	if err := conn.Model(&schema.Customer{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count customers: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := clk.Now()

	err := conn.Transaction(func(tx *gorm.DB) error {
		customers := sampleCustomers()
		if err := tx.Create(&customers).Error; err != nil {
			return fmt.Errorf("seed customers: %w", err)
		}

		products := sampleProducts()
		if err := tx.Create(&products).Error; err != nil {
			return fmt.Errorf("seed products: %w", err)
		}

		days := calendarDays(now)
		if err := tx.Create(&days).Error; err != nil {
			return fmt.Errorf("seed calendar: %w", err)
		}

		sales := randomSales(node, customers, products, days)
		if err := tx.CreateInBatches(&sales, 100).Error; err != nil {
			return fmt.Errorf("seed sales: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("sample data seeded",
		zap.Int("customers", len(sampleCustomers())),
		zap.Int("products", len(sampleProducts())),
		zap.Int("days", timeDays),
		zap.Int("sales", saleCount),
	)
	return nil
}

func sampleCustomers() []schema.Customer {
	return []schema.Customer{
		{CustomerID: 1, CustomerName: "John Smith", Email: ptr("john@email.com"), Country: "USA", Segment: "Enterprise", CreatedDate: date(2023, 1, 15)},
		{CustomerID: 2, CustomerName: "Maria Garcia", Email: ptr("maria@email.com"), Country: "Spain", Segment: "SMB", CreatedDate: date(2023, 2, 20)},
		{CustomerID: 3, CustomerName: "Li Wei", Email: ptr("li@email.com"), Country: "China", Segment: "Enterprise", CreatedDate: date(2023, 1, 10)},
		{CustomerID: 4, CustomerName: "Ahmed Hassan", Email: ptr("ahmed@email.com"), Country: "Egypt", Segment: "Consumer", CreatedDate: date(2023, 3, 5)},
		{CustomerID: 5, CustomerName: "Sarah Johnson", Email: ptr("sarah@email.com"), Country: "Canada", Segment: "SMB", CreatedDate: date(2023, 1, 25)},
	}
}

func sampleProducts() []schema.Product {
	return []schema.Product{
		{ProductID: 1, ProductName: "Laptop Pro", Category: "Electronics", Subcategory: "Computers", Price: money("1299.99"), Cost: money("800.00")},
		{ProductID: 2, ProductName: "Smartphone X", Category: "Electronics", Subcategory: "Mobile", Price: money("899.99"), Cost: money("500.00")},
		{ProductID: 3, ProductName: "Office Chair", Category: "Furniture", Subcategory: "Seating", Price: money("299.99"), Cost: money("150.00")},
		{ProductID: 4, ProductName: "Desk Lamp", Category: "Furniture", Subcategory: "Lighting", Price: money("79.99"), Cost: money("30.00")},
		{ProductID: 5, ProductName: "Wireless Mouse", Category: "Electronics", Subcategory: "Accessories", Price: money("49.99"), Cost: money("20.00")},
	}
}

// calendarDays builds one TimeDay row per day for the 90 days ending at now.
func calendarDays(now time.Time) []schema.TimeDay {
	start := now.AddDate(0, 0, -timeDays)
	days := make([]schema.TimeDay, 0, timeDays)
	for i := 0; i < timeDays; i++ {
		d := start.AddDate(0, 0, i)
		days = append(days, schema.TimeDay{
			DateID:  schema.DateID(d),
			Date:    d,
			Year:    d.Year(),
			Quarter: (int(d.Month())-1)/3 + 1,
			Month:   int(d.Month()),
			Day:     d.Day(),
			Weekday: d.Weekday().String(),
		})
	}
	return days
}

// randomSales draws uniformly random (day, customer, product, quantity)
// tuples. Revenue and profit are captured from the product's current price and
// cost, which is exactly the invariant the quality checker later verifies.
func randomSales(node *snowflake.Node, customers []schema.Customer, products []schema.Product, days []schema.TimeDay) []schema.Sale {
	sales := make([]schema.Sale, 0, saleCount)
	for i := 0; i < saleCount; i++ {
		day := days[rand.IntN(len(days))]
		customer := customers[rand.IntN(len(customers))]
		product := products[rand.IntN(len(products))]
		quantity := 1 + rand.IntN(5)

		qty := decimal.NewFromInt(int64(quantity))
		sales = append(sales, schema.Sale{
			SaleID:     node.Generate().Int64(),
			CustomerID: customer.CustomerID,
			ProductID:  product.ProductID,
			DateID:     day.DateID,
			Quantity:   quantity,
			Revenue:    product.Price.Mul(qty),
			Profit:     product.Price.Sub(product.Cost).Mul(qty),
		})
	}
	return sales
}

func ptr(s string) *string { return &s }

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
