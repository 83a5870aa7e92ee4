package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is the customer dimension. Rows are written once during seeding and
// never mutated or deleted.
type Customer struct {
	CustomerID   int64     `gorm:"column:customer_id;primaryKey" json:"customer_id"`
	CustomerName string    `gorm:"column:customer_name;not null" json:"customer_name"`
	Email        *string   `gorm:"column:email" json:"email"`
	Country      string    `gorm:"column:country" json:"country"`
	Segment      string    `gorm:"column:segment" json:"segment"`
	CreatedDate  time.Time `gorm:"column:created_date;type:date" json:"created_date"`
}

func (Customer) TableName() string { return "dim_customers" }

// Product is the product dimension.
type Product struct {
	ProductID   int64           `gorm:"column:product_id;primaryKey" json:"product_id"`
	ProductName string          `gorm:"column:product_name;not null" json:"product_name"`
	Category    string          `gorm:"column:category" json:"category"`
	Subcategory string          `gorm:"column:subcategory" json:"subcategory"`
	Price       decimal.Decimal `gorm:"column:price;type:decimal(10,2)" json:"price"`
	Cost        decimal.Decimal `gorm:"column:cost;type:decimal(10,2)" json:"cost"`
}

func (Product) TableName() string { return "dim_products" }

// TimeDay is the calendar dimension, one row per day. The primary key is the
// numeric YYYYMMDD form of the date.
type TimeDay struct {
	DateID  int64     `gorm:"column:date_id;primaryKey" json:"date_id"`
	Date    time.Time `gorm:"column:date;type:date" json:"date"`
	Year    int       `gorm:"column:year" json:"year"`
	Quarter int       `gorm:"column:quarter" json:"quarter"`
	Month   int       `gorm:"column:month" json:"month"`
	Day     int       `gorm:"column:day" json:"day"`
	Weekday string    `gorm:"column:weekday" json:"weekday"`
}

func (TimeDay) TableName() string { return "dim_time" }

// Sale is the fact table. Revenue and profit are captured at write time from
// the product's price and cost, not recomputed on read.
type Sale struct {
	SaleID     int64           `gorm:"column:sale_id;primaryKey" json:"sale_id"`
	CustomerID int64           `gorm:"column:customer_id;not null;index" json:"customer_id"`
	ProductID  int64           `gorm:"column:product_id;not null;index" json:"product_id"`
	DateID     int64           `gorm:"column:date_id;not null;index" json:"date_id"`
	Quantity   int             `gorm:"column:quantity;not null" json:"quantity"`
	Revenue    decimal.Decimal `gorm:"column:revenue;type:decimal(10,2)" json:"revenue"`
	Profit     decimal.Decimal `gorm:"column:profit;type:decimal(10,2)" json:"profit"`
}

func (Sale) TableName() string { return "fact_sales" }

// QualityMetric records the outcome of a single data-quality check. The table
// holds only the latest run; every run clears and rewrites it.
type QualityMetric struct {
	MetricID       int64     `gorm:"column:metric_id;primaryKey" json:"metric_id"`
	Table          string    `gorm:"column:table_name" json:"table_name"`
	MetricName     string    `gorm:"column:metric_name" json:"metric_name"`
	MetricValue    float64   `gorm:"column:metric_value" json:"metric_value"`
	ThresholdValue float64   `gorm:"column:threshold_value" json:"threshold_value"`
	Status         string    `gorm:"column:status" json:"status"`
	CheckDate      time.Time `gorm:"column:check_date" json:"check_date"`
}

func (QualityMetric) TableName() string { return "data_quality_metrics" }

// DateID derives the numeric YYYYMMDD surrogate key for a calendar date.
func DateID(t time.Time) int64 {
	return int64(t.Year())*10000 + int64(t.Month())*100 + int64(t.Day())
}
