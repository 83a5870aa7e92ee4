package domain

import "time"

const (
	StatusPass = "PASS"
	StatusFail = "FAIL"
)

// Thresholds for the fixed rule battery. Null percentages pass below five
// percent; the duplicate and consistency counters pass only at zero.
const (
	NullThreshold  = 5.0
	ExactThreshold = 0.0
)

// RevenueEpsilon bounds the tolerated gap between a sale's captured revenue
// and price times quantity.
const RevenueEpsilon = 0.01

// Record is one persisted quality-check outcome.
type Record struct {
	TableName      string    `json:"table_name"`
	MetricName     string    `json:"metric_name"`
	MetricValue    float64   `json:"metric_value"`
	ThresholdValue float64   `json:"threshold_value"`
	Status         string    `json:"status"`
	CheckDate      time.Time `json:"check_date"`
}

// NullCheck names one (table, column) pair whose null percentage is tracked.
type NullCheck struct {
	Table  string
	Column string
}

// NullChecks is the fixed battery of tracked columns, in presentation order.
var NullChecks = []NullCheck{
	{Table: "dim_customers", Column: "customer_name"},
	{Table: "dim_customers", Column: "email"},
	{Table: "dim_products", Column: "product_name"},
	{Table: "fact_sales", Column: "revenue"},
}
