package domain

import "github.com/shopspring/decimal"

// KPIs summarizes the whole fact table. On an empty warehouse every field is
// zero, never an error.
type KPIs struct {
	TotalRevenue        decimal.Decimal `json:"total_revenue"`
	TotalProfit         decimal.Decimal `json:"total_profit"`
	TotalTransactions   int64           `json:"total_transactions"`
	AvgTransactionValue decimal.Decimal `json:"avg_transaction_value"`
}

// CategorySales aggregates revenue and units sold per product category.
type CategorySales struct {
	Category string          `json:"category"`
	Revenue  decimal.Decimal `json:"revenue"`
	Quantity int64           `json:"quantity"`
}

// CountrySales aggregates revenue and distinct buying customers per country.
type CountrySales struct {
	Country   string          `json:"country"`
	Revenue   decimal.Decimal `json:"revenue"`
	Customers int64           `json:"customers"`
}

// MonthlyTrend aggregates revenue and profit for one (year, month) pair.
type MonthlyTrend struct {
	Year    int             `json:"year"`
	Month   int             `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
	Profit  decimal.Decimal `json:"profit"`
}

// Report is the full analytics payload served to the dashboard.
type Report struct {
	KPIs          KPIs            `json:"kpis"`
	CategorySales []CategorySales `json:"category_sales"`
	CountrySales  []CountrySales  `json:"country_sales"`
	MonthlyTrends []MonthlyTrend  `json:"monthly_trends"`
}
