package repository

import (
	"context"
	"fmt"

	"github.com/lumenlake/warehouse/internal/analytics/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

// Monetary aggregates round to two decimal places so the captured
// fixed-precision values survive the engine's floating-point SUM.
const kpisQuery = `
	SELECT
		COALESCE(ROUND(SUM(revenue), 2), 0) AS total_revenue,
		COALESCE(ROUND(SUM(profit), 2), 0)  AS total_profit,
		COUNT(*)                            AS total_transactions,
		COALESCE(ROUND(AVG(revenue), 2), 0) AS avg_transaction_value
	FROM fact_sales`

const categorySalesQuery = `
	SELECT p.category AS category,
	       ROUND(SUM(s.revenue), 2) AS revenue,
	       SUM(s.quantity) AS quantity
	FROM fact_sales s
	JOIN dim_products p ON s.product_id = p.product_id
	GROUP BY p.category
	ORDER BY revenue DESC, p.category ASC`

const countrySalesQuery = `
	SELECT c.country AS country,
	       ROUND(SUM(s.revenue), 2) AS revenue,
	       COUNT(DISTINCT s.customer_id) AS customers
	FROM fact_sales s
	JOIN dim_customers c ON s.customer_id = c.customer_id
	GROUP BY c.country
	ORDER BY revenue DESC, c.country ASC`

const monthlyTrendsQuery = `
	SELECT t.year AS year,
	       t.month AS month,
	       ROUND(SUM(s.revenue), 2) AS revenue,
	       ROUND(SUM(s.profit), 2) AS profit
	FROM fact_sales s
	JOIN dim_time t ON s.date_id = t.date_id
	GROUP BY t.year, t.month
	ORDER BY t.year ASC, t.month ASC`

func (r *repo) KPIs(ctx context.Context, db *gorm.DB) (domain.KPIs, error) {
	var kpis domain.KPIs
	if err := db.WithContext(ctx).Raw(kpisQuery).Scan(&kpis).Error; err != nil {
		return domain.KPIs{}, fmt.Errorf("query kpis: %w", err)
	}
	return kpis, nil
}

func (r *repo) CategorySales(ctx context.Context, db *gorm.DB) ([]domain.CategorySales, error) {
	var rows []domain.CategorySales
	if err := db.WithContext(ctx).Raw(categorySalesQuery).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("query category sales: %w", err)
	}
	return rows, nil
}

func (r *repo) CountrySales(ctx context.Context, db *gorm.DB) ([]domain.CountrySales, error) {
	var rows []domain.CountrySales
	if err := db.WithContext(ctx).Raw(countrySalesQuery).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("query country sales: %w", err)
	}
	return rows, nil
}

func (r *repo) MonthlyTrends(ctx context.Context, db *gorm.DB) ([]domain.MonthlyTrend, error) {
	var rows []domain.MonthlyTrend
	if err := db.WithContext(ctx).Raw(monthlyTrendsQuery).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("query monthly trends: %w", err)
	}
	return rows, nil
}
