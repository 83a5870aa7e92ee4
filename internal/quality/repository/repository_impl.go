package repository

import (
	"context"
	"fmt"

	"github.com/lumenlake/warehouse/internal/quality/domain"
	"github.com/lumenlake/warehouse/internal/schema"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

// Each tracked (table, column) pair maps to its own fixed statement. Query
// text is never assembled from the pair at call time.
var nullStatsQueries = map[domain.NullCheck]string{
	{Table: "dim_customers", Column: "customer_name"}: `
		SELECT COUNT(*) AS total, COUNT(*) - COUNT(customer_name) AS nulls FROM dim_customers`,
	{Table: "dim_customers", Column: "email"}: `
		SELECT COUNT(*) AS total, COUNT(*) - COUNT(email) AS nulls FROM dim_customers`,
	{Table: "dim_products", Column: "product_name"}: `
		SELECT COUNT(*) AS total, COUNT(*) - COUNT(product_name) AS nulls FROM dim_products`,
	{Table: "fact_sales", Column: "revenue"}: `
		SELECT COUNT(*) AS total, COUNT(*) - COUNT(revenue) AS nulls FROM fact_sales`,
}

const duplicateEmailsQuery = `
	SELECT COUNT(*) - COUNT(DISTINCT email) AS duplicates FROM dim_customers`

const revenueMismatchesQuery = `
	SELECT COUNT(*) AS mismatches
	FROM fact_sales s
	JOIN dim_products p ON s.product_id = p.product_id
	WHERE ABS(s.revenue - (p.price * s.quantity)) > ?`

func (r *repo) NullStats(ctx context.Context, db *gorm.DB, check domain.NullCheck) (int64, int64, error) {
	query, ok := nullStatsQueries[check]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %s.%s", domain.ErrUnknownCheck, check.Table, check.Column)
	}

	var row struct {
		Total int64
		Nulls int64
	}
	if err := db.WithContext(ctx).Raw(query).Scan(&row).Error; err != nil {
		return 0, 0, fmt.Errorf("query null stats for %s.%s: %w", check.Table, check.Column, err)
	}
	return row.Nulls, row.Total, nil
}

func (r *repo) DuplicateEmails(ctx context.Context, db *gorm.DB) (int64, error) {
	var duplicates int64
	if err := db.WithContext(ctx).Raw(duplicateEmailsQuery).Scan(&duplicates).Error; err != nil {
		return 0, fmt.Errorf("query duplicate emails: %w", err)
	}
	return duplicates, nil
}

func (r *repo) RevenueMismatches(ctx context.Context, db *gorm.DB) (int64, error) {
	var mismatches int64
	if err := db.WithContext(ctx).Raw(revenueMismatchesQuery, domain.RevenueEpsilon).Scan(&mismatches).Error; err != nil {
		return 0, fmt.Errorf("query revenue mismatches: %w", err)
	}
	return mismatches, nil
}

// Replace clears the previous run and writes the new records in one
// transaction, so readers never observe a partially written run.
func (r *repo) Replace(ctx context.Context, db *gorm.DB, metrics []schema.QualityMetric) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM data_quality_metrics`).Error; err != nil {
			return fmt.Errorf("clear quality metrics: %w", err)
		}
		if len(metrics) == 0 {
			return nil
		}
		if err := tx.Create(&metrics).Error; err != nil {
			return fmt.Errorf("insert quality metrics: %w", err)
		}
		return nil
	})
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]schema.QualityMetric, error) {
	var metrics []schema.QualityMetric
	err := db.WithContext(ctx).
		Raw(`SELECT metric_id, table_name, metric_name, metric_value, threshold_value, status, check_date
		     FROM data_quality_metrics
		     ORDER BY check_date DESC, metric_id ASC`).
		Scan(&metrics).Error
	if err != nil {
		return nil, fmt.Errorf("list quality metrics: %w", err)
	}
	return metrics, nil
}
