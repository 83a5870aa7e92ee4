package domain

import (
	"context"

	"gorm.io/gorm"
)

type Service interface {
	Report(ctx context.Context) (Report, error)
}

type Repository interface {
	KPIs(ctx context.Context, db *gorm.DB) (KPIs, error)
	CategorySales(ctx context.Context, db *gorm.DB) ([]CategorySales, error)
	CountrySales(ctx context.Context, db *gorm.DB) ([]CountrySales, error)
	MonthlyTrends(ctx context.Context, db *gorm.DB) ([]MonthlyTrend, error)
}
