package service

import (
	"context"

	"github.com/lumenlake/warehouse/internal/analytics/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("analytics.service"),
		repo: p.Repo,
	}
}

// Report assembles the four read-only aggregations into one payload.
func (s *Service) Report(ctx context.Context) (domain.Report, error) {
	kpis, err := s.repo.KPIs(ctx, s.db)
	if err != nil {
		return domain.Report{}, err
	}

	categories, err := s.repo.CategorySales(ctx, s.db)
	if err != nil {
		return domain.Report{}, err
	}

	countries, err := s.repo.CountrySales(ctx, s.db)
	if err != nil {
		return domain.Report{}, err
	}

	trends, err := s.repo.MonthlyTrends(ctx, s.db)
	if err != nil {
		return domain.Report{}, err
	}

	if categories == nil {
		categories = []domain.CategorySales{}
	}
	if countries == nil {
		countries = []domain.CountrySales{}
	}
	if trends == nil {
		trends = []domain.MonthlyTrend{}
	}

	return domain.Report{
		KPIs:          kpis,
		CategorySales: categories,
		CountrySales:  countries,
		MonthlyTrends: trends,
	}, nil
}
