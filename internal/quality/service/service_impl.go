package service

import (
	"context"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/lumenlake/warehouse/internal/clock"
	"github.com/lumenlake/warehouse/internal/quality/domain"
	"github.com/lumenlake/warehouse/internal/schema"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Clock clock.Clock
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	clock clock.Clock
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("quality.service"),
		clock: p.Clock,
		genID: p.GenID,
		repo:  p.Repo,
	}
}

// RunChecks executes the rule battery in fixed order: the four null-percentage
// checks, the duplicate-email check, then the revenue-consistency check.
func (s *Service) RunChecks(ctx context.Context) ([]domain.Record, error) {
	now := s.clock.Now()
	records := make([]domain.Record, 0, len(domain.NullChecks)+2)

	for _, check := range domain.NullChecks {
		nulls, total, err := s.repo.NullStats(ctx, s.db, check)
		if err != nil {
			return nil, err
		}

		percentage := 0.0
		if total > 0 {
			percentage = float64(nulls) / float64(total) * 100
		}

		records = append(records, domain.Record{
			TableName:      check.Table,
			MetricName:     fmt.Sprintf("Null %s", check.Column),
			MetricValue:    percentage,
			ThresholdValue: domain.NullThreshold,
			Status:         statusFor(percentage < domain.NullThreshold),
			CheckDate:      now,
		})
	}

	duplicates, err := s.repo.DuplicateEmails(ctx, s.db)
	if err != nil {
		return nil, err
	}
	records = append(records, domain.Record{
		TableName:      "dim_customers",
		MetricName:     "Duplicate emails",
		MetricValue:    float64(duplicates),
		ThresholdValue: domain.ExactThreshold,
		Status:         statusFor(duplicates == 0),
		CheckDate:      now,
	})

	mismatches, err := s.repo.RevenueMismatches(ctx, s.db)
	if err != nil {
		return nil, err
	}
	records = append(records, domain.Record{
		TableName:      "fact_sales",
		MetricName:     "Revenue consistency",
		MetricValue:    float64(mismatches),
		ThresholdValue: domain.ExactThreshold,
		Status:         statusFor(mismatches == 0),
		CheckDate:      now,
	})

	metrics := make([]schema.QualityMetric, 0, len(records))
	for _, record := range records {
		metrics = append(metrics, schema.QualityMetric{
			MetricID:       s.genID.Generate().Int64(),
			Table:          record.TableName,
			MetricName:     record.MetricName,
			MetricValue:    record.MetricValue,
			ThresholdValue: record.ThresholdValue,
			Status:         record.Status,
			CheckDate:      record.CheckDate,
		})
	}
	if err := s.repo.Replace(ctx, s.db, metrics); err != nil {
		return nil, err
	}

	s.log.Info("quality checks completed",
		zap.Int("checks", len(records)),
		zap.Int64("revenue_mismatches", mismatches),
	)
	return records, nil
}

// Metrics returns the persisted latest run ordered by check date descending.
func (s *Service) Metrics(ctx context.Context) ([]domain.Record, error) {
	metrics, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}

	records := make([]domain.Record, 0, len(metrics))
	for _, metric := range metrics {
		records = append(records, domain.Record{
			TableName:      metric.Table,
			MetricName:     metric.MetricName,
			MetricValue:    metric.MetricValue,
			ThresholdValue: metric.ThresholdValue,
			Status:         metric.Status,
			CheckDate:      metric.CheckDate,
		})
	}
	return records, nil
}

func statusFor(pass bool) string {
	if pass {
		return domain.StatusPass
	}
	return domain.StatusFail
}
