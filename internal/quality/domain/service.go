package domain

import (
	"context"
	"errors"

	"github.com/lumenlake/warehouse/internal/schema"
	"gorm.io/gorm"
)

var ErrUnknownCheck = errors.New("unknown_check")

type Service interface {
	// RunChecks executes the full rule battery, replaces the persisted
	// results atomically and returns the records in computed order.
	RunChecks(ctx context.Context) ([]Record, error)
	// Metrics returns the persisted results of the latest run, newest first.
	Metrics(ctx context.Context) ([]Record, error)
}

type Repository interface {
	NullStats(ctx context.Context, db *gorm.DB, check NullCheck) (nulls, total int64, err error)
	DuplicateEmails(ctx context.Context, db *gorm.DB) (int64, error)
	RevenueMismatches(ctx context.Context, db *gorm.DB) (int64, error)
	Replace(ctx context.Context, db *gorm.DB, metrics []schema.QualityMetric) error
	List(ctx context.Context, db *gorm.DB) ([]schema.QualityMetric, error)
}
