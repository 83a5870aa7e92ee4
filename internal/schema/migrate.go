package schema

import (
	"fmt"

	"gorm.io/gorm"
)

// Migrate creates the five warehouse tables if they do not exist. The schema
// is fixed; calling Migrate repeatedly is safe and changes nothing once the
// tables are in place.
func Migrate(conn *gorm.DB) error {
	if err := conn.AutoMigrate(
		&Customer{},
		&Product{},
		&TimeDay{},
		&Sale{},
		&QualityMetric{},
	); err != nil {
		return fmt.Errorf("migrate warehouse schema: %w", err)
	}
	return nil
}
