package seed

import (
	"github.com/bwmarrin/snowflake"
	"github.com/lumenlake/warehouse/internal/clock"
	"github.com/lumenlake/warehouse/internal/schema"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Module creates the warehouse tables on startup and seeds the demonstration
// dataset when the store is empty.
var Module = fx.Module("seed",
	fx.Invoke(func(conn *gorm.DB, clk clock.Clock, node *snowflake.Node, log *zap.Logger) error {
		if err := schema.Migrate(conn); err != nil {
			return err
		}
		return EnsureSampleData(conn, clk, node, log.Named("seed"))
	}),
)
