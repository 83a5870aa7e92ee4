package seed

import (
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/lumenlake/warehouse/internal/clock"
	"github.com/lumenlake/warehouse/internal/schema"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSeedDB(t *testing.T) (*gorm.DB, *snowflake.Node) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, schema.Migrate(db))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	return db, node
}

func rowCount(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}

func TestEnsureSampleDataPopulatesStarSchema(t *testing.T) {
	db, node := setupSeedDB(t)
	clk := clock.NewFakeClock(time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC))

	require.NoError(t, EnsureSampleData(db, clk, node, zap.NewNop()))

	require.EqualValues(t, 5, rowCount(t, db, &schema.Customer{}))
	require.EqualValues(t, 5, rowCount(t, db, &schema.Product{}))
	require.EqualValues(t, 90, rowCount(t, db, &schema.TimeDay{}))
	require.EqualValues(t, 200, rowCount(t, db, &schema.Sale{}))
}

func TestEnsureSampleDataIsIdempotent(t *testing.T) {
	db, node := setupSeedDB(t)
	clk := clock.NewFakeClock(time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC))

	require.NoError(t, EnsureSampleData(db, clk, node, zap.NewNop()))
	require.NoError(t, EnsureSampleData(db, clk, node, zap.NewNop()))

	require.EqualValues(t, 5, rowCount(t, db, &schema.Customer{}))
	require.EqualValues(t, 200, rowCount(t, db, &schema.Sale{}))
}

func TestSeededSalesCaptureRevenueFromCatalog(t *testing.T) {
	db, node := setupSeedDB(t)
	clk := clock.NewFakeClock(time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC))
	require.NoError(t, EnsureSampleData(db, clk, node, zap.NewNop()))

	var products []schema.Product
	require.NoError(t, db.Find(&products).Error)
	priceByID := make(map[int64]decimal.Decimal, len(products))
	for _, p := range products {
		priceByID[p.ProductID] = p.Price
	}

	var sales []schema.Sale
	require.NoError(t, db.Find(&sales).Error)
	for _, sale := range sales {
		require.GreaterOrEqual(t, sale.Quantity, 1)
		require.LessOrEqual(t, sale.Quantity, 5)

		expected := priceByID[sale.ProductID].Mul(decimal.NewFromInt(int64(sale.Quantity)))
		require.True(t, sale.Revenue.Equal(expected),
			"sale %d revenue %s != price*quantity %s", sale.SaleID, sale.Revenue, expected)
	}
}

func TestCalendarCoversTrailingWindow(t *testing.T) {
	db, node := setupSeedDB(t)
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	require.NoError(t, EnsureSampleData(db, clock.NewFakeClock(now), node, zap.NewNop()))

	var days []schema.TimeDay
	require.NoError(t, db.Order("date_id asc").Find(&days).Error)
	require.Len(t, days, 90)

	first := now.AddDate(0, 0, -90)
	require.EqualValues(t, schema.DateID(first), days[0].DateID)
	require.EqualValues(t, schema.DateID(now.AddDate(0, 0, -1)), days[89].DateID)

	for _, d := range days {
		require.Equal(t, (d.Month-1)/3+1, d.Quarter)
	}
}
