package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	analyticsrepository "github.com/lumenlake/warehouse/internal/analytics/repository"
	analyticsservice "github.com/lumenlake/warehouse/internal/analytics/service"
	"github.com/lumenlake/warehouse/internal/clock"
	"github.com/lumenlake/warehouse/internal/config"
	lineageservice "github.com/lumenlake/warehouse/internal/lineage/service"
	qualityrepository "github.com/lumenlake/warehouse/internal/quality/repository"
	qualityservice "github.com/lumenlake/warehouse/internal/quality/service"
	"github.com/lumenlake/warehouse/internal/schema"
	"github.com/lumenlake/warehouse/internal/seed"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupServer(t *testing.T) *Server {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, schema.Migrate(db))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	clk := clock.NewFakeClock(time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC))
	require.NoError(t, seed.EnsureSampleData(db, clk, node, zap.NewNop()))

	log := zap.NewNop()
	srv := NewServer(ServerParams{
		Gin: NewEngine(log),
		Cfg: config.Config{WebDir: t.TempDir()},
		AnalyticsSvc: analyticsservice.New(analyticsservice.Params{
			DB: db, Log: log, Repo: analyticsrepository.Provide(),
		}),
		QualitySvc: qualityservice.New(qualityservice.Params{
			DB: db, Log: log, Clock: clk, GenID: node, Repo: qualityrepository.Provide(),
		}),
		LineageSvc: lineageservice.New(),
	})
	registerRoutes(srv)
	return srv
}

func doRequest(t *testing.T, srv *Server, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	srv.engine.ServeHTTP(w, req)
	return w
}

func TestGetAnalyticsShape(t *testing.T) {
	srv := setupServer(t)

	w := doRequest(t, srv, http.MethodGet, "/analytics")
	require.Equal(t, http.StatusOK, w.Code)

	var payload struct {
		KPIs struct {
			TotalRevenue      string `json:"total_revenue"`
			TotalTransactions int64  `json:"total_transactions"`
		} `json:"kpis"`
		CategorySales []map[string]any `json:"category_sales"`
		CountrySales  []map[string]any `json:"country_sales"`
		MonthlyTrends []map[string]any `json:"monthly_trends"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))

	require.EqualValues(t, 200, payload.KPIs.TotalTransactions)
	require.NotEmpty(t, payload.KPIs.TotalRevenue)
	require.NotEmpty(t, payload.CategorySales)
	require.NotEmpty(t, payload.CountrySales)
	require.NotEmpty(t, payload.MonthlyTrends)
}

func TestQualityCheckRoundtrip(t *testing.T) {
	srv := setupServer(t)

	w := doRequest(t, srv, http.MethodPost, "/quality-check")
	require.Equal(t, http.StatusOK, w.Code)

	var ran []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ran))
	require.Len(t, ran, 6)
	for _, record := range ran {
		require.Equal(t, "PASS", record["status"])
	}

	w = doRequest(t, srv, http.MethodGet, "/quality-metrics")
	require.Equal(t, http.StatusOK, w.Code)

	var stored []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stored))
	require.Len(t, stored, 6)
	require.Equal(t, ran[0]["metric_name"], stored[0]["metric_name"])
}

func TestGetLineageShape(t *testing.T) {
	srv := setupServer(t)

	w := doRequest(t, srv, http.MethodGet, "/lineage")
	require.Equal(t, http.StatusOK, w.Code)

	var payload struct {
		Sources         []map[string]any `json:"sources"`
		Transformations []map[string]any `json:"transformations"`
		Targets         []map[string]any `json:"targets"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	require.Len(t, payload.Sources, 3)
	require.Len(t, payload.Transformations, 4)
	require.Len(t, payload.Targets, 3)
}

func TestHealth(t *testing.T) {
	srv := setupServer(t)

	w := doRequest(t, srv, http.MethodGet, "/health")
	require.Equal(t, http.StatusOK, w.Code)
}
