package analytics

import (
	"github.com/lumenlake/warehouse/internal/analytics/repository"
	"github.com/lumenlake/warehouse/internal/analytics/service"
	"go.uber.org/fx"
)

var Module = fx.Module("analytics.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
