package quality

import (
	"github.com/lumenlake/warehouse/internal/quality/repository"
	"github.com/lumenlake/warehouse/internal/quality/service"
	"go.uber.org/fx"
)

var Module = fx.Module("quality.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
