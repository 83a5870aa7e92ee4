package lineage

import (
	"github.com/lumenlake/warehouse/internal/lineage/service"
	"go.uber.org/fx"
)

var Module = fx.Module("lineage.service",
	fx.Provide(service.New),
)
