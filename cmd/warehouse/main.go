package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/lumenlake/warehouse/internal/clock"
	"github.com/lumenlake/warehouse/internal/config"
	"github.com/lumenlake/warehouse/internal/logger"
	"github.com/lumenlake/warehouse/internal/seed"
	"github.com/lumenlake/warehouse/internal/server"
	"github.com/lumenlake/warehouse/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		clock.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		seed.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
