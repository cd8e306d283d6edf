package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/billd/internal/config"
	"github.com/smallbiznis/billd/internal/invoice"
	"github.com/smallbiznis/billd/internal/migration"
	"github.com/smallbiznis/billd/internal/observability"
	"github.com/smallbiznis/billd/internal/server"
	"github.com/smallbiznis/billd/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,

		invoice.Module,

		fx.Provide(server.NewEngine),
		fx.Provide(server.NewServer),
		fx.Invoke(func(*server.Server) {}),
		fx.Invoke(server.RunHTTP),
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
