package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/paydeck/paydeck/internal/audit"
	"github.com/paydeck/paydeck/internal/config"
	"github.com/paydeck/paydeck/internal/employee"
	"github.com/paydeck/paydeck/internal/logger"
	"github.com/paydeck/paydeck/internal/migration"
	obsmetrics "github.com/paydeck/paydeck/internal/observability/metrics"
	"github.com/paydeck/paydeck/internal/payroll"
	"github.com/paydeck/paydeck/internal/payrun"
	"github.com/paydeck/paydeck/internal/reporting"
	"github.com/paydeck/paydeck/internal/server"
	"github.com/paydeck/paydeck/internal/taxyear"
	"github.com/paydeck/paydeck/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,
		obsmetrics.Module,

		// Payroll domains
		taxyear.Module,
		payroll.Module,
		employee.Module,
		payrun.Module,
		reporting.Module,
		audit.Module,

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
