//go:build wireinject
// +build wireinject

package main

import (
	"lovedj/config"
	"lovedj/internal/command"
	"lovedj/internal/cron"
	"lovedj/internal/database"
	"lovedj/internal/handler"
	"lovedj/internal/middleware"
	"lovedj/internal/router"
	"lovedj/internal/service"
	"lovedj/internal/telemetry"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// wireApp init application.
func wireApp(*config.Configuration, *zap.Logger) (*App, func(), error) {
	panic(
		wire.Build(
			database.ProviderSet,
			service.ProviderSet,
			handler.ProviderSet,
			middleware.ProviderSet,
			router.ProviderSet,
			cron.ProviderSet,
			newHttpServer,
			newHttpClient,
			telemetry.ProviderSet,
			newApp,
		),
	)
}

// wireCommand init application.
func wireCommand(*config.Configuration, *zap.Logger) (*command.Command, func(), error) {
	panic(
		wire.Build(
			command.ProviderSet,
			database.ProviderSet,
			service.ProviderSet,
			newHttpClient,
			telemetry.ProviderSet,
		),
	)
}
