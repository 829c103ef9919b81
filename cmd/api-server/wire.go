//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"rocketbird/config"
	"rocketbird/dao"
	"rocketbird/handler"
	"rocketbird/pkg/client"
	"rocketbird/pkg/database"
	"rocketbird/pkg/server"
	"rocketbird/service"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,

		dao.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Member), "*"),
		wire.Struct(new(handler.Point), "*"),
		wire.Struct(new(handler.Level), "*"),
		wire.Struct(new(handler.Checkin), "*"),
		wire.Struct(new(handler.Mall), "*"),
		wire.Struct(new(handler.Referral), "*"),
		wire.Struct(new(handler.Feedback), "*"),
		wire.Struct(new(handler.Admin), "*"),

		wire.Struct(new(server.Handlers), "*"),
		server.NewGinEngine,
		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil
}
