//go:build wireinject
// +build wireinject

package main

import (
	"Encore/config"
	"Encore/dao"
	"Encore/dao/cache"
	"Encore/handler"
	"Encore/pkg/client"
	"Encore/pkg/database"
	"Encore/pkg/invite"
	"Encore/pkg/server"
	"Encore/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		database.NewDB,
		invite.NewCodec,
		server.NewGinEngine,

		dao.ProviderSet,
		cache.ProviderSet,

		wire.Bind(new(service.IUserStore), new(*dao.Users)),
		wire.Bind(new(service.IWorkStore), new(*dao.WorkDAO)),
		wire.Bind(new(service.IReactionStore), new(*dao.ReactionDAO)),
		wire.Bind(new(service.IFriendshipStore), new(*dao.FriendshipDAO)),
		wire.Bind(new(service.IReactedCache), new(*cache.ReactedStorage)),

		service.ProviderSet,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Feed), "*"),
		wire.Struct(new(handler.Reaction), "*"),
		wire.Struct(new(handler.Like), "*"),
		wire.Struct(new(handler.Friend), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),
	)
	return nil
}
