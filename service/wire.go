//go:build wireinject

package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),

	wire.Struct(new(ReactionService), "*"),
	wire.Bind(new(IReactionService), new(*ReactionService)),

	wire.Struct(new(FeedService), "ReactionStore", "WorkStore", "Cache"),
	wire.Bind(new(IFeedService), new(*FeedService)),

	wire.Struct(new(MutualService), "*"),
	wire.Bind(new(IMutualService), new(*MutualService)),

	wire.Struct(new(FriendService), "*"),
	wire.Bind(new(IFriendService), new(*FriendService)),
)
