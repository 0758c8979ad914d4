package server

import (
	"Encore/handler"
)

type Handlers struct {
	Auth     *handler.Auth
	Feed     *handler.Feed
	Reaction *handler.Reaction
	Like     *handler.Like
	Friend   *handler.Friend
}
