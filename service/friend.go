package service

import (
	"Encore/models"
	"Encore/pkg/invite"
	"context"
	"errors"
)

var _ IFriendService = (*FriendService)(nil)

type IFriendService interface {
	InviteToken(userID int64) (string, error)
	AddFriend(ctx context.Context, userID int64, token string) error
	ListFriends(ctx context.Context, userID int64) ([]*models.User, error)
	IsFriend(ctx context.Context, userID, friendID int64) (bool, error)
}

type FriendService struct {
	FriendStore IFriendshipStore
	UserStore   IUserStore
	Codec       *invite.Codec
}

// InviteToken 生成邀请令牌，内容就是自己的用户 ID
func (s *FriendService) InviteToken(userID int64) (string, error) {
	if userID <= 0 {
		return "", ErrUnauthenticated
	}
	return s.Codec.Encode(userID)
}

// AddFriend 凭邀请令牌建立双向好友关系，重复添加幂等
func (s *FriendService) AddFriend(ctx context.Context, userID int64, token string) error {
	if userID <= 0 {
		return ErrUnauthenticated
	}

	inviterID, err := s.Codec.Decode(token)
	if err != nil {
		if errors.Is(err, invite.ErrInvalidToken) {
			return ErrInvalidToken
		}
		return err
	}

	// 不能加自己
	if inviterID == userID {
		return ErrSelfFriend
	}

	exist, err := s.UserStore.Exists(ctx, inviterID)
	if err != nil {
		return err
	}
	if !exist {
		return ErrUserNotFound
	}

	return s.FriendStore.CreateEdge(ctx, userID, inviterID)
}

// ListFriends 好友列表
func (s *FriendService) ListFriends(ctx context.Context, userID int64) ([]*models.User, error) {
	if userID <= 0 {
		return nil, ErrUnauthenticated
	}

	edges, err := s.FriendStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	friends := make([]*models.User, 0, len(edges))
	for _, e := range edges {
		if e.Friend != nil {
			friends = append(friends, e.Friend)
		}
	}
	return friends, nil
}

func (s *FriendService) IsFriend(ctx context.Context, userID, friendID int64) (bool, error) {
	return s.FriendStore.IsFriend(ctx, userID, friendID)
}
