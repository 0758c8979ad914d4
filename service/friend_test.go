package service

import (
	"Encore/config"
	"Encore/models"
	"Encore/pkg/invite"
	"context"
	"errors"
	"testing"
)

func testCodec() *invite.Codec {
	return invite.NewCodec(&config.Config{Invite: &config.Invite{Salt: "test-salt"}})
}

func newFriendFixture(users ...*models.User) (*FriendService, *memFriendshipStore) {
	edges := newMemFriendshipStore()
	svc := &FriendService{
		FriendStore: edges,
		UserStore:   newMemUserStore(users...),
		Codec:       testCodec(),
	}
	return svc, edges
}

func TestAddFriendIsSymmetric(t *testing.T) {
	svc, _ := newFriendFixture(&models.User{ID: 1}, &models.User{ID: 2})
	ctx := context.Background()

	token, err := svc.InviteToken(2)
	if err != nil {
		t.Fatalf("invite token: %v", err)
	}
	if err := svc.AddFriend(ctx, 1, token); err != nil {
		t.Fatalf("add friend: %v", err)
	}

	// 一次接受，两个方向同时成立
	for _, pair := range [][2]int64{{1, 2}, {2, 1}} {
		ok, err := svc.IsFriend(ctx, pair[0], pair[1])
		if err != nil {
			t.Fatalf("is friend: %v", err)
		}
		if !ok {
			t.Fatalf("friendship must be mutual, %d->%d missing", pair[0], pair[1])
		}
	}
}

func TestAddFriendIdempotent(t *testing.T) {
	svc, edges := newFriendFixture(&models.User{ID: 1}, &models.User{ID: 2})
	ctx := context.Background()

	token, _ := svc.InviteToken(2)
	for i := 0; i < 2; i++ {
		if err := svc.AddFriend(ctx, 1, token); err != nil {
			t.Fatalf("add friend round %d: %v", i, err)
		}
	}
	if n := edges.m.Count(); n != 2 {
		t.Fatalf("repeat accept must not duplicate edges, got %d", n)
	}
}

func TestAddFriendRejectsSelf(t *testing.T) {
	svc, _ := newFriendFixture(&models.User{ID: 1})

	token, _ := svc.InviteToken(1)
	if err := svc.AddFriend(context.Background(), 1, token); !errors.Is(err, ErrSelfFriend) {
		t.Fatalf("expected ErrSelfFriend, got %v", err)
	}
}

func TestAddFriendRejectsGarbageToken(t *testing.T) {
	svc, _ := newFriendFixture(&models.User{ID: 1})

	if err := svc.AddFriend(context.Background(), 1, "not-a-token!!"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAddFriendUnknownInviter(t *testing.T) {
	svc, _ := newFriendFixture(&models.User{ID: 1})

	// 令牌本身合法，但邀请人已经不存在
	token, err := testCodec().Encode(999)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := svc.AddFriend(context.Background(), 1, token); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestListFriends(t *testing.T) {
	svc, _ := newFriendFixture(&models.User{ID: 1}, &models.User{ID: 2}, &models.User{ID: 3})
	ctx := context.Background()

	for _, inviter := range []int64{2, 3} {
		token, _ := svc.InviteToken(inviter)
		if err := svc.AddFriend(ctx, 1, token); err != nil {
			t.Fatalf("add friend: %v", err)
		}
	}

	friends, err := svc.ListFriends(ctx, 1)
	if err != nil {
		t.Fatalf("list friends: %v", err)
	}
	if len(friends) != 2 {
		t.Fatalf("expected 2 friends, got %d", len(friends))
	}
}

func TestFriendRejectsAnonymous(t *testing.T) {
	svc, _ := newFriendFixture()

	if _, err := svc.InviteToken(0); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if err := svc.AddFriend(context.Background(), 0, "whatever"); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
