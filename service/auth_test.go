package service

import (
	"Encore/config"
	"Encore/pkg/jwt"
	"context"
	"errors"
	"testing"
)

func newAuthFixture() *AuthService {
	return &AuthService{
		UserStore: newMemUserStore(),
		Config: &config.Config{
			Jwt: &config.Jwt{Secret: "test-secret", AccessExpire: 3600},
		},
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthFixture()
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice@example.com", "secret1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID <= 0 {
		t.Fatalf("expected generated user id")
	}
	if user.PasswordHash == "secret1" {
		t.Fatalf("password must be hashed")
	}

	token, err := svc.Login(ctx, "alice@example.com", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := jwt.ParseToken([]byte("test-secret"), "access", token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("token carries wrong user id: %d != %d", claims.UserID, user.ID)
	}
}

func TestRegisterNormalizesEmail(t *testing.T) {
	svc := newAuthFixture()
	ctx := context.Background()

	user, err := svc.Register(ctx, "  Alice@Example.COM  ", "secret1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("email must be lowered and trimmed, got %q", user.Email)
	}

	// 大小写变体是同一个身份
	if _, err := svc.Register(ctx, "ALICE@example.com", "secret2"); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
	if _, err := svc.Login(ctx, "alice@example.com", "secret1"); err != nil {
		t.Fatalf("login with normalized email: %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := newAuthFixture()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "not-an-email", "secret1"); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
	if _, err := svc.Register(ctx, "bob@example.com", "12345"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	svc := newAuthFixture()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "carol@example.com", "secret1"); err != nil {
		t.Fatalf("register: %v", err)
	}

	// 未注册和密码错误对外是同一个错误，不泄露账号是否存在
	if _, err := svc.Login(ctx, "nobody@example.com", "secret1"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials for unknown email, got %v", err)
	}
	if _, err := svc.Login(ctx, "carol@example.com", "wrong"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials for wrong password, got %v", err)
	}
}
