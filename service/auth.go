package service

import (
	"Encore/config"
	"Encore/models"
	"Encore/pkg/jwt"
	"Encore/pkg/snowflake"
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLen = 6

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
}

type AuthService struct {
	UserStore IUserStore
	Config    *config.Config
}

// Register 注册
// 邮箱统一小写去空白后才算身份
func (s *AuthService) Register(ctx context.Context, email, password string) (*models.User, error) {
	email = normalizeEmail(email)
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	if len(password) < minPasswordLen {
		return nil, ErrWeakPassword
	}

	exist, err := s.UserStore.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exist != nil {
		return nil, ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           snowflake.GenUserID(),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.UserStore.Create(ctx, user); err != nil {
		// 注册撞车，按已存在处理
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	return user, nil
}

// Login 登录，成功返回 access token
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)

	user, err := s.UserStore.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrBadCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", ErrBadCredentials
	}

	expire := time.Duration(s.Config.Jwt.AccessExpire) * time.Second
	if expire == 0 {
		expire = 24 * time.Hour
	}
	return jwt.GenerateToken([]byte(s.Config.Jwt.Secret), user.ID, "access", expire)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
