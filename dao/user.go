package dao

import (
	"Encore/models"
	"context"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.User](db),
	}
}

// FindByEmail 邮箱查询
func (u *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return u.Repo.FindByWhere(ctx, "email = ?", email)
}

// Exists 用户是否存在
func (u *Users) Exists(ctx context.Context, id int64) (bool, error) {
	return u.Repo.IsExist(ctx, "id = ?", id)
}
