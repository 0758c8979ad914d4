package dao

import (
	"Encore/models"
	"context"

	"gorm.io/gorm"
)

type FriendshipDAO struct {
	Repo[models.Friendship]
}

func NewFriendshipDAO(db *gorm.DB) *FriendshipDAO {
	return &FriendshipDAO{Repo: NewRepo[models.Friendship](db)}
}

// IsFriend 两个用户之间是否存在好友边
func (d *FriendshipDAO) IsFriend(ctx context.Context, userID, friendID int64) (bool, error) {
	return d.IsExist(ctx, "user_id = ? AND friend_id = ?", userID, friendID)
}

// CreateEdge 建立双向好友关系
// 两个方向在同一事务里写入，保证 (A,B) 与 (B,A) 同生同灭；重复建边是幂等的
func (d *FriendshipDAO) CreateEdge(ctx context.Context, userID, friendID int64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		forward := models.Friendship{UserID: userID, FriendID: friendID}
		if err := tx.Where("user_id = ? AND friend_id = ?", userID, friendID).
			FirstOrCreate(&forward).Error; err != nil {
			return err
		}
		backward := models.Friendship{UserID: friendID, FriendID: userID}
		return tx.Where("user_id = ? AND friend_id = ?", friendID, userID).
			FirstOrCreate(&backward).Error
	})
}

// ListByUser 查询用户的好友列表
func (d *FriendshipDAO) ListByUser(ctx context.Context, userID int64) ([]*models.Friendship, error) {
	var items []*models.Friendship
	err := d.Db.WithContext(ctx).
		Preload("Friend").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}
