package dao

import (
	"Encore/models"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReactionDAO struct {
	Repo[models.Reaction]
}

func NewReactionDAO(db *gorm.DB) *ReactionDAO {
	return &ReactionDAO{Repo: NewRepo[models.Reaction](db)}
}

// Upsert 写入用户对剧目的表态，存在则覆盖状态
// 单条 ON CONFLICT 语句，同一 (user_id, work_id) 的并发写由唯一键串行化，后写覆盖
func (d *ReactionDAO) Upsert(ctx context.Context, userID, workID int64, status models.ReactionStatus) (*models.Reaction, error) {
	now := time.Now()
	item := models.Reaction{
		UserID:    userID,
		WorkID:    workID,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := d.Db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "work_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"status":     status,
			"updated_at": now,
		}),
	}).Create(&item).Error
	// upsert 路径正常不会撞唯一键，撞了说明该对已有表态，按已存在处理
	if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, err
	}
	return d.GetByUserWork(ctx, userID, workID)
}

// GetByUserWork 查询指定用户对指定剧目的表态记录
func (d *ReactionDAO) GetByUserWork(ctx context.Context, userID, workID int64) (*models.Reaction, error) {
	var item models.Reaction
	err := d.Db.WithContext(ctx).Where("user_id = ? AND work_id = ?", userID, workID).Limit(1).Find(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

// ListByUser 查询用户的表态列表，按最近更新倒序，可按状态过滤
func (d *ReactionDAO) ListByUser(ctx context.Context, userID int64, status *models.ReactionStatus) ([]*models.Reaction, error) {
	q := d.Db.WithContext(ctx).
		Preload("Work").
		Where("user_id = ?", userID)
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	var items []*models.Reaction
	err := q.Order("updated_at DESC").Find(&items).Error
	return items, err
}

// ListReactedWorkIDs 查询用户表态过的全部剧目 ID，任意状态都算
func (d *ReactionDAO) ListReactedWorkIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := d.Db.WithContext(ctx).
		Model(&models.Reaction{}).
		Where("user_id = ?", userID).
		Pluck("work_id", &ids).Error
	return ids, err
}
