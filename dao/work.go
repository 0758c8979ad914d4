package dao

import (
	"Encore/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type WorkDAO struct {
	Repo[models.Work]
}

func NewWorkDAO(db *gorm.DB) *WorkDAO {
	return &WorkDAO{Repo: NewRepo[models.Work](db)}
}

func (d *WorkDAO) visible(ctx context.Context, since *time.Time, excludeIDs []int64) *gorm.DB {
	q := d.Db.WithContext(ctx).Model(&models.Work{})
	if since != nil {
		q = q.Where("created_at >= ?", *since)
	}
	if len(excludeIDs) > 0 {
		q = q.Where("id NOT IN ?", excludeIDs)
	}
	return q
}

// ListRecent 最新在前的剧目列表，排除指定 ID
func (d *WorkDAO) ListRecent(ctx context.Context, since *time.Time, excludeIDs []int64, limit int) ([]*models.Work, error) {
	var works []*models.Work
	err := d.visible(ctx, since, excludeIDs).
		Order("created_at DESC").
		Limit(limit).
		Find(&works).Error
	return works, err
}

// CountVisible 可见剧目总数
func (d *WorkDAO) CountVisible(ctx context.Context, since *time.Time, excludeIDs []int64) (int64, error) {
	var count int64
	err := d.visible(ctx, since, excludeIDs).Count(&count).Error
	return count, err
}

// Exists 剧目是否存在
func (d *WorkDAO) Exists(ctx context.Context, id int64) (bool, error) {
	return d.IsExist(ctx, "id = ?", id)
}

// FindByIDs 根据 ID 列表查询剧目
func (d *WorkDAO) FindByIDs(ctx context.Context, ids []int64) ([]*models.Work, error) {
	if len(ids) == 0 {
		return []*models.Work{}, nil
	}
	var works []*models.Work
	err := d.Db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&works).Error
	return works, err
}

// UpsertBySourceURL 以 source_url 为自然键幂等入库
// 采集任务专用，优先更新已有记录，不存在则插入
func (d *WorkDAO) UpsertBySourceURL(ctx context.Context, w *models.Work) error {
	now := time.Now()

	res := d.Db.WithContext(ctx).
		Model(&models.Work{}).
		Where("source_url = ?", w.SourceURL).
		Updates(map[string]any{
			"title":      w.Title,
			"category":   w.Category,
			"venue":      w.Venue,
			"start_date": w.StartDate,
			"end_date":   w.EndDate,
			"price_min":  w.PriceMin,
			"price_max":  w.PriceMax,
			"image_url":  w.ImageURL,
			"raw":        w.Raw,
			"updated_at": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	w.CreatedAt = now
	w.UpdatedAt = now
	return d.Db.WithContext(ctx).Create(w).Error
}
