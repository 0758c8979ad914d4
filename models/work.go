package models

import (
	"time"

	"gorm.io/datatypes"
)

// Work 剧目/演出条目，由采集任务写入，服务端只读
// source_url 是幂等入库的自然键
type Work struct {
	ID        int64          `gorm:"column:id;primary_key" json:"id"`
	Title     string         `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Category  *string        `gorm:"column:category;type:varchar(50)" json:"category"`
	Venue     *string        `gorm:"column:venue;type:varchar(200)" json:"venue"`
	StartDate *time.Time     `gorm:"column:start_date" json:"start_date"`
	EndDate   *time.Time     `gorm:"column:end_date" json:"end_date"`
	PriceMin  *float64       `gorm:"column:price_min" json:"price_min"`
	PriceMax  *float64       `gorm:"column:price_max" json:"price_max"`
	ImageURL  *string        `gorm:"column:image_url;type:varchar(500)" json:"image_url"`
	SourceURL string         `gorm:"column:source_url;type:varchar(500);not null;uniqueIndex:uk_source_url" json:"source_url"`
	Raw       datatypes.JSON `gorm:"column:raw" json:"-"`
	CreatedAt time.Time      `gorm:"column:created_at;index:idx_created_at" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (Work) TableName() string { return "works" }
