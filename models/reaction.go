package models

import "time"

type ReactionStatus string

const (
	ReactionLike    ReactionStatus = "LIKE"
	ReactionDislike ReactionStatus = "DISLIKE"
	ReactionSeen    ReactionStatus = "SEEN"
)

func (s ReactionStatus) Valid() bool {
	switch s {
	case ReactionLike, ReactionDislike, ReactionSeen:
		return true
	}
	return false
}

// Reaction 用户对剧目的最新表态
// 对应表 reactions
// 唯一键: user_id + work_id，新的决定覆盖旧状态，不追加也不删除
type Reaction struct {
	ID        uint64         `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	UserID    int64          `gorm:"column:user_id;not null;uniqueIndex:uk_user_work,priority:1" json:"user_id"`
	WorkID    int64          `gorm:"column:work_id;not null;uniqueIndex:uk_user_work,priority:2" json:"work_id"`
	Status    ReactionStatus `gorm:"column:status;type:varchar(16);not null" json:"status"`
	CreatedAt time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at" json:"updated_at"`

	Work *Work `gorm:"foreignKey:WorkID" json:"work,omitempty"`
}

func (Reaction) TableName() string { return "reactions" }
