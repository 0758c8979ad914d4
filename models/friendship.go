package models

import "time"

// Friendship 好友关系，双向各存一行
// 不变式: (A,B) 存在则 (B,A) 必须存在，建边时在同一事务里写两行
type Friendship struct {
	ID        uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:uk_user_friend,priority:1" json:"user_id"`
	FriendID  int64     `gorm:"column:friend_id;not null;uniqueIndex:uk_user_friend,priority:2" json:"friend_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`

	Friend *User `gorm:"foreignKey:FriendID" json:"friend,omitempty"`
}

func (Friendship) TableName() string { return "friendships" }
