package models

import "time"

type User struct {
	ID           int64     `gorm:"column:id;primary_key" json:"id"`
	Email        string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uk_email" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string { return "users" }
