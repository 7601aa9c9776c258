package model

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastLogin    *time.Time
	Email        string `gorm:"unique"`
	PasswordHash string
	ReferralCode string `gorm:"unique"`
	ID           uint   `gorm:"primarykey"`
	BonusBalance int
}

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusSucceeded OrderStatus = "succeeded"
	OrderStatusFailed    OrderStatus = "failed"
)

// Terminal reports whether the status permits no further transition.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusSucceeded || s == OrderStatusFailed
}

type Order struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	ID        string `gorm:"primarykey;size:35"`
	Email     string `gorm:"index"`
	Module    string
	PromoCode *string
	Status    OrderStatus `gorm:"default:pending;index"`
	AmountRUB int
	Bonuses   int
}

type PromoCode struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	UsedAt    *time.Time
	UsedBy    *string
	Code      string `gorm:"unique"`
	User      User
	ID        uint `gorm:"primarykey"`
	UserID    uint `gorm:"index"`
}

type UserModule struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	Module    string `gorm:"uniqueIndex:idx_user_module"`
	User      User
	ID        uint `gorm:"primarykey"`
	UserID    uint `gorm:"uniqueIndex:idx_user_module"`
}

type Content struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
	Module    string         `gorm:"unique"`
	Title     string
	VideoURL  string
	VideoType string `gorm:"default:vimeo"`
	ID        uint   `gorm:"primarykey"`
	Price     int    `gorm:"default:3000"`
}
