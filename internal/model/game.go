package model

import (
	"time"
)

type Game struct {
	ID        uint64    `gorm:"primaryKey"`
	Slug      string    `gorm:"size:128;uniqueIndex;not null"`
	Title     string    `gorm:"size:255"`
	Category  string    `gorm:"size:64;index"`
	Filter    string    `gorm:"size:16;index"` // hot / new / 空
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Game) TableName() string {
	return "games"
}
