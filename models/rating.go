package models

import "time"

type Rating struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	PackageID uint    `gorm:"index;not null" json:"package_id"`
	UserID    uint    `gorm:"index;not null" json:"user_id"`
	User      User    `gorm:"foreignKey:UserID" json:"user"`
	Value     float64 `gorm:"not null" json:"rating"`
	Review    string  `gorm:"type:text" json:"review"`
	Images    string  `gorm:"type:text" json:"images"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}
