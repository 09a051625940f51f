package models

import "time"

type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	Email     string    `gorm:"size:200;not null" json:"email"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Relayed   bool      `gorm:"default:false" json:"relayed"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
