package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Username     string         `gorm:"not null" json:"username"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	Password     string         `gorm:"not null" json:"-"` // bcrypt hash
	Address      string         `gorm:"size:300" json:"address"`
	Phone        string         `gorm:"size:20" json:"phone"`
	Avatar       string         `json:"avatar"`
	Role         string         `gorm:"type:varchar(50);default:user;not null" json:"role"`
	Blocked      bool           `gorm:"default:false" json:"blocked"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
	Bookings     []Booking      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"bookings,omitempty"`
	Ratings      []Rating       `gorm:"foreignKey:UserID" json:"ratings,omitempty"`
	BookingCount int64          `gorm:"-" json:"booking_count,omitempty"`
}
