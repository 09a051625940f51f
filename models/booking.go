package models

import "time"

const (
	BookingStatusBooked    = "Booked"
	BookingStatusCancelled = "Cancelled"
)

type Booking struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	UserID    uint    `gorm:"index;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user_id"`
	User      User    `gorm:"foreignKey:UserID" json:"user"`
	PackageID uint    `gorm:"index;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"package_id"`
	Package   Package `gorm:"foreignKey:PackageID" json:"package"`

	Date    time.Time `gorm:"not null;index" json:"date"`
	Persons int       `gorm:"not null" json:"persons"`

	// UnitPrice is the package price (discounted when the offer was active)
	// captured at booking time. TotalPrice = UnitPrice * Persons. Neither is
	// ever recomputed from the package, even after admin price edits.
	UnitPrice  float64 `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	TotalPrice float64 `gorm:"type:decimal(10,2);not null" json:"total_price"`

	Status    string    `gorm:"type:varchar(20);default:'Booked';index" json:"status"`
	Payment   *Payment  `gorm:"foreignKey:BookingID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"payment,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// IsPast reports whether the travel date has lapsed relative to now.
// Expiry is derived, never stored.
func (b *Booking) IsPast(now time.Time) bool {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return b.Date.Before(today)
}
