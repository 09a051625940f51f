package models

import (
	"time"

	"gorm.io/gorm"
)

type Package struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	Name           string  `gorm:"size:200;not null" json:"name"`
	Description    string  `gorm:"type:text" json:"description"`
	Destination    string  `gorm:"size:200;not null;index" json:"destination"`
	Days           int     `json:"days"`
	Nights         int     `json:"nights"`
	Accommodation  string  `gorm:"size:200" json:"accommodation"`
	Transportation string  `gorm:"size:200" json:"transportation"`
	Meals          string  `gorm:"size:200" json:"meals"`
	Activities     string  `gorm:"type:text" json:"activities"`
	Price          float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	DiscountPrice  float64 `gorm:"type:decimal(10,2);default:0.0" json:"discount_price"`
	Offer          bool    `gorm:"default:false" json:"offer"`
	Images         string  `gorm:"type:text" json:"-"` // pipe-separated URLs

	// Denormalized rating summary, owned by the rating flow. Never edited
	// directly; overwritten inside the same transaction as each rating insert.
	Rating       float64 `gorm:"default:0" json:"rating"`
	TotalRatings int     `gorm:"default:0" json:"total_ratings"`

	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	ImageURLs []string `gorm:"-" json:"images"`
}

const imageSeparator = "|"

func (p *Package) SetImages(urls []string) {
	p.Images = joinNonEmpty(urls, imageSeparator)
	p.ImageURLs = urls
}

func (p *Package) AfterFind(tx *gorm.DB) error {
	p.ImageURLs = splitNonEmpty(p.Images, imageSeparator)
	return nil
}
