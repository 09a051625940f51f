package utils

import (
	"tripverse/config"
	"tripverse/models"
)

func SeedDummyPackages() {
	packages := []models.Package{
		{
			Name:           "Munnar Hills Escape",
			Description:    "Three days in the tea country with guided plantation walks.",
			Destination:    "Munnar",
			Days:           3,
			Nights:         2,
			Accommodation:  "Hillview Resort",
			Transportation: "AC Coach",
			Meals:          "Breakfast & Dinner",
			Activities:     "Plantation walk, Eravikulam safari",
			Price:          5500,
			DiscountPrice:  4800,
			Offer:          true,
		},
		{
			Name:           "Alleppey Backwaters",
			Description:    "Overnight houseboat cruise through the backwaters.",
			Destination:    "Alleppey",
			Days:           2,
			Nights:         1,
			Accommodation:  "Premium Houseboat",
			Transportation: "Pickup Van",
			Meals:          "All meals onboard",
			Activities:     "Houseboat cruise, village walk",
			Price:          7200,
		},
		{
			Name:           "Wayanad Wild Trails",
			Description:    "Trekking and caves across the Wayanad plateau.",
			Destination:    "Wayanad",
			Days:           4,
			Nights:         3,
			Accommodation:  "Forest Camp",
			Transportation: "4x4 Jeep",
			Meals:          "Breakfast",
			Activities:     "Chembra trek, Edakkal caves",
			Price:          6100,
		},
	}

	for _, p := range packages {
		p.SetImages([]string{"https://images.tripverse.dev/" + p.Destination + ".jpg"})
		var existing models.Package
		if err := config.DB.Where("name = ?", p.Name).First(&existing).Error; err != nil {
			config.DB.Create(&p)
		}
	}
}
