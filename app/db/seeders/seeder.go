package seeders

import (
	"github.com/artesania/artesania-api/app/db/fakers"
	"gorm.io/gorm"
)

const (
	artistCount       = 3
	productsPerArtist = 4
)

// DBSeed populates the database with demo artists and their products.
func DBSeed(db *gorm.DB) error {
	for i := 0; i < artistCount; i++ {
		artist := fakers.ArtistFaker()
		if err := db.Create(artist).Error; err != nil {
			return err
		}

		for j := 0; j < productsPerArtist; j++ {
			product := fakers.ProductFaker(artist)
			if err := db.Create(product).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
