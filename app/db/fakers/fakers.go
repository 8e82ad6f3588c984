package fakers

import (
	"math/rand"

	"github.com/artesania/artesania-api/app/models"
	"github.com/go-faker/faker/v4"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

var categories = []models.Category{
	models.CategoryHomeDecoration,
	models.CategorySculptures,
}

func ArtistFaker() *models.User {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)

	return &models.User{
		FirstName: faker.FirstName(),
		LastName:  faker.LastName(),
		Email:     faker.Email(),
		Password:  string(hashed),
		Role:      models.RoleArtist,
		IsActive:  true,
	}
}

func ProductFaker(artist *models.User) *models.Product {
	return &models.Product{
		ArtistID: artist.ID,
		Name:     faker.Word(),
		Category: categories[rand.Intn(len(categories))],
		Details:  faker.Sentence(),
		Amount:   rand.Intn(20) + 1,
		Price:    decimal.NewFromInt(int64(rand.Intn(490) + 10)),
		Discount: decimal.NewFromInt(int64(rand.Intn(30))),
	}
}
