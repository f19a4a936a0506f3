package db

import (
	"dinefind-server/model"
	"os"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	testDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	err = testDB.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.Category{},
		&model.Restaurant{},
		&model.Offer{},
		&model.Coupon{},
		&model.UserCoupon{},
		&model.UserOffer{},
		&model.Review{},
		&model.ReviewLike{},
		&model.ReviewComment{},
		&model.Tag{},
	)
	if err != nil {
		t.Fatalf("migration failed: %v", err)
	}

	// point the package connection at the test database, the DAOs resolve
	// injected display data through it
	db = testDB

	result := testDB.Exec(`TRUNCATE TABLE review, review_like, review_comment, coupon, user_coupon, user_offer, profile, "user", offer, restaurant, category, tag RESTART IDENTITY CASCADE;`)
	if result.Error != nil {
		t.Fatalf("failed to truncate tables: %v", result.Error)
	}

	return testDB
}

func createTestUser(t *testing.T, testDB *gorm.DB, username string) model.User {
	user := model.User{
		Username:    username,
		Email:       username + "@example.com",
		FirstName:   "Test",
		LastName:    "User",
		FirebaseUID: "firebase-" + username,
	}
	if err := testDB.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func createTestRestaurant(t *testing.T, testDB *gorm.DB, name string) model.Restaurant {
	restaurant := model.Restaurant{
		Name:       name,
		PriceLevel: model.PriceLevelMedium,
		City:       "Zurich",
	}
	if err := testDB.Create(&restaurant).Error; err != nil {
		t.Fatalf("failed to create restaurant: %v", err)
	}
	return restaurant
}

func createTestOffer(t *testing.T, testDB *gorm.DB, restaurantID int, title string) model.Offer {
	offer := model.Offer{
		RestaurantID:    restaurantID,
		Title:           title,
		DiscountPercent: 10,
	}
	if err := testDB.Create(&offer).Error; err != nil {
		t.Fatalf("failed to create offer: %v", err)
	}
	return offer
}
