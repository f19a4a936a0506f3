package db

import (
	"fmt"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"log"
	"os"
)

var db *gorm.DB
var testMode string

func InitDB(testModeArg string) (*gorm.DB, error) {
	// save testMode
	testMode = testModeArg

	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}

	user := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")

	var dsn string
	if testMode == "real" {
		dsn = "host=localhost user=" + user + " password=" + password + " dbname=dinefind_db port=5432 sslmode=disable"
	} else if testMode == "test" {
		dsn = "host=localhost user=" + user + " password=" + password + " dbname=dinefind_db_test port=5432 sslmode=disable"
	} else {
		log.Fatal("Invalid test mode")
	}

	// TranslateError makes unique constraint violations surface as
	// gorm.ErrDuplicatedKey, so duplicate reviews and likes are rejected
	// by the database, not by a read-then-write check
	db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})

	if err != nil {
		// can't connect to the db, the server should stop
		log.Fatalf("Failed to connect to database: %v", err)
		return nil, err
	}

	return db, nil
}

func GetDB() *gorm.DB {
	return db
}

func CloseDBConnection() {
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("Failed closing connection: ", err)
	}
	err = sqlDB.Close()
	if err != nil {
		log.Fatal("Failed closing connection: ", err)
	}
}

func ResetTestDatabase() error {
	// check correct test mode
	if testMode != "test" {
		return fmt.Errorf("wrong test mode")
	}

	// "user" because it is a reserved word in PostgreSQL
	// don't delete restaurants, categories, offers and tags, loaded by the
	// restaurant-management flows
	err := db.Exec(`TRUNCATE TABLE review, review_like, review_comment, coupon, user_coupon, user_offer, profile, "user" CASCADE;`)

	if err.Error != nil {
		return err.Error
	}

	return nil
}
