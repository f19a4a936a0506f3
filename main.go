package main

import (
	"dinefind-server/db"
	"dinefind-server/externals"
	"dinefind-server/mockservers"
	"flag"
	"github.com/joho/godotenv"
	"log"
	"os"
)

func main() {
	// retrieve execution mode
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
	testMode := os.Getenv("TEST_MODE")

	// get port from flag
	port := flag.String("port", "80", "Port on which the server listens")
	flag.Parse()

	// init db
	database, err := db.InitDB(testMode)
	if err != nil || database == nil {
		log.Fatalf("Error initializing database: %v", err)
	}
	defer func() {
		sqlDB, err := database.DB()
		if err != nil {
			log.Println("Failed to get DB from gorm: ", err)
			return
		}
		err = sqlDB.Close()
		if err != nil {
			return
		}
	}()

	// init apis
	externals.InitImageStoreApi()

	// start mock image store in a new go routine
	go mockservers.StartImageStoreServer()

	// initialize firebase
	externals.InitializeFirebase(testMode)

	// setup routes and serve
	server := SetupServer(*port)
	err = server.ListenAndServe()
	if err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
