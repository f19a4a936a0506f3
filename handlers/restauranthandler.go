package handlers

import (
	"dinefind-server/db"
	"dinefind-server/model"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
)

func HandleRestaurants(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	featuredOnly := r.URL.Query().Get("featured") == "true"

	restaurantDAO := db.NewRestaurantDAO(db.GetDB())
	restaurants, err := restaurantDAO.GetAllRestaurants(featuredOnly)
	if err != nil {
		log.Println("Error getting restaurants: ", err)
		http.Error(w, "Error getting restaurants", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(restaurants)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}
}

func HandleRestaurantRoutes(w http.ResponseWriter, r *http.Request) {
	// extract restaurant id from URI
	path := r.URL.Path
	parts := strings.Split(path, "/")
	if len(parts) < 3 || parts[2] == "" {
		log.Println("Invalid path")
		http.Error(w, "Restaurant ID not provided", http.StatusBadRequest)
		return
	}
	restaurantID, err := strconv.Atoi(parts[2])
	if err != nil || restaurantID < 0 {
		log.Println("Invalid restaurant ID")
		http.Error(w, "Invalid restaurant ID", http.StatusBadRequest)
		return
	}

	if len(parts) >= 5 && parts[3] == "reviews" && parts[4] == "new" {
		if r.Method == "POST" {
			createRestaurantReview(w, r, restaurantID)
		} else {
			log.Println("Method not supported")
			http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		}
		return
	}

	if len(parts) >= 4 && parts[3] == "reviews" {
		if r.Method == "GET" {
			getRestaurantReviews(w, r, restaurantID)
		} else {
			log.Println("Method not supported")
			http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		}
		return
	}

	if r.Method == "GET" {
		getRestaurant(w, r, restaurantID)
	} else {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
	}
}

func getRestaurant(w http.ResponseWriter, r *http.Request, restaurantID int) {
	restaurantDAO := db.NewRestaurantDAO(db.GetDB())
	restaurant, err := restaurantDAO.GetRestaurantWithOffers(restaurantID)
	if err != nil {
		log.Println("Restaurant not found: ", err)
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(restaurant)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}
}

func getRestaurantReviews(w http.ResponseWriter, r *http.Request, restaurantID int) {
	// check the restaurant exists
	restaurantDAO := db.NewRestaurantDAO(db.GetDB())
	_, err := restaurantDAO.GetRestaurantById(restaurantID)
	if err != nil {
		log.Println("Restaurant not found: ", err)
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}

	reviewDAO := db.NewReviewDAO(db.GetDB())
	restaurantReviewElement, err := reviewDAO.GetRestaurantReviewElement(restaurantID)
	if err != nil {
		log.Println("Error getting restaurant review element: ", err)
		http.Error(w, "Error getting restaurant review element", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(restaurantReviewElement)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}
}

// createRestaurantReview is the path-scoped creation entry point: the
// restaurant comes from the URL, not from the body.
func createRestaurantReview(w http.ResponseWriter, r *http.Request, restaurantID int) {
	user, err := getAuthenticatedUser(r)
	if err != nil {
		log.Println("Unauthorized: ", err)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	// decode json data
	var review model.Review
	err = json.NewDecoder(r.Body).Decode(&review)
	if err != nil {
		log.Println("Error decoding JSON: ", err)
		http.Error(w, "Invalid data format", http.StatusBadRequest)
		return
	}
	defer func() {
		err = r.Body.Close()
		if err != nil {
			log.Println("Error closing request body:", err)
		}
	}()

	createReviewForUser(w, user, review, restaurantID)
}
