package handlers

import (
	"dinefind-server/db"
	"dinefind-server/externals"
	"dinefind-server/model"
	"encoding/json"
	"errors"
	"gorm.io/gorm"
	"log"
	"net/http"
	"strconv"
	"strings"
)

func HandleTopReviews(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		getTopReviews(w, r)
	} else {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}
}

func getTopReviews(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	// no authentication needed

	reviewDAO := db.NewReviewDAO(db.GetDB())
	reviews, err := reviewDAO.GetTopReviews()
	if err != nil {
		log.Println("Error getting top reviews: ", err)
		http.Error(w, "Error getting top reviews", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(reviews)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}
}

func HandleUserReviews(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	user, err := getAuthenticatedUser(r)
	if err != nil {
		log.Println("Unauthorized: ", err)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	reviewDAO := db.NewReviewDAO(db.GetDB())
	reviews, err := reviewDAO.GetReviewsByUser(user.UserID)
	if err != nil {
		log.Println("Error getting user reviews: ", err)
		http.Error(w, "Error getting user reviews", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(reviews)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}
}

func HandleLikedReviews(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	user, err := getAuthenticatedUser(r)
	if err != nil {
		log.Println("Unauthorized: ", err)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	reviewDAO := db.NewReviewDAO(db.GetDB())
	reviews, err := reviewDAO.GetLikedReviews(user.UserID)
	if err != nil {
		log.Println("Error getting liked reviews: ", err)
		http.Error(w, "Error getting liked reviews", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(reviews)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}
}

func HandleCommentedReviews(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	user, err := getAuthenticatedUser(r)
	if err != nil {
		log.Println("Unauthorized: ", err)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	reviewDAO := db.NewReviewDAO(db.GetDB())
	reviews, err := reviewDAO.GetCommentedReviews(user.UserID)
	if err != nil {
		log.Println("Error getting commented reviews: ", err)
		http.Error(w, "Error getting commented reviews", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(reviews)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}
}

func HandleReviews(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "POST":
		createReview(w, r)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}
}

func createReview(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

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

	createReviewForUser(w, user, review, review.RestaurantID)
}

// createReviewForUser is the shared creation path: both the body-scoped and
// the restaurant-path-scoped entry points enforce the same invariants.
func createReviewForUser(w http.ResponseWriter, user model.User, review model.Review, restaurantID int) {
	// resolve restaurant and offer before validating the rest
	restaurantDAO := db.NewRestaurantDAO(db.GetDB())
	restaurant, err := restaurantDAO.GetRestaurantById(restaurantID)
	if err != nil {
		log.Println("Restaurant not found: ", err)
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}
	offer, err := restaurantDAO.GetOfferById(review.OfferID)
	if err != nil {
		log.Println("Offer not found: ", err)
		http.Error(w, "Offer not found", http.StatusNotFound)
		return
	}

	// check review data
	message, ok := validateRatings(review)
	if !ok {
		log.Println(message)
		http.Error(w, message, http.StatusBadRequest)
		return
	}

	// the author is always the authenticated caller
	userID := user.UserID
	review.UserID = &userID
	review.RestaurantID = restaurant.RestaurantID
	review.OfferID = offer.OfferID
	review.Image = ""

	// insert review in db, the unique (user, restaurant) index rejects a
	// second review for the same restaurant
	reviewDAO := db.NewReviewDAO(db.GetDB())
	err = reviewDAO.CreateReview(&review)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Println("Duplicate review: ", err)
			http.Error(w, "You have already reviewed this restaurant", http.StatusConflict)
			return
		}
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// send review in response
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(review)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}
}

func validateRatings(review model.Review) (string, bool) {
	if review.RatingTaste < 1 || review.RatingTaste > 5 {
		return "Invalid taste rating value", false
	}
	if review.RatingAmbiance < 1 || review.RatingAmbiance > 5 {
		return "Invalid ambiance rating value", false
	}
	if review.RatingService < 1 || review.RatingService > 5 {
		return "Invalid service rating value", false
	}
	if review.RatingOverall < 1 || review.RatingOverall > 5 {
		return "Invalid overall rating value", false
	}
	return "", true
}

func HandleReviewImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	user, err := getAuthenticatedUser(r)
	if err != nil {
		log.Println("Unauthorized: ", err)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	// decode json data
	var request struct {
		ReviewID int    `json:"review_id"`
		Image    string `json:"image"`
	}
	err = json.NewDecoder(r.Body).Decode(&request)
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

	if request.Image == "" {
		log.Println("Missing image payload")
		http.Error(w, "Missing image payload", http.StatusBadRequest)
		return
	}

	// get review
	reviewDAO := db.NewReviewDAO(db.GetDB())
	review, err := reviewDAO.GetReviewById(request.ReviewID)
	if err != nil {
		log.Println("Review not found: ", err)
		http.Error(w, "Review not found", http.StatusNotFound)
		return
	}

	// only the author may attach an image
	if !canModifyReview(user, review) {
		log.Println("Forbidden")
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	// upload to the blob store, keep the returned URL
	imageUrl, err := externals.UploadImage("review_"+strconv.Itoa(review.ReviewID), request.Image)
	if err != nil {
		log.Println("Error uploading image: ", err)
		http.Error(w, "Error uploading image", http.StatusInternalServerError)
		return
	}

	review.Image = imageUrl
	err = reviewDAO.UpdateReview(&review)
	if err != nil {
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(review)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}
}

func HandleModifyReviews(w http.ResponseWriter, r *http.Request) {
	// extract review id from URI
	path := r.URL.Path
	parts := strings.Split(path, "/")
	if len(parts) < 3 || parts[2] == "" {
		log.Println("Invalid path")
		http.Error(w, "Review ID not provided", http.StatusBadRequest)
		return
	}
	reviewID, err := strconv.Atoi(parts[2])
	if err != nil || reviewID < 0 {
		log.Println("Invalid review ID")
		http.Error(w, "Invalid review ID", http.StatusBadRequest)
		return
	}

	if len(parts) >= 4 && parts[3] == "like" {
		switch r.Method {
		case "POST":
			likeReview(w, r, reviewID)
		case "DELETE":
			unlikeReview(w, r, reviewID)
		default:
			log.Println("Method not supported")
			http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		}
		return
	}

	if len(parts) >= 4 && parts[3] == "comments" {
		if r.Method == "POST" {
			commentReview(w, r, reviewID)
		} else {
			log.Println("Method not supported")
			http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		}
		return
	}

	switch r.Method {
	case "GET":
		getReview(w, r, reviewID)
	case "POST":
		modifyReview(w, r, reviewID)
	case "DELETE":
		deleteReview(w, r, reviewID)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}
}

func getReview(w http.ResponseWriter, r *http.Request, reviewID int) {
	// read is unrestricted

	reviewDAO := db.NewReviewDAO(db.GetDB())
	review, err := reviewDAO.GetReviewById(reviewID)
	if err != nil {
		log.Println("Review not found: ", err)
		http.Error(w, "Review not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(review)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}
}

func modifyReview(w http.ResponseWriter, r *http.Request, reviewID int) {
	user, err := getAuthenticatedUser(r)
	if err != nil {
		log.Println("Unauthorized: ", err)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	// get review
	reviewDAO := db.NewReviewDAO(db.GetDB())
	review, err := reviewDAO.GetReviewById(reviewID)
	if err != nil {
		log.Println("Review not found: ", err)
		http.Error(w, "Review not found", http.StatusNotFound)
		return
	}

	// permission check before any mutation
	if !canModifyReview(user, review) {
		log.Println("Forbidden")
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	// get the updated fields from the body
	var updated model.Review
	err = json.NewDecoder(r.Body).Decode(&updated)
	if err != nil {
		log.Println("Error while decoding JSON: ", err)
		http.Error(w, "Wrong data provided", http.StatusBadRequest)
		return
	}
	defer func() {
		err = r.Body.Close()
		if err != nil {
			log.Println("Error closing request body:", err)
		}
	}()

	// check review data
	message, ok := validateRatings(updated)
	if !ok {
		log.Println(message)
		http.Error(w, message, http.StatusBadRequest)
		return
	}

	// author, restaurant and offer references are immutable
	review.Comment = updated.Comment
	review.RatingTaste = updated.RatingTaste
	review.RatingAmbiance = updated.RatingAmbiance
	review.RatingService = updated.RatingService
	review.RatingOverall = updated.RatingOverall

	// update review in db
	err = reviewDAO.UpdateReview(&review)
	if err != nil {
		log.Println("Error while interacting with db: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// send review in response
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(review)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}
}

func deleteReview(w http.ResponseWriter, r *http.Request, reviewID int) {
	user, err := getAuthenticatedUser(r)
	if err != nil {
		log.Println("Unauthorized: ", err)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	// get review
	reviewDAO := db.NewReviewDAO(db.GetDB())
	review, err := reviewDAO.GetReviewById(reviewID)
	if err != nil {
		log.Println("Review not found: ", err)
		http.Error(w, "Review not found", http.StatusNotFound)
		return
	}

	// permission check before any mutation
	if !canModifyReview(user, review) {
		log.Println("Forbidden")
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	// delete review
	err = reviewDAO.DeleteReview(reviewID)
	if err != nil {
		log.Println("Error while interacting with the db: ", err)
		http.Error(w, "Error while deleting review", http.StatusInternalServerError)
		return
	}

	// plain confirmation, not the deleted entity
	w.WriteHeader(http.StatusOK)
	_, err = w.Write([]byte("Deleted"))
	if err != nil {
		log.Println("Error writing response: ", err)
	}
}

func likeReview(w http.ResponseWriter, r *http.Request, reviewID int) {
	user, err := getAuthenticatedUser(r)
	if err != nil {
		log.Println("Unauthorized: ", err)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	// check the review exists
	reviewDAO := db.NewReviewDAO(db.GetDB())
	_, err = reviewDAO.GetReviewById(reviewID)
	if err != nil {
		log.Println("Review not found: ", err)
		http.Error(w, "Review not found", http.StatusNotFound)
		return
	}

	err = reviewDAO.LikeReview(user.UserID, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Println("Duplicate like: ", err)
			http.Error(w, "You have already liked this review", http.StatusConflict)
			return
		}
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	_, err = w.Write([]byte("Review liked!"))
	if err != nil {
		log.Println("Error writing response: ", err)
	}
}

func unlikeReview(w http.ResponseWriter, r *http.Request, reviewID int) {
	user, err := getAuthenticatedUser(r)
	if err != nil {
		log.Println("Unauthorized: ", err)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	reviewDAO := db.NewReviewDAO(db.GetDB())
	err = reviewDAO.UnlikeReview(user.UserID, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("Like not found: ", err)
			http.Error(w, "Like not found", http.StatusNotFound)
			return
		}
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	_, err = w.Write([]byte("Review unliked!"))
	if err != nil {
		log.Println("Error writing response: ", err)
	}
}

func commentReview(w http.ResponseWriter, r *http.Request, reviewID int) {
	user, err := getAuthenticatedUser(r)
	if err != nil {
		log.Println("Unauthorized: ", err)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	// check the review exists
	reviewDAO := db.NewReviewDAO(db.GetDB())
	_, err = reviewDAO.GetReviewById(reviewID)
	if err != nil {
		log.Println("Review not found: ", err)
		http.Error(w, "Review not found", http.StatusNotFound)
		return
	}

	// decode json data
	var request struct {
		Body string `json:"body"`
	}
	err = json.NewDecoder(r.Body).Decode(&request)
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

	if request.Body == "" {
		log.Println("Missing comment body")
		http.Error(w, "Missing comment body", http.StatusBadRequest)
		return
	}

	comment := model.ReviewComment{
		UserID:   user.UserID,
		ReviewID: reviewID,
		Body:     request.Body,
	}
	err = reviewDAO.CreateComment(&comment)
	if err != nil {
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(comment)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}
}
