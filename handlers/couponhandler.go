package handlers

import (
	"dinefind-server/db"
	"encoding/json"
	"errors"
	"gorm.io/gorm"
	"log"
	"net/http"
	"strconv"
	"strings"
)

func HandleUserCoupons(w http.ResponseWriter, r *http.Request) {
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

	couponDAO := db.NewCouponDAO(db.GetDB())
	userCoupons, err := couponDAO.GetUserCoupons(user.UserID)
	if err != nil {
		log.Println("Error getting user coupons: ", err)
		http.Error(w, "Error getting user coupons", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(userCoupons)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}
}

func HandleUserOffers(w http.ResponseWriter, r *http.Request) {
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

	couponDAO := db.NewCouponDAO(db.GetDB())
	userOffers, err := couponDAO.GetUserOffers(user.UserID)
	if err != nil {
		log.Println("Error getting user offers: ", err)
		http.Error(w, "Error getting user offers", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(userOffers)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}
}

func HandleClaimOffer(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	// extract offer id from URI
	path := r.URL.Path
	parts := strings.Split(path, "/")
	if len(parts) < 5 || parts[3] == "" || parts[4] != "claim" {
		log.Println("Invalid path")
		http.Error(w, "Offer ID not provided", http.StatusBadRequest)
		return
	}
	offerID, err := strconv.Atoi(parts[3])
	if err != nil || offerID < 0 {
		log.Println("Invalid offer ID")
		http.Error(w, "Invalid offer ID", http.StatusBadRequest)
		return
	}

	user, err := getAuthenticatedUser(r)
	if err != nil {
		log.Println("Unauthorized: ", err)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	// check the offer exists
	restaurantDAO := db.NewRestaurantDAO(db.GetDB())
	_, err = restaurantDAO.GetOfferById(offerID)
	if err != nil {
		log.Println("Offer not found: ", err)
		http.Error(w, "Offer not found", http.StatusNotFound)
		return
	}

	couponDAO := db.NewCouponDAO(db.GetDB())
	userCoupon, err := couponDAO.ClaimOffer(user.UserID, offerID)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Println("Offer already claimed: ", err)
			http.Error(w, "You have already claimed this offer", http.StatusConflict)
			return
		}
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(userCoupon)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}
}

func HandleRedeemCoupon(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	// extract coupon id from URI
	path := r.URL.Path
	parts := strings.Split(path, "/")
	if len(parts) < 5 || parts[3] == "" || parts[4] != "redeem" {
		log.Println("Invalid path")
		http.Error(w, "Coupon ID not provided", http.StatusBadRequest)
		return
	}
	userCouponID, err := strconv.Atoi(parts[3])
	if err != nil || userCouponID < 0 {
		log.Println("Invalid coupon ID")
		http.Error(w, "Invalid coupon ID", http.StatusBadRequest)
		return
	}

	user, err := getAuthenticatedUser(r)
	if err != nil {
		log.Println("Unauthorized: ", err)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	couponDAO := db.NewCouponDAO(db.GetDB())
	userCoupon, err := couponDAO.RedeemCoupon(user.UserID, userCouponID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("Coupon not found: ", err)
			http.Error(w, "Coupon not found", http.StatusNotFound)
			return
		}
		if errors.Is(err, db.ErrCouponAlreadyUsed) {
			log.Println("Coupon already used: ", err)
			http.Error(w, "Coupon already used", http.StatusConflict)
			return
		}
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(userCoupon)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}
}
