package main

import (
	"dinefind-server/handlers"
	"net/http"
)

func SetupServer(port string) *http.Server {
	mux := http.NewServeMux()

	// setup routes
	mux.HandleFunc("/reviews/top", handlers.HandleTopReviews)
	mux.HandleFunc("/reviews/search-tags", handlers.HandleSearchTags)
	mux.HandleFunc("/reviews/user", handlers.HandleUserReviews)
	mux.HandleFunc("/reviews/liked", handlers.HandleLikedReviews)
	mux.HandleFunc("/reviews/commented", handlers.HandleCommentedReviews)
	mux.HandleFunc("/reviews/image", handlers.HandleReviewImage)
	mux.HandleFunc("/reviews", handlers.HandleReviews)
	mux.HandleFunc("/reviews/", handlers.HandleModifyReviews)

	mux.HandleFunc("/restaurants", handlers.HandleRestaurants)
	mux.HandleFunc("/restaurants/", handlers.HandleRestaurantRoutes)

	mux.HandleFunc("/users", handlers.HandleUsers)

	mux.HandleFunc("/me", handlers.HandleMe)
	mux.HandleFunc("/me/profile", handlers.HandleProfile)
	mux.HandleFunc("/me/coupons", handlers.HandleUserCoupons)
	mux.HandleFunc("/me/coupons/", handlers.HandleRedeemCoupon)
	mux.HandleFunc("/me/offers", handlers.HandleUserOffers)
	mux.HandleFunc("/me/offers/", handlers.HandleClaimOffer)

	mux.HandleFunc("/resetTestDatabase", handlers.HandleResetTestDatabase)

	server := &http.Server{
		Addr:    ":" + port,
		Handler: mux,
	}

	return server
}
