package model

// RestaurantReviewElement is the struct that will be sent to the client to
// display the reviews of a restaurant together with aggregate data
type RestaurantReviewElement struct {
	Reviews               []Review `json:"reviews"`
	AverageRatingTaste    float64  `json:"average_rating_taste"`
	AverageRatingAmbiance float64  `json:"average_rating_ambiance"`
	AverageRatingService  float64  `json:"average_rating_service"`
	AverageRatingOverall  float64  `json:"average_rating_overall"`
	NumReviews            int      `json:"num_reviews"`
}
