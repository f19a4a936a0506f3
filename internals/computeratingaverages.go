package internals

import "dinefind-server/model"

type RatingAverages struct {
	Taste    float64
	Ambiance float64
	Service  float64
	Overall  float64
}

// ComputeRatingAverages computes the per-dimension rating averages over a
// set of reviews; all averages are zero when the set is empty.
func ComputeRatingAverages(reviews []model.Review) RatingAverages {
	if len(reviews) == 0 {
		return RatingAverages{}
	}

	sumTaste := 0
	sumAmbiance := 0
	sumService := 0
	sumOverall := 0
	for _, review := range reviews {
		sumTaste += review.RatingTaste
		sumAmbiance += review.RatingAmbiance
		sumService += review.RatingService
		sumOverall += review.RatingOverall
	}

	numReviews := float64(len(reviews))

	return RatingAverages{
		Taste:    float64(sumTaste) / numReviews,
		Ambiance: float64(sumAmbiance) / numReviews,
		Service:  float64(sumService) / numReviews,
		Overall:  float64(sumOverall) / numReviews,
	}
}
