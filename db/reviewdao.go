package db

import (
	"dinefind-server/internals"
	"dinefind-server/model"
	"errors"
	"gorm.io/gorm"
	"time"
)

type ReviewDAO struct {
	db *gorm.DB
}

func NewReviewDAO(db *gorm.DB) *ReviewDAO {
	return &ReviewDAO{db: db}
}

func (reviewDAO *ReviewDAO) GetReviewById(reviewID int) (model.Review, error) {
	var review model.Review

	// get review
	result := reviewDAO.db.First(&review, reviewID)
	if result.Error != nil {
		return model.Review{}, result.Error
	}

	// inject data
	err := injectReviewData(&review)
	if err != nil {
		return model.Review{}, err
	}

	return review, nil
}

// GetTopReviews returns every review ordered by overall rating; creation
// time and id break ties so the order is deterministic.
func (reviewDAO *ReviewDAO) GetTopReviews() ([]model.Review, error) {
	var reviews []model.Review

	result := reviewDAO.db.
		Order("rating_overall desc, created_at desc, id_review desc").
		Find(&reviews)
	if result.Error != nil {
		return nil, result.Error
	}

	// inject data
	for i := range reviews {
		err := injectReviewData(&reviews[i])
		if err != nil {
			return nil, err
		}
	}

	return reviews, nil
}

func (reviewDAO *ReviewDAO) GetReviewsByRestaurant(restaurantID int) ([]model.Review, error) {
	var reviews []model.Review

	result := reviewDAO.db.
		Where("id_restaurant = ?", restaurantID).
		Order("created_at desc, id_review desc").
		Find(&reviews)
	if result.Error != nil {
		return nil, result.Error
	}

	// inject data
	for i := range reviews {
		err := injectReviewData(&reviews[i])
		if err != nil {
			return nil, err
		}
	}

	return reviews, nil
}

// GetRestaurantReviewElement bundles a restaurant's reviews with the
// per-dimension rating averages shown on the restaurant page.
func (reviewDAO *ReviewDAO) GetRestaurantReviewElement(restaurantID int) (model.RestaurantReviewElement, error) {
	reviews, err := reviewDAO.GetReviewsByRestaurant(restaurantID)
	if err != nil {
		return model.RestaurantReviewElement{}, err
	}

	averages := internals.ComputeRatingAverages(reviews)

	restaurantReviewElement := model.RestaurantReviewElement{
		Reviews:               reviews,
		AverageRatingTaste:    averages.Taste,
		AverageRatingAmbiance: averages.Ambiance,
		AverageRatingService:  averages.Service,
		AverageRatingOverall:  averages.Overall,
		NumReviews:            len(reviews),
	}

	return restaurantReviewElement, nil
}

func (reviewDAO *ReviewDAO) GetReviewsByUser(userID int) ([]model.Review, error) {
	var reviews []model.Review

	result := reviewDAO.db.
		Where("id_user = ?", userID).
		Order("created_at desc, id_review desc").
		Find(&reviews)
	if result.Error != nil {
		return nil, result.Error
	}

	for i := range reviews {
		err := injectReviewData(&reviews[i])
		if err != nil {
			return nil, err
		}
	}

	return reviews, nil
}

func (reviewDAO *ReviewDAO) GetLikedReviews(userID int) ([]model.Review, error) {
	var reviews []model.Review

	result := reviewDAO.db.
		Joins("JOIN review_like ON review_like.id_review = review.id_review").
		Where("review_like.id_user = ?", userID).
		Order("review.created_at desc, review.id_review desc").
		Find(&reviews)
	if result.Error != nil {
		return nil, result.Error
	}

	for i := range reviews {
		err := injectReviewData(&reviews[i])
		if err != nil {
			return nil, err
		}
	}

	return reviews, nil
}

func (reviewDAO *ReviewDAO) GetCommentedReviews(userID int) ([]model.Review, error) {
	var reviews []model.Review

	result := reviewDAO.db.
		Distinct("review.*").
		Joins("JOIN review_comment ON review_comment.id_review = review.id_review").
		Where("review_comment.id_user = ?", userID).
		Order("review.created_at desc, review.id_review desc").
		Find(&reviews)
	if result.Error != nil {
		return nil, result.Error
	}

	for i := range reviews {
		err := injectReviewData(&reviews[i])
		if err != nil {
			return nil, err
		}
	}

	return reviews, nil
}

// CreateReview relies on the unique (id_user, id_restaurant) index: a second
// review for the same restaurant by the same user comes back as
// gorm.ErrDuplicatedKey, even under concurrent submissions.
func (reviewDAO *ReviewDAO) CreateReview(review *model.Review) error {
	// timestamps are server-assigned, autoCreateTime only fills zero values
	review.CreatedAt = time.Time{}
	review.UpdatedAt = time.Time{}

	// takes a pointer, in order to update the param struct
	result := reviewDAO.db.Create(review)
	if result.Error != nil {
		return result.Error
	}

	return injectReviewData(review)
}

func (reviewDAO *ReviewDAO) UpdateReview(review *model.Review) error {
	result := reviewDAO.db.Save(review)
	if result.Error != nil {
		return result.Error
	}

	return injectReviewData(review)
}

func (reviewDAO *ReviewDAO) DeleteReview(reviewID int) error {
	result := reviewDAO.db.Delete(&model.Review{}, reviewID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// LikeReview returns gorm.ErrDuplicatedKey when this user already likes the
// review, enforced by the unique (id_user, id_review) index.
func (reviewDAO *ReviewDAO) LikeReview(userID int, reviewID int) error {
	reviewLike := model.ReviewLike{
		UserID:   userID,
		ReviewID: reviewID,
	}

	result := reviewDAO.db.Create(&reviewLike)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

func (reviewDAO *ReviewDAO) UnlikeReview(userID int, reviewID int) error {
	result := reviewDAO.db.
		Where("id_user = ? AND id_review = ?", userID, reviewID).
		Delete(&model.ReviewLike{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (reviewDAO *ReviewDAO) CreateComment(comment *model.ReviewComment) error {
	result := reviewDAO.db.Create(comment)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

func injectReviewData(review *model.Review) error {
	if review == nil {
		return errors.New("review is nil")
	}

	// get author, may have been deleted
	if review.UserID != nil {
		userDAO := NewUserDAO(GetDB())
		user, err := userDAO.GetUserById(*review.UserID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		} else {
			review.Username = user.Username
			review.FirstName = user.FirstName
			review.LastName = user.LastName
		}
	}
	if review.Username == "" {
		review.Username = "unknown"
	}

	// get restaurant
	restaurantDAO := NewRestaurantDAO(GetDB())
	restaurant, err := restaurantDAO.GetRestaurantById(review.RestaurantID)
	if err != nil {
		return err
	}
	review.RestaurantName = restaurant.Name

	// get offer
	offer, err := restaurantDAO.GetOfferById(review.OfferID)
	if err != nil {
		return err
	}
	review.OfferTitle = offer.Title

	return nil
}
