package db

import (
	"dinefind-server/model"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"
)

func newTestReview(userID int, restaurantID int, offerID int, overall int) model.Review {
	return model.Review{
		UserID:         &userID,
		RestaurantID:   restaurantID,
		OfferID:        offerID,
		Comment:        "decent place",
		RatingTaste:    4,
		RatingAmbiance: 5,
		RatingService:  3,
		RatingOverall:  overall,
	}
}

func TestCreateReviewUniquePerUserAndRestaurant(t *testing.T) {
	testDB := setupTestDB(t)
	reviewDAO := NewReviewDAO(testDB)

	userA := createTestUser(t, testDB, "alice")
	userB := createTestUser(t, testDB, "bob")
	restaurant := createTestRestaurant(t, testDB, "Trattoria Uno")
	offer1 := createTestOffer(t, testDB, restaurant.RestaurantID, "lunch deal")
	offer2 := createTestOffer(t, testDB, restaurant.RestaurantID, "dinner deal")

	review := newTestReview(userA.UserID, restaurant.RestaurantID, offer1.OfferID, 4)
	if err := reviewDAO.CreateReview(&review); err != nil {
		t.Fatalf("first review should succeed: %v", err)
	}
	if review.ReviewID == 0 {
		t.Fatal("expected server-assigned id")
	}
	if review.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be set")
	}

	// second review for the same restaurant by the same user must be
	// rejected, regardless of offer
	duplicate := newTestReview(userA.UserID, restaurant.RestaurantID, offer2.OfferID, 5)
	err := reviewDAO.CreateReview(&duplicate)
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected duplicated key error, got %v", err)
	}

	// a different user may review the same restaurant
	other := newTestReview(userB.UserID, restaurant.RestaurantID, offer1.OfferID, 3)
	if err := reviewDAO.CreateReview(&other); err != nil {
		t.Fatalf("other user's review should succeed: %v", err)
	}
}

func TestGetTopReviewsOrdering(t *testing.T) {
	testDB := setupTestDB(t)
	reviewDAO := NewReviewDAO(testDB)

	restaurant := createTestRestaurant(t, testDB, "Trattoria Due")
	offer := createTestOffer(t, testDB, restaurant.RestaurantID, "lunch deal")

	overalls := []int{2, 5, 5, 1}
	for i, overall := range overalls {
		user := createTestUser(t, testDB, "user"+string(rune('a'+i)))
		review := newTestReview(user.UserID, restaurant.RestaurantID, offer.OfferID, overall)
		if err := reviewDAO.CreateReview(&review); err != nil {
			t.Fatalf("failed to create review: %v", err)
		}
	}

	reviews, err := reviewDAO.GetTopReviews()
	if err != nil {
		t.Fatalf("failed to get top reviews: %v", err)
	}
	if len(reviews) != 4 {
		t.Fatalf("expected 4 reviews, got %d", len(reviews))
	}

	gotOveralls := []int{}
	for _, review := range reviews {
		gotOveralls = append(gotOveralls, review.RatingOverall)
	}
	wantOveralls := []int{5, 5, 2, 1}
	for i := range wantOveralls {
		if gotOveralls[i] != wantOveralls[i] {
			t.Fatalf("wrong ordering: got %v, want %v", gotOveralls, wantOveralls)
		}
	}

	// deterministic tie-break among the two 5s: the newer review first
	if reviews[0].ReviewID < reviews[1].ReviewID {
		t.Fatalf("tie-break not deterministic: got ids %d, %d", reviews[0].ReviewID, reviews[1].ReviewID)
	}
}

func TestLikeUnlikeReview(t *testing.T) {
	testDB := setupTestDB(t)
	reviewDAO := NewReviewDAO(testDB)

	author := createTestUser(t, testDB, "author")
	liker := createTestUser(t, testDB, "liker")
	restaurant := createTestRestaurant(t, testDB, "Trattoria Tre")
	offer := createTestOffer(t, testDB, restaurant.RestaurantID, "lunch deal")

	review := newTestReview(author.UserID, restaurant.RestaurantID, offer.OfferID, 4)
	if err := reviewDAO.CreateReview(&review); err != nil {
		t.Fatalf("failed to create review: %v", err)
	}

	if err := reviewDAO.LikeReview(liker.UserID, review.ReviewID); err != nil {
		t.Fatalf("first like should succeed: %v", err)
	}

	// a second like from the same user is a conflict, not an upsert
	err := reviewDAO.LikeReview(liker.UserID, review.ReviewID)
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected duplicated key error, got %v", err)
	}

	if err := reviewDAO.UnlikeReview(liker.UserID, review.ReviewID); err != nil {
		t.Fatalf("unlike should succeed: %v", err)
	}

	// unliking a review that is no longer liked fails
	err = reviewDAO.UnlikeReview(liker.UserID, review.ReviewID)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record not found, got %v", err)
	}
}

func TestLikedAndCommentedProjections(t *testing.T) {
	testDB := setupTestDB(t)
	reviewDAO := NewReviewDAO(testDB)

	author := createTestUser(t, testDB, "author")
	reader := createTestUser(t, testDB, "reader")
	restaurant := createTestRestaurant(t, testDB, "Trattoria Quattro")
	offer := createTestOffer(t, testDB, restaurant.RestaurantID, "lunch deal")

	review := newTestReview(author.UserID, restaurant.RestaurantID, offer.OfferID, 4)
	if err := reviewDAO.CreateReview(&review); err != nil {
		t.Fatalf("failed to create review: %v", err)
	}

	if err := reviewDAO.LikeReview(reader.UserID, review.ReviewID); err != nil {
		t.Fatalf("failed to like review: %v", err)
	}
	comment := model.ReviewComment{
		UserID:   reader.UserID,
		ReviewID: review.ReviewID,
		Body:     "agreed",
	}
	if err := reviewDAO.CreateComment(&comment); err != nil {
		t.Fatalf("failed to comment review: %v", err)
	}

	liked, err := reviewDAO.GetLikedReviews(reader.UserID)
	if err != nil {
		t.Fatalf("failed to get liked reviews: %v", err)
	}
	if len(liked) != 1 || liked[0].ReviewID != review.ReviewID {
		t.Fatalf("wrong liked reviews: %+v", liked)
	}

	commented, err := reviewDAO.GetCommentedReviews(reader.UserID)
	if err != nil {
		t.Fatalf("failed to get commented reviews: %v", err)
	}
	if len(commented) != 1 || commented[0].ReviewID != review.ReviewID {
		t.Fatalf("wrong commented reviews: %+v", commented)
	}

	// the author's own projections stay empty
	liked, err = reviewDAO.GetLikedReviews(author.UserID)
	if err != nil {
		t.Fatalf("failed to get liked reviews: %v", err)
	}
	if len(liked) != 0 {
		t.Fatalf("expected no liked reviews, got %d", len(liked))
	}
}

func TestRestaurantReviewElementAverages(t *testing.T) {
	testDB := setupTestDB(t)
	reviewDAO := NewReviewDAO(testDB)

	restaurant := createTestRestaurant(t, testDB, "Trattoria Cinque")
	offer := createTestOffer(t, testDB, restaurant.RestaurantID, "lunch deal")

	userA := createTestUser(t, testDB, "alice")
	userB := createTestUser(t, testDB, "bob")

	reviewA := newTestReview(userA.UserID, restaurant.RestaurantID, offer.OfferID, 4)
	if err := reviewDAO.CreateReview(&reviewA); err != nil {
		t.Fatalf("failed to create review: %v", err)
	}
	reviewB := newTestReview(userB.UserID, restaurant.RestaurantID, offer.OfferID, 2)
	if err := reviewDAO.CreateReview(&reviewB); err != nil {
		t.Fatalf("failed to create review: %v", err)
	}

	element, err := reviewDAO.GetRestaurantReviewElement(restaurant.RestaurantID)
	if err != nil {
		t.Fatalf("failed to get restaurant review element: %v", err)
	}
	if element.NumReviews != 2 {
		t.Fatalf("expected 2 reviews, got %d", element.NumReviews)
	}
	if element.AverageRatingOverall != 3.0 {
		t.Fatalf("expected overall average 3.0, got %v", element.AverageRatingOverall)
	}
	if element.Reviews[0].RestaurantName != restaurant.Name {
		t.Fatalf("expected injected restaurant name, got %q", element.Reviews[0].RestaurantName)
	}
}

func TestCreateReviewAssignsTimestamps(t *testing.T) {
	testDB := setupTestDB(t)
	reviewDAO := NewReviewDAO(testDB)

	restaurant := createTestRestaurant(t, testDB, "Osteria Sei")
	offer := createTestOffer(t, testDB, restaurant.RestaurantID, "dinner deal")
	user := createTestUser(t, testDB, "dave")

	// client-supplied timestamps must not survive the insert
	bogus := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	review := newTestReview(user.UserID, restaurant.RestaurantID, offer.OfferID, 4)
	review.CreatedAt = bogus
	review.UpdatedAt = bogus

	if err := reviewDAO.CreateReview(&review); err != nil {
		t.Fatalf("failed to create review: %v", err)
	}
	if review.CreatedAt.Equal(bogus) || review.CreatedAt.IsZero() {
		t.Fatalf("expected server-assigned created_at, got %v", review.CreatedAt)
	}
	if review.UpdatedAt.Equal(bogus) || review.UpdatedAt.IsZero() {
		t.Fatalf("expected server-assigned updated_at, got %v", review.UpdatedAt)
	}

	stored, err := reviewDAO.GetReviewById(review.ReviewID)
	if err != nil {
		t.Fatalf("failed to reload review: %v", err)
	}
	if stored.CreatedAt.Year() == 2000 {
		t.Fatalf("bogus created_at persisted: %v", stored.CreatedAt)
	}
}
