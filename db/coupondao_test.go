package db

import (
	"errors"
	"testing"

	"gorm.io/gorm"
)

func TestClaimOfferIssuesCoupon(t *testing.T) {
	testDB := setupTestDB(t)
	couponDAO := NewCouponDAO(testDB)

	user := createTestUser(t, testDB, "claimer")
	restaurant := createTestRestaurant(t, testDB, "Trattoria Sei")
	offer := createTestOffer(t, testDB, restaurant.RestaurantID, "happy hour")

	userCoupon, err := couponDAO.ClaimOffer(user.UserID, offer.OfferID)
	if err != nil {
		t.Fatalf("claim should succeed: %v", err)
	}
	if userCoupon.CouponCode == "" {
		t.Fatal("expected a coupon code")
	}
	if userCoupon.UsedAt != nil {
		t.Fatal("a fresh coupon must not be redeemed")
	}

	// claiming the same offer twice is a conflict
	_, err = couponDAO.ClaimOffer(user.UserID, offer.OfferID)
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected duplicated key error, got %v", err)
	}

	// projections expose the resolved offer
	userCoupons, err := couponDAO.GetUserCoupons(user.UserID)
	if err != nil {
		t.Fatalf("failed to get user coupons: %v", err)
	}
	if len(userCoupons) != 1 || userCoupons[0].Offer.Title != offer.Title {
		t.Fatalf("wrong user coupons: %+v", userCoupons)
	}

	userOffers, err := couponDAO.GetUserOffers(user.UserID)
	if err != nil {
		t.Fatalf("failed to get user offers: %v", err)
	}
	if len(userOffers) != 1 || userOffers[0].Offer.OfferID != offer.OfferID {
		t.Fatalf("wrong user offers: %+v", userOffers)
	}
}

func TestRedeemCouponExactlyOnce(t *testing.T) {
	testDB := setupTestDB(t)
	couponDAO := NewCouponDAO(testDB)

	user := createTestUser(t, testDB, "redeemer")
	other := createTestUser(t, testDB, "bystander")
	restaurant := createTestRestaurant(t, testDB, "Trattoria Sette")
	offer := createTestOffer(t, testDB, restaurant.RestaurantID, "happy hour")

	userCoupon, err := couponDAO.ClaimOffer(user.UserID, offer.OfferID)
	if err != nil {
		t.Fatalf("claim should succeed: %v", err)
	}

	redeemed, err := couponDAO.RedeemCoupon(user.UserID, userCoupon.UserCouponID)
	if err != nil {
		t.Fatalf("first redemption should succeed: %v", err)
	}
	if redeemed.UsedAt == nil {
		t.Fatal("expected used_at to be set")
	}

	// a second redemption must fail, used_at is immutable once set
	_, err = couponDAO.RedeemCoupon(user.UserID, userCoupon.UserCouponID)
	if !errors.Is(err, ErrCouponAlreadyUsed) {
		t.Fatalf("expected coupon already used, got %v", err)
	}

	// another user cannot redeem someone else's coupon
	_, err = couponDAO.RedeemCoupon(other.UserID, userCoupon.UserCouponID)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record not found, got %v", err)
	}
}
