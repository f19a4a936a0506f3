package db

import (
	"dinefind-server/model"
	"errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"time"
)

// ErrCouponAlreadyUsed is returned when a redemption targets a coupon whose
// used_at is already set.
var ErrCouponAlreadyUsed = errors.New("coupon already used")

type CouponDAO struct {
	db *gorm.DB
}

func NewCouponDAO(db *gorm.DB) *CouponDAO {
	return &CouponDAO{db: db}
}

// GetUserCoupons returns the caller's coupons with the underlying offer
// resolved through coupon -> coupon_offer.
func (couponDAO *CouponDAO) GetUserCoupons(userID int) ([]model.UserCoupon, error) {
	var userCoupons []model.UserCoupon

	result := couponDAO.db.
		Where("id_user = ?", userID).
		Order("id_user_coupon desc").
		Find(&userCoupons)
	if result.Error != nil {
		return nil, result.Error
	}

	// inject coupon code and offer
	for i := range userCoupons {
		var coupon model.Coupon
		result = couponDAO.db.First(&coupon, userCoupons[i].CouponID)
		if result.Error != nil {
			return nil, result.Error
		}
		userCoupons[i].CouponCode = coupon.Code

		var offer model.Offer
		result = couponDAO.db.First(&offer, coupon.OfferID)
		if result.Error != nil {
			return nil, result.Error
		}
		userCoupons[i].Offer = offer
	}

	return userCoupons, nil
}

func (couponDAO *CouponDAO) GetUserOffers(userID int) ([]model.UserOffer, error) {
	var userOffers []model.UserOffer

	result := couponDAO.db.
		Where("id_user = ?", userID).
		Order("id_user_offer desc").
		Find(&userOffers)
	if result.Error != nil {
		return nil, result.Error
	}

	// inject offer
	for i := range userOffers {
		var offer model.Offer
		result = couponDAO.db.First(&offer, userOffers[i].OfferID)
		if result.Error != nil {
			return nil, result.Error
		}
		userOffers[i].Offer = offer
	}

	return userOffers, nil
}

// ClaimOffer saves the offer for the user and issues a coupon for it in one
// transaction. Claiming the same offer twice fails on the unique
// (id_user, id_offer) index.
func (couponDAO *CouponDAO) ClaimOffer(userID int, offerID int) (model.UserCoupon, error) {
	// create transaction
	transaction := couponDAO.db.Begin()
	if transaction.Error != nil {
		return model.UserCoupon{}, transaction.Error
	}

	userOffer := model.UserOffer{
		UserID:  userID,
		OfferID: offerID,
	}
	result := transaction.Create(&userOffer)
	if result.Error != nil {
		transaction.Rollback()
		return model.UserCoupon{}, result.Error
	}

	coupon := model.Coupon{
		OfferID: offerID,
		Code:    uuid.NewString(),
	}
	result = transaction.Create(&coupon)
	if result.Error != nil {
		transaction.Rollback()
		return model.UserCoupon{}, result.Error
	}

	userCoupon := model.UserCoupon{
		UserID:   userID,
		CouponID: coupon.CouponID,
	}
	result = transaction.Create(&userCoupon)
	if result.Error != nil {
		transaction.Rollback()
		return model.UserCoupon{}, result.Error
	}

	// commit
	result = transaction.Commit()
	if result.Error != nil {
		return model.UserCoupon{}, result.Error
	}

	userCoupon.CouponCode = coupon.Code
	return userCoupon, nil
}

// RedeemCoupon sets used_at with a conditional update: the row is only
// written if used_at is still null, so two concurrent redemptions cannot
// both succeed.
func (couponDAO *CouponDAO) RedeemCoupon(userID int, userCouponID int) (model.UserCoupon, error) {
	now := time.Now().UTC()

	result := couponDAO.db.
		Model(&model.UserCoupon{}).
		Where("id_user_coupon = ? AND id_user = ? AND used_at IS NULL", userCouponID, userID).
		Update("used_at", now)
	if result.Error != nil {
		return model.UserCoupon{}, result.Error
	}

	if result.RowsAffected == 0 {
		// nothing updated: either the coupon does not belong to the caller
		// or it was already redeemed
		var userCoupon model.UserCoupon
		result = couponDAO.db.
			Where("id_user_coupon = ? AND id_user = ?", userCouponID, userID).
			First(&userCoupon)
		if result.Error != nil {
			return model.UserCoupon{}, result.Error
		}
		return model.UserCoupon{}, ErrCouponAlreadyUsed
	}

	var userCoupon model.UserCoupon
	result = couponDAO.db.First(&userCoupon, userCouponID)
	if result.Error != nil {
		return model.UserCoupon{}, result.Error
	}

	return userCoupon, nil
}
