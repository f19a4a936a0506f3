package model

import "time"

// UserCoupon links a coupon to its holder. UsedAt stays null until the
// coupon is redeemed and is never written again afterwards.
type UserCoupon struct {
	UserCouponID int        `gorm:"column:id_user_coupon;primaryKey;autoIncrement" json:"user_coupon_id"`
	UserID       int        `gorm:"column:id_user;type:integer;not null;uniqueIndex:uq_user_coupon;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	CouponID     int        `gorm:"column:id_coupon;type:integer;not null;uniqueIndex:uq_user_coupon;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"coupon_id"`
	UsedAt       *time.Time `gorm:"column:used_at;type:timestamptz" json:"used_at"`
	CouponCode   string     `gorm:"-" json:"coupon_code"`
	Offer        Offer      `gorm:"-" json:"offer"`
}

func (UserCoupon) TableName() string {
	return "user_coupon"
}
