package model

// Coupon is an issued instance of an offer, identified by a unique code.
type Coupon struct {
	CouponID int    `gorm:"column:id_coupon;primaryKey;autoIncrement" json:"coupon_id"`
	OfferID  int    `gorm:"column:id_coupon_offer;type:integer;not null;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"offer_id"`
	Code     string `gorm:"column:code;type:varchar(36);not null;uniqueIndex" json:"code"`
}

func (Coupon) TableName() string {
	return "coupon"
}
