package model

// UserOffer records an offer a user has saved; it carries no redemption
// state of its own.
type UserOffer struct {
	UserOfferID int   `gorm:"column:id_user_offer;primaryKey;autoIncrement" json:"user_offer_id"`
	UserID      int   `gorm:"column:id_user;type:integer;not null;uniqueIndex:uq_user_offer;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	OfferID     int   `gorm:"column:id_offer;type:integer;not null;uniqueIndex:uq_user_offer;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"offer_id"`
	Offer       Offer `gorm:"-" json:"offer"`
}

func (UserOffer) TableName() string {
	return "user_offer"
}
