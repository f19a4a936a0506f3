package model

type Offer struct {
	OfferID         int    `gorm:"column:id_offer;primaryKey;autoIncrement" json:"offer_id"`
	RestaurantID    int    `gorm:"column:id_restaurant;type:integer;not null;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"restaurant_id"`
	Title           string `gorm:"column:title;type:varchar(100);not null" json:"title"`
	Description     string `gorm:"column:description;type:text" json:"description"`
	DiscountPercent int    `gorm:"column:discount_percent;type:integer;not null;default:0" json:"discount_percent"`
}

func (Offer) TableName() string {
	return "offer"
}
