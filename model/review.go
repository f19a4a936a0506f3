package model

import "time"

// Review is authored by one user for one restaurant, optionally tied to an
// offer. The (id_user, id_restaurant) pair is unique: a user cannot review
// the same restaurant twice, regardless of offer. The author reference is
// nullable so reviews survive the deletion of their author.
type Review struct {
	ReviewID       int       `gorm:"column:id_review;primaryKey;autoIncrement" json:"review_id"`
	UserID         *int      `gorm:"column:id_user;type:integer;uniqueIndex:uq_review_user_restaurant;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"user_id"`
	RestaurantID   int       `gorm:"column:id_restaurant;type:integer;not null;uniqueIndex:uq_review_user_restaurant;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"restaurant_id"`
	OfferID        int       `gorm:"column:id_offer;type:integer;not null;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"offer_id"`
	Comment        string    `gorm:"column:comment;type:text" json:"comment"`
	RatingTaste    int       `gorm:"column:rating_taste;type:integer;not null" json:"rating_taste"`
	RatingAmbiance int       `gorm:"column:rating_ambiance;type:integer;not null" json:"rating_ambiance"`
	RatingService  int       `gorm:"column:rating_service;type:integer;not null" json:"rating_service"`
	RatingOverall  int       `gorm:"column:rating_overall;type:integer;not null" json:"rating_overall"`
	Image          string    `gorm:"column:image;type:text" json:"image"`
	CreatedAt      time.Time `gorm:"column:created_at;type:timestamptz;not null;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;type:timestamptz;not null;autoUpdateTime" json:"updated_at"`
	Username       string    `gorm:"-" json:"username"`
	FirstName      string    `gorm:"-" json:"first_name"`
	LastName       string    `gorm:"-" json:"last_name"`
	RestaurantName string    `gorm:"-" json:"restaurant_name"`
	OfferTitle     string    `gorm:"-" json:"offer_title"`
}

func (Review) TableName() string {
	return "review"
}
