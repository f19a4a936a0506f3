package model

// ReviewLike is the (user, review) like relation; the pair is unique, so a
// second like from the same user is rejected by the database.
type ReviewLike struct {
	ReviewLikeID int `gorm:"column:id_review_like;primaryKey;autoIncrement" json:"review_like_id"`
	UserID       int `gorm:"column:id_user;type:integer;not null;uniqueIndex:uq_review_like;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"user_id"`
	ReviewID     int `gorm:"column:id_review;type:integer;not null;uniqueIndex:uq_review_like;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"review_id"`
}

func (ReviewLike) TableName() string {
	return "review_like"
}
