package model

import "time"

type ReviewComment struct {
	ReviewCommentID int       `gorm:"column:id_review_comment;primaryKey;autoIncrement" json:"review_comment_id"`
	UserID          int       `gorm:"column:id_user;type:integer;not null;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"user_id"`
	ReviewID        int       `gorm:"column:id_review;type:integer;not null;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"review_id"`
	Body            string    `gorm:"column:body;type:text;not null" json:"body"`
	CreatedAt       time.Time `gorm:"column:created_at;type:timestamptz;not null;autoCreateTime" json:"created_at"`
}

func (ReviewComment) TableName() string {
	return "review_comment"
}
