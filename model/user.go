package model

type User struct {
	UserID      int     `gorm:"column:id_user;primaryKey;autoIncrement" json:"id"`
	Username    string  `gorm:"column:username;type:text;not null;uniqueIndex" json:"username"`
	Email       string  `gorm:"column:email;type:text;not null;uniqueIndex" json:"email"`
	FirstName   string  `gorm:"column:first_name;type:text" json:"first_name"`
	LastName    string  `gorm:"column:last_name;type:text" json:"last_name"`
	FirebaseUID string  `gorm:"column:firebase_uid;type:text;not null;uniqueIndex" json:"-"`
	IsAdmin     bool    `gorm:"column:is_admin;not null;default:false" json:"-"`
	Profile     Profile `gorm:"-" json:"profile"`
}

func (User) TableName() string {
	return "user"
}
