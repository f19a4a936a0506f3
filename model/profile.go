package model

// Profile holds the user-editable fields layered on top of the external
// auth identity; exactly one per user.
type Profile struct {
	ProfileID   int    `gorm:"column:id_profile;primaryKey;autoIncrement" json:"-"`
	UserID      int    `gorm:"column:id_user;type:integer;not null;uniqueIndex;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Location    string `gorm:"column:location;type:text;not null" json:"location"`
	PhoneNumber string `gorm:"column:phone_number;type:varchar(15)" json:"phone_number"`
	ThingsLove  string `gorm:"column:things_love;type:text" json:"things_love"`
	Description string `gorm:"column:description;type:text" json:"description"`
}

func (Profile) TableName() string {
	return "profile"
}
