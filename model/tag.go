package model

type Tag struct {
	TagID int    `gorm:"column:id_tag;primaryKey;autoIncrement" json:"tag_id"`
	Name  string `gorm:"column:name;type:varchar(50);not null" json:"name"`
}

func (Tag) TableName() string {
	return "tag"
}
