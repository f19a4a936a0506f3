package model

type Category struct {
	CategoryID int    `gorm:"column:id_category;primaryKey;autoIncrement" json:"category_id"`
	Name       string `gorm:"column:name;type:varchar(50);not null" json:"name"`
}

func (Category) TableName() string {
	return "category"
}
