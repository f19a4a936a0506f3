package model

import "time"

const (
	PriceLevelLow    = "LOW"
	PriceLevelMedium = "MEDIUM"
	PriceLevelHigh   = "HIGH"
)

// Restaurant is read-heavy: the core only queries it, mutations happen
// through restaurant-management flows.
type Restaurant struct {
	RestaurantID int       `gorm:"column:id_restaurant;primaryKey;autoIncrement" json:"restaurant_id"`
	Name         string    `gorm:"column:name;type:varchar(50);not null" json:"name"`
	Website      string    `gorm:"column:website;type:text" json:"website"`
	PhoneNumber  string    `gorm:"column:phone_number;type:varchar(15)" json:"phone_number"`
	Email        string    `gorm:"column:email;type:text" json:"email"`
	OpeningHours string    `gorm:"column:opening_hours;type:varchar(50)" json:"opening_hours"`
	PriceLevel   string    `gorm:"column:price_level;type:varchar(6);not null" json:"price_level"`
	CategoryID   *int      `gorm:"column:id_category;type:integer;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"category_id"`
	Country      string    `gorm:"column:country;type:varchar(2)" json:"country"`
	City         string    `gorm:"column:city;type:varchar(50)" json:"city"`
	Address      string    `gorm:"column:address;type:varchar(256)" json:"address"`
	ZipCode      string    `gorm:"column:zip_code;type:varchar(10)" json:"zip_code"`
	Lat          *float64  `gorm:"column:lat" json:"lat"`
	Long         *float64  `gorm:"column:long" json:"long"`
	Image        string    `gorm:"column:image;type:text" json:"image"`
	LogoImage    string    `gorm:"column:logo_image;type:text" json:"logo_image"`
	CoverImage   string    `gorm:"column:cover_image;type:text" json:"cover_image"`
	MenuImage    string    `gorm:"column:menu_image;type:text" json:"menu_image"`
	IsFeatured   bool      `gorm:"column:is_featured;not null;default:false" json:"is_featured"`
	Created      time.Time `gorm:"column:created;type:timestamptz;not null;autoCreateTime" json:"created"`
	Modified     time.Time `gorm:"column:modified;type:timestamptz;not null;autoUpdateTime" json:"modified"`
	CategoryName string    `gorm:"-" json:"category_name"`
	Offers       []Offer   `gorm:"-" json:"offers,omitempty"`
}

func (Restaurant) TableName() string {
	return "restaurant"
}
