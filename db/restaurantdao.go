package db

import (
	"dinefind-server/model"
	"errors"
	"gorm.io/gorm"
)

type RestaurantDAO struct {
	db *gorm.DB
}

func NewRestaurantDAO(db *gorm.DB) *RestaurantDAO {
	return &RestaurantDAO{db: db}
}

func (restaurantDAO *RestaurantDAO) GetRestaurantById(restaurantID int) (model.Restaurant, error) {
	var restaurant model.Restaurant

	result := restaurantDAO.db.First(&restaurant, restaurantID)
	if result.Error != nil {
		return model.Restaurant{}, result.Error
	}

	// inject category name, reference survives category deletion
	if restaurant.CategoryID != nil {
		var category model.Category
		result = restaurantDAO.db.First(&category, *restaurant.CategoryID)
		if result.Error != nil {
			if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return model.Restaurant{}, result.Error
			}
		} else {
			restaurant.CategoryName = category.Name
		}
	}

	return restaurant, nil
}

func (restaurantDAO *RestaurantDAO) GetRestaurantWithOffers(restaurantID int) (model.Restaurant, error) {
	restaurant, err := restaurantDAO.GetRestaurantById(restaurantID)
	if err != nil {
		return model.Restaurant{}, err
	}

	var offers []model.Offer
	result := restaurantDAO.db.Where("id_restaurant = ?", restaurantID).Find(&offers)
	if result.Error != nil {
		return model.Restaurant{}, result.Error
	}
	restaurant.Offers = offers

	return restaurant, nil
}

func (restaurantDAO *RestaurantDAO) GetAllRestaurants(featuredOnly bool) ([]model.Restaurant, error) {
	var restaurants []model.Restaurant

	query := restaurantDAO.db.Order("name asc, id_restaurant asc")
	if featuredOnly {
		query = query.Where("is_featured = ?", true)
	}

	result := query.Find(&restaurants)
	if result.Error != nil {
		return nil, result.Error
	}

	return restaurants, nil
}

func (restaurantDAO *RestaurantDAO) GetOfferById(offerID int) (model.Offer, error) {
	var offer model.Offer

	result := restaurantDAO.db.First(&offer, offerID)
	if result.Error != nil {
		return model.Offer{}, result.Error
	}

	return offer, nil
}
