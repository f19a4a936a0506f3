package db

import (
	"dinefind-server/model"
	"gorm.io/gorm"
)

type TagDAO struct {
	db *gorm.DB
}

func NewTagDAO(db *gorm.DB) *TagDAO {
	return &TagDAO{db: db}
}

// SearchTags matches tag names containing the query as a substring,
// case-sensitive. An empty query matches nothing.
func (tagDAO *TagDAO) SearchTags(query string) ([]model.Tag, error) {
	if query == "" {
		return []model.Tag{}, nil
	}

	var tags []model.Tag
	result := tagDAO.db.
		Where("name LIKE ?", "%"+query+"%").
		Order("name asc, id_tag asc").
		Find(&tags)
	if result.Error != nil {
		return nil, result.Error
	}

	return tags, nil
}
