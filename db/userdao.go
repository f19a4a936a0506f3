package db

import (
	"dinefind-server/model"
	"errors"
	"gorm.io/gorm"
)

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{db: db}
}

func (userDAO *UserDAO) GetUserById(id int) (model.User, error) {
	var user model.User
	result := userDAO.db.First(&user, id)
	if result.Error != nil {
		return model.User{}, result.Error
	}

	// inject profile, kept in its own table
	err := userDAO.injectProfile(&user)
	if err != nil {
		return model.User{}, err
	}

	return user, nil
}

func (userDAO *UserDAO) GetUserByFirebaseUID(firebaseUID string) (model.User, error) {
	var user model.User
	result := userDAO.db.Where("firebase_uid = ?", firebaseUID).First(&user)
	if result.Error != nil {
		return model.User{}, result.Error
	}

	// inject profile, kept in its own table
	err := userDAO.injectProfile(&user)
	if err != nil {
		return model.User{}, err
	}

	return user, nil
}

// GetUserByEmail returns nil without error when no user holds the email.
func (userDAO *UserDAO) GetUserByEmail(email string) (*model.User, error) {
	var user model.User
	result := userDAO.db.Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return &user, nil
}

// GetUserByUsername returns nil without error when no user holds the username.
func (userDAO *UserDAO) GetUserByUsername(username string) (*model.User, error) {
	var user model.User
	result := userDAO.db.Where("username = ?", username).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return &user, nil
}

func (userDAO *UserDAO) injectProfile(user *model.User) error {
	if user == nil {
		return errors.New("user is nil")
	}

	var profile model.Profile
	result := userDAO.db.Where("id_user = ?", user.UserID).First(&profile)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			// user created before filling the profile
			return nil
		}
		return result.Error
	}

	user.Profile = profile
	return nil
}

// UpdateUserAndProfile writes the user row and its profile row in a single
// transaction, so a partial profile update never half-applies.
func (userDAO *UserDAO) UpdateUserAndProfile(user model.User) error {
	// create transaction
	transaction := userDAO.db.Begin()
	if transaction.Error != nil {
		return transaction.Error
	}

	defer func() {
		if r := recover(); r != nil {
			transaction.Rollback()
			panic(r)
		} else if transaction.Error != nil {
			transaction.Rollback()
		}
	}()

	// update user
	result := transaction.Save(&user)
	if result.Error != nil {
		transaction.Rollback()
		return result.Error
	}

	// update or create profile
	var profile model.Profile
	result = transaction.Where("id_user = ?", user.UserID).First(&profile)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			transaction.Rollback()
			return result.Error
		}
		profile = user.Profile
		profile.UserID = user.UserID
		result = transaction.Create(&profile)
		if result.Error != nil {
			transaction.Rollback()
			return result.Error
		}
	} else {
		profile.Location = user.Profile.Location
		profile.PhoneNumber = user.Profile.PhoneNumber
		profile.ThingsLove = user.Profile.ThingsLove
		profile.Description = user.Profile.Description
		result = transaction.Save(&profile)
		if result.Error != nil {
			transaction.Rollback()
			return result.Error
		}
	}

	// commit
	result = transaction.Commit()
	if result.Error != nil {
		return result.Error
	}

	return nil
}

func (userDAO *UserDAO) AddUser(user *model.User) error {
	// create transaction
	transaction := userDAO.db.Begin()
	if transaction.Error != nil {
		return transaction.Error
	}

	result := transaction.Create(user)
	if result.Error != nil {
		transaction.Rollback()
		return result.Error
	}

	profile := user.Profile
	profile.UserID = user.UserID
	result = transaction.Create(&profile)
	if result.Error != nil {
		transaction.Rollback()
		return result.Error
	}
	user.Profile = profile

	result = transaction.Commit()
	if result.Error != nil {
		return result.Error
	}

	return nil
}

func (userDAO *UserDAO) DeleteUser(userID int) error {
	result := userDAO.db.Delete(&model.User{}, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
