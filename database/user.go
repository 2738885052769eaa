package database

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ordering-app/models"
	"ordering-app/utils"
)

// CreateUser hashes the password and inserts the user row plus one role
// binding per role, atomically. A franchisee role naming a franchise by
// name is resolved to its id first; an unknown name fails the whole create.
func (d *Database) CreateUser(user models.User) (models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.ErrorLogger.Printf("password hash failed: %v", err)
		return models.User{}, utils.Internal("internal server error")
	}

	roles := make([]models.UserRole, 0, len(user.Roles))
	txErr := d.db.Transaction(func(tx *gorm.DB) error {
		row := models.User{Name: user.Name, Email: user.Email, Password: string(hashed)}
		if err := tx.Create(&row).Error; err != nil {
			utils.ErrorLogger.Printf("user insert failed: %v", err)
			return utils.Internal("unable to create user")
		}

		for _, role := range user.Roles {
			objectID := role.ObjectID
			if role.Role == models.RoleFranchisee && role.Object != "" {
				id, err := getID(tx, "name", role.Object, "franchises")
				if err != nil {
					return err
				}
				objectID = id
			}
			binding := models.UserRole{UserID: row.ID, Role: role.Role, ObjectID: objectID}
			if err := tx.Create(&binding).Error; err != nil {
				utils.ErrorLogger.Printf("role insert failed: %v", err)
				return utils.Internal("unable to create user")
			}
			roles = append(roles, binding)
		}

		user.ID = row.ID
		return nil
	})
	if txErr != nil {
		return models.User{}, txErr
	}

	user.Password = ""
	user.Roles = roles
	return user, nil
}

// GetUser looks a user up by email and, when a password is supplied,
// verifies it. Unknown email and failed verification return the identical
// error so callers cannot tell which one happened.
func (d *Database) GetUser(email, password string) (models.User, error) {
	var user models.User
	if err := d.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, utils.NotFound("unknown user")
		}
		utils.ErrorLogger.Printf("user lookup failed: %v", err)
		return models.User{}, utils.Internal("internal server error")
	}

	if password != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
			return models.User{}, utils.NotFound("unknown user")
		}
	}

	roles, err := d.userRoles(user.ID)
	if err != nil {
		return models.User{}, err
	}

	user.Password = ""
	user.Roles = roles
	return user, nil
}

// UpdateUser writes only the supplied fields, then re-fetches the user with
// its roles.
func (d *Database) UpdateUser(id uint, name, email, password string) (models.User, error) {
	updates := map[string]interface{}{}
	if name != "" {
		updates["name"] = name
	}
	if email != "" {
		updates["email"] = email
	}
	if password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			utils.ErrorLogger.Printf("password hash failed: %v", err)
			return models.User{}, utils.Internal("internal server error")
		}
		updates["password"] = string(hashed)
	}

	if len(updates) > 0 {
		if err := d.db.Model(&models.User{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			utils.ErrorLogger.Printf("user update failed: %v", err)
			return models.User{}, utils.Internal("unable to update user")
		}
	}

	var user models.User
	if err := d.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, utils.NotFound("unknown user")
		}
		utils.ErrorLogger.Printf("user lookup failed: %v", err)
		return models.User{}, utils.Internal("internal server error")
	}

	roles, err := d.userRoles(user.ID)
	if err != nil {
		return models.User{}, err
	}

	user.Password = ""
	user.Roles = roles
	return user, nil
}

func (d *Database) userRoles(userID uint) ([]models.UserRole, error) {
	var roles []models.UserRole
	if err := d.db.Where("user_id = ?", userID).Order("id").Find(&roles).Error; err != nil {
		utils.ErrorLogger.Printf("role lookup failed: %v", err)
		return nil, utils.Internal("internal server error")
	}
	return roles, nil
}
