package database

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"ordering-app/models"
	"ordering-app/utils"
)

// CreateFranchise resolves every admin email to an existing user, then
// inserts the franchise and one franchisee binding per admin as one
// transaction.
func (d *Database) CreateFranchise(franchise models.Franchise) (models.Franchise, error) {
	admins := make([]models.FranchiseAdmin, 0, len(franchise.Admins))
	for _, admin := range franchise.Admins {
		var user models.User
		if err := d.db.Where("email = ?", admin.Email).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.Franchise{}, utils.NotFound(fmt.Sprintf("unknown user for franchise admin %s provided", admin.Email))
			}
			utils.ErrorLogger.Printf("admin lookup failed: %v", err)
			return models.Franchise{}, utils.Internal("internal server error")
		}
		admins = append(admins, models.FranchiseAdmin{ID: user.ID, Name: user.Name, Email: user.Email})
	}

	txErr := d.db.Transaction(func(tx *gorm.DB) error {
		row := models.Franchise{Name: franchise.Name}
		if err := tx.Create(&row).Error; err != nil {
			utils.ErrorLogger.Printf("franchise insert failed: %v", err)
			return utils.Internal("unable to create a franchise")
		}
		for _, admin := range admins {
			binding := models.UserRole{UserID: admin.ID, Role: models.RoleFranchisee, ObjectID: row.ID}
			if err := tx.Create(&binding).Error; err != nil {
				utils.ErrorLogger.Printf("franchisee binding insert failed: %v", err)
				return utils.Internal("unable to create a franchise")
			}
		}
		franchise.ID = row.ID
		return nil
	})
	if txErr != nil {
		return models.Franchise{}, txErr
	}

	franchise.Admins = admins
	return franchise, nil
}

// DeleteFranchise removes the franchise's stores, then its franchisee
// bindings, then the franchise row, as one atomic unit. Any failure rolls
// back all three.
func (d *Database) DeleteFranchise(id uint) error {
	txErr := d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("franchise_id = ?", id).Delete(&models.Store{}).Error; err != nil {
			return err
		}
		if err := tx.Where("object_id = ? AND role = ?", id, models.RoleFranchisee).Delete(&models.UserRole{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Franchise{}, id).Error; err != nil {
			return err
		}
		return nil
	})
	if txErr != nil {
		utils.ErrorLogger.Printf("franchise delete failed: %v", txErr)
		return utils.Internal("unable to delete franchise")
	}
	return nil
}

// GetFranchises lists franchises windowed by page and filtered by name.
// A client-supplied * maps to the SQL any-match wildcard; literal % or _
// behave as wildcards too, which is accepted. One extra row is fetched to
// compute the more flag without a second query. Admin viewers get the full
// admin list and per-store revenue; everyone else gets stores only.
func (d *Database) GetFranchises(actor models.AuthUser, page, limit int, nameFilter string) ([]models.Franchise, bool, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = d.listPageSize
	}
	pattern := strings.ReplaceAll(nameFilter, "*", "%")
	if pattern == "" {
		pattern = "%"
	}
	offset := (page - 1) * limit

	var franchises []models.Franchise
	if err := d.db.Where("name LIKE ?", pattern).Order("id").Offset(offset).Limit(limit + 1).Find(&franchises).Error; err != nil {
		utils.ErrorLogger.Printf("franchise list failed: %v", err)
		return nil, false, utils.Internal("internal server error")
	}

	more := len(franchises) > limit
	if more {
		franchises = franchises[:limit]
	}

	withDetails := actor.IsRole(models.RoleAdmin)
	for i := range franchises {
		if err := d.enrichFranchise(&franchises[i], withDetails); err != nil {
			return nil, false, err
		}
	}
	return franchises, more, nil
}

// GetUserFranchises returns every franchise the user holds a franchisee
// binding on, fully enriched.
func (d *Database) GetUserFranchises(userID uint) ([]models.Franchise, error) {
	var bindings []models.UserRole
	if err := d.db.Where("user_id = ? AND role = ?", userID, models.RoleFranchisee).Find(&bindings).Error; err != nil {
		utils.ErrorLogger.Printf("binding lookup failed: %v", err)
		return nil, utils.Internal("internal server error")
	}
	if len(bindings) == 0 {
		return []models.Franchise{}, nil
	}

	ids := make([]uint, 0, len(bindings))
	for _, b := range bindings {
		ids = append(ids, b.ObjectID)
	}

	var franchises []models.Franchise
	if err := d.db.Where("id IN ?", ids).Order("id").Find(&franchises).Error; err != nil {
		utils.ErrorLogger.Printf("franchise lookup failed: %v", err)
		return nil, utils.Internal("internal server error")
	}
	for i := range franchises {
		if err := d.enrichFranchise(&franchises[i], true); err != nil {
			return nil, err
		}
	}
	return franchises, nil
}

func (d *Database) CreateStore(franchiseID uint, store models.Store) (models.Store, error) {
	store.ID = 0
	store.FranchiseID = franchiseID
	if err := d.db.Create(&store).Error; err != nil {
		utils.ErrorLogger.Printf("store insert failed: %v", err)
		return models.Store{}, utils.Internal("unable to create a store")
	}
	return store, nil
}

// DeleteStore is scoped by both ids so a colliding store id under another
// franchise is never touched.
func (d *Database) DeleteStore(franchiseID, storeID uint) error {
	if err := d.db.Where("franchise_id = ? AND id = ?", franchiseID, storeID).Delete(&models.Store{}).Error; err != nil {
		utils.ErrorLogger.Printf("store delete failed: %v", err)
		return utils.Internal("unable to delete a store")
	}
	return nil
}

func (d *Database) enrichFranchise(franchise *models.Franchise, withDetails bool) error {
	if err := d.db.Where("franchise_id = ?", franchise.ID).Order("id").Find(&franchise.Stores).Error; err != nil {
		utils.ErrorLogger.Printf("store lookup failed: %v", err)
		return utils.Internal("internal server error")
	}
	if !withDetails {
		return nil
	}

	if err := d.db.Table("users").
		Select("users.id, users.name, users.email").
		Joins("JOIN user_roles ON user_roles.user_id = users.id").
		Where("user_roles.role = ? AND user_roles.object_id = ?", models.RoleFranchisee, franchise.ID).
		Order("users.id").
		Scan(&franchise.Admins).Error; err != nil {
		utils.ErrorLogger.Printf("admin lookup failed: %v", err)
		return utils.Internal("internal server error")
	}

	for i := range franchise.Stores {
		var revenue float64
		if err := d.db.Table("order_items").
			Select("COALESCE(SUM(order_items.price), 0)").
			Joins("JOIN orders ON orders.id = order_items.order_id").
			Where("orders.store_id = ?", franchise.Stores[i].ID).
			Scan(&revenue).Error; err != nil {
			utils.ErrorLogger.Printf("revenue lookup failed: %v", err)
			return utils.Internal("internal server error")
		}
		franchise.Stores[i].TotalRevenue = revenue
	}
	return nil
}
