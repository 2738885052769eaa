package database

import (
	"fmt"

	"gorm.io/gorm"

	"ordering-app/models"
	"ordering-app/utils"
)

const defaultPageSize = 10

// Database is the store handle. Constructed once at startup and passed by
// reference into every component; tests inject their own.
type Database struct {
	db            *gorm.DB
	listPageSize  int
	orderPageSize int
}

func New(db *gorm.DB, listPageSize, orderPageSize int) *Database {
	if listPageSize <= 0 {
		listPageSize = defaultPageSize
	}
	if orderPageSize <= 0 {
		orderPageSize = defaultPageSize
	}
	return &Database{
		db:            db,
		listPageSize:  listPageSize,
		orderPageSize: orderPageSize,
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserRole{},
		&models.AuthToken{},
		&models.Franchise{},
		&models.Store{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
	)
}

// getID resolves a single id by column equality. Internal primitive backing
// the name/title resolvers.
func getID(tx *gorm.DB, column string, value interface{}, table string) (uint, error) {
	var id uint
	res := tx.Table(table).Select("id").Where(fmt.Sprintf("%s = ?", column), value).Limit(1).Scan(&id)
	if res.Error != nil {
		utils.ErrorLogger.Printf("id lookup on %s.%s failed: %v", table, column, res.Error)
		return 0, utils.Internal("internal server error")
	}
	if res.RowsAffected == 0 {
		return 0, utils.NotFound("No ID found")
	}
	return id, nil
}
