package database

import (
	"ordering-app/models"
	"ordering-app/utils"
)

func (d *Database) GetMenu() ([]models.MenuItem, error) {
	var menu []models.MenuItem
	if err := d.db.Order("id").Find(&menu).Error; err != nil {
		utils.ErrorLogger.Printf("menu lookup failed: %v", err)
		return nil, utils.Internal("internal server error")
	}
	return menu, nil
}

func (d *Database) AddMenuItem(item models.MenuItem) (models.MenuItem, error) {
	item.ID = 0
	if err := d.db.Create(&item).Error; err != nil {
		utils.ErrorLogger.Printf("menu insert failed: %v", err)
		return models.MenuItem{}, utils.Internal("unable to add menu item")
	}
	return item, nil
}
