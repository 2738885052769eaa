package database

import (
	"time"

	"gorm.io/gorm"

	"ordering-app/models"
	"ordering-app/utils"
)

// GetOrders returns the actor's orders windowed by page (fixed page size),
// newest page numbering starting at 1. Page values below 1 are floored to 1.
func (d *Database) GetOrders(actor models.AuthUser, page int) (models.OrderHistory, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * d.orderPageSize

	var orders []models.Order
	if err := d.db.Preload("Items").
		Where("diner_id = ?", actor.ID).
		Order("id").
		Offset(offset).
		Limit(d.orderPageSize).
		Find(&orders).Error; err != nil {
		utils.ErrorLogger.Printf("order lookup failed: %v", err)
		return models.OrderHistory{}, utils.Internal("internal server error")
	}
	if orders == nil {
		orders = []models.Order{}
	}

	return models.OrderHistory{DinerID: actor.ID, Orders: orders, Page: page}, nil
}

// AddDinerOrder inserts the order row and one snapshot row per item in a
// single transaction. Each item names a menu item by title; an unknown
// title fails with NotFound and rolls the whole order back. Price and
// description are snapshotted from the menu at order time.
func (d *Database) AddDinerOrder(actor models.AuthUser, order models.Order) (models.Order, error) {
	items := order.Items
	txErr := d.db.Transaction(func(tx *gorm.DB) error {
		row := models.Order{
			DinerID:     actor.ID,
			FranchiseID: order.FranchiseID,
			StoreID:     order.StoreID,
			Date:        time.Now(),
		}
		if err := tx.Create(&row).Error; err != nil {
			utils.ErrorLogger.Printf("order insert failed: %v", err)
			return utils.Internal("unable to create order")
		}

		created := make([]models.OrderItem, 0, len(items))
		for _, item := range items {
			menuID, err := getID(tx, "title", item.Description, "menu_items")
			if err != nil {
				return err
			}
			var menu models.MenuItem
			if err := tx.First(&menu, menuID).Error; err != nil {
				utils.ErrorLogger.Printf("menu lookup failed: %v", err)
				return utils.Internal("unable to create order")
			}
			snapshot := models.OrderItem{
				OrderID:     row.ID,
				MenuID:      menu.ID,
				Description: item.Description,
				Price:       menu.Price,
			}
			if err := tx.Create(&snapshot).Error; err != nil {
				utils.ErrorLogger.Printf("order item insert failed: %v", err)
				return utils.Internal("unable to create order")
			}
			created = append(created, snapshot)
		}

		order.ID = row.ID
		order.DinerID = row.DinerID
		order.Date = row.Date
		order.Items = created
		return nil
	})
	if txErr != nil {
		return models.Order{}, txErr
	}
	return order, nil
}

// AttachReceipt persists the fulfillment acknowledgment on the order. The
// outbound fulfillment call itself happens outside the store.
func (d *Database) AttachReceipt(orderID uint, receipt string) error {
	if err := d.db.Model(&models.Order{}).Where("id = ?", orderID).Update("receipt", receipt).Error; err != nil {
		utils.ErrorLogger.Printf("receipt update failed: %v", err)
		return utils.Internal("unable to record fulfillment")
	}
	return nil
}
