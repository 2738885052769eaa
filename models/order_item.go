package models

// OrderItem snapshots the menu item's description and price at order time,
// so later menu changes never rewrite order history.
type OrderItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	OrderID     uint    `gorm:"index;not null" json:"-"`
	MenuID      uint    `gorm:"not null" json:"menuId"`
	Description string  `gorm:"type:varchar(255);not null" json:"description"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"`
}
