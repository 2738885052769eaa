package models

import "time"

type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	DinerID     uint        `gorm:"index;not null" json:"-"`
	FranchiseID uint        `gorm:"not null" json:"franchiseId"`
	StoreID     uint        `gorm:"not null" json:"storeId"`
	Date        time.Time   `gorm:"not null" json:"date"`
	Receipt     string      `gorm:"type:varchar(1024)" json:"receipt,omitempty"`
	Items       []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

// OrderHistory is the windowed view of a diner's orders.
type OrderHistory struct {
	DinerID uint    `json:"dinerId"`
	Orders  []Order `json:"orders"`
	Page    int     `json:"page"`
}
