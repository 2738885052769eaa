package models

// MenuItem is globally visible and append-only; admins add items, nothing
// updates or deletes them.
type MenuItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Title       string  `gorm:"type:varchar(255);not null" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	Image       string  `gorm:"type:varchar(255)" json:"image"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"`
}
