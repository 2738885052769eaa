package models

type Store struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	FranchiseID uint   `gorm:"index;not null" json:"-"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	// Sum of order item prices for this store; filled for admin views only.
	TotalRevenue float64 `gorm:"-" json:"totalRevenue,omitempty"`
}
