package models

type Franchise struct {
	ID     uint             `gorm:"primaryKey" json:"id"`
	Name   string           `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Admins []FranchiseAdmin `gorm:"-" json:"admins,omitempty"`
	Stores []Store          `gorm:"foreignKey:FranchiseID" json:"stores"`
}

// FranchiseAdmin is a projection of the users holding a franchisee binding
// on a franchise, not a table of its own.
type FranchiseAdmin struct {
	ID    uint   `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}
