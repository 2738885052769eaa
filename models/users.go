package models

import "time"

const (
	RoleDiner      = "diner"
	RoleFranchisee = "franchisee"
	RoleAdmin      = "admin"
)

func ValidRole(role string) bool {
	switch role {
	case RoleDiner, RoleFranchisee, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"type:varchar(255);not null" json:"name"`
	Email     string     `gorm:"type:varchar(255);unique;not null" json:"email"`
	Password  string     `gorm:"type:varchar(255);not null" json:"-"`
	Roles     []UserRole `gorm:"-" json:"roles"`
	CreatedAt time.Time  `json:"-"`
	UpdatedAt time.Time  `json:"-"`
}

// UserRole binds a user to a role. ObjectID is the owned franchise id for
// franchisee bindings and 0 otherwise; the zero value is omitted outward.
// Object carries a franchise name on input only, resolved to an id at
// creation time.
type UserRole struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	UserID   uint   `gorm:"index;not null" json:"-"`
	Role     string `gorm:"type:varchar(32);not null" json:"role"`
	ObjectID uint   `gorm:"not null;default:0" json:"objectId,omitempty"`
	Object   string `gorm:"-" json:"object,omitempty"`
}

// AuthUser is the actor shape decoded from token claims. Calls into the core
// never re-fetch the user row; only the session's live status is checked.
type AuthUser struct {
	ID    uint
	Name  string
	Email string
	Roles []UserRole
}

func (u AuthUser) IsRole(role string) bool {
	for _, r := range u.Roles {
		if r.Role == role {
			return true
		}
	}
	return false
}
