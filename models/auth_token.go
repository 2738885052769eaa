package models

// AuthToken maps a token's signature segment to a user. Presence of the
// signature here is the sole authority for "is this session still active".
type AuthToken struct {
	Signature string `gorm:"primaryKey;type:varchar(512)" json:"-"`
	UserID    uint   `gorm:"index;not null" json:"-"`
}
