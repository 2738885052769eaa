package database

import (
	"gorm.io/gorm/clause"

	"ordering-app/models"
	"ordering-app/utils"
)

// Session registry. Only the token's signature segment is stored, so a
// session can be revoked without retaining anything replayable from the
// claim payload.

// LoginUser records the token's signature for the user. Registering the
// same signature twice is a no-op, not an error.
func (d *Database) LoginUser(userID uint, token string) error {
	signature := utils.TokenSignature(token)
	row := models.AuthToken{Signature: signature, UserID: userID}
	if err := d.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
		utils.ErrorLogger.Printf("session register failed: %v", err)
		return utils.Internal("unable to log in")
	}
	return nil
}

// IsLoggedIn reports whether the token's signature is present in the
// registry. A correctly signed token whose signature is absent here is not
// an active session.
func (d *Database) IsLoggedIn(token string) bool {
	signature := utils.TokenSignature(token)
	if signature == "" {
		return false
	}
	var count int64
	if err := d.db.Model(&models.AuthToken{}).Where("signature = ?", signature).Count(&count).Error; err != nil {
		utils.ErrorLogger.Printf("session check failed: %v", err)
		return false
	}
	return count > 0
}

// LogoutUser deletes the signature row. Revoking an unregistered token is
// not an error.
func (d *Database) LogoutUser(token string) error {
	signature := utils.TokenSignature(token)
	if err := d.db.Where("signature = ?", signature).Delete(&models.AuthToken{}).Error; err != nil {
		utils.ErrorLogger.Printf("session revoke failed: %v", err)
		return utils.Internal("unable to log out")
	}
	return nil
}
