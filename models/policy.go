package models

// Authorization policy. Pure functions over decoded claims, safe for
// concurrent use.

func CanModifyUser(actor AuthUser, targetUserID uint) bool {
	return actor.ID == targetUserID || actor.IsRole(RoleAdmin)
}

func CanManageMenu(actor AuthUser) bool {
	return actor.IsRole(RoleAdmin)
}

// CanViewFranchiseSet gates listing the franchises a user operates. Callers
// return an empty result on false, not an error.
func CanViewFranchiseSet(actor AuthUser, targetUserID uint) bool {
	return actor.ID == targetUserID || actor.IsRole(RoleAdmin)
}

func CanManageStore(actor AuthUser, franchiseID uint) bool {
	if actor.IsRole(RoleAdmin) {
		return true
	}
	for _, r := range actor.Roles {
		if r.Role == RoleFranchisee && r.ObjectID == franchiseID {
			return true
		}
	}
	return false
}
