package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func diner(id uint) AuthUser {
	return AuthUser{ID: id, Roles: []UserRole{{Role: RoleDiner}}}
}

func admin(id uint) AuthUser {
	return AuthUser{ID: id, Roles: []UserRole{{Role: RoleAdmin}}}
}

func franchisee(id, franchiseID uint) AuthUser {
	return AuthUser{ID: id, Roles: []UserRole{{Role: RoleFranchisee, ObjectID: franchiseID}}}
}

func TestCanModifyUser(t *testing.T) {
	assert.True(t, CanModifyUser(diner(1), 1))
	assert.False(t, CanModifyUser(diner(1), 2))
	assert.True(t, CanModifyUser(admin(5), 2))
}

func TestCanManageMenu(t *testing.T) {
	assert.True(t, CanManageMenu(admin(1)))
	assert.False(t, CanManageMenu(diner(1)))
	assert.False(t, CanManageMenu(franchisee(1, 7)))
}

func TestCanViewFranchiseSet(t *testing.T) {
	assert.True(t, CanViewFranchiseSet(diner(3), 3))
	assert.False(t, CanViewFranchiseSet(diner(3), 4))
	assert.True(t, CanViewFranchiseSet(admin(9), 4))
}

func TestCanManageStore(t *testing.T) {
	assert.True(t, CanManageStore(admin(1), 7))
	assert.True(t, CanManageStore(franchisee(2, 7), 7))
	assert.False(t, CanManageStore(franchisee(2, 8), 7))
	assert.False(t, CanManageStore(diner(2), 7))

	// multiple bindings: any matching franchise grants access
	multi := AuthUser{ID: 2, Roles: []UserRole{
		{Role: RoleFranchisee, ObjectID: 3},
		{Role: RoleFranchisee, ObjectID: 7},
	}}
	assert.True(t, CanManageStore(multi, 7))
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleDiner))
	assert.True(t, ValidRole(RoleFranchisee))
	assert.True(t, ValidRole(RoleAdmin))
	assert.False(t, ValidRole("superuser"))
	assert.False(t, ValidRole(""))
}
