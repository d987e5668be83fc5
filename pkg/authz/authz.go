// Package authz maps user roles to their fixed capability sets.
package authz

import (
	"github.com/bradymcatee/recipeBox/domain"
)

type Capability string

const (
	CapManageUsers   Capability = "can_manage_users"
	CapManageRecipes Capability = "can_manage_recipes"
	CapDeleteRecipes Capability = "can_delete_recipes"
	CapViewAll       Capability = "can_view_all"
	CapViewRecipes   Capability = "can_view_recipes"
)

// rolePermissions is the static role to capability mapping. It is fixed at
// process start; there is no dynamic permission storage.
var rolePermissions = map[string]map[Capability]bool{
	domain.RoleAdmin: {
		CapManageUsers:   true,
		CapManageRecipes: true,
		CapDeleteRecipes: true,
		CapViewAll:       true,
	},
	domain.RoleManager: {
		CapManageRecipes: true,
		CapDeleteRecipes: true,
		CapViewAll:       true,
	},
	domain.RoleChef: {
		CapManageRecipes: true,
		CapViewAll:       true,
	},
	domain.RoleLineCook: {
		CapViewRecipes: true,
	},
}

// Can reports whether the given role holds the capability. Unknown roles
// hold nothing.
func Can(role string, capability Capability) bool {
	return rolePermissions[role][capability]
}

// Capabilities returns the capability set for a role. The returned map is a
// copy; callers cannot mutate the table.
func Capabilities(role string) map[Capability]bool {
	perms := rolePermissions[role]
	out := make(map[Capability]bool, len(perms))
	for c, ok := range perms {
		out[c] = ok
	}
	return out
}
