package model

// Role is a coarse-grained permission category
// granted to an authenticated wallet principal.
type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleCompany       Role = "company"
	RoleMerchant      Role = "merchant"
	RoleEmployee      Role = "employee"
)

// RoleDefault is the lowest-privilege role, assigned
// when no role can be resolved from profile nor token claims.
const RoleDefault = RoleEmployee

// ParseRole maps [input] onto one of the four known roles.
func ParseRole(input string) (role Role, ok bool) {
	switch Role(input) {
	case RoleAdministrator,
		RoleCompany,
		RoleMerchant,
		RoleEmployee:
		{
			return Role(input), true
		}
	}
	return "", false // unknown ; dropped
}

// FilterRoles keeps known role values only, order preserved.
func FilterRoles(input []string) (roles []Role) {
	for _, raw := range input {
		if role, ok := ParseRole(raw); ok {
			roles = append(roles, role)
		}
	}
	return // roles?
}

// ContainsRole reports whether [roles] mentions [find].
func ContainsRole(roles []Role, find Role) bool {
	for _, role := range roles {
		if role == find {
			return true
		}
	}
	return false
}
