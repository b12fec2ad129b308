package constants

import "fmt"

// Instructor roles, ordered. Comparison is by integer level, never by
// string value.
const (
	RoleInstructor = "INSTRUCTOR"
	RoleAdmin      = "ADMIN"
	RoleSuperAdmin = "SUPER_ADMIN"
)

var roleLevels = map[string]int{
	RoleInstructor: 1,
	RoleAdmin:      2,
	RoleSuperAdmin: 3,
}

// RoleLevel returns the ordering level of a role, 0 for unknown roles.
func RoleLevel(role string) int {
	return roleLevels[role]
}

// RoleAtLeast reports whether role sits at or above min in the hierarchy.
// Unknown roles never satisfy any requirement.
func RoleAtLeast(role, min string) bool {
	l, m := roleLevels[role], roleLevels[min]
	return l > 0 && m > 0 && l >= m
}

func IsValidRole(role string) bool {
	_, ok := roleLevels[role]
	return ok
}

// Error message templates for role checks
const (
	ErrOnlyAdminsCanAccess     = "❌ Only admins may access %s."
	ErrOnlySuperAdminCanAccess = "❌ Only the super admin may access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorSuperAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlySuperAdminCanAccess, feature)
}

var (
	AllRoles = []string{
		RoleInstructor,
		RoleAdmin,
		RoleSuperAdmin,
	}

	AdminAndAbove = []string{
		RoleAdmin,
		RoleSuperAdmin,
	}
)
