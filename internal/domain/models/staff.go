package models

// OrganizationRole is the organization-level role of a staff member.
// Roles form a single ordered hierarchy; permission checks compare ranks
// through CanManage rather than re-declaring role lists per call site.
type OrganizationRole string

const (
	RoleSuperAdmin   OrganizationRole = "SUPER_ADMIN"
	RoleOrgAdmin     OrganizationRole = "ORG_ADMIN"
	RolePropertyMgr  OrganizationRole = "PROPERTY_MGR"
	RoleFrontDesk    OrganizationRole = "FRONT_DESK"
	RoleMaintenance  OrganizationRole = "MAINTENANCE"
	RoleHousekeeping OrganizationRole = "HOUSEKEEPING"
)

var roleRanks = map[OrganizationRole]int{
	RoleSuperAdmin:   5,
	RoleOrgAdmin:     4,
	RolePropertyMgr:  3,
	RoleFrontDesk:    2,
	RoleMaintenance:  1,
	RoleHousekeeping: 1,
}

// roleOrder fixes the display order of assignable-role lists
var roleOrder = []OrganizationRole{
	RoleSuperAdmin,
	RoleOrgAdmin,
	RolePropertyMgr,
	RoleFrontDesk,
	RoleMaintenance,
	RoleHousekeeping,
}

// Rank returns the numeric hierarchy level of a role, 0 for unknown roles
func (r OrganizationRole) Rank() int {
	return roleRanks[r]
}

// Valid reports whether the role is part of the hierarchy
func (r OrganizationRole) Valid() bool {
	return roleRanks[r] > 0
}

// CanManage reports whether an actor role may invite, edit or delete a
// member holding the target role
func CanManage(actor, target OrganizationRole) bool {
	if !actor.Valid() || !target.Valid() {
		return false
	}
	return actor.Rank() >= target.Rank()
}

// AssignableRoles returns the roles an actor may grant, highest rank first
func AssignableRoles(actor OrganizationRole) []OrganizationRole {
	var roles []OrganizationRole
	for _, r := range roleOrder {
		if CanManage(actor, r) {
			roles = append(roles, r)
		}
	}
	return roles
}

// Shift is an optional working shift on a property assignment
type Shift string

const (
	ShiftMorning  Shift = "MORNING"
	ShiftEvening  Shift = "EVENING"
	ShiftNight    Shift = "NIGHT"
	ShiftFlexible Shift = "FLEXIBLE"
)

// PropertyAssignment links a staff member to a property with a property-level role
type PropertyAssignment struct {
	PropertyID   string `json:"propertyId"`
	PropertyName string `json:"propertyName"`
	Role         string `json:"role"`
	Shift        Shift  `json:"shift,omitempty"`
}

// StaffMember is a user record owned by the upstream API.
// Email is immutable after creation; deletion revokes access without
// purging the identity record.
type StaffMember struct {
	ID               string               `json:"id"`
	Name             string               `json:"name"`
	Email            string               `json:"email"`
	Phone            string               `json:"phone"`
	Image            string               `json:"image"`
	OrganizationRole OrganizationRole     `json:"organizationRole"`
	Assignments      []PropertyAssignment `json:"assignments"`
}
