package domain

// Role is the closed set of user roles the service understands. Role checks
// here are the authoritative ones; any role gating a client does is cosmetic.
type Role string

const (
	RoleAdmin      Role = "Admin"
	RoleApprover   Role = "Approver"
	RoleConsultant Role = "Consultant"
)

// Roles lists all valid roles.
var Roles = []Role{RoleAdmin, RoleApprover, RoleConsultant}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleApprover, RoleConsultant:
		return true
	}
	return false
}

// CanRemoveConsultants reports whether the role may unregister consultants
// from a capability.
func (r Role) CanRemoveConsultants() bool {
	return r == RoleAdmin || r == RoleApprover
}

// CanRegisterOthers reports whether the role may register an email other
// than its own. Consultants may only register themselves.
func (r Role) CanRegisterOthers() bool {
	return r == RoleAdmin || r == RoleApprover
}

func (r Role) String() string { return string(r) }
