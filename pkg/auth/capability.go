package auth

// Role is the coarse actor classification carried in the JWT.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	}
	return false
}

// Capability names a single permitted action. Authorization checks consult
// the capability table instead of comparing role strings at call sites.
type Capability string

const (
	// CapManageOwnDocuments covers all CRUD on the caller's own resume data.
	CapManageOwnDocuments Capability = "manage_own_documents"
	// CapAdministerUsers covers cross-user administrative operations.
	CapAdministerUsers Capability = "administer_users"
)

var capabilitiesByRole = map[Role]map[Capability]bool{
	RoleUser: {
		CapManageOwnDocuments: true,
	},
	RoleAdmin: {
		CapManageOwnDocuments: true,
		CapAdministerUsers:    true,
	},
}

// Allowed reports whether the role grants the capability. Unknown roles grant
// nothing.
func Allowed(role Role, capability Capability) bool {
	caps, ok := capabilitiesByRole[role]
	if !ok {
		return false
	}
	return caps[capability]
}
