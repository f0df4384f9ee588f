package domain

// Role represents the role of an acting principal
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleStaff    Role = "STAFF"
)

// Principal is the authenticated identity acting on a request.
// Identity and role resolution happen outside this service; handlers
// only ever see this opaque pair.
type Principal struct {
	ID   string
	Role Role
}

// IsStaff reports whether the principal carries the staff role
func (p Principal) IsStaff() bool {
	return p.Role == RoleStaff
}
