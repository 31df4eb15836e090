package entity

// Role represents the type of role a principal can carry in the system.
type Role string

const (
	// RoleAdmin is the only role issued by this service. Every token minted
	// for a back-office principal carries it.
	RoleAdmin Role = "Admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	return r == RoleAdmin
}
