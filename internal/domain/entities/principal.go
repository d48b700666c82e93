package entities

// Role is the role claim carried by the caller's token.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// Principal is the authenticated caller. The zero value is an anonymous
// visitor (lead forms on the public site).
type Principal struct {
	UserID string
	Email  string
	Role   Role
}

func (p Principal) IsAdmin() bool { return p.Role == RoleAdmin && p.UserID != "" }

func (p Principal) IsAuthenticated() bool { return p.UserID != "" }

// Owns reports whether p is the owner of a record owned by ownerID.
func (p Principal) Owns(ownerID string) bool {
	return p.UserID != "" && ownerID != "" && p.UserID == ownerID
}
