package entities

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// Caller is the authenticated identity resolved by the auth middleware.
// A zero Caller means the request carried no usable credentials; mutating
// operations reject it, the middleware itself does not.
type Caller struct {
	ID   string
	Role Role
}

func (c Caller) Authenticated() bool {
	return c.ID != ""
}

func (c Caller) IsAdmin() bool {
	return c.Authenticated() && c.Role == RoleAdmin
}
