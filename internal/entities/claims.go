package entities

// Claims is the typed identity extracted from a bearer token. It is validated
// once at the boundary and passed explicitly to services; nothing downstream
// re-parses the token.
type Claims struct {
	UserID string
	Role   RoleType
}

type RoleType string

const (
	RoleBuyer  RoleType = "buyer"
	RoleSeller RoleType = "seller"
	RoleRider  RoleType = "rider"
	RoleAdmin  RoleType = "admin"
)

func (r RoleType) String() string {
	return string(r)
}

func (c Claims) IsAdmin() bool {
	return c.Role == RoleAdmin
}
