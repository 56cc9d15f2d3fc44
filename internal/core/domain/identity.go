package domain

// Role distinguishes the two kinds of users. An identity has exactly one.
type Role string

const (
	RoleMusician Role = "musician"
	RoleCreator  Role = "creator"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleMusician || r == RoleCreator
}

// Identity is the logged-in user as held by the session.
type Identity struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
}

func (i Identity) IsMusician() bool { return i.Role == RoleMusician }

func (i Identity) IsCreator() bool { return i.Role == RoleCreator }
