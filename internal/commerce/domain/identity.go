package domain

const (
	RoleAdmin = "ROLE_ADMIN"
	RoleUser  = "ROLE_USER"
)

// Identity is the authenticated user as returned by the backend on login or
// registration. The backend is the authority on its contents; the client
// never derives or mutates identity fields locally.
type Identity struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

// HasRole reports whether the identity carries the given role. A nil or
// empty role set means "authenticated but roles unknown" and matches
// nothing.
func (i *Identity) HasRole(role string) bool {
	if i == nil {
		return false
	}
	for _, r := range i.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the identity may use the admin console.
func (i *Identity) IsAdmin() bool { return i.HasRole(RoleAdmin) }
