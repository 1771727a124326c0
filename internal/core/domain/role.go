package domain

// Role is keyed by name and owns the role-permission association.
type Role struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
}

// HasPermission reports whether the role grants the named permission.
func (r *Role) HasPermission(name string) bool {
	for _, p := range r.Permissions {
		if p == name {
			return true
		}
	}
	return false
}

// Permission is keyed by name.
type Permission struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
