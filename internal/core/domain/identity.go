package domain

// Identity is the request-scoped reconstruction of the caller, derived from a
// validated token and discarded when the request ends. It is never persisted.
type Identity struct {
	Email string
	Roles []string
}

// HasRole reports whether the identity carries the named role claim.
func (i *Identity) HasRole(name string) bool {
	if i == nil {
		return false
	}
	for _, r := range i.Roles {
		if r == name {
			return true
		}
	}
	return false
}
