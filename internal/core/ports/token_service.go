package ports

// TokenService issues and validates the signed bearer tokens that carry
// identity and role claims between requests.
type TokenService interface {
	Issue(subject string, roles []string) (string, error)
	// Validate is a boolean gate: signature, structure and expiry failures
	// all report false, never an error.
	Validate(token string) bool
	// Subject extracts the subject claim. The token must have passed Validate
	// first; the result on an invalid token is unspecified.
	Subject(token string) string
	// Roles extracts the role claims; absent or malformed claims yield an
	// empty slice.
	Roles(token string) []string
}
