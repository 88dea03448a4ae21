package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const defaultTokenTTL = 8 * time.Hour

// TokenService signs and verifies the bearer tokens carrying identity and
// role claims. The signing key is loaded once at startup and read-only for
// the process lifetime, so all methods are safe for concurrent use.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl == 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue builds a signed token for the subject with its role claims embedded.
// Expiry is issued-at plus the configured TTL.
func (s *TokenService) Issue(subject string, roles []string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   subject,
		"roles": roles,
		"iat":   jwt.NewNumericDate(now),
		"exp":   jwt.NewNumericDate(now.Add(s.ttl)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Validate reports whether the token's signature verifies, its payload is
// well-formed, and it has not expired. It is a boolean gate: every failure
// mode reports false, none is surfaced as an error.
func (s *TokenService) Validate(token string) bool {
	tkn, err := s.parse(token)
	return err == nil && tkn.Valid
}

// Subject returns the subject claim. Callers must Validate first; the result
// for an invalid token is unspecified (empty string in practice).
func (s *TokenService) Subject(token string) string {
	claims, err := s.claims(token)
	if err != nil {
		return ""
	}
	sub, _ := claims["sub"].(string)
	return sub
}

// Roles returns the role claims. An absent or malformed roles claim yields an
// empty slice so the request path never sees a parse error.
func (s *TokenService) Roles(token string) []string {
	claims, err := s.claims(token)
	if err != nil {
		return nil
	}

	raw, ok := claims["roles"].([]any)
	if !ok {
		return nil
	}
	roles := make([]string, 0, len(raw))
	for _, r := range raw {
		if name, ok := r.(string); ok {
			roles = append(roles, name)
		}
	}
	return roles
}

func (s *TokenService) claims(token string) (jwt.MapClaims, error) {
	tkn, err := s.parse(token)
	if err != nil {
		return nil, err
	}
	return tkn.Claims.(jwt.MapClaims), nil
}

func (s *TokenService) parse(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, jwt.MapClaims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
}
