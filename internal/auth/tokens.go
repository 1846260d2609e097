// Package auth manages the two identity credentials of the onboarding flow:
// the anonymous session token issued at start, and the authenticated bearer
// token supplied by the auth provider. The store persists them between CLI
// invocations so the flow can span multiple commands.
package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tokens holds the credentials for one onboarding flow. Either may be empty;
// a caller holding both may send both, and the service decides precedence.
type Tokens struct {
	SessionToken string `json:"session_token,omitempty"`
	AuthToken    string `json:"auth_token,omitempty"`
}

// Store reads and writes tokens at a fixed file path.
type Store struct {
	path string
}

// NewStore creates a token store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the stored tokens. A missing file is not an error; it returns
// empty tokens so a fresh flow can begin.
func (s *Store) Load() (*Tokens, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return &Tokens{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read token file %s: %w", s.path, err)
	}

	var tokens Tokens
	if err := json.Unmarshal(data, &tokens); err != nil {
		return nil, fmt.Errorf("failed to parse token file %s: %w", s.path, err)
	}
	return &tokens, nil
}

// Save writes the tokens with owner-only permissions.
func (s *Store) Save(tokens *Tokens) error {
	data, err := json.MarshalIndent(tokens, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode tokens: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write token file %s: %w", s.path, err)
	}
	return nil
}

// Clear removes the token file. Clearing an absent file is not an error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token file %s: %w", s.path, err)
	}
	return nil
}

// BearerExpired reports whether a JWT bearer token carries an expiry in the
// past. The signature is not verified — that is the service's job — this is
// only a local fail-fast before a pathway call. Tokens that are not JWTs or
// carry no expiry claim are treated as live and left for the service to
// judge.
func BearerExpired(token string, now time.Time) bool {
	parser := jwt.NewParser()
	parsed, _, err := parser.ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
