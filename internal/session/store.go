package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-jwt/jwt/v5"
)

// Well-known keys for the persisted session state. They survive restarts
// until an explicit logout or a 401-triggered clear.
const (
	tokenFile    = "pp_token"
	profileFile  = "pp_profile"
	currencyFile = "pp_currency"
)

// defaultCurrency is the display currency used before the user picks one.
const defaultCurrency = "EUR"

// Profile holds the display fields decoded from the provider's ID token.
// It is a convenience for rendering only; the server re-verifies the token
// on every request and never trusts these values.
type Profile struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

// Session is the locally persisted client state: the bearer token, the
// decoded profile, and the chosen display currency.
type Session struct {
	Token    string
	Profile  *Profile
	Currency string
}

// Store persists session state as small files under a base directory, one
// per well-known key.
type Store struct {
	dir string
}

// NewStore creates a session store rooted at dir, creating it if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// DefaultDir returns the per-user session directory.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config directory: %w", err)
	}
	return filepath.Join(base, "pennypilot"), nil
}

// Load reads the persisted session. A missing token file yields an empty
// (logged-out) session. A corrupt profile is dropped rather than failing the
// load; the token alone is enough to operate. A missing currency falls back
// to the default.
func (s *Store) Load() (*Session, error) {
	sess := &Session{Currency: defaultCurrency}

	token, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return sess, nil
		}
		return nil, fmt.Errorf("failed to read session token: %w", err)
	}
	sess.Token = string(token)

	if raw, err := os.ReadFile(filepath.Join(s.dir, profileFile)); err == nil {
		var profile Profile
		if json.Unmarshal(raw, &profile) == nil {
			sess.Profile = &profile
		}
	}

	if raw, err := os.ReadFile(filepath.Join(s.dir, currencyFile)); err == nil && len(raw) > 0 {
		sess.Currency = string(raw)
	}

	return sess, nil
}

// SaveToken persists the bearer token and the profile decoded from it.
func (s *Store) SaveToken(token string) error {
	if err := os.WriteFile(filepath.Join(s.dir, tokenFile), []byte(token), 0o600); err != nil {
		return fmt.Errorf("failed to persist session token: %w", err)
	}

	// Best effort: a token whose profile cannot be decoded is still usable.
	if profile, err := ProfileFromToken(token); err == nil {
		raw, err := json.Marshal(profile)
		if err == nil {
			_ = os.WriteFile(filepath.Join(s.dir, profileFile), raw, 0o600)
		}
	}
	return nil
}

// SaveCurrency persists the chosen display currency code.
func (s *Store) SaveCurrency(code string) error {
	if err := os.WriteFile(filepath.Join(s.dir, currencyFile), []byte(code), 0o600); err != nil {
		return fmt.Errorf("failed to persist display currency: %w", err)
	}
	return nil
}

// Clear removes the token and profile, ending the session. The display
// currency is a preference, not a credential, and survives logout.
func (s *Store) Clear() error {
	for _, name := range []string{tokenFile, profileFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to clear session state: %w", err)
		}
	}
	return nil
}

// ProfileFromToken decodes the display profile from an ID token without
// verifying it. Verification is the server's job; the client only needs the
// claims for rendering, exactly like a browser decoding the token payload.
func ProfileFromToken(token string) (*Profile, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to decode token payload: %w", err)
	}

	profile := &Profile{}
	profile.Name, _ = claims["name"].(string)
	profile.Email, _ = claims["email"].(string)
	profile.Picture, _ = claims["picture"].(string)
	return profile, nil
}
