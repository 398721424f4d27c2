package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signedToken builds a real signed JWT carrying profile claims. The store
// never verifies signatures, but a structurally valid token is required for
// the payload decode to succeed.
func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestLoad_EmptyDirectory(t *testing.T) {
	store := newTestStore(t)

	sess, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, sess.Token)
	assert.Nil(t, sess.Profile)
	assert.Equal(t, "EUR", sess.Currency)
}

func TestSaveToken_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	token := signedToken(t, jwt.MapClaims{
		"sub":     "google-sub-1",
		"name":    "Ada Lovelace",
		"email":   "ada@example.com",
		"picture": "https://example.com/ada.png",
	})

	require.NoError(t, store.SaveToken(token))

	sess, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, token, sess.Token)
	require.NotNil(t, sess.Profile)
	assert.Equal(t, "Ada Lovelace", sess.Profile.Name)
	assert.Equal(t, "ada@example.com", sess.Profile.Email)
	assert.Equal(t, "https://example.com/ada.png", sess.Profile.Picture)
}

func TestSaveToken_UndecodableTokenStillPersisted(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveToken("not-a-jwt"))

	sess, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "not-a-jwt", sess.Token)
	assert.Nil(t, sess.Profile)
}

func TestLoad_CorruptProfileDropped(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SaveToken(signedToken(t, jwt.MapClaims{"name": "Ada"})))
	require.NoError(t, os.WriteFile(filepath.Join(store.dir, profileFile), []byte("{truncated"), 0o600))

	sess, err := store.Load()
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)
	assert.Nil(t, sess.Profile)
}

func TestSaveCurrency_RoundTrip(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveCurrency("GBP"))

	sess, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "GBP", sess.Currency)
}

func TestClear_KeepsCurrency(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SaveToken(signedToken(t, jwt.MapClaims{"name": "Ada"})))
	require.NoError(t, store.SaveCurrency("JPY"))

	require.NoError(t, store.Clear())

	sess, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, sess.Token)
	assert.Nil(t, sess.Profile)
	assert.Equal(t, "JPY", sess.Currency)
}

func TestClear_Idempotent(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
}

func TestProfileFromToken(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"name":  "Ada Lovelace",
		"email": "ada@example.com",
	})

	profile, err := ProfileFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", profile.Name)
	assert.Equal(t, "ada@example.com", profile.Email)
	assert.Empty(t, profile.Picture)
}

func TestProfileFromToken_Malformed(t *testing.T) {
	_, err := ProfileFromToken("three.bogus.parts")
	assert.Error(t, err)
}
