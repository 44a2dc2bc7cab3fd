package secret

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-gate-keeper/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher(t *testing.T, cost int) Hasher {
	t.Helper()
	h, err := NewHasher(config.App{Pepper: "unit-test-pepper", BcryptCost: cost})
	require.NoError(t, err)
	return h
}

func TestNewHasher_RequiresPepper(t *testing.T) {
	_, err := NewHasher(config.App{})
	assert.ErrorIs(t, err, config.ErrPepperNotConfigured)
}

func TestHasher_HashAndVerify(t *testing.T) {
	h := newTestHasher(t, bcrypt.MinCost)

	hash, err := h.Hash("secret1")
	require.NoError(t, err)

	assert.True(t, h.Verify("secret1", hash))
	assert.False(t, h.Verify("wrong", hash))
	assert.NotContains(t, hash, "secret1")
}

func TestHasher_PepperChangesHashInput(t *testing.T) {
	h1 := newTestHasher(t, bcrypt.MinCost)
	h2, err := NewHasher(config.App{Pepper: "a-different-pepper", BcryptCost: bcrypt.MinCost})
	require.NoError(t, err)

	hash, err := h1.Hash("secret1")
	require.NoError(t, err)

	// same password, different pepper: must not verify
	assert.False(t, h2.Verify("secret1", hash))
}

func TestHasher_NeedsRehash(t *testing.T) {
	weak := newTestHasher(t, bcrypt.MinCost)
	strong := newTestHasher(t, bcrypt.MinCost+2)

	hash, err := weak.Hash("secret1")
	require.NoError(t, err)

	assert.True(t, strong.NeedsRehash(hash))
	assert.False(t, weak.NeedsRehash(hash))
	assert.True(t, strong.NeedsRehash("not-a-bcrypt-hash"))
}

func TestHasher_RandomizedSalt(t *testing.T) {
	h := newTestHasher(t, bcrypt.MinCost)

	first, err := h.Hash("secret1")
	require.NoError(t, err)
	second, err := h.Hash("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("secret1", first))
	assert.True(t, h.Verify("secret1", second))
}

func TestHasher_LongPassword(t *testing.T) {
	// the HMAC pre-hash keeps inputs clear of bcrypt's 72-byte limit
	h := newTestHasher(t, bcrypt.MinCost)
	long := strings.Repeat("x", 200)

	hash, err := h.Hash(long)
	require.NoError(t, err)
	assert.True(t, h.Verify(long, hash))
	assert.False(t, h.Verify(long+"y", hash))
}
