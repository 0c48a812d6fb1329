package keys_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-skynet/crypto"
	"github.com/tarantool/go-skynet/keys"
)

// counterEntropy is a deterministic EntropySource for tests.
type counterEntropy struct {
	next byte
}

func (c *counterEntropy) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = c.next
		c.next++
	}

	return len(p), nil
}

var errBrokenEntropy = errors.New("entropy unavailable")

type brokenEntropy struct{}

func (brokenEntropy) Read(_ []byte) (int, error) {
	return 0, errBrokenEntropy
}

func TestGenerateSeed(t *testing.T) {
	t.Parallel()

	seed, err := keys.GenerateSeed(&counterEntropy{next: 0}, 4)
	require.NoError(t, err)
	assert.Equal(t, keys.Seed{0, 1, 2, 3}, seed)

	seed, err = keys.GenerateSeed(keys.DefaultEntropy, keys.DefaultSeedLength)
	require.NoError(t, err)
	assert.Len(t, seed, keys.DefaultSeedLength)
}

func TestGenerateSeed_Negative(t *testing.T) {
	t.Parallel()

	_, err := keys.GenerateSeed(brokenEntropy{}, 16)
	require.ErrorIs(t, err, errBrokenEntropy)
	require.ErrorAs(t, err, &keys.EntropyError{})

	_, err = keys.GenerateSeed(keys.DefaultEntropy, 0)
	require.ErrorIs(t, err, keys.ErrInvalidSeedLength)
}

func TestDeriveKeyPair_KnownVector(t *testing.T) {
	t.Parallel()

	seed := keys.Seed("registry test seed")

	stretched := keys.StretchSeed(seed)
	assert.Equal(t,
		"7f003306153cabba7611fb181aba1ce95f64ddfc7e20651c8af2c27d90f3abff",
		hex.EncodeToString(stretched[:]))

	kp := keys.DeriveKeyPair(seed)
	assert.Equal(t,
		"023db80aceb5f5d3b37cb9168baf8580a54a8678e4de6b9a17c5c0e1fc93516c",
		kp.PublicKey.Hex())
	assert.Equal(t, stretched[:], kp.PrivateKey[:32])
	assert.Equal(t, kp.PublicKey, kp.PrivateKey.Public())
}

func TestDeriveKeyPair_Deterministic(t *testing.T) {
	t.Parallel()

	kp, seed, err := keys.GenerateKeyPairAndSeed(keys.DefaultEntropy, 64)
	require.NoError(t, err)

	again := keys.DeriveKeyPair(seed)
	assert.Equal(t, kp.PublicKey, again.PublicKey)
	assert.Equal(t, kp.PrivateKey, again.PrivateKey)

	other := append(keys.Seed{}, seed...)
	other[0] ^= 0x01

	assert.NotEqual(t, kp.PublicKey, keys.DeriveKeyPair(other).PublicKey)
}

func TestDeriveKeyPair_SignsVerifiably(t *testing.T) {
	t.Parallel()

	kp := keys.DeriveKeyPair(keys.Seed("abc"))

	var hash crypto.Hash
	copy(hash[:], bytes.Repeat([]byte{0x42}, crypto.HashSize))

	sig := crypto.Sign(hash, kp.PrivateKey)
	assert.True(t, crypto.Verify(hash, kp.PublicKey, sig))
}

func TestDeriveChildSeed(t *testing.T) {
	t.Parallel()

	master := keys.Seed("registry test seed")

	child, err := keys.DeriveChildSeed(master, []byte("foo"))
	require.NoError(t, err)
	assert.Len(t, child, len(master))
	assert.Equal(t, "660e7cac8ec809dfe5010016575d55414354", hex.EncodeToString(child))

	again, err := keys.DeriveChildSeed(master, []byte("foo"))
	require.NoError(t, err)
	assert.Equal(t, child, again)

	sibling, err := keys.DeriveChildSeed(master, []byte("bar"))
	require.NoError(t, err)
	assert.NotEqual(t, child, sibling)
	assert.NotEqual(t, master, child)
}

func TestDeriveChildSeed_Lengths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		length int
		err    error
	}{
		{"one byte", 1, nil},
		{"ed25519 seed", 32, nil},
		{"max", 64, nil},
		{"empty", 0, keys.ErrInvalidMasterSize},
		{"too long", 65, keys.ErrInvalidMasterSize},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			master := keys.Seed(bytes.Repeat([]byte{7}, test.length))

			child, err := keys.DeriveChildSeed(master, []byte("label"))
			if test.err != nil {
				require.ErrorIs(t, err, test.err)
				return
			}

			require.NoError(t, err)
			assert.Len(t, child, test.length)
		})
	}
}

func TestMnemonicSeed(t *testing.T) {
	t.Parallel()

	mnemonic, seed, err := keys.NewMnemonicSeed(&counterEntropy{next: 0}, "")
	require.NoError(t, err)
	assert.Len(t, strings.Fields(mnemonic), 24)
	assert.Len(t, seed, 64)

	restored, err := keys.SeedFromMnemonic("  "+strings.ReplaceAll(mnemonic, " ", "\n")+" ", "")
	require.NoError(t, err)
	assert.Equal(t, seed, restored)

	withPass, err := keys.SeedFromMnemonic(mnemonic, "pass")
	require.NoError(t, err)
	assert.NotEqual(t, seed, withPass)
}

func TestSeedFromMnemonic_KnownVector(t *testing.T) {
	t.Parallel()

	mnemonic := strings.Repeat("abandon ", 23) + "art"

	seed, err := keys.SeedFromMnemonic(mnemonic, "TREZOR")
	require.NoError(t, err)
	assert.Equal(t,
		"bda85446c68413707090a52022edd26a1c9462295029f2e60cd7c4f2bbd3097"+
			"170af7a4d73245cafa9c3cca8d561a7c3de6f5d4a10be8ed2a5e608d68f92fcc8",
		hex.EncodeToString(seed))
}

func TestSeedFromMnemonic_Negative(t *testing.T) {
	t.Parallel()

	_, err := keys.SeedFromMnemonic(strings.Repeat("abandon ", 24), "")
	require.ErrorIs(t, err, keys.ErrInvalidMnemonic)

	_, _, err = keys.NewMnemonicSeed(brokenEntropy{}, "")
	require.ErrorIs(t, err, errBrokenEntropy)
}
