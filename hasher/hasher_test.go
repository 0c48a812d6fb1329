package hasher_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-skynet/hasher"
)

func TestBlake2b256Hasher(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []byte
		out  string
	}{
		{"empty", []byte(""), "0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8"},
		{"abc", []byte("abc"), "bddd813c634239723171ef3fee98579b94964e3bb1cb3e427262c8c068d52319"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			h := hasher.NewBlake2b256Hasher()

			result, err := h.Hash(test.in)
			require.NoError(t, err)

			assert.Equal(t, test.out, hex.EncodeToString(result))
		})
	}
}

func TestBlake2b256Hasher_Reusable(t *testing.T) {
	t.Parallel()

	h := hasher.NewBlake2b256Hasher()
	require.Equal(t, "blake2b-256", h.Name())

	first, err := h.Hash([]byte("abc"))
	require.NoError(t, err)

	second, err := h.Hash([]byte("abc"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBlake2b256Hasher_negative(t *testing.T) {
	t.Parallel()

	h := hasher.NewBlake2b256Hasher()

	_, err := h.Hash(nil)
	assert.ErrorIs(t, err, hasher.ErrDataIsNil)
}

func TestBlake2bSum(t *testing.T) {
	t.Parallel()

	joined, err := hasher.Blake2bSum(hasher.Blake2b256Size, []byte("abc"))
	require.NoError(t, err)

	parts, err := hasher.Blake2bSum(hasher.Blake2b256Size, []byte("a"), []byte("bc"), nil)
	require.NoError(t, err)

	assert.Equal(t, joined, parts)

	for _, size := range []int{1, 16, 64} {
		out, err := hasher.Blake2bSum(size, []byte("abc"))
		require.NoError(t, err)
		assert.Len(t, out, size)
	}
}

func TestBlake2bSum_negative(t *testing.T) {
	t.Parallel()

	for _, size := range []int{0, -1, 65} {
		_, err := hasher.Blake2bSum(size, []byte("abc"))
		require.ErrorIs(t, err, hasher.ErrInvalidSize)
	}
}
