package marshaller //nolint:testpackage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrMarshal(t *testing.T) {
	t.Parallel()

	t.Run("with parent error", func(t *testing.T) {
		t.Parallel()

		parentErr := errors.New("unsupported type")
		err := errMarshal(formatYAML, parentErr)
		require.EqualError(t, err, "failed to marshal yaml: unsupported type")
		require.ErrorIs(t, err, parentErr)

		var marshalErr MarshalError
		require.ErrorAs(t, err, &marshalErr)
		assert.Equal(t, parentErr, marshalErr.Unwrap())
	})

	t.Run("with nil parent error", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, errMarshal(formatYAML, nil))
	})
}

func TestErrUnmarshal(t *testing.T) {
	t.Parallel()

	t.Run("with parent error", func(t *testing.T) {
		t.Parallel()

		parentErr := errors.New("invalid code")
		err := errUnmarshal(formatMsgpack, parentErr)
		require.EqualError(t, err, "failed to unmarshal msgpack: invalid code")
		require.ErrorIs(t, err, parentErr)

		var unmarshalErr UnmarshalError
		require.ErrorAs(t, err, &unmarshalErr)
		assert.Equal(t, parentErr, unmarshalErr.Unwrap())
	})

	t.Run("with nil parent error", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, errUnmarshal(formatMsgpack, nil))
	})
}
