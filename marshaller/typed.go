package marshaller

import (
	"bytes"
	"errors"
	"io"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

const (
	formatYAML    = "yaml"
	formatMsgpack = "msgpack"
)

// TypedYamlMarshaller is a generic YAML marshaller for typed objects.
// Unknown fields are rejected on Unmarshal.
type TypedYamlMarshaller[T any] struct{}

var _ TypedMarshaller[struct{}] = TypedYamlMarshaller[struct{}]{}

// NewTypedYamlMarshaller creates a new TypedYamlMarshaller for the specified type.
func NewTypedYamlMarshaller[T any]() TypedYamlMarshaller[T] {
	return TypedYamlMarshaller[T]{}
}

// Marshal serializes the typed data to YAML format.
func (m TypedYamlMarshaller[T]) Marshal(data T) ([]byte, error) {
	marshalled, err := yaml.Marshal(data)
	if err != nil {
		return []byte{}, errMarshal(formatYAML, err)
	}

	return marshalled, nil
}

// Unmarshal deserializes YAML data into a typed object. Empty input yields
// the zero value.
func (m TypedYamlMarshaller[T]) Unmarshal(data []byte) (T, error) {
	var out T

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	err := decoder.Decode(&out)
	switch {
	case errors.Is(err, io.EOF):
		return zero[T](), nil
	case err != nil:
		return zero[T](), errUnmarshal(formatYAML, err)
	}

	return out, nil
}

// TypedMsgpackMarshaller is a generic msgpack marshaller for typed objects.
type TypedMsgpackMarshaller[T any] struct{}

var _ TypedMarshaller[struct{}] = TypedMsgpackMarshaller[struct{}]{}

// NewTypedMsgpackMarshaller creates a new TypedMsgpackMarshaller for the specified type.
func NewTypedMsgpackMarshaller[T any]() TypedMsgpackMarshaller[T] {
	return TypedMsgpackMarshaller[T]{}
}

// Marshal serializes the typed data to msgpack.
func (m TypedMsgpackMarshaller[T]) Marshal(data T) ([]byte, error) {
	marshalled, err := msgpack.Marshal(&data)
	if err != nil {
		return []byte{}, errMarshal(formatMsgpack, err)
	}

	return marshalled, nil
}

// Unmarshal deserializes msgpack data into a typed object.
func (m TypedMsgpackMarshaller[T]) Unmarshal(data []byte) (T, error) {
	var out T

	if err := msgpack.Unmarshal(data, &out); err != nil {
		return zero[T](), errUnmarshal(formatMsgpack, err)
	}

	return out, nil
}
