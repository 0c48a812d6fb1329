// Package marshaller converts typed values to and from their stored forms:
// YAML for configuration files and msgpack for revision cache records.
package marshaller

// TypedMarshaller is a generic interface for typed marshalling operations.
type TypedMarshaller[T any] interface {
	Marshal(data T) ([]byte, error)
	Unmarshal(data []byte) (T, error)
}

func zero[T any]() T {
	var out T
	return out
}
