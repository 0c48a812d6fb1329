package revcache

import (
	"fmt"

	"github.com/tarantool/go-skynet/marshaller"
)

// record is the msgpack value stored per entry by remote caches.
type record struct {
	Revision uint64 `msgpack:"revision"`
}

var recordMarshaller marshaller.TypedMarshaller[record] = marshaller.NewTypedMsgpackMarshaller[record]()

func encodeRecord(revision uint64) ([]byte, error) {
	out, err := recordMarshaller.Marshal(record{Revision: revision})
	if err != nil {
		return nil, fmt.Errorf("failed to encode revision record: %w", err)
	}

	return out, nil
}

func decodeRecord(data []byte) (uint64, error) {
	rec, err := recordMarshaller.Unmarshal(data)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}

	return rec.Revision, nil
}
