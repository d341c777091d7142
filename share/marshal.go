package share

import (
	"fmt"

	"github.com/Pro7ech/beaver/field"
)

// Bytes returns the canonical encoding of v: the fixed-width big-endian
// encoding of each entry, in party order.
func Bytes(f field.Parameters, v Vector) []byte {
	data := make([]byte, 0, v.N()*f.ByteLen())
	for i := range v {
		data = append(data, f.Bytes(v[i])...)
	}
	return data
}

// SetBytes decodes a [Vector] from its canonical encoding.
func SetBytes(f field.Parameters, data []byte) (Vector, error) {

	w := f.ByteLen()

	if len(data)%w != 0 {
		return nil, fmt.Errorf("invalid vector encoding: %d bytes is not a multiple of the element width %d", len(data), w)
	}

	v := make(Vector, len(data)/w)
	for i := range v {
		var err error
		if v[i], err = f.SetBytes(data[i*w : (i+1)*w]); err != nil {
			return nil, fmt.Errorf("invalid vector encoding: entry %d: %w", i, err)
		}
	}
	return v, nil
}
