// Package codec encodes snapshot headers.
//
// A snapshot stores the name of the codec that wrote its header in front of
// the header bytes, and readers select the codec by that name. Renaming a
// codec therefore breaks every snapshot written with it.
package codec

import (
	"fmt"
	"maps"
	"slices"
)

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// Appender is implemented by codecs that can encode straight into a caller buffer.
type Appender interface {
	Append(dst []byte, v any) ([]byte, error)
}

var builtin = map[string]Codec{
	JSON{}.Name():   JSON{},
	GoJSON{}.Name(): GoJSON{},
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	c, ok := builtin[name]
	return c, ok
}

// Names returns the names of the built-in codecs in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(builtin))
}

// Append encodes v with c and appends the bytes to dst.
func Append(c Codec, dst []byte, v any) ([]byte, error) {
	if a, ok := c.(Appender); ok {
		return a.Append(dst, v)
	}
	b, err := c.Marshal(v)
	if err != nil {
		return dst, err
	}
	return append(dst, b...), nil
}

// MustMarshal is a helper for tests.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
