package codec

import gojson "github.com/goccy/go-json"

// GoJSON is the default header codec, backed by github.com/goccy/go-json.
type GoJSON struct{}

func (GoJSON) Marshal(v any) ([]byte, error) { return gojson.Marshal(v) }

func (GoJSON) Unmarshal(data []byte, v any) error { return gojson.Unmarshal(data, v) }

// Name returns "go-json".
func (GoJSON) Name() string { return "go-json" }

// Append implements Appender. Headers are small, so the encoder output is
// copied rather than streamed.
func (GoJSON) Append(dst []byte, v any) ([]byte, error) {
	b, err := gojson.MarshalNoEscape(v)
	if err != nil {
		return dst, err
	}
	return append(dst, b...), nil
}
