package codec

import "encoding/json"

// JSON encodes headers with encoding/json, for snapshots that must be
// readable by tools without extra dependencies.
type JSON struct{}

func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns "json".
func (JSON) Name() string { return "json" }

// Default is the codec used for newly encoded snapshots.
var Default Codec = GoJSON{}
