package codec

import (
	"encoding/json"
)

// JSON encodes with encoding/json. Its output is the reference form that
// Point.MarshalJSON and the event types are written against.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the codec a Stream uses unless WithCodec names another.
var Default Codec = GoJSON{}
