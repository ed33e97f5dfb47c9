// Package codec turns iteration events and run results into bytes.
//
// observer.Stream writes one encoded event per line, so a renderer in another
// process can replay centroid movement. JSON (encoding/json) and GoJSON
// (github.com/goccy/go-json) emit equivalent documents for kmeansgo types,
// so a stream written with one decodes with the other.
package codec

import "fmt"

// Codec encodes and decodes events. One Codec may serve several streams at
// once, so implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName resolves a codec name as given on a command line ("json" or
// "go-json").
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// MustMarshal encodes v with c, or Default if c is nil, and panics on error.
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
