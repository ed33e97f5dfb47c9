// Package observer provides consumer-side kmeansgo.Observer adapters.
//
// Engines notify observers synchronously and never pace themselves. The
// adapters here cover the usual consumer needs:
//
//   - Recorder keeps every event in memory.
//   - Stream writes events as newline-delimited JSON through a codec.
//   - Paced forwards iteration events no faster than a given rate, e.g. to
//     animate centroid movement.
//   - Multi fans events out to several observers.
package observer
