// Package conv collects tiny helper functions that are not part of the public API
// but aid internal conversions.
//
// Its main job is the canonical timestamp codec: every timestamp-typed field
// that crosses a serialization boundary (the credential file, query
// parameters) goes through FormatTime/ParseTime so all fields share one wire
// representation.
package conv
