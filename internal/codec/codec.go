// Package codec converts the home list to and from the string payload carried
// by the result route.
//
// The payload is the JSON array [{"name": "..."}, ...] percent-encoded as a
// single opaque segment. Every byte outside A-Z a-z 0-9 - _ . ~ is escaped, so
// the payload never contains route delimiters.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/faizmokh/daftar/internal/roster"
)

type wireEntry struct {
	Name string `json:"name"`
}

// Result is the outcome of Decode. Err is nil when Entries holds the payload.
type Result struct {
	Entries []roster.Entry
	Err     error
}

// OK reports whether the payload decoded cleanly.
func (r Result) OK() bool {
	return r.Err == nil
}

// List returns the decoded entries, or an empty list when decoding failed.
// Failure never yields a partial list.
func (r Result) List() []roster.Entry {
	if r.Err != nil || r.Entries == nil {
		return []roster.Entry{}
	}
	return r.Entries
}

// Encode serializes entries in order and percent-encodes the JSON text.
func Encode(entries []roster.Entry) string {
	wire := make([]wireEntry, len(entries))
	for i := range entries {
		wire[i] = wireEntry{Name: entries[i].Name}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(wire); err != nil {
		// A slice of string fields always marshals.
		panic(fmt.Sprintf("codec: encode entries: %v", err))
	}

	return escape(strings.TrimSuffix(buf.String(), "\n"))
}

// Decode reverses Encode. Any failure is reported through Result.Err and the
// entry list is left empty.
func Decode(payload string) Result {
	if payload == "" {
		return Result{Err: ErrEmptyPayload}
	}

	text, err := url.PathUnescape(payload)
	if err != nil {
		return Result{Err: fmt.Errorf("%w: %v", ErrBadEscape, err)}
	}

	// Objects are read as raw maps so the "name" key matches exactly;
	// struct decoding would also accept "Name" or "NAME".
	var wire []map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &wire); err != nil {
		return Result{Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
	}

	entries := make([]roster.Entry, 0, len(wire))
	for i, item := range wire {
		name, err := decodeName(item)
		if err != nil {
			return Result{Err: fmt.Errorf("%w: element %d", err, i)}
		}
		entries = append(entries, roster.Entry{Name: name})
	}
	return Result{Entries: entries}
}

func decodeName(item map[string]json.RawMessage) (string, error) {
	raw, ok := item["name"]
	if !ok || string(raw) == "null" {
		return "", ErrMissingName
	}
	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return name, nil
}

// escape percent-encodes everything but unreserved characters. QueryEscape
// already does that apart from writing spaces as '+'.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
