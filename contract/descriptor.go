package contract

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var errNullDescriptor = errors.New("contract description is null")

var utf8BOM = []byte("\xef\xbb\xbf")

// Descriptor is the part of a contract description file this tool cares
// about, the "address" and "abi" keys, spelled exactly that way. Both fields
// are kept as raw JSON so whatever the file holds is republished untouched.
// A nil field means the key was absent from the file; an explicit JSON null
// is kept as the literal "null".
type Descriptor struct {
	Address json.RawMessage
	ABI     json.RawMessage
}

// ParseDescriptor decodes a contract description file.
//
// Any valid JSON document is accepted. Documents that are not objects (arrays,
// strings, numbers) carry neither field and give an empty Descriptor. A
// top-level null has no fields to look up at all and is rejected. A leading
// UTF-8 byte order mark is skipped.
func ParseDescriptor(data []byte) (Descriptor, error) {
	trimmed := bytes.TrimSpace(bytes.TrimPrefix(data, utf8BOM))
	if !json.Valid(trimmed) {
		// Unmarshal gives the more precise syntax error.
		var v any
		err := json.Unmarshal(trimmed, &v)
		if err == nil {
			err = errors.New("invalid JSON")
		}
		return Descriptor{}, fmt.Errorf("couldn't parse contract description: %w", err)
	}
	if bytes.Equal(trimmed, []byte("null")) {
		return Descriptor{}, errNullDescriptor
	}
	if trimmed[0] != '{' {
		return Descriptor{}, nil
	}
	// A map keeps key lookups case sensitive, struct tags would not.
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return Descriptor{}, fmt.Errorf("couldn't parse contract description: %w", err)
	}
	return Descriptor{Address: fields["address"], ABI: fields["abi"]}, nil
}
