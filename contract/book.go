package contract

import (
	"bytes"
	"encoding/json"
)

// AddressBook maps contract names to the raw address found in their
// description file. Names keep the position of their first insertion; a
// later Set for the same name replaces the value in place.
type AddressBook struct {
	names []string
	addrs map[string]json.RawMessage
}

func NewAddressBook() *AddressBook {
	return &AddressBook{addrs: map[string]json.RawMessage{}}
}

// Set records addr under name, replacing any previous address.
// A nil addr records the name without an address.
func (b *AddressBook) Set(name string, addr json.RawMessage) {
	if _, found := b.addrs[name]; !found {
		b.names = append(b.names, name)
	}
	b.addrs[name] = addr
}

// Get returns the address stored for name. found is true even when the name
// was recorded without an address.
func (b *AddressBook) Get(name string) (addr json.RawMessage, found bool) {
	addr, found = b.addrs[name]
	return addr, found
}

func (b *AddressBook) Names() []string {
	return append([]string(nil), b.names...)
}

func (b *AddressBook) Len() int {
	return len(b.names)
}

// MarshalJSON writes the book as one compact JSON object in insertion order.
// Names recorded without an address are left out of the object.
func (b *AddressBook) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	first := true
	for _, name := range b.names {
		addr := b.addrs[name]
		if addr == nil {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		if err := writeKey(buf, name); err != nil {
			return nil, err
		}
		if err := json.Compact(buf, addr); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// InterfaceSet maps contract names to their raw ABI. The first ABI added
// for a name is kept; later ones are ignored.
type InterfaceSet struct {
	names []string
	abis  map[string]json.RawMessage
}

func NewInterfaceSet() *InterfaceSet {
	return &InterfaceSet{abis: map[string]json.RawMessage{}}
}

// Add records abi under name unless name is already taken, and reports
// whether it did. A nil abi still takes the name.
func (s *InterfaceSet) Add(name string, abi json.RawMessage) bool {
	if _, found := s.abis[name]; found {
		return false
	}
	s.names = append(s.names, name)
	s.abis[name] = abi
	return true
}

func (s *InterfaceSet) Get(name string) (abi json.RawMessage, found bool) {
	abi, found = s.abis[name]
	return abi, found
}

func (s *InterfaceSet) Names() []string {
	return append([]string(nil), s.names...)
}

func (s *InterfaceSet) Len() int {
	return len(s.names)
}

// writeKey writes name as a JSON object key followed by ':'. <, > and &
// are written as is.
func writeKey(buf *bytes.Buffer, name string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(name); err != nil {
		return err
	}
	// Encode terminates every value with a newline.
	buf.Truncate(buf.Len() - 1)
	buf.WriteByte(':')
	return nil
}
