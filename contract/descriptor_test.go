package contract

import (
	"testing"
)

func TestParseDescriptor(t *testing.T) {
	d, err := ParseDescriptor([]byte(`{"address":"0xAAA","abi":[{"x":1}],"bytecode":"0x00"}`))
	if err != nil {
		t.Fatalf("parse: %s", err)
	}
	if string(d.Address) != `"0xAAA"` {
		t.Errorf("unexpected address %s", d.Address)
	}
	if string(d.ABI) != `[{"x":1}]` {
		t.Errorf("unexpected abi %s", d.ABI)
	}
}

func TestParseDescriptorMissingFields(t *testing.T) {
	d, err := ParseDescriptor([]byte(`{"abi":[]}`))
	if err != nil {
		t.Fatalf("parse: %s", err)
	}
	if d.Address != nil {
		t.Errorf("expected no address, got %s", d.Address)
	}

	d, err = ParseDescriptor([]byte(`{"address":null}`))
	if err != nil {
		t.Fatalf("parse: %s", err)
	}
	if string(d.Address) != "null" {
		t.Errorf("expected explicit null address, got %q", d.Address)
	}
	if d.ABI != nil {
		t.Errorf("expected no abi, got %s", d.ABI)
	}
}

func TestParseDescriptorNonObject(t *testing.T) {
	for _, doc := range []string{`[1,2]`, `"text"`, `42`, ` true `} {
		d, err := ParseDescriptor([]byte(doc))
		if err != nil {
			t.Fatalf("%s: unexpected error %s", doc, err)
		}
		if d.Address != nil || d.ABI != nil {
			t.Errorf("%s: expected empty descriptor, got %+v", doc, d)
		}
	}
}

func TestParseDescriptorErrors(t *testing.T) {
	for _, doc := range []string{``, `{`, `{"address":}`, `null`, `{} {}`} {
		if _, err := ParseDescriptor([]byte(doc)); err == nil {
			t.Errorf("%q: expected an error", doc)
		}
	}
}

func TestParseDescriptorKeysAreCaseSensitive(t *testing.T) {
	d, err := ParseDescriptor([]byte(`{"address":"0xAAA","Address":"0xBBB","ABI":[{"x":9}]}`))
	if err != nil {
		t.Fatalf("parse: %s", err)
	}
	if string(d.Address) != `"0xAAA"` {
		t.Errorf("expected 0xAAA, got %s", d.Address)
	}
	if d.ABI != nil {
		t.Errorf("expected no abi, got %s", d.ABI)
	}

	d, err = ParseDescriptor([]byte(`{"ADDRESS":"0xBBB","Abi":[]}`))
	if err != nil {
		t.Fatalf("parse: %s", err)
	}
	if d.Address != nil || d.ABI != nil {
		t.Errorf("expected empty descriptor, got %+v", d)
	}
}

func TestParseDescriptorSkipsByteOrderMark(t *testing.T) {
	d, err := ParseDescriptor([]byte("\xef\xbb\xbf{\"address\":\"0xAAA\",\"abi\":[]}"))
	if err != nil {
		t.Fatalf("parse: %s", err)
	}
	if string(d.Address) != `"0xAAA"` {
		t.Errorf("expected 0xAAA, got %s", d.Address)
	}
	if string(d.ABI) != `[]` {
		t.Errorf("expected empty abi, got %s", d.ABI)
	}
}
