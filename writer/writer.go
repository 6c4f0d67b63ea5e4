package writer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"

	"github.com/tranvictor/contract-factori/contract"
)

const DEFAULT_FILENAME string = "ADDRESSES"

var ErrMissingABI = errors.New("no abi in contract description")

// AddressFilePath is where the address book named filename lands in outPath.
func AddressFilePath(outPath, filename string) string {
	return filepath.Join(outPath, fmt.Sprintf("%s.json", filename))
}

// InterfaceFilePath is where the interface of contract name lands in outPath.
func InterfaceFilePath(outPath, name string) string {
	return filepath.Join(outPath, fmt.Sprintf("%s.json", name))
}

// WriteAddresses writes book to <outPath>/<filename>.json and returns the
// path written.
func WriteAddresses(book *contract.AddressBook, outPath, filename string) (string, error) {
	path := AddressFilePath(outPath, filename)
	data, err := book.MarshalJSON()
	if err != nil {
		return path, fmt.Errorf("couldn't encode addresses: %w", err)
	}
	return path, os.WriteFile(path, data, 0644)
}

// WriteInterfaces writes every interface of set to <outPath>/<name>.json.
// A failing file doesn't stop the others; all failures are returned together
// once every file has been attempted.
func WriteInterfaces(set *contract.InterfaceSet, outPath string) (written []string, err error) {
	for _, name := range set.Names() {
		path := InterfaceFilePath(outPath, name)
		abi, _ := set.Get(name)
		if werr := writeInterface(path, abi); werr != nil {
			err = multierr.Append(err, fmt.Errorf("%s: %w", name, werr))
			continue
		}
		written = append(written, path)
	}
	return written, err
}

func writeInterface(path string, abi json.RawMessage) error {
	if abi == nil {
		return ErrMissingABI
	}
	buf := &bytes.Buffer{}
	if err := json.Compact(buf, abi); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
