// Package scanner builds the address book and the interface set out of a
// directory of contract description files.
//
// Both scans read the directory once, in whatever order the filesystem lists
// it, and stop at the first entry they cannot read, parse or name. What was
// collected before that entry is still returned, together with the error, so
// callers can publish partial results.
package scanner

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tranvictor/contract-factori/contract"
)

// Stats describes what a scan went through.
type Stats struct {
	// Entries is the number of directory entries fully processed.
	Entries int
	// Duplicates is the number of entries whose name was already taken.
	Duplicates int
}

// ExtractAddresses reads every entry of inPath and records its "address"
// under the part of the filename before the first ".". A later file
// overwrites the address of an earlier one with the same name.
func ExtractAddresses(inPath string) (*contract.AddressBook, Stats, error) {
	book := contract.NewAddressBook()
	stats := Stats{}
	err := walk(inPath, func(name string, d contract.Descriptor) error {
		key, err := contract.NameBeforeDot(name)
		if err != nil {
			return err
		}
		if _, found := book.Get(key); found {
			stats.Duplicates++
		}
		book.Set(key, d.Address)
		stats.Entries++
		return nil
	})
	return book, stats, err
}

// ExtractInterfaces reads every entry of inPath and records its "abi" under
// the part of the filename before the first "_" (or the first "." when the
// name has no "_"). Only the first file seen for a name is kept.
func ExtractInterfaces(inPath string) (*contract.InterfaceSet, Stats, error) {
	set := contract.NewInterfaceSet()
	stats := Stats{}
	err := walk(inPath, func(name string, d contract.Descriptor) error {
		key, err := contract.NameFromFilename(name)
		if err != nil {
			return err
		}
		if !set.Add(key, d.ABI) {
			stats.Duplicates++
		}
		stats.Entries++
		return nil
	})
	return set, stats, err
}

// walk feeds every entry of dir to visit, one at a time, and stops at the
// first error.
func walk(dir string, visit func(name string, d contract.Descriptor) error) error {
	names, err := listDir(dir)
	if err != nil {
		return err
	}
	for _, name := range names {
		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return err
		}
		d, err := contract.ParseDescriptor(content)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if err := visit(name, d); err != nil {
			return err
		}
	}
	return nil
}

// listDir returns the names in dir in the order the filesystem gives them.
// Unlike os.ReadDir the result is not sorted.
func listDir(dir string) ([]string, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.Readdirnames(-1)
}
