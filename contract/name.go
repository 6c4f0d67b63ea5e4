package contract

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoSeparator is returned when a filename carries none of the separators
// a contract name can be cut at.
var ErrNoSeparator = errors.New("filename has no separator to derive a contract name from")

const (
	nameSeparator = "_"
	extSeparator  = "."
)

// NameBeforeDot returns the part of filename before its first ".".
// "Vault_1.json" -> "Vault_1", "Vault.v2.json" -> "Vault".
func NameBeforeDot(filename string) (string, error) {
	i := strings.Index(filename, extSeparator)
	if i == -1 {
		return "", fmt.Errorf("%q: %w", filename, ErrNoSeparator)
	}
	return filename[:i], nil
}

// NameFromFilename returns the part of filename before its first "_", or
// before its first "." when there is no "_" at all. This is the rule used to
// group several deployments of the same contract under one interface.
// "Vault_1.json" -> "Vault", "Vault.json" -> "Vault".
func NameFromFilename(filename string) (string, error) {
	if i := strings.Index(filename, nameSeparator); i != -1 {
		return filename[:i], nil
	}
	return NameBeforeDot(filename)
}
