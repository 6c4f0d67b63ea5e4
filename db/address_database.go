package db

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sahilm/fuzzy"
)

const MAX_MATCHES int = 10

// LoadAddressFile reads an aggregate address file written by the root
// command. Entries come back in file order. Addresses that are not JSON
// strings are kept in their JSON form.
func LoadAddressFile(path string) (FuzzySource, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(content))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("couldn't read address file %s: %w", path, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("address file %s is not a JSON object", path)
	}
	result := FuzzySource{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("couldn't read address file %s: %w", path, err)
		}
		name := tok.(string)
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("couldn't read address of %s in %s: %w", name, path, err)
		}
		addr := string(raw)
		var s string
		if raw[0] == '"' && json.Unmarshal(raw, &s) == nil {
			addr = s
		}
		result = append(result, AddressDesc{Name: name, Address: addr})
	}
	return result, nil
}

func getAddressMatches(input string, source FuzzySource) ([]AddressDesc, []int) {
	matches := fuzzy.FindFrom(strings.Replace(input, " ", "_", -1), source)
	result := []AddressDesc{}
	scores := []int{}
	for i := 0; i < MAX_MATCHES; i++ {
		if i < len(matches) {
			result = append(result, source[matches[i].Index])
			scores = append(scores, matches[i].Score)
		} else {
			break
		}
	}
	return result, scores
}

// GetAddresses returns at most MAX_MATCHES entries of source matching input,
// best match first, along with their scores.
func GetAddresses(input string, source FuzzySource) ([]AddressDesc, []int) {
	return getAddressMatches(input, source)
}

// GetAddress returns the best entry of source matching input.
func GetAddress(input string, source FuzzySource) (AddressDesc, error) {
	matches, _ := getAddressMatches(input, source)
	if len(matches) == 0 {
		return AddressDesc{}, fmt.Errorf("No address is found with '%s'", input)
	}
	return matches[0], nil
}
