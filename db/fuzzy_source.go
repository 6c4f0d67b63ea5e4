package db

import (
	"fmt"
	"strings"
)

type AddressDesc struct {
	Name    string
	Address string
}

// FuzzySource lets sahilm/fuzzy match against "<name>_<address>" so a query
// can hit either the contract name or part of its address.
type FuzzySource []AddressDesc

func (self FuzzySource) Len() int {
	return len(self)
}

func (self FuzzySource) String(i int) string {
	return fmt.Sprintf("%s_%s", strings.Replace(self[i].Name, " ", "_", -1), self[i].Address)
}
