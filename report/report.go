// Package report summarizes a run for the operator: which contracts were
// published, whether their address looks like an EVM address and how big
// their interface is. It only reads what the scans already collected.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	ethcommon "github.com/ethereum/go-ethereum/common"

	"github.com/tranvictor/contract-factori/contract"
	"github.com/tranvictor/contract-factori/ui"
)

// Row is the summary of one contract name.
type Row struct {
	Name    string
	Address ui.StyledText
	ABI     ui.StyledText
}

// AddressCell describes a raw address value. Anything that is not a string
// holding a 20 byte hex address is flagged, but kept verbatim.
func AddressCell(raw json.RawMessage, found bool) ui.StyledText {
	if !found {
		return ui.StyledText{Text: "-", Severity: ui.SeverityInfo}
	}
	if raw == nil {
		return ui.StyledText{Text: "missing", Severity: ui.SeverityError}
	}
	var addr string
	if raw[0] != '"' || json.Unmarshal(raw, &addr) != nil {
		return ui.StyledText{Text: fmt.Sprintf("not a string: %s", raw), Severity: ui.SeverityWarn}
	}
	if !ethcommon.IsHexAddress(addr) {
		return ui.StyledText{Text: fmt.Sprintf("%s (not an address)", addr), Severity: ui.SeverityWarn}
	}
	return ui.StyledText{Text: addr, Severity: ui.SeveritySuccess}
}

// ABICell describes a raw interface by counting its methods, events and
// errors. Interfaces go-ethereum can't read are flagged, not rejected.
func ABICell(raw json.RawMessage, found bool) ui.StyledText {
	if !found {
		return ui.StyledText{Text: "-", Severity: ui.SeverityInfo}
	}
	if raw == nil {
		return ui.StyledText{Text: "missing", Severity: ui.SeverityError}
	}
	parsed, err := abi.JSON(bytes.NewReader(raw))
	if err != nil {
		return ui.StyledText{Text: "unrecognized", Severity: ui.SeverityWarn}
	}
	return ui.StyledText{
		Text: fmt.Sprintf(
			"%d methods, %d events, %d errors",
			len(parsed.Methods), len(parsed.Events), len(parsed.Errors),
		),
		Severity: ui.SeveritySuccess,
	}
}

// Rows lists every contract name of book followed by the names only set
// knows about.
func Rows(book *contract.AddressBook, set *contract.InterfaceSet) []Row {
	names := book.Names()
	seen := map[string]bool{}
	for _, n := range names {
		seen[n] = true
	}
	for _, n := range set.Names() {
		if !seen[n] {
			names = append(names, n)
		}
	}

	rows := make([]Row, 0, len(names))
	for _, n := range names {
		addr, addrFound := book.Get(n)
		iface, ifaceFound := set.Get(n)
		rows = append(rows, Row{
			Name:    n,
			Address: AddressCell(addr, addrFound),
			ABI:     ABICell(iface, ifaceFound),
		})
	}
	return rows
}

// Print renders the summary table on u.
func Print(u ui.UI, book *contract.AddressBook, set *contract.InterfaceSet) {
	rows := Rows(book, set)
	if len(rows) == 0 {
		u.Info("Nothing to summarize")
		return
	}
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{r.Name, u.Style(r.Address), u.Style(r.ABI)})
	}
	u.Table([]string{"Contract", "Address", "Interface"}, cells)
}
