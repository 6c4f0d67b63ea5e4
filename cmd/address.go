package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tranvictor/contract-factori/config"
	"github.com/tranvictor/contract-factori/db"
	"github.com/tranvictor/contract-factori/ui"
)

var addressCmd = &cobra.Command{
	Use:   "addr [query]",
	Short: "Find at max 10 contracts matching the query in an address file",
	Long: `Looks the query up in an address file written by contract-factori and
shows the best matches, best first. The query is matched against both the
contract name and its address.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		if config.BestMatch {
			return lookupBestAddress(appUI, config.AddressFile, query)
		}
		return lookupAddresses(appUI, config.AddressFile, query)
	},
}

func lookupAddresses(u ui.UI, file, query string) error {
	source, err := db.LoadAddressFile(file)
	if err != nil {
		return err
	}
	addrs, scores := db.GetAddresses(query, source)
	if len(addrs) == 0 {
		u.Warn("No contract in %s matches '%s'", file, query)
		return nil
	}
	rows := make([][]string, 0, len(addrs))
	for i, addr := range addrs {
		rows = append(rows, []string{fmt.Sprintf("%d", scores[i]), addr.Name, addr.Address})
	}
	u.Table([]string{"Score", "Contract", "Address"}, rows)
	return nil
}

// lookupBestAddress shows only the best match, in a form easy to copy.
func lookupBestAddress(u ui.UI, file, query string) error {
	source, err := db.LoadAddressFile(file)
	if err != nil {
		return err
	}
	best, err := db.GetAddress(query, source)
	if err != nil {
		u.Warn("%s", err)
		return nil
	}
	u.KeyValue([][2]string{
		{"Contract", best.Name},
		{"Address", best.Address},
	})
	return nil
}

func init() {
	addressCmd.Flags().StringVarP(&config.AddressFile, "file", "f", "ADDRESSES.json", "address file to search")
	addressCmd.Flags().BoolVarP(&config.BestMatch, "best", "b", false, "only show the best match")
	rootCmd.AddCommand(addressCmd)
}
