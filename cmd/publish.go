package cmd

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/tranvictor/contract-factori/report"
	"github.com/tranvictor/contract-factori/scanner"
	"github.com/tranvictor/contract-factori/ui"
	"github.com/tranvictor/contract-factori/writer"
)

type PublishOptions struct {
	In       string
	Out      string
	Filename string
	Summary  bool
}

// Publish extracts the addresses of opts.In into one file, then publishes
// one interface file per contract, both into opts.Out. Every failure is
// reported on u and the run goes on with whatever it has; Publish never
// fails.
func Publish(u ui.UI, opts PublishOptions) {
	book, stats, err := scanner.ExtractAddresses(opts.In)
	if err != nil {
		u.Error("Couldn't read all contract descriptions in %s: %s", opts.In, err)
	}
	u.Info("Read %d files, found %d contract addresses", stats.Entries, book.Len())
	if book.Len() > 0 {
		path, err := writer.WriteAddresses(book, opts.Out, opts.Filename)
		if err != nil {
			u.Error("Couldn't write addresses: %s", err)
		} else {
			u.Success("Addresses parsed to %s", path)
		}
	}

	set, stats, err := scanner.ExtractInterfaces(opts.In)
	if err != nil {
		u.Error("Couldn't read all contract descriptions in %s: %s", opts.In, err)
	}
	u.Info("Read %d files, found %d contract interfaces (%d duplicates skipped)", stats.Entries, set.Len(), stats.Duplicates)
	abisWritten := 0
	if set.Len() > 0 {
		written, err := writer.WriteInterfaces(set, opts.Out)
		abisWritten = len(written)
		if err != nil {
			u.Error(
				"Couldn't write %d of %d ABIs to %s: %s",
				len(multierr.Errors(err)), set.Len(), opts.Out, err,
			)
		} else {
			u.Success("ABIs cleaned to %s", opts.Out)
		}
	}

	u.KeyValue([][2]string{
		{"Input", opts.In},
		{"Output", opts.Out},
		{"Address file", writer.AddressFilePath(opts.Out, opts.Filename)},
		{"Addresses", fmt.Sprintf("%d", book.Len())},
		{"ABIs", fmt.Sprintf("%d of %d written", abisWritten, set.Len())},
	})

	if opts.Summary {
		report.Print(u, book, set)
	}
}
