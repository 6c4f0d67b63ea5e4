// Copyright © 2018 Victor Tran
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tranvictor/contract-factori/config"
	"github.com/tranvictor/contract-factori/ui"
	"github.com/tranvictor/contract-factori/writer"
)

const USAGE string = `
    Parse contract ABI files and addresses for doing multichain stuff

    contract-factori --filename ETH_ADDRESSES --in "./example/abi" --out "./example"
    `

// appUI is where every command reports to. It is set up by the root
// command's PersistentPreRunE from --log-format.
var appUI ui.UI = ui.NewTerminalUI()

// rawArgs is the argument list the root command was executed with.
var rawArgs []string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "contract-factori",
	Short: "Publish contract addresses and ABIs from a directory of contract descriptions",
	Long: fmt.Sprintf(`contract-factori reads a directory of contract description files (one JSON
file per deployed contract, as produced by deployment tooling) and publishes:

	1. One address file, <out>/<filename>.json, mapping every contract name
	to its address. The name is the filename up to its first ".", so
	"Vault_1.json" and "Vault_2.json" are two different contracts there.
	When two files end up with the same name the last one listed wins.

	2. One ABI file per contract, <out>/<name>.json. Here the name is the
	filename up to its first "_" (or first "." when there is none), so
	"Vault_1.json" and "Vault_2.json" share a single Vault.json ABI. The
	first file listed wins.

Files are processed in the order the filesystem lists them. A file that can't
be read or parsed stops the scan; what was collected before it is still
published. Problems are reported, never turned into a failing exit code.

The address file is named %s.json unless --filename says otherwise.`,
		writer.DEFAULT_FILENAME,
	),
	// Positional arguments are ignored, they only count toward the usage
	// check.
	Args: cobra.ArbitraryArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch config.LogFormat {
		case "", "text":
			appUI = terminalUI(cmd)
		case "json":
			logUI, err := ui.NewProductionLogUI(uuid.NewString())
			if err != nil {
				return err
			}
			appUI = logUI
		default:
			return fmt.Errorf("unsupported log format %q, valid values: \"text\", \"json\"", config.LogFormat)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logUI, ok := appUI.(*ui.LogUI); ok {
			// stderr can't always be synced, nothing to do about it.
			_ = logUI.Sync()
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		runRoot(appUI, rawArgs, PublishOptions{
			In:       config.InPath,
			Out:      config.OutPath,
			Filename: config.Filename,
			Summary:  config.Summary,
		})
	},
}

// runRoot validates opts the way the command line is validated and runs
// Publish. rawArgs is the untouched argument list, only its length matters.
func runRoot(u ui.UI, rawArgs []string, opts PublishOptions) {
	if len(rawArgs) <= 1 {
		u.Info(USAGE)
		return
	}
	if opts.In == "" {
		u.Error("Input path not specified (--in)")
		return
	}
	if opts.Out == "" {
		u.Error("Output path not specified (--out)")
		return
	}
	if opts.Filename == "" {
		opts.Filename = writer.DEFAULT_FILENAME
	}
	Publish(u, opts)
}

// terminalUI writes to the command's output, in colour only when that output
// is a terminal.
func terminalUI(cmd *cobra.Command) ui.UI {
	out := cmd.OutOrStdout()
	colors := false
	if f, ok := out.(*os.File); ok {
		colors = term.IsTerminal(int(f.Fd()))
	}
	return ui.NewTerminalUIWithWriter(out, colors)
}

// rootFlagError keeps bad root command lines from failing the process: with
// at most one argument the usage is shown, otherwise the error is reported.
// Subcommands keep cobra's behaviour.
func rootFlagError(cmd *cobra.Command, err error) error {
	if cmd != rootCmd {
		return err
	}
	u := terminalUI(cmd)
	if len(rawArgs) <= 1 {
		u.Info(USAGE)
		return nil
	}
	u.Error("%s", err)
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&config.LogFormat, "log-format", "text", "output format. Valid values: \"text\", \"json\" (structured logs on stderr).")
	rootCmd.Flags().StringVarP(&config.InPath, "in", "i", "", "directory holding one contract description JSON file per contract")
	rootCmd.Flags().StringVarP(&config.OutPath, "out", "o", "", "directory to write the address file and the ABI files to")
	rootCmd.Flags().StringVarP(&config.Filename, "filename", "f", writer.DEFAULT_FILENAME, "name of the address file, without the .json extension")
	rootCmd.Flags().BoolVarP(&config.Summary, "summary", "s", false, "print a table of the published contracts")
	rootCmd.SetFlagErrorFunc(rootFlagError)
}

// execute runs the command line args.
func execute(args []string) error {
	if args == nil {
		// cobra falls back to os.Args on a nil slice.
		args = []string{}
	}
	rawArgs = args
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

// Execute runs the command line of the process.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := execute(os.Args[1:]); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
