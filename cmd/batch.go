package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tranvictor/contract-factori/config"
	"github.com/tranvictor/contract-factori/ui"
	"github.com/tranvictor/contract-factori/writer"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Publish several contract directories listed in a YAML file",
	Long: `Runs the root command once per job of a YAML file, one job after another:

	jobs:
	  - name: mainnet
	    in: ./abi/mainnet
	    out: ./out/mainnet
	    filename: ETH_ADDRESSES
	  - name: optimism
	    in: ./abi/optimism
	    out: ./out/optimism

A job without "in" or "out" is reported and skipped.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		jobs, err := config.LoadJobs(config.JobsFile)
		if err != nil {
			return err
		}
		runJobs(appUI, jobs, config.Summary)
		return nil
	},
}

func runJobs(u ui.UI, jobs []config.Job, summary bool) {
	if len(jobs) == 0 {
		u.Warn("No jobs to run")
		return
	}
	for _, job := range jobs {
		u.Section(job.Name)
		ju := u.Indent()
		if job.In == "" {
			ju.Error("Input path not specified (in)")
			continue
		}
		if job.Out == "" {
			ju.Error("Output path not specified (out)")
			continue
		}
		filename := job.Filename
		if filename == "" {
			filename = writer.DEFAULT_FILENAME
		}
		Publish(ju, PublishOptions{
			In:       job.In,
			Out:      job.Out,
			Filename: filename,
			Summary:  summary,
		})
	}
}

func init() {
	batchCmd.Flags().StringVarP(&config.JobsFile, "config", "c", "factori.yaml", "YAML file listing the jobs")
	batchCmd.Flags().BoolVarP(&config.Summary, "summary", "s", false, "print a table of the published contracts after each job")
	rootCmd.AddCommand(batchCmd)
}
