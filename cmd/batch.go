package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tanq16/rawget/internal/output"
	"github.com/tanq16/rawget/internal/utils"
)

func newBatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch [YAML_FILE]",
		Short: "Fetch every link in a YAML list, one after another",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			logger := utils.NewLogger(os.Stderr, debug)
			console := output.NewConsole(os.Stdout)
			entries, err := utils.ReadDownloadList(args[0])
			if err != nil {
				logger.Error().Err(err).Str("file", args[0]).Msg("cannot read download list")
				console.Error("Failed to read download list")
				os.Exit(1)
			}
			summary := output.NewSummary(os.Stdout)
			runner := newScheduler(logger, console, summary)
			err = runner.Run(cmd.Context(), buildJobs(entries))
			summary.Show()
			if err != nil {
				os.Exit(1)
			}
		},
	}
}

func buildJobs(entries []utils.DownloadEntry) []utils.FetchJob {
	jobs := make([]utils.FetchJob, 0, len(entries))
	for _, entry := range entries {
		jobs = append(jobs, utils.FetchJob{
			JobType:    "http",
			URL:        entry.URL,
			OutputPath: entry.OutputPath,
			Metadata:   make(map[string]any),
		})
	}
	return jobs
}
