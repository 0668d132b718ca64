package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	rawhttp "github.com/tanq16/rawget/internal/downloaders/http"
	"github.com/tanq16/rawget/internal/output"
	"github.com/tanq16/rawget/internal/scheduler"
	"github.com/tanq16/rawget/internal/utils"
)

var (
	outputPath string
	halfClose  bool
	debug      bool
)

var RawgetVersion = "dev"

var rootCmd = &cobra.Command{
	Use:     "rawget [URL]",
	Short:   "Fetch one object over a raw HTTP/1.1 socket and save it",
	Version: RawgetVersion,
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger := utils.NewLogger(os.Stderr, debug)
		console := output.NewConsole(os.Stdout)
		runner := newScheduler(logger, console, output.NewSummary(os.Stdout))
		job := utils.FetchJob{
			JobType:    "http",
			URL:        args[0],
			OutputPath: outputPath,
			Metadata:   make(map[string]any),
		}
		jobs := []utils.FetchJob{job}
		if err := runner.Run(cmd.Context(), jobs); err != nil {
			console.Error(fmt.Sprintf("Download failed for %s", job.URL))
			os.Exit(1)
		}
		bytes, _ := jobs[0].Metadata["bytes"].(int64)
		console.Success(fmt.Sprintf("Saved %s (%s)", jobs[0].OutputPath, utils.FormatBytes(uint64(bytes))))
	},
}

func newScheduler(logger zerolog.Logger, console *output.Console, summary *output.Summary) *scheduler.Scheduler {
	client := rawhttp.NewClient(utils.ComponentLogger(logger, "http"), console)
	client.HalfClose = halfClose
	runner := scheduler.New(logger, summary)
	runner.Register("http", &rawhttp.HTTPDownloader{Client: client})
	return runner
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (defaults to the last URL path segment)")
	rootCmd.PersistentFlags().BoolVar(&halfClose, "half-close", false, "Shut down the write side after sending the request")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newBatchCmd())
	rootCmd.AddCommand(newCleanCmd())
}
