package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tanq16/rawget/internal/output"
	"github.com/tanq16/rawget/internal/utils"
)

func newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean [PATH]",
		Short: "Remove leftover part files next to PATH (default: current directory)",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			console := output.NewConsole(os.Stdout)
			dir := "."
			if len(args) > 0 {
				dir = filepath.Dir(args[0])
			}
			removed, err := utils.CleanTemp(dir)
			if err != nil {
				console.Error(fmt.Sprintf("Error cleaning up temporary files: %v", err))
				os.Exit(1)
			}
			console.Success(fmt.Sprintf("Removed %d temporary file(s)", removed))
		},
	}
}
