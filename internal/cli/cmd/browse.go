package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// BrowseOptions are the inputs of the graphical pane.
type BrowseOptions struct {
	// Path is an absolute file path to open, empty for the homepage.
	Path string
	// Restore reopens the panes saved on the last shutdown.
	Restore bool
}

// BrowseFunc runs the graphical pane and returns the process exit code.
type BrowseFunc func(ctx context.Context, opts BrowseOptions) int

var (
	browseRunner    BrowseFunc
	browseNoRestore bool
)

// SetBrowseRunner installs the GUI entry point. The GTK stack lives in main
// so CLI-only commands never load it.
func SetBrowseRunner(fn BrowseFunc) {
	browseRunner = fn
}

var browseCmd = &cobra.Command{
	Use:   "browse [file]",
	Short: "Launch the graphical web pane",
	Long: `Launch the GTK4 web pane.

If a file is provided, its location is resolved through the configured URL
template. Otherwise the homepage is opened. Panes saved on the last shutdown
are restored unless --no-restore is given.

Examples:
  webpane browse                  # Restore saved panes or open the homepage
  webpane browse docs/index.html  # Open a file
  webpane browse --no-restore .   # Open the current directory only`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
	browseCmd.Flags().BoolVar(&browseNoRestore, "no-restore", false, "do not reopen saved panes")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if browseRunner == nil {
		return fmt.Errorf("graphical pane not available in this build")
	}

	opts := BrowseOptions{Restore: !browseNoRestore}
	if len(args) == 1 {
		path, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("resolve %s: %w", args[0], err)
		}
		opts.Path = path
	}

	if code := browseRunner(cmd.Context(), opts); code != 0 {
		os.Exit(code)
	}
	return nil
}
