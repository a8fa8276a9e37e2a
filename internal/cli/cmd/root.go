// Package cmd provides Cobra CLI commands for webpane.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/webpane/internal/cli"
	"github.com/bnema/webpane/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "webpane",
		Short: "A web browser pane with a navigation toolbar",
		Long: `webpane - a web browser pane for your editor workflow.

Open a file in a GTK4/WebKitGTK pane, resolved through a URL template
(file:// by default, or your dev server), with a navigation toolbar,
auto reload on save and developer tools.

Use 'webpane browse [file]' to launch the graphical pane, or explore the
subcommands for CLI operations like resolving templates and managing
saved panes.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "version", "browse":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "webpane %s\n", buildInfo.Version)
		fmt.Fprintf(out, "  commit:  %s\n", buildInfo.Commit)
		fmt.Fprintf(out, "  built:   %s\n", buildInfo.BuildDate)
		fmt.Fprintf(out, "  go:      %s\n", buildInfo.GoVersion)
		fmt.Fprintf(out, "  source:  %s\n", build.RepoURL())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
