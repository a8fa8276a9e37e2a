package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bnema/webpane/internal/cli/styles"
	"github.com/bnema/webpane/internal/infrastructure/config"
)

var configSchemaPlain bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show where configuration, data and logs live, and print the config JSON schema.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show config, database and log locations",
	RunE:  runConfigPath,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	RunE:  runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSchemaCmd)
	configSchemaCmd.Flags().BoolVar(&configSchemaPlain, "plain", false, "never colorize output")
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	configFile, err := config.GetConfigFile()
	if err != nil {
		return err
	}

	r := styles.NewPanesRenderer(app.Theme)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, r.RenderPath(styles.IconConfig, "config  ", configFile))
	fmt.Fprintln(out, r.RenderPath(styles.IconDatabase, "database", app.Config.Database.Path))
	fmt.Fprintln(out, r.RenderPath(styles.IconLogs, "logs    ", app.Config.Logging.LogDir))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	data, err := config.Schema()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if !configSchemaPlain && isTerminal(out) {
		if err := quick.Highlight(out, string(data)+"\n", "json", "terminal256", "monokai"); err == nil {
			return nil
		}
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
