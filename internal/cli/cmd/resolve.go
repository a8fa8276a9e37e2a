package cmd

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/bnema/webpane/internal/cli/styles"
	"github.com/bnema/webpane/internal/domain/url"
)

var (
	resolveTemplate string
	resolveHomepage string
	resolveJSON     bool
	resolveCopy     bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <file>",
	Short: "Print the location a file would open at",
	Long: `Resolve a file path through the URL template, without opening a pane.

Placeholders:
  {full_path}      directory of the file
  {name_with_ext}  file name with extension
  {name_no_ext}    file name without extension

Examples:
  webpane resolve index.html
  webpane resolve --template 'http://localhost:8000/{name_no_ext}' docs/intro.md`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().StringVarP(&resolveTemplate, "template", "t", "", "URL template (default from config)")
	resolveCmd.Flags().StringVar(&resolveHomepage, "homepage", "", "homepage used for an empty path (default from config)")
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "output as JSON")
	resolveCmd.Flags().BoolVarP(&resolveCopy, "copy", "c", false, "copy the location to the clipboard")
}

func runResolve(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	defaults := app.Config.PaneDefaults()
	template := defaults.URLTemplate
	if resolveTemplate != "" {
		template = resolveTemplate
	}
	homepage := defaults.Homepage
	if resolveHomepage != "" {
		homepage = resolveHomepage
	}

	path := args[0]
	if path != "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", path, err)
		}
		path = abs
	}

	location := url.ResolveTemplate(path, template, homepage)
	if resolveCopy {
		if err := clipboard.WriteAll(location); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	if resolveJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]string{
			"path":     path,
			"template": template,
			"location": location,
		})
	}

	fmt.Fprintln(out, styles.NewPanesRenderer(app.Theme).RenderResolved(path, location))
	return nil
}
