package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bnema/webpane/internal/cli/model"
	"github.com/bnema/webpane/internal/cli/styles"
	"github.com/bnema/webpane/internal/domain/entity"
)

var (
	panesJSON     bool
	panesYAML     bool
	panesClearYes bool
)

var panesCmd = &cobra.Command{
	Use:   "panes",
	Short: "Manage saved panes",
	Long: `View and manage the panes saved when the web pane window closes.

Saved panes are reopened by 'webpane browse'. Run without arguments to open
the interactive pane browser.`,
	RunE: runPanes,
}

var panesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved panes",
	RunE:  runPanesList,
}

var panesForgetCmd = &cobra.Command{
	Use:   "forget <pane-id>",
	Short: "Remove one saved pane",
	Args:  cobra.ExactArgs(1),
	RunE:  runPanesForget,
}

var panesClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every saved pane",
	RunE:  runPanesClear,
}

func init() {
	rootCmd.AddCommand(panesCmd)
	panesCmd.AddCommand(panesListCmd)
	panesCmd.AddCommand(panesForgetCmd)
	panesCmd.AddCommand(panesClearCmd)

	panesListCmd.Flags().BoolVar(&panesJSON, "json", false, "output as JSON")
	panesListCmd.Flags().BoolVar(&panesYAML, "yaml", false, "output as YAML")
	panesListCmd.MarkFlagsMutuallyExclusive("json", "yaml")
	panesClearCmd.Flags().BoolVarP(&panesClearYes, "yes", "y", false, "skip confirmation prompt")
}

func runPanes(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	m := model.NewPanesModel(app.Ctx(), app.Theme, model.PanesModelConfig{
		Store:    app.PersistUC,
		Defaults: app.Config.PaneDefaults(),
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func runPanesList(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	saved, err := app.PersistUC.List(app.Ctx())
	if err != nil {
		return err
	}
	rows := model.DecodeRows(saved, app.Config.PaneDefaults())

	switch {
	case panesJSON:
		return outputPanesJSON(cmd.OutOrStdout(), rows)
	case panesYAML:
		return outputPanesYAML(cmd.OutOrStdout(), rows)
	}
	return outputPanesTable(cmd.OutOrStdout(), rows)
}

type paneRecord struct {
	ID         string            `json:"id" yaml:"id"`
	SourcePath string            `json:"sourcePath,omitempty" yaml:"source_path,omitempty"`
	SavedAt    time.Time         `json:"savedAt" yaml:"saved_at"`
	State      *entity.PaneState `json:"state,omitempty" yaml:"state,omitempty"`
}

func paneRecords(rows []styles.PaneRow) []paneRecord {
	out := make([]paneRecord, 0, len(rows))
	for _, row := range rows {
		p := paneRecord{ID: string(row.ID), SourcePath: row.SourcePath, SavedAt: row.SavedAt}
		if !row.Broken {
			state := row.State
			p.State = &state
		}
		out = append(out, p)
	}
	return out
}

func outputPanesJSON(w io.Writer, rows []styles.PaneRow) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(paneRecords(rows))
}

func outputPanesYAML(w io.Writer, rows []styles.PaneRow) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(paneRecords(rows)); err != nil {
		return err
	}
	return enc.Close()
}

func outputPanesTable(w io.Writer, rows []styles.PaneRow) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tLOCATION\tAUTO RELOAD\tSAVED")
	for _, row := range rows {
		if row.Broken {
			fmt.Fprintf(tw, "%s\t(unreadable)\t\t\t%s\n", row.ID, row.SavedAt.Local().Format(time.DateTime))
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%s\n",
			row.ID, row.State.Title, row.State.Location, row.State.AutoReload,
			row.SavedAt.Local().Format(time.DateTime))
	}
	return tw.Flush()
}

func runPanesForget(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	if err := app.PersistUC.Forget(app.Ctx(), entity.PaneID(args[0])); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), app.Theme.SuccessStyle.Render(styles.IconCheck+" Removed "+args[0]))
	return nil
}

func runPanesClear(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	r := styles.NewPanesRenderer(app.Theme)

	if !panesClearYes {
		confirmed, err := confirm(cmd, "Remove every saved pane? [y/N] ")
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Subtle.Render("Canceled."))
			return nil
		}
	}

	n, err := app.PersistUC.Clear(app.Ctx())
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), r.RenderError(err))
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), r.RenderCleared(n))
	return nil
}

func confirm(cmd *cobra.Command, prompt string) (bool, error) {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	var answer string
	if _, err := fmt.Fscanln(cmd.InOrStdin(), &answer); err != nil {
		// Empty input means no.
		return false, nil
	}
	return answer == "y" || answer == "Y" || answer == "yes", nil
}
