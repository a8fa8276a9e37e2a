package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/webpane/internal/logging"
)

const defaultLogsKeep = 5

var logsKeep int

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "List session log files",
	Long: `List the log files written by 'webpane browse' when file logging is enabled.

Enable it with [logging] enable_file_log = true.`,
	RunE: runLogs,
}

var logsPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove old session logs",
	RunE:  runLogsPrune,
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.AddCommand(logsPruneCmd)
	logsPruneCmd.Flags().IntVar(&logsKeep, "keep", defaultLogsKeep, "number of sessions to keep")
}

type logSession struct {
	ID      string
	Path    string
	Size    int64
	ModTime time.Time
}

func listLogSessions(dir string) ([]logSession, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read log dir: %w", err)
	}

	var sessions []logSession
	for _, e := range entries {
		id, ok := logging.ParseSessionFilename(e.Name())
		if !ok || e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		sessions = append(sessions, logSession{
			ID:      id,
			Path:    filepath.Join(dir, e.Name()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].ID > sessions[j].ID })
	return sessions, nil
}

func runLogs(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	sessions, err := listLogSessions(app.Config.Logging.LogDir)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(sessions) == 0 {
		fmt.Fprintln(out, app.Theme.Subtle.Render("No session logs in "+app.Config.Logging.LogDir))
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SESSION\tSIZE\tMODIFIED\tPATH")
	for _, s := range sessions {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			logging.ShortSessionID(s.ID), formatSize(s.Size), s.ModTime.Format(time.DateTime), s.Path)
	}
	return tw.Flush()
}

func runLogsPrune(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	if logsKeep < 0 {
		return fmt.Errorf("--keep must not be negative")
	}

	removed, err := logging.PruneSessionLogs(app.Config.Logging.LogDir, logsKeep)
	if err != nil {
		return fmt.Errorf("prune logs: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), app.Theme.SuccessStyle.Render(fmt.Sprintf("Removed %d session log(s)", len(removed))))
	return nil
}

func formatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
