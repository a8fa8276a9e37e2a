package main

import (
	"runtime"

	"github.com/bnema/webpane/internal/cli/cmd"
	"github.com/bnema/webpane/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	enableCrashForensics()

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
	cmd.SetBrowseRunner(runGUI)

	cmd.Execute()
}
