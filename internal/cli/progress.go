package cli

import (
	"github.com/fsbox-cli/fsbox/internal/progress"
	"github.com/fsbox-cli/fsbox/internal/term"
)

// newProgressReporter returns a reporter that narrates per-file work
// on stderr, keeping stdout clean for the final report.
func newProgressReporter() progress.Reporter {
	return progress.NewCallbackReporter(func(u progress.Update) {
		switch u.Type {
		case progress.UpdateStart:
			errOut.Dim("  %s (%s)", u.CurrentFile, term.HumanSize(u.CurrentTotal))
		case progress.UpdateComplete:
			if u.FilesTotal > 0 {
				errOut.Dim("  %d/%d done", u.FilesCompleted, u.FilesTotal)
			}
		case progress.UpdateError:
			errOut.Warn("  %s: %v", u.CurrentFile, u.Error)
		}
	})
}
