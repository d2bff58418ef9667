package cli

import (
	"os"

	"github.com/fsbox-cli/fsbox/internal/domain"
	"github.com/fsbox-cli/fsbox/internal/term"
)

// confirmed resolves the yes-flag, the assume_yes config key, and an
// interactive prompt, in that order.
func confirmed(yesFlag bool, format string, args ...any) bool {
	if yesFlag || cfg.AssumeYes {
		return true
	}
	return term.Confirm(os.Stdin, os.Stdout, format, args...)
}

// reportIssues prints per-entry failures to stderr and raises the exit
// code when any exist.
func reportIssues(issues []domain.Issue) {
	if len(issues) == 0 {
		return
	}
	for _, issue := range issues {
		errOut.Warn("issue: %s: %v", issue.Path, issue.Err)
	}
	fail()
}

// argOrDot returns the positional argument at i, or "." when absent.
func argOrDot(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return "."
}
