// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Available reports whether a system clipboard can be reached. On
// Linux this requires xclip, xsel or a Wayland equivalent on PATH.
func Available() bool {
	return !clipboard.Unsupported
}

// Write places text on the system clipboard.
func Write(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard utility found")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard write failed: %w", err)
	}
	return nil
}
