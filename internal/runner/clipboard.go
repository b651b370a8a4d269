package runner

import (
	"fmt"

	"github.com/atotto/clipboard"

	"elsetup/internal/logging/events"
)

// CopyToClipboard places the script on the system clipboard. Headless
// machines without a clipboard provider report an error rather than
// silently discarding the script.
func CopyToClipboard(content string) error {
	if err := clipboard.WriteAll(content); err != nil {
		return fmt.Errorf("copy script: %w", err)
	}
	events.Script.Copied(len(content))
	return nil
}
