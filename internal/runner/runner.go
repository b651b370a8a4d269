// Package runner performs the I/O the core deliberately avoids: persisting
// generated scripts and handing them to a privileged shell. Failures here
// are reported to the caller and never touch the in-memory menu state.
package runner

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"elsetup/internal/logging/events"
)

var (
	infof = color.New(color.FgGreen).PrintfFunc()
	warnf = color.New(color.FgHiMagenta).PrintfFunc()
	errf  = color.New(color.FgRed).PrintfFunc()
)

const tempScriptName = "elsetup-install.sh"

// Save writes the script to path with execute permissions.
func Save(path, content string) error {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return fmt.Errorf("save script: filename required")
	}
	if err := os.WriteFile(trimmed, []byte(content), 0o755); err != nil {
		return fmt.Errorf("save script: %w", err)
	}
	events.Script.Saved(trimmed, len(content))
	return nil
}

// Execute persists the script to a temp file and runs it through sudo bash,
// echoing the script first so the user sees exactly what runs. The temp file
// is removed afterwards regardless of outcome.
func Execute(content string) error {
	path := filepath.Join(os.TempDir(), tempScriptName)
	infof("Saving temporary script to %s...\n", path)
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		return fmt.Errorf("write temporary script: %w", err)
	}
	defer os.Remove(path)

	warnf("Exited TUI. Now attempting to run the script with sudo...\n")
	fmt.Println("--- SCRIPT ---")
	fmt.Println(content)
	fmt.Println("--------------")

	events.Script.Run(path)
	cmd := exec.Command("sudo", "bash", path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		errf("\nScript execution failed. Please check the output above.\n")
		return fmt.Errorf("run script: %w", err)
	}
	infof("\nScript executed successfully.\n")
	return nil
}
