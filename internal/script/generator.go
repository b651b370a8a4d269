// Package script turns the menu tree's selection state into an executable
// bash script. Generation is a pure function of the tree: it reads selection
// flags without mutating anything, so it can run repeatedly for live
// previews.
package script

import (
	"fmt"
	"strings"

	"elsetup/internal/catalog"
	"elsetup/internal/distro"
	"elsetup/internal/menutree"
)

const (
	shebang       = "#!/bin/bash"
	repoSection   = "# --- 1. ENABLING REPOSITORIES ---"
	configSection = "# --- 2. APPLYING CONFIGURATIONS ---"
	noneSelected  = "# No options selected."
)

// printStepHelper prints a banner before each step so failures are easy to
// locate in the transcript.
const printStepHelper = "# Helper for logging steps\nprint_step() {\n    echo\n    echo \"✅ ==> $1\"\n}\n"

// Generate renders the ordered installation script for the tree's current
// selection state. Repository-category commands always come first: repo
// enablement is a prerequisite for the package installs that follow,
// wherever the items sit in the tree.
func Generate(tree *menutree.Tree, d distro.Distro, reboot bool) string {
	items := tree.SelectedItems()

	// Stable partition: relative order within each category follows the
	// pre-order traversal.
	var repos, general []menutree.SelectedItem
	for _, item := range items {
		if item.Category == catalog.Repository {
			repos = append(repos, item)
		} else {
			general = append(general, item)
		}
	}

	var b strings.Builder
	b.WriteString(shebang + "\n")
	fmt.Fprintf(&b, "# Generated for %s by elsetup\n\n", d)
	b.WriteString("# Exit immediately if a command exits with a non-zero status.\nset -e\n\n")
	b.WriteString(printStepHelper + "\n")

	if len(repos) == 0 && len(general) == 0 {
		b.WriteString(noneSelected + "\n")
	}

	if len(repos) > 0 {
		b.WriteString(repoSection + "\n")
		writeItems(&b, repos)
	}

	if len(general) > 0 {
		b.WriteString(configSection + "\n")
		writeItems(&b, general)
	}

	if reboot {
		b.WriteString("print_step \"All tasks complete. Rebooting now...\"\n")
		b.WriteString("sleep 3\n")
		b.WriteString("sudo reboot\n")
	} else if len(repos) > 0 || len(general) > 0 {
		b.WriteString("print_step \"All tasks complete!\"\n")
	}

	return b.String()
}

// writeItems emits one banner plus raw command block per item, each block
// terminated by a blank line.
func writeItems(b *strings.Builder, items []menutree.SelectedItem) {
	for _, item := range items {
		fmt.Fprintf(b, "print_step \"%s\"\n", item.Name)
		b.WriteString(item.Script())
		b.WriteString("\n\n")
	}
}
