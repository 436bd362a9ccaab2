// Package diff reports roundtrip drift: the difference between an input
// document and the Markdown reconstructed from its converted blocks.
package diff

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// Unified computes a unified diff between the original document and its
// reconstruction. An empty string means the roundtrip was lossless.
func Unified(name string, original, reconstructed string) string {
	edits := myers.ComputeEdits(span.URIFromPath(name), original, reconstructed)
	if len(edits) == 0 {
		return ""
	}
	return fmt.Sprint(gotextdiff.ToUnified(name, name+" (roundtrip)", original, edits))
}

// ChangedLines counts the added and removed lines in a unified diff.
func ChangedLines(unified string) int {
	count := 0
	for _, line := range strings.Split(unified, "\n") {
		if strings.HasPrefix(line, "+++") || strings.HasPrefix(line, "---") {
			continue
		}
		if strings.HasPrefix(line, "+") || strings.HasPrefix(line, "-") {
			count++
		}
	}
	return count
}

// Render pretty-prints a unified diff for the terminal.
func Render(unified string) string {
	diffMarkdown := fmt.Sprintf("```diff\n%s```\n", unified)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		// Fallback to plain diff if glamour fails
		return diffMarkdown
	}

	rendered, err := renderer.Render(diffMarkdown)
	if err != nil {
		// Fallback to plain diff if rendering fails
		return diffMarkdown
	}

	return rendered
}
