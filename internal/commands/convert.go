package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gerunddev/notionclip/internal/convert"
	"github.com/gerunddev/notionclip/internal/styles"
)

// Convert parses Markdown and prints the resulting block payload as JSON
func Convert(args []string) {
	name, content, err := readInput(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ "+err.Error()))
		os.Exit(1)
	}

	cfg := loadConfig()
	p := buildPipeline(cfg, args)

	res, err := p.ParseContent(content, buildOptions(cfg, args))
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ "+err.Error()))
		os.Exit(1)
	}

	printIssues(res.Issues)

	if !res.Success {
		fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ Conversion failed for "+name))
		os.Exit(1)
	}

	payload := struct {
		Blocks any            `json:"children"`
		Meta   map[string]any `json:"meta,omitempty"`
	}{Blocks: res.Blocks, Meta: res.Meta}

	enc := json.NewEncoder(os.Stdout)
	if hasFlag(args, "--pretty") {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(payload); err != nil {
		fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ Failed to encode blocks: "+err.Error()))
		os.Exit(1)
	}
}

// printIssues writes issues to stderr, colored by severity
func printIssues(issues []convert.Issue) {
	for _, issue := range issues {
		line := issue.String()
		switch issue.Severity {
		case convert.SeverityError:
			fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ "+line))
		case convert.SeverityWarning:
			fmt.Fprintln(os.Stderr, styles.WarningStyle.Render("⚠ "+line))
		default:
			fmt.Fprintln(os.Stderr, styles.DimStyle.Render("ℹ "+line))
		}
	}
}
