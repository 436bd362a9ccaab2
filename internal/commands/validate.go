package commands

import (
	"fmt"
	"os"

	"github.com/gerunddev/notionclip/internal/convert"
	"github.com/gerunddev/notionclip/internal/styles"
)

// Validate converts Markdown and reports every limit or structure violation
// the resulting payload would hit
func Validate(args []string) {
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
	if !res.Success {
		printIssues(res.Issues)
		fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ Conversion failed for "+name))
		os.Exit(1)
	}

	printIssues(res.Issues)

	errors := 0
	for _, issue := range res.Issues {
		if issue.Severity == convert.SeverityError {
			errors++
		}
	}

	switch {
	case errors > 0:
		fmt.Println(styles.ErrorStyle.Render(fmt.Sprintf("✗ %s: %d blocks, %d errors", name, len(res.Blocks), errors)))
		os.Exit(1)
	case len(res.Issues) > 0:
		fmt.Println(styles.WarningStyle.Render(fmt.Sprintf("⚠ %s: %d blocks, %d warnings", name, len(res.Blocks), len(res.Issues))))
	default:
		fmt.Println(styles.SuccessStyle.Render(fmt.Sprintf("✓ %s: %d blocks, no issues", name, len(res.Blocks))))
	}
}
