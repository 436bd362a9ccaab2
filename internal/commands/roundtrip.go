package commands

import (
	"fmt"
	"os"

	"github.com/gerunddev/notionclip/internal/diff"
	"github.com/gerunddev/notionclip/internal/styles"
)

// Roundtrip converts Markdown to blocks and back, then shows what drifted
func Roundtrip(args []string) {
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

	unified := diff.Unified(name, content, p.ToMarkdown(res.Blocks))
	if unified == "" {
		fmt.Println(styles.SuccessStyle.Render("✓ Roundtrip lossless for " + name))
		return
	}

	changed := diff.ChangedLines(unified)
	fmt.Println(styles.WarningStyle.Render(fmt.Sprintf("⚠ Roundtrip drift in %s: %d changed lines", name, changed)))
	if hasFlag(args, "--quiet") {
		fmt.Print(unified)
	} else {
		fmt.Print(diff.Render(unified))
	}
}
