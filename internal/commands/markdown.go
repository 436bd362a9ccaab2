package commands

import (
	"fmt"
	"os"

	"github.com/gerunddev/notionclip/internal/styles"
)

// Markdown parses Markdown and prints the canonical form reconstructed from
// its blocks. Useful for normalizing documents before committing them.
func Markdown(args []string) {
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

	fmt.Print(p.ToMarkdown(res.Blocks))
}
