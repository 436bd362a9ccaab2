package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/gerunddev/notionclip/internal/cache"
	"github.com/gerunddev/notionclip/internal/config"
	"github.com/gerunddev/notionclip/internal/logger"
	"github.com/gerunddev/notionclip/internal/pipeline"
	"github.com/gerunddev/notionclip/internal/styles"
)

// readInput returns the content named by the first non-flag argument, or
// stdin when the argument is missing or "-".
func readInput(args []string) (name, content string, err error) {
	path := ""
	for _, arg := range args {
		if len(arg) > 0 && arg[0] != '-' {
			path = arg
			break
		}
	}
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return "stdin", string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return path, string(data), nil
}

// hasFlag reports whether args contains the given flag
func hasFlag(args []string, name string) bool {
	for _, arg := range args {
		if arg == name {
			return true
		}
	}
	return false
}

// loadConfig loads the config, falling back to defaults with a warning
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.WarningStyle.Render("⚠ "+err.Error()+" (using defaults)"))
		return config.DefaultConfig()
	}
	return cfg
}

// buildOptions maps the config onto parse options, then applies per-command
// flag overrides.
func buildOptions(cfg *config.Config, args []string) pipeline.Options {
	opts := pipeline.DefaultOptions()
	opts.EnableInlineFormatting = cfg.EnableInlineFormatting
	opts.EnableMediaDetection = cfg.EnableMediaDetection
	opts.ApplyFormatting = cfg.ApplyFormatting
	opts.MaxRichTextLength = cfg.MaxRichTextLength
	opts.MaxTableWidth = cfg.MaxTableWidth
	opts.MaxNestingDepth = cfg.MaxNestingDepth
	opts.MaxChildrenPerBlock = cfg.MaxChildrenPerBlock
	opts.MaxBlocksPerRequest = cfg.MaxBlocksPerRequest

	if hasFlag(args, "--plain") {
		opts.ParseAsMarkdown = false
	}
	if hasFlag(args, "--no-inline") {
		opts.EnableInlineFormatting = false
	}
	if hasFlag(args, "--no-media") {
		opts.EnableMediaDetection = false
	}
	if hasFlag(args, "--no-format") {
		opts.ApplyFormatting = false
	}
	return opts
}

// buildPipeline wires the pipeline with the configured logger and cache
func buildPipeline(cfg *config.Config, args []string) *pipeline.Pipeline {
	level := log.InfoLevel
	if hasFlag(args, "--verbose") {
		level = log.DebugLevel
	}
	lg := logger.NewWithLevel(os.Stderr, level)
	if hasFlag(args, "--quiet") {
		lg = logger.Discard()
	}
	return pipeline.New(lg, cache.New[pipeline.Result](cfg.CacheSize))
}
