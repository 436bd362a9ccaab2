package pipeline

import (
	"fmt"

	"github.com/gerunddev/notionclip/internal/convert"
)

// Options controls a single parse run. Start from DefaultOptions and
// override; the zero value parses nothing as Markdown. Limit fields left
// at zero fall back to the converter defaults.
type Options struct {
	// ParseAsMarkdown interprets the content as Markdown. When false the
	// content is split on blank lines into plain paragraphs.
	ParseAsMarkdown bool
	// EnableInlineFormatting parses bold, italic, code spans, links and the
	// rest of the inline syntax. When false, text is kept verbatim.
	EnableInlineFormatting bool
	// EnableMediaDetection recognizes standalone image lines and bare URLs.
	EnableMediaDetection bool
	// ApplyFormatting runs the block formatter over the converted blocks.
	ApplyFormatting bool
	// Format configures the formatter when ApplyFormatting is set.
	Format convert.FormatOptions

	MaxRichTextLength   int
	MaxTableWidth       int
	MaxNestingDepth     int
	MaxChildrenPerBlock int
	MaxBlocksPerRequest int
}

// DefaultOptions returns the options used when callers pass the zero value.
func DefaultOptions() Options {
	return Options{
		ParseAsMarkdown:        true,
		EnableInlineFormatting: true,
		EnableMediaDetection:   true,
		Format:                 convert.DefaultFormatOptions(),
	}
}

// Validate rejects option values that would produce nonsense downstream.
func (o Options) Validate() error {
	check := func(name string, v int) error {
		if v < 0 {
			return fmt.Errorf("option %s must not be negative, got %d", name, v)
		}
		return nil
	}
	for _, c := range []struct {
		name string
		v    int
	}{
		{"max_rich_text_length", o.MaxRichTextLength},
		{"max_table_width", o.MaxTableWidth},
		{"max_nesting_depth", o.MaxNestingDepth},
		{"max_children_per_block", o.MaxChildrenPerBlock},
		{"max_blocks_per_request", o.MaxBlocksPerRequest},
	} {
		if err := check(c.name, c.v); err != nil {
			return err
		}
	}
	return nil
}

// limits assembles the converter limits, deferring zeroes to its defaults.
func (o Options) limits() convert.Limits {
	return convert.Limits{
		MaxRichTextLength:   o.MaxRichTextLength,
		MaxTableWidth:       o.MaxTableWidth,
		MaxNestingDepth:     o.MaxNestingDepth,
		MaxChildrenPerBlock: o.MaxChildrenPerBlock,
		MaxBlocksPerRequest: o.MaxBlocksPerRequest,
	}
}

// fingerprint feeds the cache key with every option that changes output.
func (o Options) fingerprint() []any {
	return []any{
		o.ParseAsMarkdown,
		o.EnableInlineFormatting,
		o.EnableMediaDetection,
		o.ApplyFormatting,
		o.Format,
		o.MaxRichTextLength,
		o.MaxTableWidth,
		o.MaxNestingDepth,
		o.MaxChildrenPerBlock,
		o.MaxBlocksPerRequest,
	}
}
