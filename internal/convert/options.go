// Package convert holds the back half of the pipeline: AST to Notion blocks,
// the block formatter, the schema validator and the reverse Notion-to-
// Markdown path. Both directions run over github.com/jomei/notionapi block
// types so the output is wire-shaped for the Notion Blocks API.
package convert

import "fmt"

// Notion API defaults. MaxTableWidth is the configured column ceiling, not a
// Notion hard limit; wider tables are clipped with a reported warning.
const (
	DefaultMaxRichTextLength   = 2000
	DefaultMaxTableWidth       = 5
	DefaultMaxNestingDepth     = 50
	DefaultMaxChildrenPerBlock = 100
	DefaultMaxBlocksPerRequest = 100
)

// Limits are the schema ceilings shared by the converter, the formatter's
// limit-enforcement pass and the validator.
type Limits struct {
	MaxRichTextLength   int
	MaxTableWidth       int
	MaxNestingDepth     int
	MaxChildrenPerBlock int
	MaxBlocksPerRequest int
}

// DefaultLimits returns the stock ceilings.
func DefaultLimits() Limits {
	return Limits{
		MaxRichTextLength:   DefaultMaxRichTextLength,
		MaxTableWidth:       DefaultMaxTableWidth,
		MaxNestingDepth:     DefaultMaxNestingDepth,
		MaxChildrenPerBlock: DefaultMaxChildrenPerBlock,
		MaxBlocksPerRequest: DefaultMaxBlocksPerRequest,
	}
}

// Validate rejects non-positive ceilings. This is the fail-fast path for
// programmer error; input text itself never fails conversion.
func (l Limits) Validate() error {
	if l.MaxRichTextLength <= 0 {
		return fmt.Errorf("max rich text length must be positive, got %d", l.MaxRichTextLength)
	}
	if l.MaxTableWidth <= 0 {
		return fmt.Errorf("max table width must be positive, got %d", l.MaxTableWidth)
	}
	if l.MaxNestingDepth <= 0 {
		return fmt.Errorf("max nesting depth must be positive, got %d", l.MaxNestingDepth)
	}
	if l.MaxChildrenPerBlock <= 0 {
		return fmt.Errorf("max children per block must be positive, got %d", l.MaxChildrenPerBlock)
	}
	if l.MaxBlocksPerRequest <= 0 {
		return fmt.Errorf("max blocks per request must be positive, got %d", l.MaxBlocksPerRequest)
	}
	return nil
}

func (l Limits) withDefaults() Limits {
	if l.MaxRichTextLength == 0 {
		l.MaxRichTextLength = DefaultMaxRichTextLength
	}
	if l.MaxTableWidth == 0 {
		l.MaxTableWidth = DefaultMaxTableWidth
	}
	if l.MaxNestingDepth == 0 {
		l.MaxNestingDepth = DefaultMaxNestingDepth
	}
	if l.MaxChildrenPerBlock == 0 {
		l.MaxChildrenPerBlock = DefaultMaxChildrenPerBlock
	}
	if l.MaxBlocksPerRequest == 0 {
		l.MaxBlocksPerRequest = DefaultMaxBlocksPerRequest
	}
	return l
}
