// Package pipeline assembles the full Markdown-to-Notion conversion:
// lexing, parsing, block conversion, optional formatting and validation,
// behind one call.
package pipeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/jomei/notionapi"

	"github.com/gerunddev/notionclip/internal/cache"
	"github.com/gerunddev/notionclip/internal/convert"
	"github.com/gerunddev/notionclip/internal/lexer"
	"github.com/gerunddev/notionclip/internal/logger"
	"github.com/gerunddev/notionclip/internal/parser"
)

// Result is what a parse run produced. Success reports whether blocks were
// built at all; issues of any severity may accompany a successful run.
type Result struct {
	Success bool
	Blocks  notionapi.Blocks
	Issues  []convert.Issue
	// Meta holds front matter fields, when the document had any.
	Meta map[string]any
}

// Pipeline carries the shared pieces between runs. The zero value works;
// logger and cache are optional.
type Pipeline struct {
	log   *logger.Logger
	cache cache.Cache[Result]
}

// New builds a pipeline. Either argument may be nil.
func New(log *logger.Logger, c cache.Cache[Result]) *Pipeline {
	if log == nil {
		log = logger.Discard()
	}
	return &Pipeline{log: log, cache: c}
}

// ParseContent converts content into Notion blocks. Invalid options are the
// only error; malformed content degrades inside the Result instead. The
// call never panics.
func (p *Pipeline) ParseContent(content string, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	log := p.log
	if log == nil {
		log = logger.Discard()
	}

	var key string
	if p.cache != nil {
		key = cache.Key(content, opts.fingerprint()...)
		if res, ok := p.cache.Get(key); ok {
			log.CacheHit(key[:12])
			return res, nil
		}
	}

	start := time.Now()
	log.ParseStarted("content", len(content))

	res := p.run(content, opts)

	if res.Success {
		log.ParseCompleted("content", len(res.Blocks), len(res.Issues), time.Since(start))
	} else {
		log.ParseFailed("content", fmt.Errorf("no blocks produced"))
	}
	if p.cache != nil {
		p.cache.Set(key, res)
	}
	return res, nil
}

// run does the conversion proper, with a recover so that no input can take
// down a caller.
func (p *Pipeline) run(content string, opts Options) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{
				Success: false,
				Issues: []convert.Issue{{
					Path:     "blocks",
					Reason:   fmt.Sprintf("internal error: %v", r),
					Severity: convert.SeverityError,
				}},
			}
		}
	}()

	limits := opts.limits()

	var blocks notionapi.Blocks
	var issues []convert.Issue
	var meta map[string]any

	if opts.ParseAsMarkdown {
		stream := lexer.Tokenize(content, lexer.Options{
			EnableMediaDetection: opts.EnableMediaDetection,
		})
		doc, err := parser.New(parser.Options{
			EnableInlineFormatting: opts.EnableInlineFormatting,
			EnableMediaDetection:   opts.EnableMediaDetection,
			MaxNestingDepth:        opts.MaxNestingDepth,
		}).Parse(stream)
		if err != nil {
			return Result{
				Success: false,
				Issues: []convert.Issue{{
					Path:     "blocks",
					Reason:   err.Error(),
					Severity: convert.SeverityError,
				}},
			}
		}
		meta = doc.Meta
		blocks, issues = convert.ToNotionBlocks(doc.Nodes, limits)
	} else {
		blocks = plainBlocks(content, limits)
	}

	if opts.ApplyFormatting {
		format := opts.Format
		format.Limits = limits
		blocks = convert.Format(blocks, format)
	}

	issues = append(issues, convert.Validate(blocks, limits)...)
	return Result{
		Success: true,
		Blocks:  blocks,
		Issues:  issues,
		Meta:    meta,
	}
}

// ToMarkdown renders blocks back to Markdown text.
func (p *Pipeline) ToMarkdown(blocks notionapi.Blocks) string {
	return convert.ToMarkdown(blocks)
}

// plainBlocks turns raw text into paragraphs, one per blank-line-separated
// chunk, with no Markdown interpretation.
func plainBlocks(content string, limits convert.Limits) notionapi.Blocks {
	var blocks notionapi.Blocks
	for _, chunk := range strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n\n") {
		chunk = strings.TrimRight(chunk, "\n")
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		blocks = append(blocks, convert.PlainParagraph(chunk, limits))
	}
	return blocks
}
