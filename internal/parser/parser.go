// Package parser consumes the lexer's token stream and builds the AST. The
// dispatcher pulls one token at a time and hands structural tokens to the
// specialized parsers; list nesting uses an explicit stack keyed by depth so
// adversarial indentation cannot grow the call stack.
package parser

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gerunddev/notionclip/internal/ast"
	"github.com/gerunddev/notionclip/internal/inline"
	"github.com/gerunddev/notionclip/internal/lexer"
	"github.com/gerunddev/notionclip/internal/token"
)

// DefaultMaxNestingDepth caps list and container nesting; deeper input is
// flattened to the cap.
const DefaultMaxNestingDepth = 50

// maxBodyDepth caps recursive re-parsing of callout/toggle bodies.
const maxBodyDepth = 8

// Options configures parsing.
type Options struct {
	// EnableInlineFormatting parses emphasis into style runs; when false,
	// every span becomes a single default-styled run.
	EnableInlineFormatting bool
	// EnableMediaDetection is carried into recursive body parsing.
	EnableMediaDetection bool
	// MaxNestingDepth caps nesting; zero means DefaultMaxNestingDepth.
	MaxNestingDepth int
}

// Parser builds ASTs from token streams. A Parser is stateless between
// Parse calls and safe to reuse.
type Parser struct {
	opts      Options
	bodyDepth int
}

// New returns a parser with defaults applied.
func New(opts Options) *Parser {
	if opts.MaxNestingDepth <= 0 {
		opts.MaxNestingDepth = DefaultMaxNestingDepth
	}
	return &Parser{opts: opts}
}

// Parse drains the stream into a document. It never fails on input; the
// error return is reserved for stream-level problems and is nil today.
func (p *Parser) Parse(ts *token.Stream) (*ast.Document, error) {
	doc := &ast.Document{}
	for {
		t := ts.Next()
		switch t.Kind {
		case token.EOF:
			return doc, nil
		case token.Blank:
			continue
		case token.FrontMatter:
			doc.Meta = parseFrontMatter(t.Content)
		case token.Heading:
			doc.Nodes = append(doc.Nodes, p.parseHeading(t))
		case token.Text:
			doc.Nodes = append(doc.Nodes, p.parseParagraph(t, ts))
		case token.ListItem:
			doc.Nodes = append(doc.Nodes, p.parseList(t, ts))
		case token.TableRow:
			doc.Nodes = append(doc.Nodes, p.parseTable(t, ts))
		case token.Quote:
			doc.Nodes = append(doc.Nodes, p.parseQuote(t, ts))
		case token.Code:
			meta, _ := t.Meta.(token.CodeMeta)
			doc.Nodes = append(doc.Nodes, &ast.Code{Language: meta.Language, Text: t.Content})
		case token.Callout:
			doc.Nodes = append(doc.Nodes, p.parseCallout(t))
		case token.Toggle:
			doc.Nodes = append(doc.Nodes, p.parseToggle(t))
		case token.Equation:
			doc.Nodes = append(doc.Nodes, &ast.Equation{Expression: t.Content})
		case token.Divider:
			doc.Nodes = append(doc.Nodes, &ast.Divider{})
		case token.Media:
			doc.Nodes = append(doc.Nodes, p.parseMedia(t))
		case token.Bookmark:
			doc.Nodes = append(doc.Nodes, &ast.Bookmark{URL: t.Content})
		}
	}
}

// runs applies the inline converter when enabled.
func (p *Parser) runs(text string) []inline.Run {
	if text == "" {
		return nil
	}
	if p.opts.EnableInlineFormatting {
		return inline.Parse(text)
	}
	return inline.Plain(text)
}

// parseParagraph merges consecutive text lines into one paragraph, joined
// with soft-break spaces.
func (p *Parser) parseParagraph(first token.Token, ts *token.Stream) ast.Node {
	lines := []string{first.Content}
	for ts.Peek().Kind == token.Text {
		lines = append(lines, ts.Next().Content)
	}
	return &ast.Paragraph{Runs: p.runs(strings.Join(lines, " "))}
}

// parseQuote merges consecutive quote lines into one quote block.
func (p *Parser) parseQuote(first token.Token, ts *token.Stream) ast.Node {
	lines := []string{first.Content}
	for ts.Peek().Kind == token.Quote {
		lines = append(lines, ts.Next().Content)
	}
	return &ast.Quote{Runs: p.runs(strings.Join(lines, "\n"))}
}

// parseBody re-lexes the raw body lines of a container (callout, toggle)
// into child nodes. Recursion is capped; beyond the cap the body degrades to
// a single paragraph.
func (p *Parser) parseBody(lines []string) []ast.Node {
	body := strings.TrimSpace(strings.Join(lines, "\n"))
	if body == "" {
		return nil
	}
	if p.bodyDepth >= maxBodyDepth {
		return []ast.Node{&ast.Paragraph{Runs: p.runs(body)}}
	}
	p.bodyDepth++
	defer func() { p.bodyDepth-- }()

	ts := lexer.Tokenize(body, lexer.Options{
		EnableMediaDetection: p.opts.EnableMediaDetection,
	})
	doc, err := p.Parse(ts)
	if err != nil || doc == nil {
		return []ast.Node{&ast.Paragraph{Runs: p.runs(body)}}
	}
	return doc.Nodes
}

// parseFrontMatter decodes YAML metadata. Malformed front matter is dropped
// rather than failing the parse.
func parseFrontMatter(raw string) map[string]any {
	meta := map[string]any{}
	if err := yaml.Unmarshal([]byte(raw), &meta); err != nil || len(meta) == 0 {
		return nil
	}
	return meta
}
