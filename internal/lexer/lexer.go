// Package lexer turns raw clipped text into a lazy token stream. The lexer
// never fails on input: anything the rule registry does not claim becomes a
// plain text token, and malformed multi-line constructs (an unterminated
// fence, a table without a separator row) degrade the same way.
package lexer

import (
	"strings"

	"github.com/gerunddev/notionclip/internal/rules"
	"github.com/gerunddev/notionclip/internal/token"
)

// Options configures tokenization.
type Options struct {
	// EnableMediaDetection turns standalone image lines and bare URLs into
	// media and bookmark tokens instead of paragraph text.
	EnableMediaDetection bool
	// PreserveWhitespace keeps trailing whitespace on text lines.
	PreserveWhitespace bool
	// TrackPositions attaches 1-based line positions to tokens.
	TrackPositions bool
}

// Tokenize returns a lazy single-pass stream over input. The stream ends
// with an EOF sentinel and is not restartable.
func Tokenize(input string, opts Options) *token.Stream {
	lx := &lexer{
		lines: splitLines(input),
		reg: rules.NewRegistry(rules.Options{
			MediaDetection: opts.EnableMediaDetection,
		}),
		opts: opts,
	}
	return token.NewStream(lx.next)
}

type lexer struct {
	lines   []string
	pos     int
	pending []token.Token
	reg     *rules.Registry
	opts    Options
}

func (lx *lexer) next() (token.Token, bool) {
	if len(lx.pending) > 0 {
		t := lx.pending[0]
		lx.pending = lx.pending[1:]
		return t, true
	}
	if lx.pos >= len(lx.lines) {
		return token.Token{Kind: token.EOF}, false
	}

	start := lx.pos
	w := rules.NewWindow(lx.lines, lx.pos)
	toks, consumed, ok := lx.reg.Match(w)
	if !ok {
		toks = []token.Token{lx.textToken(lx.lines[lx.pos])}
		consumed = 1
	}
	lx.pos += consumed

	if lx.opts.TrackPositions {
		for i := range toks {
			toks[i].Pos = token.Position{Line: start + 1, Col: 1}
		}
	}

	t := toks[0]
	lx.pending = append(lx.pending, toks[1:]...)
	return t, true
}

func (lx *lexer) textToken(line string) token.Token {
	if !lx.opts.PreserveWhitespace {
		line = strings.TrimRight(line, " \t")
	}
	return token.Token{Kind: token.Text, Content: line}
}

// splitLines splits on newlines and drops carriage returns, so Windows
// clipboard content lexes the same as Unix content.
func splitLines(input string) []string {
	if input == "" {
		return nil
	}
	lines := strings.Split(input, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
