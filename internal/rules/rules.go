// Package rules implements the lexer's pattern matchers. Each rule answers
// whether the current line (plus a bounded lookahead window) starts a
// construct, and if so emits the tokens for it and reports how many lines it
// consumed. Rules are stateless; all matching is plain string scanning with
// hard lookahead caps so that scanning stays near-linear on any input.
package rules

import "github.com/gerunddev/notionclip/internal/token"

// Lookahead caps. A rule that cannot confirm its terminator within its cap
// declines the match and the lines degrade to paragraph text.
const (
	maxFenceLookahead       = 1000
	maxTableLookahead       = 500
	maxCalloutLookahead     = 500
	maxEquationLookahead    = 200
	maxDetailsLookahead     = 500
	maxFrontMatterLookahead = 200
)

// Window is a bounded read-only view over the input lines, positioned at the
// line under consideration.
type Window struct {
	lines []string
	pos   int
}

// NewWindow positions a window at line pos.
func NewWindow(lines []string, pos int) *Window {
	return &Window{lines: lines, pos: pos}
}

// Line returns the current line.
func (w *Window) Line() string { return w.lines[w.pos] }

// Peek returns the line off lines ahead of the current one.
func (w *Window) Peek(off int) (string, bool) {
	i := w.pos + off
	if i < 0 || i >= len(w.lines) {
		return "", false
	}
	return w.lines[i], true
}

// Pos returns the current 0-based line index.
func (w *Window) Pos() int { return w.pos }

// Remaining returns how many lines exist from the current one onward.
func (w *Window) Remaining() int { return len(w.lines) - w.pos }

// Rule is a stateless matcher. Match returns the emitted tokens and the
// number of input lines consumed, or ok=false when the rule does not apply.
// Rules never consume on rejection.
type Rule interface {
	Name() string
	Match(w *Window) (toks []token.Token, consumed int, ok bool)
}

// Registry is an ordered rule set. Order matters: earlier rules win, so
// multi-line constructs are registered before the single-line ones whose
// prefixes they share (callouts before quotes, front matter before dividers).
// CSV paste detection runs after the single-line rules, so a heading or list
// line that happens to contain commas stays structural.
type Registry struct {
	rules []Rule
}

// Options toggles optional rule groups.
type Options struct {
	// MediaDetection enables the media and bookmark rules.
	MediaDetection bool
}

// NewRegistry builds the default rule order.
func NewRegistry(opts Options) *Registry {
	r := &Registry{}
	r.rules = append(r.rules,
		frontMatterRule{},
		fenceRule{},
		equationRule{},
		detailsRule{},
		calloutRule{},
		tableRule{},
		dividerRule{},
		headingRule{},
		listItemRule{},
		quoteRule{},
		csvRule{},
	)
	if opts.MediaDetection {
		r.rules = append(r.rules, mediaRule{}, bookmarkRule{})
	}
	r.rules = append(r.rules, blankRule{})
	return r
}

// Match consults the rules in order. When no rule claims the line, ok is
// false and the caller emits a plain text token.
func (r *Registry) Match(w *Window) ([]token.Token, int, bool) {
	for _, rule := range r.rules {
		if toks, n, ok := rule.Match(w); ok {
			return toks, n, true
		}
	}
	return nil, 0, false
}
