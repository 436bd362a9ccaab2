// Package inline parses Markdown emphasis inside a single text span into
// ordered style runs. The scanner keeps an explicit stack of open markers:
// an opening marker pushes a style scope, a matching closer pops it and the
// text between carries the union of the active styles. Backtick spans are
// opaque, links restyle their own label. No regular expressions are used and
// closer lookups are memoized per marker, so scanning stays near-linear on
// adversarial input.
package inline

import "strings"

// Run is a styled text segment. Color is a Notion color name; empty means
// default.
type Run struct {
	Text          string
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
	Code          bool
	Color         string
	Link          string
}

// ColorHighlight is the color applied to ==highlighted== text.
const ColorHighlight = "yellow_background"

// Plain wraps text in a single unstyled run. Empty text yields no runs.
func Plain(text string) []Run {
	if text == "" {
		return nil
	}
	return []Run{{Text: text}}
}

// Text concatenates the visible text of runs.
func Text(runs []Run) string {
	var b strings.Builder
	for _, r := range runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Parse scans text into style runs. It never fails: unmatched markers are
// kept as literal text, and a scope whose closer was swallowed by another
// construct stays styled until the end of the span.
func Parse(text string) []Run {
	s := &scanner{src: text}
	s.scan(state{}, "")
	return s.runs
}

type state struct {
	bold, italic, strike, highlight bool
}

type scanner struct {
	src      string
	pos      int
	runs     []Run
	buf      strings.Builder
	stack    []string
	noCloser map[string]bool
}

const specials = "\\`[*_~="

// styleFor maps a marker to the styles it toggles.
func styleFor(m string) (bold, italic, strike, highlight bool) {
	switch m {
	case "*", "_":
		italic = true
	case "**", "__":
		bold = true
	case "***", "___":
		bold, italic = true, true
	case "~~":
		strike = true
	case "==":
		highlight = true
	}
	return
}

func (s *scanner) flush(st state, link string, code bool) {
	if s.buf.Len() == 0 {
		return
	}
	s.runs = append(s.runs, Run{
		Text:          s.buf.String(),
		Bold:          st.bold,
		Italic:        st.italic,
		Strikethrough: st.strike,
		Code:          code,
		Color:         colorOf(st),
		Link:          link,
	})
	s.buf.Reset()
}

func colorOf(st state) string {
	if st.highlight {
		return ColorHighlight
	}
	return ""
}

func (s *scanner) scan(st state, link string) {
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		switch {
		case c == '\\':
			s.escape()
		case c == '`':
			s.codeSpan(st, link)
		case c == '[':
			s.link(st)
		case c == '*' || c == '_' || c == '~' || c == '=':
			s.marker(&st, link)
		default:
			s.literal()
		}
	}
	s.flush(st, link, false)
}

// literal consumes plain text up to the next special byte.
func (s *scanner) literal() {
	end := s.pos + 1
	for end < len(s.src) && !strings.ContainsRune(specials, rune(s.src[end])) {
		end++
	}
	s.buf.WriteString(s.src[s.pos:end])
	s.pos = end
}

func (s *scanner) escape() {
	if s.pos+1 < len(s.src) && strings.ContainsRune(specials, rune(s.src[s.pos+1])) {
		s.buf.WriteByte(s.src[s.pos+1])
		s.pos += 2
		return
	}
	s.buf.WriteByte('\\')
	s.pos++
}

// codeSpan emits the text between backticks as an opaque code run carrying
// the styles already active around it.
func (s *scanner) codeSpan(st state, link string) {
	close := strings.IndexByte(s.src[s.pos+1:], '`')
	if close < 0 {
		s.buf.WriteByte('`')
		s.pos++
		return
	}
	inner := s.src[s.pos+1 : s.pos+1+close]
	s.flush(st, link, false)
	if inner != "" {
		s.buf.WriteString(inner)
		s.flush(st, link, true)
	}
	s.pos += close + 2
}

// link parses "[label](url)". The label is scanned with a fresh sub-scanner
// so its own emphasis still applies, with the link attached to every run.
func (s *scanner) link(st state) {
	rest := s.src[s.pos:]
	mid := strings.Index(rest, "](")
	if mid < 0 {
		s.buf.WriteByte('[')
		s.pos++
		return
	}
	end := strings.IndexByte(rest[mid+2:], ')')
	if end < 0 {
		s.buf.WriteByte('[')
		s.pos++
		return
	}
	label := rest[1:mid]
	url := rest[mid+2 : mid+2+end]
	if url == "" || strings.ContainsAny(label, "[") {
		s.buf.WriteByte('[')
		s.pos++
		return
	}

	s.flush(st, "", false)
	sub := &scanner{src: label}
	sub.scan(st, url)
	s.runs = append(s.runs, sub.runs...)
	s.pos += mid + 2 + end + 1
}

// marker handles the emphasis markers. A run of three identical asterisks or
// underscores is one combined bold+italic marker; longer runs fall back to a
// combined marker plus literal leftovers. The count stops at three, the
// longest marker there is, so a long repeated-character run costs constant
// work per marker instead of rescanning its tail.
func (s *scanner) marker(st *state, link string) {
	c := s.src[s.pos]
	n := 1
	for n < 3 && s.pos+n < len(s.src) && s.src[s.pos+n] == c {
		n++
	}

	var m string
	switch {
	case (c == '~' || c == '=') && n >= 2:
		m = string([]byte{c, c})
	case c == '~' || c == '=':
		s.buf.WriteByte(c)
		s.pos++
		return
	case n >= 3:
		m = strings.Repeat(string(c), 3)
	default:
		m = strings.Repeat(string(c), n)
	}

	if s.has(m) {
		s.close(st, m, link)
		s.pos += len(m)
		return
	}
	if s.opens(m) {
		s.flush(*st, link, false)
		s.stack = append(s.stack, m)
		s.toggle(st, m)
		s.pos += len(m)
		return
	}
	s.buf.WriteString(m)
	s.pos += len(m)
}

func (s *scanner) has(m string) bool {
	for _, open := range s.stack {
		if open == m {
			return true
		}
	}
	return false
}

// close pops scopes until m is closed; intervening scopes close with it
// (innermost-first resolution for mis-nested markers).
func (s *scanner) close(st *state, m, link string) {
	s.flush(*st, link, false)
	for len(s.stack) > 0 {
		top := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		s.toggle(st, top)
		if top == m {
			return
		}
	}
}

// opens reports whether a closer for m exists later in the input. A marker
// kind that failed the lookup once can never match later, so failures are
// memoized to keep the scan linear.
func (s *scanner) opens(m string) bool {
	if s.noCloser[m] {
		return false
	}
	if strings.Contains(s.src[s.pos+len(m):], m) {
		return true
	}
	if s.noCloser == nil {
		s.noCloser = make(map[string]bool)
	}
	s.noCloser[m] = true
	return false
}

func (s *scanner) toggle(st *state, m string) {
	bold, italic, strike, highlight := styleFor(m)
	if bold {
		st.bold = !st.bold
	}
	if italic {
		st.italic = !st.italic
	}
	if strike {
		st.strike = !st.strike
	}
	if highlight {
		st.highlight = !st.highlight
	}
}
