package rules

import (
	"strings"

	"github.com/gerunddev/notionclip/internal/token"
)

// frontMatterRule matches a YAML front matter block, only at the first line
// of the input.
type frontMatterRule struct{}

func (frontMatterRule) Name() string { return "front_matter" }

func (frontMatterRule) Match(w *Window) ([]token.Token, int, bool) {
	if w.Pos() != 0 || strings.TrimSpace(w.Line()) != "---" {
		return nil, 0, false
	}
	for off := 1; off <= maxFrontMatterLookahead; off++ {
		line, ok := w.Peek(off)
		if !ok {
			break
		}
		if strings.TrimSpace(line) == "---" {
			var body []string
			for i := 1; i < off; i++ {
				l, _ := w.Peek(i)
				body = append(body, l)
			}
			return []token.Token{{
				Kind:    token.FrontMatter,
				Content: strings.Join(body, "\n"),
			}}, off + 1, true
		}
	}
	return nil, 0, false
}

// fenceRule matches fenced code blocks opened with ``` or ~~~. An
// unterminated fence is declined so the lines degrade to paragraphs.
type fenceRule struct{}

func (fenceRule) Name() string { return "code_fence" }

func (fenceRule) Match(w *Window) ([]token.Token, int, bool) {
	line := strings.TrimLeft(w.Line(), " \t")
	fence, lang, ok := splitFence(line)
	if !ok {
		return nil, 0, false
	}
	for off := 1; off <= maxFenceLookahead; off++ {
		next, exists := w.Peek(off)
		if !exists {
			break
		}
		if closesFence(strings.TrimSpace(next), fence) {
			var body []string
			for i := 1; i < off; i++ {
				l, _ := w.Peek(i)
				body = append(body, l)
			}
			return []token.Token{{
				Kind:    token.Code,
				Content: strings.Join(body, "\n"),
				Meta:    token.CodeMeta{Language: lang},
			}}, off + 1, true
		}
	}
	return nil, 0, false
}

// splitFence recognizes an opening fence of three or more backticks or
// tildes and returns the fence string plus the trimmed info string.
func splitFence(line string) (fence, lang string, ok bool) {
	if len(line) < 3 {
		return "", "", false
	}
	c := line[0]
	if c != '`' && c != '~' {
		return "", "", false
	}
	n := 0
	for n < len(line) && line[n] == c {
		n++
	}
	if n < 3 {
		return "", "", false
	}
	info := strings.TrimSpace(line[n:])
	// An info string containing the fence character is not a valid opener.
	if strings.ContainsRune(info, rune(c)) {
		return "", "", false
	}
	return line[:n], info, true
}

// closesFence reports whether line is a closing fence for the given opener:
// the same character, at least as long, and no info string.
func closesFence(line, fence string) bool {
	if len(line) < len(fence) || line[0] != fence[0] {
		return false
	}
	for i := 0; i < len(line); i++ {
		if line[i] != fence[0] {
			return false
		}
	}
	return true
}

// equationRule matches block equations: a single "$$expr$$" line, or a "$$"
// line with the expression on the lines up to a closing "$$".
type equationRule struct{}

func (equationRule) Name() string { return "equation" }

func (equationRule) Match(w *Window) ([]token.Token, int, bool) {
	line := strings.TrimSpace(w.Line())
	if !strings.HasPrefix(line, "$$") {
		return nil, 0, false
	}
	if len(line) > 4 && strings.HasSuffix(line, "$$") {
		expr := strings.TrimSpace(line[2 : len(line)-2])
		if expr == "" {
			return nil, 0, false
		}
		return []token.Token{{Kind: token.Equation, Content: expr}}, 1, true
	}
	if line != "$$" {
		return nil, 0, false
	}
	for off := 1; off <= maxEquationLookahead; off++ {
		next, exists := w.Peek(off)
		if !exists {
			break
		}
		if strings.TrimSpace(next) == "$$" {
			var body []string
			for i := 1; i < off; i++ {
				l, _ := w.Peek(i)
				body = append(body, strings.TrimSpace(l))
			}
			expr := strings.TrimSpace(strings.Join(body, "\n"))
			if expr == "" {
				return nil, 0, false
			}
			return []token.Token{{Kind: token.Equation, Content: expr}}, off + 1, true
		}
	}
	return nil, 0, false
}

// calloutRule matches admonition blocks: "> [!type] title" followed by ">"
// continuation lines. A fold marker ("> [!type]- title") produces a toggle
// token instead; a folded callout whose title is itself a heading becomes a
// toggleable heading downstream.
type calloutRule struct{}

func (calloutRule) Name() string { return "callout" }

func (calloutRule) Match(w *Window) ([]token.Token, int, bool) {
	line := strings.TrimLeft(w.Line(), " \t")
	if !strings.HasPrefix(line, "> [!") && !strings.HasPrefix(line, ">[!") {
		return nil, 0, false
	}
	open := strings.Index(line, "[!")
	end := strings.Index(line[open:], "]")
	if end < 0 {
		return nil, 0, false
	}
	end += open
	kind := strings.ToLower(strings.TrimSpace(line[open+2 : end]))
	if kind == "" {
		return nil, 0, false
	}
	rest := line[end+1:]
	folded := strings.HasPrefix(rest, "-")
	if folded {
		rest = rest[1:]
	}
	title := strings.TrimSpace(rest)

	var body []string
	consumed := 1
	for off := 1; off <= maxCalloutLookahead; off++ {
		next, exists := w.Peek(off)
		if !exists {
			break
		}
		trimmed := strings.TrimLeft(next, " \t")
		if !strings.HasPrefix(trimmed, ">") {
			break
		}
		body = append(body, strings.TrimPrefix(strings.TrimPrefix(trimmed, ">"), " "))
		consumed++
	}

	kindTok := token.Callout
	if folded {
		kindTok = token.Toggle
	}
	return []token.Token{{
		Kind:    kindTok,
		Content: title,
		Meta:    token.CalloutMeta{Kind: kind, Folded: folded, Title: title, Body: body},
	}}, consumed, true
}

// detailsRule matches HTML collapsible blocks:
//
//	<details>
//	<summary>Title</summary>
//	body...
//	</details>
type detailsRule struct{}

func (detailsRule) Name() string { return "details" }

func (detailsRule) Match(w *Window) ([]token.Token, int, bool) {
	if !strings.HasPrefix(strings.TrimSpace(strings.ToLower(w.Line())), "<details") {
		return nil, 0, false
	}
	closing := -1
	for off := 1; off <= maxDetailsLookahead; off++ {
		next, exists := w.Peek(off)
		if !exists {
			break
		}
		if strings.HasPrefix(strings.TrimSpace(strings.ToLower(next)), "</details") {
			closing = off
			break
		}
	}
	if closing < 0 {
		return nil, 0, false
	}

	title := ""
	var body []string
	for i := 1; i < closing; i++ {
		l, _ := w.Peek(i)
		trimmed := strings.TrimSpace(l)
		lower := strings.ToLower(trimmed)
		if strings.HasPrefix(lower, "<summary") {
			title = stripTag(trimmed, "summary")
			continue
		}
		body = append(body, l)
	}
	return []token.Token{{
		Kind:    token.Toggle,
		Content: title,
		Meta:    token.CalloutMeta{Kind: "details", Folded: true, Title: title, Body: body},
	}}, closing + 1, true
}

// stripTag removes a leading <tag> and trailing </tag> from a line.
func stripTag(s, tag string) string {
	lower := strings.ToLower(s)
	if i := strings.Index(lower, ">"); i >= 0 && strings.HasPrefix(lower, "<"+tag) {
		s = s[i+1:]
		lower = lower[i+1:]
	}
	if i := strings.LastIndex(lower, "</"+tag); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
