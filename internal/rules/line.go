package rules

import (
	"strings"

	"github.com/gerunddev/notionclip/internal/token"
)

// headingRule matches ATX headings: 1-6 '#' followed by a space.
type headingRule struct{}

func (headingRule) Name() string { return "heading" }

func (headingRule) Match(w *Window) ([]token.Token, int, bool) {
	line := strings.TrimLeft(w.Line(), " \t")
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > 6 || level >= len(line) || line[level] != ' ' {
		return nil, 0, false
	}
	text := strings.TrimSpace(line[level+1:])
	return []token.Token{{
		Kind:    token.Heading,
		Content: text,
		Meta:    token.HeadingMeta{Level: level},
	}}, 1, true
}

// listItemRule matches bulleted ("-", "*", "+"), numbered ("1.", "1)") and
// todo ("- [ ]", "- [x]") markers. Indentation is recorded in columns with a
// tab counting as two.
type listItemRule struct{}

func (listItemRule) Name() string { return "list_item" }

func (listItemRule) Match(w *Window) ([]token.Token, int, bool) {
	line := w.Line()
	indent := 0
	i := 0
	for i < len(line) {
		if line[i] == ' ' {
			indent++
		} else if line[i] == '\t' {
			indent += 2
		} else {
			break
		}
		i++
	}
	rest := line[i:]

	meta := token.ListItemMeta{Indent: indent}
	var text string
	switch {
	case hasMarker(rest, '-'), hasMarker(rest, '*'), hasMarker(rest, '+'):
		text = strings.TrimLeft(rest[2:], " ")
		if box, body, ok := splitCheckbox(text); ok {
			meta.Todo = true
			meta.Checked = box
			text = body
		}
	default:
		num, body, ok := splitOrdered(rest)
		if !ok {
			return nil, 0, false
		}
		_ = num
		meta.Ordered = true
		text = body
	}

	return []token.Token{{
		Kind:    token.ListItem,
		Content: text,
		Meta:    meta,
	}}, 1, true
}

func hasMarker(s string, marker byte) bool {
	return len(s) >= 2 && s[0] == marker && s[1] == ' '
}

// splitCheckbox recognizes a leading "[ ] " / "[x] " checkbox.
func splitCheckbox(s string) (checked bool, rest string, ok bool) {
	if len(s) < 4 || s[0] != '[' || s[2] != ']' || s[3] != ' ' {
		return false, "", false
	}
	switch s[1] {
	case ' ':
		return false, s[4:], true
	case 'x', 'X':
		return true, s[4:], true
	}
	return false, "", false
}

// splitOrdered recognizes "N." / "N)" markers with up to nine digits.
func splitOrdered(s string) (num int, rest string, ok bool) {
	i := 0
	for i < len(s) && i < 9 && s[i] >= '0' && s[i] <= '9' {
		num = num*10 + int(s[i]-'0')
		i++
	}
	if i == 0 || i >= len(s) {
		return 0, "", false
	}
	if s[i] != '.' && s[i] != ')' {
		return 0, "", false
	}
	if i+1 >= len(s) || s[i+1] != ' ' {
		return 0, "", false
	}
	return num, strings.TrimLeft(s[i+2:], " "), true
}

// dividerRule matches thematic breaks: three or more '-', '*' or '_' alone
// on a line.
type dividerRule struct{}

func (dividerRule) Name() string { return "divider" }

func (dividerRule) Match(w *Window) ([]token.Token, int, bool) {
	line := strings.TrimSpace(w.Line())
	if len(line) < 3 {
		return nil, 0, false
	}
	c := line[0]
	if c != '-' && c != '*' && c != '_' {
		return nil, 0, false
	}
	for i := 1; i < len(line); i++ {
		if line[i] != c {
			return nil, 0, false
		}
	}
	return []token.Token{{Kind: token.Divider}}, 1, true
}

// quoteRule matches a single blockquote line and strips one quote level.
// The callout rule runs first, so plain quotes never swallow admonitions.
type quoteRule struct{}

func (quoteRule) Name() string { return "quote" }

func (quoteRule) Match(w *Window) ([]token.Token, int, bool) {
	line := strings.TrimLeft(w.Line(), " \t")
	if !strings.HasPrefix(line, ">") {
		return nil, 0, false
	}
	return []token.Token{{
		Kind:    token.Quote,
		Content: strings.TrimPrefix(strings.TrimPrefix(line, ">"), " "),
	}}, 1, true
}

// blankRule matches empty and whitespace-only lines.
type blankRule struct{}

func (blankRule) Name() string { return "blank" }

func (blankRule) Match(w *Window) ([]token.Token, int, bool) {
	if strings.TrimSpace(w.Line()) != "" {
		return nil, 0, false
	}
	return []token.Token{{Kind: token.Blank}}, 1, true
}
