package rules

import (
	"strings"

	"github.com/gerunddev/notionclip/internal/token"
)

// tableRule matches pipe tables: a header row, a separator row of dashes,
// then zero or more data rows. Detection stops at the first line that is not
// a pipe row, so a malformed tail degrades to paragraphs instead of forcing
// a rescan.
type tableRule struct{}

func (tableRule) Name() string { return "table" }

func (tableRule) Match(w *Window) ([]token.Token, int, bool) {
	header, ok := splitPipeRow(w.Line())
	if !ok {
		return nil, 0, false
	}
	sep, exists := w.Peek(1)
	if !exists || !isSeparatorRow(sep, len(header)) {
		return nil, 0, false
	}

	toks := []token.Token{{
		Kind: token.TableRow,
		Meta: token.TableRowMeta{Cells: header, Header: true},
	}}
	consumed := 2
	for off := 2; off <= maxTableLookahead; off++ {
		next, more := w.Peek(off)
		if !more {
			break
		}
		cells, rowOK := splitPipeRow(next)
		if !rowOK {
			break
		}
		toks = append(toks, token.Token{
			Kind: token.TableRow,
			Meta: token.TableRowMeta{Cells: cells},
		})
		consumed++
	}
	return toks, consumed, true
}

// splitPipeRow splits "| a | b |" into trimmed cells.
func splitPipeRow(line string) ([]string, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "|") {
		return nil, false
	}
	trimmed = strings.TrimPrefix(trimmed, "|")
	trimmed = strings.TrimSuffix(trimmed, "|")
	parts := strings.Split(trimmed, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells, true
}

// isSeparatorRow reports whether line is a "|---|:--:|" style separator with
// the expected column count.
func isSeparatorRow(line string, columns int) bool {
	cells, ok := splitPipeRow(line)
	if !ok || len(cells) != columns {
		return false
	}
	for _, c := range cells {
		if c == "" {
			return false
		}
		dashes := 0
		for _, r := range c {
			switch r {
			case '-':
				dashes++
			case ':':
			default:
				return false
			}
		}
		if dashes == 0 {
			return false
		}
	}
	return true
}

// csvRule detects pasted CSV/TSV content: at least two consecutive lines
// with a consistent delimiter count. Tabs need one delimiter per line;
// commas need two, which keeps ordinary prose with a single comma out.
type csvRule struct{}

func (csvRule) Name() string { return "csv" }

func (csvRule) Match(w *Window) ([]token.Token, int, bool) {
	for _, delim := range []string{"\t", ","} {
		if toks, n, ok := matchDelimited(w, delim); ok {
			return toks, n, true
		}
	}
	return nil, 0, false
}

func matchDelimited(w *Window, delim string) ([]token.Token, int, bool) {
	first := w.Line()
	count := strings.Count(first, delim)
	min := 1
	if delim == "," {
		min = 2
	}
	if count < min {
		return nil, 0, false
	}
	second, exists := w.Peek(1)
	if !exists || strings.Count(second, delim) != count {
		return nil, 0, false
	}

	var toks []token.Token
	consumed := 0
	for off := 0; off <= maxTableLookahead; off++ {
		line, more := w.Peek(off)
		if !more || strings.TrimSpace(line) == "" || strings.Count(line, delim) != count {
			break
		}
		cells := strings.Split(line, delim)
		for i := range cells {
			cells[i] = strings.TrimSpace(cells[i])
		}
		toks = append(toks, token.Token{
			Kind: token.TableRow,
			Meta: token.TableRowMeta{Cells: cells, Header: off == 0},
		})
		consumed++
	}
	return toks, consumed, true
}
