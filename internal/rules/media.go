package rules

import (
	"strings"

	"github.com/gerunddev/notionclip/internal/token"
)

// mediaRule matches a standalone image line: "![alt](target)". The target
// may be a URL or a local path; the converter decides between an external
// file reference and an upload placeholder.
type mediaRule struct{}

func (mediaRule) Name() string { return "media" }

func (mediaRule) Match(w *Window) ([]token.Token, int, bool) {
	line := strings.TrimSpace(w.Line())
	if !strings.HasPrefix(line, "![") || !strings.HasSuffix(line, ")") {
		return nil, 0, false
	}
	close := strings.Index(line, "](")
	if close < 0 {
		return nil, 0, false
	}
	alt := line[2:close]
	target := line[close+2 : len(line)-1]
	if target == "" || strings.ContainsAny(target, " )") {
		return nil, 0, false
	}
	return []token.Token{{
		Kind:    token.Media,
		Content: alt,
		Meta:    token.MediaMeta{Target: target, Alt: alt},
	}}, 1, true
}

// bookmarkRule matches a bare URL alone on a line.
type bookmarkRule struct{}

func (bookmarkRule) Name() string { return "bookmark" }

func (bookmarkRule) Match(w *Window) ([]token.Token, int, bool) {
	line := strings.TrimSpace(w.Line())
	if !strings.HasPrefix(line, "http://") && !strings.HasPrefix(line, "https://") {
		return nil, 0, false
	}
	if strings.ContainsAny(line, " \t") {
		return nil, 0, false
	}
	return []token.Token{{Kind: token.Bookmark, Content: line}}, 1, true
}
