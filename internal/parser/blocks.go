package parser

import (
	"strings"

	"github.com/gerunddev/notionclip/internal/ast"
	"github.com/gerunddev/notionclip/internal/token"
)

// calloutIcons maps admonition kinds to emoji, Obsidian-style.
var calloutIcons = map[string]string{
	"note":      "💡",
	"info":      "ℹ️",
	"tip":       "💡",
	"hint":      "💡",
	"important": "❗",
	"warning":   "⚠️",
	"caution":   "⚠️",
	"danger":    "🚫",
	"error":     "🚫",
	"bug":       "🐛",
	"question":  "❓",
	"faq":       "❓",
	"example":   "📝",
	"quote":     "💬",
	"success":   "✅",
	"todo":      "☑️",
	"abstract":  "📋",
	"summary":   "📋",
}

const defaultCalloutIcon = "💡"

// parseHeading clamps levels beyond 3 to 3, matching Notion's heading set.
func (p *Parser) parseHeading(t token.Token) ast.Node {
	meta, _ := t.Meta.(token.HeadingMeta)
	level := meta.Level
	if level > 3 {
		level = 3
	}
	if level < 1 {
		level = 1
	}
	return &ast.Heading{
		Level:      level,
		Toggleable: meta.Toggleable,
		Runs:       p.runs(t.Content),
	}
}

// parseCallout builds a callout node with its continuation lines re-parsed
// as children.
func (p *Parser) parseCallout(t token.Token) ast.Node {
	meta, _ := t.Meta.(token.CalloutMeta)
	icon := calloutIcons[meta.Kind]
	if icon == "" {
		icon = defaultCalloutIcon
	}
	return &ast.Callout{
		Kind:     meta.Kind,
		Icon:     icon,
		Runs:     p.runs(meta.Title),
		Children: p.parseBody(meta.Body),
	}
}

// parseToggle builds a toggle node. A folded callout whose title is itself a
// heading becomes a toggleable heading instead.
func (p *Parser) parseToggle(t token.Token) ast.Node {
	meta, _ := t.Meta.(token.CalloutMeta)
	title := meta.Title

	if level, text, ok := splitHeadingTitle(title); ok {
		return &ast.Heading{
			Level:      level,
			Toggleable: true,
			Runs:       p.runs(text),
			Children:   p.parseBody(meta.Body),
		}
	}
	return &ast.Toggle{
		Runs:     p.runs(title),
		Children: p.parseBody(meta.Body),
	}
}

func splitHeadingTitle(title string) (level int, text string, ok bool) {
	for level < len(title) && title[level] == '#' {
		level++
	}
	if level == 0 || level >= len(title) || title[level] != ' ' {
		return 0, "", false
	}
	if level > 3 {
		level = 3
	}
	return level, strings.TrimSpace(title[strings.IndexByte(title, ' '):]), true
}

// parseMedia classifies a media token by target extension and splits remote
// URLs from local upload references.
func (p *Parser) parseMedia(t token.Token) ast.Node {
	meta, _ := t.Meta.(token.MediaMeta)
	m := &ast.Media{Kind: mediaKind(meta.Target)}
	if strings.HasPrefix(meta.Target, "http://") || strings.HasPrefix(meta.Target, "https://") {
		m.URL = meta.Target
	} else {
		m.UploadRef = meta.Target
	}
	if meta.Alt != "" {
		m.Caption = p.runs(meta.Alt)
	}
	return m
}

func mediaKind(target string) ast.MediaKind {
	ext := strings.ToLower(target)
	if i := strings.LastIndexByte(ext, '?'); i >= 0 {
		ext = ext[:i]
	}
	if i := strings.LastIndexByte(ext, '.'); i >= 0 {
		ext = ext[i+1:]
	} else {
		ext = ""
	}
	switch ext {
	case "png", "jpg", "jpeg", "gif", "svg", "webp", "bmp", "heic":
		return ast.MediaImage
	case "mp4", "mov", "webm", "mkv", "avi":
		return ast.MediaVideo
	case "mp3", "wav", "ogg", "m4a", "flac":
		return ast.MediaAudio
	default:
		return ast.MediaFile
	}
}
