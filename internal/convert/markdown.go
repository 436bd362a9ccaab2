package convert

import (
	"fmt"
	"strings"

	"github.com/jomei/notionapi"
)

// ToMarkdown renders blocks back to Markdown. The mapping is best effort:
// block types with no Markdown equivalent degrade to their plain text, so a
// roundtrip preserves content even where it cannot preserve structure.
func ToMarkdown(blocks notionapi.Blocks) string {
	var sb strings.Builder
	writeBlocks(&sb, blocks, "")
	return strings.TrimRight(sb.String(), "\n") + "\n"
}

func writeBlocks(sb *strings.Builder, blocks notionapi.Blocks, indent string) {
	counter := 0
	for i, b := range blocks {
		if _, ok := b.(*notionapi.NumberedListItemBlock); ok {
			counter++
		} else {
			counter = 0
		}
		writeBlock(sb, b, indent, counter)
		if i < len(blocks)-1 && wantsGap(b, blocks[i+1]) {
			sb.WriteString(indent + "\n")
		}
	}
}

// wantsGap keeps consecutive list items tight and separates everything else
// with a blank line.
func wantsGap(cur, next notionapi.Block) bool {
	return !isListItem(cur) || !isListItem(next)
}

func isListItem(b notionapi.Block) bool {
	switch b.(type) {
	case *notionapi.BulletedListItemBlock, *notionapi.NumberedListItemBlock, *notionapi.ToDoBlock:
		return true
	}
	return false
}

func writeBlock(sb *strings.Builder, b notionapi.Block, indent string, ordinal int) {
	switch blk := b.(type) {
	case *notionapi.ParagraphBlock:
		writeLines(sb, indent, markdownRichText(blk.Paragraph.RichText))
		writeChildren(sb, blk.Paragraph.Children, indent+"  ")
	case *notionapi.Heading1Block:
		writeHeading(sb, indent, 1, blk.Heading1.RichText, blk.Heading1.IsToggleable, blk.Heading1.Children)
	case *notionapi.Heading2Block:
		writeHeading(sb, indent, 2, blk.Heading2.RichText, blk.Heading2.IsToggleable, blk.Heading2.Children)
	case *notionapi.Heading3Block:
		writeHeading(sb, indent, 3, blk.Heading3.RichText, blk.Heading3.IsToggleable, blk.Heading3.Children)
	case *notionapi.BulletedListItemBlock:
		writeLines(sb, indent, "- "+markdownRichText(blk.BulletedListItem.RichText))
		writeChildren(sb, blk.BulletedListItem.Children, indent+"  ")
	case *notionapi.NumberedListItemBlock:
		writeLines(sb, indent, fmt.Sprintf("%d. %s", ordinal, markdownRichText(blk.NumberedListItem.RichText)))
		writeChildren(sb, blk.NumberedListItem.Children, indent+"   ")
	case *notionapi.ToDoBlock:
		box := "[ ]"
		if blk.ToDo.Checked {
			box = "[x]"
		}
		writeLines(sb, indent, "- "+box+" "+markdownRichText(blk.ToDo.RichText))
		writeChildren(sb, blk.ToDo.Children, indent+"  ")
	case *notionapi.QuoteBlock:
		if text := markdownRichText(blk.Quote.RichText); text != "" {
			for _, line := range strings.Split(text, "\n") {
				writeLines(sb, indent, "> "+line)
			}
		}
		writeQuoted(sb, blk.Quote.Children, indent)
	case *notionapi.CalloutBlock:
		kind := calloutKindFor(blk.Callout.Icon)
		writeLines(sb, indent, "> [!"+strings.ToUpper(kind)+"]")
		if text := markdownRichText(blk.Callout.RichText); text != "" {
			for _, line := range strings.Split(text, "\n") {
				writeLines(sb, indent, "> "+line)
			}
		}
		writeQuoted(sb, blk.Callout.Children, indent)
	case *notionapi.ToggleBlock:
		writeLines(sb, indent, "> [!faq]- "+markdownRichText(blk.Toggle.RichText))
		writeQuoted(sb, blk.Toggle.Children, indent)
	case *notionapi.CodeBlock:
		lang := string(blk.Code.Language)
		if lang == "plain text" {
			lang = ""
		}
		writeLines(sb, indent, "```"+lang)
		for _, line := range strings.Split(richTextPlain(blk.Code.RichText), "\n") {
			writeLines(sb, indent, line)
		}
		writeLines(sb, indent, "```")
	case *notionapi.DividerBlock:
		writeLines(sb, indent, "---")
	case *notionapi.TableBlock:
		writeTable(sb, blk, indent)
	case *notionapi.EquationBlock:
		expr := blk.Equation.Expression
		if strings.Contains(expr, "\n") {
			writeLines(sb, indent, "$$")
			for _, line := range strings.Split(expr, "\n") {
				writeLines(sb, indent, line)
			}
			writeLines(sb, indent, "$$")
		} else {
			writeLines(sb, indent, "$$"+expr+"$$")
		}
	case *notionapi.ImageBlock:
		writeLines(sb, indent, "!["+richTextPlain(blk.Image.Caption)+"]("+fileURL(blk.Image.Type, blk.Image.External)+")")
	case *notionapi.VideoBlock:
		writeLines(sb, indent, "!["+richTextPlain(blk.Video.Caption)+"]("+fileURL(blk.Video.Type, blk.Video.External)+")")
	case *notionapi.AudioBlock:
		writeLines(sb, indent, "!["+richTextPlain(blk.Audio.Caption)+"]("+fileURL(blk.Audio.Type, blk.Audio.External)+")")
	case *notionapi.BookmarkBlock:
		writeLines(sb, indent, blk.Bookmark.URL)
	case *notionapi.EmbedBlock:
		writeLines(sb, indent, blk.Embed.URL)
	default:
		if text := richTextPlain(blockRichText(b)); text != "" {
			writeLines(sb, indent, text)
		}
		writeChildren(sb, blockChildren(b), indent)
	}
}

func writeLines(sb *strings.Builder, indent, line string) {
	sb.WriteString(indent)
	sb.WriteString(line)
	sb.WriteByte('\n')
}

func writeChildren(sb *strings.Builder, kids notionapi.Blocks, indent string) {
	if len(kids) == 0 {
		return
	}
	writeBlocks(sb, kids, indent)
}

// writeQuoted renders children inside a blockquote continuation.
func writeQuoted(sb *strings.Builder, kids notionapi.Blocks, indent string) {
	if len(kids) == 0 {
		return
	}
	var inner strings.Builder
	writeBlocks(&inner, kids, "")
	for _, line := range strings.Split(strings.TrimRight(inner.String(), "\n"), "\n") {
		if line == "" {
			writeLines(sb, indent, ">")
			continue
		}
		writeLines(sb, indent, "> "+line)
	}
}

func writeHeading(sb *strings.Builder, indent string, level int, rts []notionapi.RichText, toggleable bool, kids notionapi.Blocks) {
	line := strings.Repeat("#", level) + " " + markdownRichText(rts)
	if toggleable {
		writeLines(sb, indent, "> [!faq]- "+line)
		writeQuoted(sb, kids, indent)
		return
	}
	writeLines(sb, indent, line)
	writeChildren(sb, kids, indent)
}

func writeTable(sb *strings.Builder, blk *notionapi.TableBlock, indent string) {
	width := blk.Table.TableWidth
	for i, row := range blk.Table.Children {
		tr, ok := row.(*notionapi.TableRowBlock)
		if !ok {
			continue
		}
		cells := make([]string, 0, width)
		for _, cell := range tr.TableRow.Cells {
			cells = append(cells, strings.ReplaceAll(markdownRichTexts(cell), "|", "\\|"))
		}
		for len(cells) < width {
			cells = append(cells, "")
		}
		writeLines(sb, indent, "| "+strings.Join(cells, " | ")+" |")
		if i == 0 && blk.Table.HasColumnHeader {
			seps := make([]string, width)
			for j := range seps {
				seps[j] = "---"
			}
			writeLines(sb, indent, "| "+strings.Join(seps, " | ")+" |")
		}
	}
}

// calloutKindFor reverses the icon table used when parsing callouts. The
// order is fixed so kinds sharing an emoji map back deterministically.
func calloutKindFor(icon *notionapi.Icon) string {
	if icon == nil || icon.Emoji == nil {
		return "note"
	}
	for _, entry := range calloutEmoji {
		if string(*icon.Emoji) == entry.emoji {
			return entry.kind
		}
	}
	return "note"
}

var calloutEmoji = []struct {
	kind  string
	emoji string
}{
	{"note", "💡"},
	{"info", "ℹ️"},
	{"important", "❗"},
	{"warning", "⚠️"},
	{"danger", "🚫"},
	{"bug", "🐛"},
	{"faq", "❓"},
	{"example", "📝"},
	{"quote", "💬"},
	{"success", "✅"},
	{"todo", "☑️"},
	{"abstract", "📋"},
}

func fileURL(typ notionapi.FileType, external *notionapi.FileObject) string {
	if typ == notionapi.FileTypeExternal && external != nil {
		return external.URL
	}
	return ""
}

func markdownRichTexts(rts []notionapi.RichText) string {
	return markdownRichText(rts)
}

// markdownRichText re-serializes styled runs. Styles nest code innermost so
// that code spans survive a reparse intact.
func markdownRichText(rts []notionapi.RichText) string {
	var sb strings.Builder
	for _, rt := range rts {
		sb.WriteString(markdownRun(rt))
	}
	return sb.String()
}

func markdownRun(rt notionapi.RichText) string {
	text := richTextContent(rt)
	a := rt.Annotations
	if a != nil {
		if a.Code {
			text = "`" + text + "`"
		}
		if a.Strikethrough {
			text = "~~" + text + "~~"
		}
		switch {
		case a.Bold && a.Italic:
			text = "***" + text + "***"
		case a.Bold:
			text = "**" + text + "**"
		case a.Italic:
			text = "*" + text + "*"
		}
		if a.Color == notionapi.ColorYellowBackground {
			text = "==" + text + "=="
		}
	}
	if rt.Text != nil && rt.Text.Link != nil && rt.Text.Link.Url != "" {
		text = "[" + text + "](" + rt.Text.Link.Url + ")"
	} else if rt.Href != "" {
		text = "[" + text + "](" + rt.Href + ")"
	}
	return text
}
