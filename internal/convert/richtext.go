package convert

import (
	"github.com/jomei/notionapi"

	"github.com/gerunddev/notionclip/internal/inline"
)

// richTextFromRuns maps style runs onto Notion rich text objects, splitting
// any run longer than maxLen into sibling runs with the same annotations.
// Splitting happens here and nowhere earlier, so the AST stays simple.
func richTextFromRuns(runs []inline.Run, maxLen int) []notionapi.RichText {
	var out []notionapi.RichText
	for _, run := range runs {
		for _, chunk := range chunkText(run.Text, maxLen) {
			out = append(out, richTextRun(run, chunk))
		}
	}
	return out
}

func richTextRun(run inline.Run, text string) notionapi.RichText {
	rt := notionapi.RichText{
		Type:        notionapi.ObjectTypeText,
		Text:        &notionapi.Text{Content: text},
		PlainText:   text,
		Annotations: annotationsOf(run),
	}
	if run.Link != "" {
		rt.Text.Link = &notionapi.Link{Url: run.Link}
		rt.Href = run.Link
	}
	return rt
}

func annotationsOf(run inline.Run) *notionapi.Annotations {
	color := notionapi.ColorDefault
	if run.Color != "" {
		color = notionapi.Color(run.Color)
	}
	return &notionapi.Annotations{
		Bold:          run.Bold,
		Italic:        run.Italic,
		Underline:     run.Underline,
		Strikethrough: run.Strikethrough,
		Code:          run.Code,
		Color:         color,
	}
}

// plainRichText wraps text in default-styled rich text runs, chunked at
// maxLen.
func plainRichText(text string, maxLen int) []notionapi.RichText {
	if text == "" {
		return nil
	}
	return richTextFromRuns(inline.Plain(text), maxLen)
}

// PlainParagraph wraps raw text in a paragraph block without any inline
// parsing, chunked to the rich text limit.
func PlainParagraph(text string, limits Limits) notionapi.Block {
	limits = limits.withDefaults()
	return &notionapi.ParagraphBlock{
		BasicBlock: notionapi.BasicBlock{
			Object: notionapi.ObjectTypeBlock,
			Type:   notionapi.BlockTypeParagraph,
		},
		Paragraph: notionapi.Paragraph{
			RichText: plainRichText(text, limits.MaxRichTextLength),
		},
	}
}

// chunkText splits s into pieces of at most max runes, never cutting a rune
// in half. Notion's length limit counts characters, not bytes.
func chunkText(s string, max int) []string {
	if s == "" {
		return nil
	}
	if max <= 0 {
		return []string{s}
	}
	var chunks []string
	runes := []rune(s)
	for len(runes) > max {
		chunks = append(chunks, string(runes[:max]))
		runes = runes[max:]
	}
	return append(chunks, string(runes))
}

// richTextLen counts the characters of one rich text run.
func richTextLen(rt notionapi.RichText) int {
	if rt.Text != nil {
		return len([]rune(rt.Text.Content))
	}
	return len([]rune(rt.PlainText))
}

// richTextContent returns the visible text of one run, preferring the text
// object over the derived plain text.
func richTextContent(rt notionapi.RichText) string {
	if rt.Text != nil {
		return rt.Text.Content
	}
	return rt.PlainText
}
