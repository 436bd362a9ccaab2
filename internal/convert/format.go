package convert

import (
	"encoding/json"
	"strings"

	"github.com/jomei/notionapi"
)

// FormatOptions toggles the formatter's passes. Each pass is independent;
// they always compose in the same fixed order, so output is deterministic
// no matter how callers assemble the options.
type FormatOptions struct {
	// RemoveEmptyBlocks drops paragraphs with no visible text.
	RemoveEmptyBlocks bool
	// NormalizeWhitespace collapses runs of spaces and tabs inside rich text.
	NormalizeWhitespace bool
	// ApplyColor sets this block color on blocks that have none.
	ApplyColor string
	// MergeConsecutiveParagraphs joins adjacent paragraphs with a newline.
	MergeConsecutiveParagraphs bool
	// MaxConsecutiveEmptyLines caps runs of empty paragraphs; zero disables
	// the pass.
	MaxConsecutiveEmptyLines int
	// MergeSimilarBlocks joins adjacent paragraphs and adjacent code blocks
	// of the same language.
	MergeSimilarBlocks bool
	// TrimRichText trims outer whitespace per block and merges adjacent
	// runs with identical styling.
	TrimRichText bool
	// EnforceBlockLimits applies Limits: rich text chunking, children and
	// block-count clipping, depth flattening.
	EnforceBlockLimits bool
	// OptimizeStructure flattens single-child nesting of identical type and
	// drops byte-identical consecutive duplicates.
	OptimizeStructure bool
	// Limits used by EnforceBlockLimits; zero fields take defaults.
	Limits Limits
}

// DefaultFormatOptions is the formatter configuration the pipeline applies.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{
		RemoveEmptyBlocks:        true,
		NormalizeWhitespace:      true,
		MaxConsecutiveEmptyLines: 1,
		TrimRichText:             true,
		EnforceBlockLimits:       true,
		OptimizeStructure:        true,
		Limits:                   DefaultLimits(),
	}
}

// Format runs the enabled passes over a deep copy of blocks and returns the
// copy; the input is never mutated.
func Format(blocks notionapi.Blocks, opts FormatOptions) notionapi.Blocks {
	limits := opts.Limits.withDefaults()
	out := cloneBlocks(blocks)

	if opts.RemoveEmptyBlocks {
		out = removeEmptyBlocks(out)
	}
	if opts.NormalizeWhitespace {
		walkBlocks(out, normalizeBlockWhitespace)
	}
	if opts.ApplyColor != "" {
		walkBlocks(out, func(b notionapi.Block) { applyColor(b, opts.ApplyColor) })
	}
	if opts.MergeConsecutiveParagraphs {
		out = mapTrees(out, mergeParagraphs)
	}
	if opts.MaxConsecutiveEmptyLines > 0 {
		out = mapTrees(out, func(bs notionapi.Blocks) notionapi.Blocks {
			return capEmptyRuns(bs, opts.MaxConsecutiveEmptyLines)
		})
	}
	if opts.MergeSimilarBlocks {
		out = mapTrees(out, mergeParagraphs)
		out = mapTrees(out, mergeCodeBlocks)
	}
	if opts.TrimRichText {
		walkBlocks(out, trimBlockRichText)
	}
	if opts.EnforceBlockLimits {
		walkBlocks(out, func(b notionapi.Block) { chunkBlockRichText(b, limits.MaxRichTextLength) })
		out = clampDepth(out, 0, limits.MaxNestingDepth)
		out = mapTrees(out, func(bs notionapi.Blocks) notionapi.Blocks {
			return clipCount(bs, limits.MaxChildrenPerBlock)
		})
		out = clipCount(out, limits.MaxBlocksPerRequest)
	}
	if opts.OptimizeStructure {
		out = mapTrees(out, collapseSingleChild)
		out = mapTrees(out, dropConsecutiveDuplicates)
	}
	return out
}

// walkBlocks applies fn to every block in every tree, depth first.
func walkBlocks(blocks notionapi.Blocks, fn func(notionapi.Block)) {
	for _, b := range blocks {
		fn(b)
		walkBlocks(blockChildren(b), fn)
	}
}

// mapTrees applies a list transformation to the top level and to every
// children list.
func mapTrees(blocks notionapi.Blocks, fn func(notionapi.Blocks) notionapi.Blocks) notionapi.Blocks {
	for _, b := range blocks {
		if kids := blockChildren(b); len(kids) > 0 {
			setBlockChildren(b, mapTrees(kids, fn))
		}
	}
	return fn(blocks)
}

func isEmptyParagraph(b notionapi.Block) bool {
	p, ok := b.(*notionapi.ParagraphBlock)
	if !ok {
		return false
	}
	if len(p.Paragraph.Children) > 0 {
		return false
	}
	for _, rt := range p.Paragraph.RichText {
		if strings.TrimSpace(richTextContent(rt)) != "" {
			return false
		}
	}
	return true
}

func removeEmptyBlocks(blocks notionapi.Blocks) notionapi.Blocks {
	return mapTrees(blocks, func(bs notionapi.Blocks) notionapi.Blocks {
		out := bs[:0]
		for _, b := range bs {
			if !isEmptyParagraph(b) {
				out = append(out, b)
			}
		}
		return out
	})
}

// capEmptyRuns keeps at most max consecutive empty paragraphs.
func capEmptyRuns(blocks notionapi.Blocks, max int) notionapi.Blocks {
	out := blocks[:0]
	run := 0
	for _, b := range blocks {
		if isEmptyParagraph(b) {
			run++
			if run > max {
				continue
			}
		} else {
			run = 0
		}
		out = append(out, b)
	}
	return out
}

func normalizeBlockWhitespace(b notionapi.Block) {
	rts := blockRichText(b)
	if _, isCode := b.(*notionapi.CodeBlock); isCode || rts == nil {
		return
	}
	for i := range rts {
		if rts[i].Text != nil {
			rts[i].Text.Content = collapseSpaces(rts[i].Text.Content)
		}
		rts[i].PlainText = collapseSpaces(rts[i].PlainText)
	}
}

// collapseSpaces squeezes runs of spaces and tabs to a single space,
// leaving newlines alone.
func collapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		if r == ' ' || r == '\t' {
			space = true
			continue
		}
		if space {
			b.WriteByte(' ')
			space = false
		}
		b.WriteRune(r)
	}
	if space {
		b.WriteByte(' ')
	}
	return b.String()
}

func applyColor(b notionapi.Block, color string) {
	switch v := b.(type) {
	case *notionapi.ParagraphBlock:
		if v.Paragraph.Color == "" {
			v.Paragraph.Color = color
		}
	case *notionapi.Heading1Block:
		if v.Heading1.Color == "" {
			v.Heading1.Color = color
		}
	case *notionapi.Heading2Block:
		if v.Heading2.Color == "" {
			v.Heading2.Color = color
		}
	case *notionapi.Heading3Block:
		if v.Heading3.Color == "" {
			v.Heading3.Color = color
		}
	case *notionapi.QuoteBlock:
		if v.Quote.Color == "" {
			v.Quote.Color = color
		}
	case *notionapi.CalloutBlock:
		if v.Callout.Color == "" {
			v.Callout.Color = color
		}
	}
}

func mergeParagraphs(blocks notionapi.Blocks) notionapi.Blocks {
	out := blocks[:0]
	for _, b := range blocks {
		p, ok := b.(*notionapi.ParagraphBlock)
		if ok && len(out) > 0 {
			if prev, prevOK := out[len(out)-1].(*notionapi.ParagraphBlock); prevOK &&
				len(prev.Paragraph.Children) == 0 && len(p.Paragraph.Children) == 0 &&
				!isEmptyParagraph(prev) && !isEmptyParagraph(p) {
				joined := append(prev.Paragraph.RichText, notionapi.RichText{
					Type:      notionapi.ObjectTypeText,
					Text:      &notionapi.Text{Content: "\n"},
					PlainText: "\n",
				})
				prev.Paragraph.RichText = append(joined, p.Paragraph.RichText...)
				continue
			}
		}
		out = append(out, b)
	}
	return out
}

func mergeCodeBlocks(blocks notionapi.Blocks) notionapi.Blocks {
	out := blocks[:0]
	for _, b := range blocks {
		cb, ok := b.(*notionapi.CodeBlock)
		if ok && len(out) > 0 {
			if prev, prevOK := out[len(out)-1].(*notionapi.CodeBlock); prevOK &&
				prev.Code.Language == cb.Code.Language {
				joined := append(prev.Code.RichText, notionapi.RichText{
					Type:      notionapi.ObjectTypeText,
					Text:      &notionapi.Text{Content: "\n"},
					PlainText: "\n",
				})
				prev.Code.RichText = append(joined, cb.Code.RichText...)
				continue
			}
		}
		out = append(out, b)
	}
	return out
}

// trimBlockRichText trims outer whitespace of a block's text and merges
// adjacent runs whose annotations and link match.
func trimBlockRichText(b notionapi.Block) {
	if _, isCode := b.(*notionapi.CodeBlock); isCode {
		return
	}
	rts := blockRichText(b)
	if len(rts) == 0 {
		return
	}

	setContent := func(rt *notionapi.RichText, s string) {
		if rt.Text != nil {
			rt.Text.Content = s
		}
		rt.PlainText = s
	}
	setContent(&rts[0], strings.TrimLeft(richTextContent(rts[0]), " \t"))
	setContent(&rts[len(rts)-1], strings.TrimRight(richTextContent(rts[len(rts)-1]), " \t"))

	merged := rts[:0]
	for _, rt := range rts {
		if richTextContent(rt) == "" {
			continue
		}
		if len(merged) > 0 && sameStyle(merged[len(merged)-1], rt) {
			setContent(&merged[len(merged)-1], richTextContent(merged[len(merged)-1])+richTextContent(rt))
			continue
		}
		merged = append(merged, rt)
	}
	setBlockRichText(b, merged)
}

func sameStyle(a, b notionapi.RichText) bool {
	if a.Type != b.Type || a.Href != b.Href {
		return false
	}
	aLink, bLink := "", ""
	if a.Text != nil && a.Text.Link != nil {
		aLink = a.Text.Link.Url
	}
	if b.Text != nil && b.Text.Link != nil {
		bLink = b.Text.Link.Url
	}
	if aLink != bLink {
		return false
	}
	switch {
	case a.Annotations == nil && b.Annotations == nil:
		return true
	case a.Annotations == nil || b.Annotations == nil:
		return false
	default:
		return *a.Annotations == *b.Annotations
	}
}

// chunkBlockRichText re-splits any oversized run, keeping its styling.
func chunkBlockRichText(b notionapi.Block, max int) {
	rts := blockRichText(b)
	if rts == nil {
		return
	}
	var out []notionapi.RichText
	changed := false
	for _, rt := range rts {
		if richTextLen(rt) <= max {
			out = append(out, rt)
			continue
		}
		changed = true
		for _, chunk := range chunkText(richTextContent(rt), max) {
			c := rt
			if rt.Text != nil {
				text := *rt.Text
				text.Content = chunk
				c.Text = &text
			}
			c.PlainText = chunk
			out = append(out, c)
		}
	}
	if changed {
		setBlockRichText(b, out)
	}
}

// clampDepth bounds nesting: a subtree that would exceed the maximum depth
// is flattened into siblings at the deepest allowed level. Table rows are
// structural and exempt.
func clampDepth(blocks notionapi.Blocks, depth, max int) notionapi.Blocks {
	var out notionapi.Blocks
	for _, b := range blocks {
		if _, isTable := b.(*notionapi.TableBlock); isTable {
			out = append(out, b)
			continue
		}
		kids := blockChildren(b)
		switch {
		case len(kids) == 0:
			out = append(out, b)
		case depth+1 >= max:
			setBlockChildren(b, nil)
			out = append(out, b)
			out = append(out, flattenSubtrees(kids)...)
		default:
			setBlockChildren(b, clampDepth(kids, depth+1, max))
			out = append(out, b)
		}
	}
	return out
}

func flattenSubtrees(blocks notionapi.Blocks) notionapi.Blocks {
	var out notionapi.Blocks
	for _, b := range blocks {
		kids := blockChildren(b)
		setBlockChildren(b, nil)
		out = append(out, b)
		out = append(out, flattenSubtrees(kids)...)
	}
	return out
}

func clipCount(blocks notionapi.Blocks, max int) notionapi.Blocks {
	if len(blocks) <= max {
		return blocks
	}
	return blocks[:max]
}

// collapseSingleChild folds a textless block whose only child has the same
// type into that child.
func collapseSingleChild(blocks notionapi.Blocks) notionapi.Blocks {
	out := blocks[:0]
	for _, b := range blocks {
		for {
			kids := blockChildren(b)
			if len(kids) != 1 || kids[0].GetType() != b.GetType() {
				break
			}
			if strings.TrimSpace(richTextPlain(blockRichText(b))) != "" {
				break
			}
			b = kids[0]
		}
		out = append(out, b)
	}
	return out
}

func richTextPlain(rts []notionapi.RichText) string {
	var sb strings.Builder
	for _, rt := range rts {
		sb.WriteString(richTextContent(rt))
	}
	return sb.String()
}

// dropConsecutiveDuplicates removes blocks that are byte-for-byte equal to
// their predecessor.
func dropConsecutiveDuplicates(blocks notionapi.Blocks) notionapi.Blocks {
	out := blocks[:0]
	var prev []byte
	for _, b := range blocks {
		raw, err := json.Marshal(b)
		if err != nil {
			out = append(out, b)
			prev = nil
			continue
		}
		if prev != nil && string(raw) == string(prev) {
			continue
		}
		out = append(out, b)
		prev = raw
	}
	return out
}
