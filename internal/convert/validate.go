package convert

import (
	"fmt"

	"github.com/jomei/notionapi"
)

// Validate checks blocks against limits and API requirements without
// modifying anything. Every violation becomes an Issue; an empty slice
// means the payload is safe to send.
func Validate(blocks notionapi.Blocks, limits Limits) []Issue {
	v := &validator{limits: limits.withDefaults()}
	if len(blocks) > v.limits.MaxBlocksPerRequest {
		v.add("blocks", SeverityError,
			"%d blocks exceeds the per-request maximum of %d", len(blocks), v.limits.MaxBlocksPerRequest)
	}
	v.walk(blocks, "blocks", 0)
	return v.issues
}

type validator struct {
	limits Limits
	issues []Issue
}

func (v *validator) add(path string, sev Severity, format string, args ...any) {
	v.issues = append(v.issues, Issue{
		Path:     path,
		Reason:   fmt.Sprintf(format, args...),
		Severity: sev,
	})
}

func (v *validator) walk(blocks notionapi.Blocks, path string, depth int) {
	for i, b := range blocks {
		v.check(b, fmt.Sprintf("%s[%d]", path, i), depth)
	}
}

func (v *validator) check(b notionapi.Block, path string, depth int) {
	if depth >= v.limits.MaxNestingDepth {
		v.add(path, SeverityError, "nesting depth %d exceeds maximum of %d", depth+1, v.limits.MaxNestingDepth)
		return
	}

	for i, rt := range blockRichText(b) {
		if n := richTextLen(rt); n > v.limits.MaxRichTextLength {
			v.add(fmt.Sprintf("%s.rich_text[%d]", path, i), SeverityError,
				"run of %d characters exceeds maximum of %d", n, v.limits.MaxRichTextLength)
		}
	}

	switch blk := b.(type) {
	case *notionapi.TableBlock:
		v.checkTable(blk, path)
		return
	case *notionapi.CodeBlock:
		if blk.Code.Language == "" {
			v.add(path, SeverityWarning, "code block has no language")
		}
	case *notionapi.BookmarkBlock:
		if blk.Bookmark.URL == "" {
			v.add(path, SeverityError, "bookmark has no URL")
		}
	case *notionapi.EmbedBlock:
		if blk.Embed.URL == "" {
			v.add(path, SeverityError, "embed has no URL")
		}
	case *notionapi.EquationBlock:
		if blk.Equation.Expression == "" {
			v.add(path, SeverityError, "equation has no expression")
		}
	case *notionapi.ImageBlock:
		v.checkFile(blk.Image.Type, blk.Image.External, path)
	case *notionapi.VideoBlock:
		v.checkFile(blk.Video.Type, blk.Video.External, path)
	case *notionapi.AudioBlock:
		v.checkFile(blk.Audio.Type, blk.Audio.External, path)
	}

	kids := blockChildren(b)
	if len(kids) > v.limits.MaxChildrenPerBlock {
		v.add(path, SeverityError, "%d children exceeds the per-block maximum of %d",
			len(kids), v.limits.MaxChildrenPerBlock)
	}
	v.walk(kids, path+".children", depth+1)
}

func (v *validator) checkTable(blk *notionapi.TableBlock, path string) {
	width := blk.Table.TableWidth
	if width <= 0 {
		v.add(path, SeverityError, "table has no width")
	}
	if width > v.limits.MaxTableWidth {
		v.add(path, SeverityWarning, "table width %d exceeds maximum of %d", width, v.limits.MaxTableWidth)
	}
	if len(blk.Table.Children) == 0 {
		v.add(path, SeverityError, "table has no rows")
	}
	for i, row := range blk.Table.Children {
		rowPath := fmt.Sprintf("%s.children[%d]", path, i)
		tr, ok := row.(*notionapi.TableRowBlock)
		if !ok {
			v.add(rowPath, SeverityError, "table child is %s, want table_row", row.GetType())
			continue
		}
		if got := len(tr.TableRow.Cells); got != width {
			v.add(rowPath, SeverityError, "row has %d cells, table width is %d", got, width)
		}
	}
}

func (v *validator) checkFile(typ notionapi.FileType, external *notionapi.FileObject, path string) {
	if typ != notionapi.FileTypeExternal {
		return
	}
	if external == nil || external.URL == "" {
		v.add(path, SeverityError, "external file has no URL")
	}
}
