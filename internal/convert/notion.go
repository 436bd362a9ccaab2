package convert

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jomei/notionapi"

	"github.com/gerunddev/notionclip/internal/ast"
)

// ToNotionBlocks maps AST nodes onto Notion API block shapes. One node may
// expand into several sibling blocks (a list node becomes one block per
// item). Conversion never fails; schema trims (table clipping, row
// truncation) are reported as issues alongside the blocks.
func ToNotionBlocks(nodes []ast.Node, limits Limits) (notionapi.Blocks, []Issue) {
	c := &converter{limits: limits.withDefaults()}
	blocks := c.convertNodes(nodes, "blocks")
	return blocks, c.issues
}

type converter struct {
	limits Limits
	issues []Issue
}

func (c *converter) report(path, reason string, sev Severity) {
	c.issues = append(c.issues, Issue{Path: path, Reason: reason, Severity: sev})
}

func (c *converter) convertNodes(nodes []ast.Node, path string) notionapi.Blocks {
	var blocks notionapi.Blocks
	for _, n := range nodes {
		blocks = append(blocks, c.convertNode(n, fmt.Sprintf("%s[%d]", path, len(blocks)))...)
	}
	return blocks
}

func (c *converter) convertNode(n ast.Node, path string) notionapi.Blocks {
	switch v := n.(type) {
	case *ast.Paragraph:
		return notionapi.Blocks{&notionapi.ParagraphBlock{
			BasicBlock: basic(notionapi.BlockTypeParagraph),
			Paragraph: notionapi.Paragraph{
				RichText: richTextFromRuns(v.Runs, c.limits.MaxRichTextLength),
			},
		}}

	case *ast.Heading:
		return notionapi.Blocks{c.heading(v, path)}

	case *ast.List:
		var blocks notionapi.Blocks
		for i, item := range v.Items {
			blocks = append(blocks, c.listItem(item, fmt.Sprintf("%s{+%d}", path, i)))
		}
		return blocks

	case *ast.ListItem:
		return notionapi.Blocks{c.listItem(v, path)}

	case *ast.Table:
		return notionapi.Blocks{c.table(v, path)}

	case *ast.Code:
		lang := v.Language
		if lang == "" {
			lang = "plain text"
		}
		return notionapi.Blocks{&notionapi.CodeBlock{
			BasicBlock: basic(notionapi.BlockTypeCode),
			Code: notionapi.Code{
				RichText: plainRichText(v.Text, c.limits.MaxRichTextLength),
				Language: lang,
			},
		}}

	case *ast.Quote:
		return notionapi.Blocks{&notionapi.QuoteBlock{
			BasicBlock: basic("quote"),
			Quote: notionapi.Quote{
				RichText: richTextFromRuns(v.Runs, c.limits.MaxRichTextLength),
			},
		}}

	case *ast.Callout:
		emoji := notionapi.Emoji(v.Icon)
		return notionapi.Blocks{&notionapi.CalloutBlock{
			BasicBlock: basic("callout"),
			Callout: notionapi.Callout{
				RichText: richTextFromRuns(v.Runs, c.limits.MaxRichTextLength),
				Icon:     &notionapi.Icon{Type: "emoji", Emoji: &emoji},
				Children: c.convertNodes(v.Children, path+".children"),
			},
		}}

	case *ast.Toggle:
		return notionapi.Blocks{&notionapi.ToggleBlock{
			BasicBlock: basic("toggle"),
			Toggle: notionapi.Toggle{
				RichText: richTextFromRuns(v.Runs, c.limits.MaxRichTextLength),
				Children: c.convertNodes(v.Children, path+".children"),
			},
		}}

	case *ast.Equation:
		return notionapi.Blocks{&notionapi.EquationBlock{
			BasicBlock: basic("equation"),
			Equation:   notionapi.Equation{Expression: v.Expression},
		}}

	case *ast.Media:
		return notionapi.Blocks{c.media(v, path)}

	case *ast.Divider:
		return notionapi.Blocks{&notionapi.DividerBlock{
			BasicBlock: basic(notionapi.BlockTypeDivider),
		}}

	case *ast.Bookmark:
		return notionapi.Blocks{&notionapi.BookmarkBlock{
			BasicBlock: basic("bookmark"),
			Bookmark:   notionapi.Bookmark{URL: v.URL},
		}}

	default:
		c.report(path, fmt.Sprintf("unhandled node %T dropped", n), SeverityWarning)
		return nil
	}
}

func basic(t notionapi.BlockType) notionapi.BasicBlock {
	return notionapi.BasicBlock{Object: notionapi.ObjectTypeBlock, Type: t}
}

func (c *converter) heading(h *ast.Heading, path string) notionapi.Block {
	heading := notionapi.Heading{
		RichText:     richTextFromRuns(h.Runs, c.limits.MaxRichTextLength),
		IsToggleable: h.Toggleable,
	}
	if h.Toggleable {
		heading.Children = c.convertNodes(h.Children, path+".children")
	}
	switch h.Level {
	case 1:
		return &notionapi.Heading1Block{
			BasicBlock: basic(notionapi.BlockTypeHeading1),
			Heading1:   heading,
		}
	case 2:
		return &notionapi.Heading2Block{
			BasicBlock: basic(notionapi.BlockTypeHeading2),
			Heading2:   heading,
		}
	default:
		return &notionapi.Heading3Block{
			BasicBlock: basic(notionapi.BlockTypeHeading3),
			Heading3:   heading,
		}
	}
}

func (c *converter) listItem(item *ast.ListItem, path string) notionapi.Block {
	richText := richTextFromRuns(item.Runs, c.limits.MaxRichTextLength)
	var children notionapi.Blocks
	for i, child := range item.Children {
		children = append(children, c.listItem(child, fmt.Sprintf("%s.children[%d]", path, i)))
	}

	switch item.Kind {
	case ast.Todo:
		return &notionapi.ToDoBlock{
			BasicBlock: basic(notionapi.BlockTypeToDo),
			ToDo: notionapi.ToDo{
				RichText: richText,
				Checked:  item.Checked,
				Children: children,
			},
		}
	case ast.Numbered:
		return &notionapi.NumberedListItemBlock{
			BasicBlock: basic(notionapi.BlockTypeNumberedListItem),
			NumberedListItem: notionapi.ListItem{
				RichText: richText,
				Children: children,
			},
		}
	default:
		return &notionapi.BulletedListItemBlock{
			BasicBlock: basic(notionapi.BlockTypeBulletedListItem),
			BulletedListItem: notionapi.ListItem{
				RichText: richText,
				Children: children,
			},
		}
	}
}

// table squares rows off to a uniform width: the width comes from the first
// row, clipped to the configured column ceiling. Short rows pad with empty
// cells; longer rows are truncated and reported, not silently dropped.
func (c *converter) table(t *ast.Table, path string) notionapi.Block {
	width := 0
	if len(t.Rows) > 0 {
		width = len(t.Rows[0])
	}
	if width > c.limits.MaxTableWidth {
		c.report(path, fmt.Sprintf("table clipped from %d to %d columns", width, c.limits.MaxTableWidth), SeverityWarning)
		width = c.limits.MaxTableWidth
	}

	var rows notionapi.Blocks
	for i, row := range t.Rows {
		if len(row) > width {
			c.report(fmt.Sprintf("%s.children[%d]", path, i),
				fmt.Sprintf("row truncated from %d to %d cells", len(row), width), SeverityWarning)
			row = row[:width]
		}
		cells := make([][]notionapi.RichText, width)
		for j := 0; j < width; j++ {
			if j < len(row) {
				cells[j] = plainRichText(row[j], c.limits.MaxRichTextLength)
			} else {
				cells[j] = []notionapi.RichText{}
			}
		}
		rows = append(rows, &notionapi.TableRowBlock{
			BasicBlock: basic("table_row"),
			TableRow:   notionapi.TableRow{Cells: cells},
		})
	}

	return &notionapi.TableBlock{
		BasicBlock: basic("table"),
		Table: notionapi.Table{
			TableWidth:      width,
			HasColumnHeader: t.HasHeader,
			Children:        rows,
		},
	}
}

// media maps remote targets to external file objects. A local path becomes a
// placeholder upload reference the caller's uploader resolves before the
// blocks are sent; the required upload is surfaced as an info issue.
func (c *converter) media(m *ast.Media, path string) notionapi.Block {
	caption := richTextFromRuns(m.Caption, c.limits.MaxRichTextLength)

	url := m.URL
	if url == "" {
		ref := "upload://" + uuid.New().String()
		c.report(path, fmt.Sprintf("local media %q needs upload, placeholder %s", m.UploadRef, ref), SeverityInfo)
		url = ref
	}
	file := &notionapi.FileObject{URL: url}

	switch m.Kind {
	case ast.MediaVideo:
		return &notionapi.VideoBlock{
			BasicBlock: basic("video"),
			Video: notionapi.Video{
				Caption:  caption,
				Type:     notionapi.FileTypeExternal,
				External: file,
			},
		}
	case ast.MediaAudio:
		return &notionapi.AudioBlock{
			BasicBlock: basic("audio"),
			Audio: notionapi.Audio{
				Caption:  caption,
				Type:     notionapi.FileTypeExternal,
				External: file,
			},
		}
	case ast.MediaFile:
		return &notionapi.FileBlock{
			BasicBlock: basic("file"),
			File: notionapi.BlockFile{
				Caption:  caption,
				Type:     notionapi.FileTypeExternal,
				External: file,
			},
		}
	default:
		return &notionapi.ImageBlock{
			BasicBlock: basic(notionapi.BlockTypeImage),
			Image: notionapi.Image{
				Caption:  caption,
				Type:     notionapi.FileTypeExternal,
				External: file,
			},
		}
	}
}
