package convert

import "github.com/jomei/notionapi"

// blockRichText returns the rich text array of a block, or nil for
// structural blocks that have none.
func blockRichText(b notionapi.Block) []notionapi.RichText {
	switch v := b.(type) {
	case *notionapi.ParagraphBlock:
		return v.Paragraph.RichText
	case *notionapi.Heading1Block:
		return v.Heading1.RichText
	case *notionapi.Heading2Block:
		return v.Heading2.RichText
	case *notionapi.Heading3Block:
		return v.Heading3.RichText
	case *notionapi.BulletedListItemBlock:
		return v.BulletedListItem.RichText
	case *notionapi.NumberedListItemBlock:
		return v.NumberedListItem.RichText
	case *notionapi.ToDoBlock:
		return v.ToDo.RichText
	case *notionapi.ToggleBlock:
		return v.Toggle.RichText
	case *notionapi.QuoteBlock:
		return v.Quote.RichText
	case *notionapi.CalloutBlock:
		return v.Callout.RichText
	case *notionapi.CodeBlock:
		return v.Code.RichText
	default:
		return nil
	}
}

func setBlockRichText(b notionapi.Block, rt []notionapi.RichText) {
	switch v := b.(type) {
	case *notionapi.ParagraphBlock:
		v.Paragraph.RichText = rt
	case *notionapi.Heading1Block:
		v.Heading1.RichText = rt
	case *notionapi.Heading2Block:
		v.Heading2.RichText = rt
	case *notionapi.Heading3Block:
		v.Heading3.RichText = rt
	case *notionapi.BulletedListItemBlock:
		v.BulletedListItem.RichText = rt
	case *notionapi.NumberedListItemBlock:
		v.NumberedListItem.RichText = rt
	case *notionapi.ToDoBlock:
		v.ToDo.RichText = rt
	case *notionapi.ToggleBlock:
		v.Toggle.RichText = rt
	case *notionapi.QuoteBlock:
		v.Quote.RichText = rt
	case *notionapi.CalloutBlock:
		v.Callout.RichText = rt
	case *notionapi.CodeBlock:
		v.Code.RichText = rt
	}
}

// blockChildren returns a block's nested children.
func blockChildren(b notionapi.Block) notionapi.Blocks {
	switch v := b.(type) {
	case *notionapi.ParagraphBlock:
		return v.Paragraph.Children
	case *notionapi.Heading1Block:
		return v.Heading1.Children
	case *notionapi.Heading2Block:
		return v.Heading2.Children
	case *notionapi.Heading3Block:
		return v.Heading3.Children
	case *notionapi.BulletedListItemBlock:
		return v.BulletedListItem.Children
	case *notionapi.NumberedListItemBlock:
		return v.NumberedListItem.Children
	case *notionapi.ToDoBlock:
		return v.ToDo.Children
	case *notionapi.ToggleBlock:
		return v.Toggle.Children
	case *notionapi.QuoteBlock:
		return v.Quote.Children
	case *notionapi.CalloutBlock:
		return v.Callout.Children
	case *notionapi.TableBlock:
		return v.Table.Children
	default:
		return nil
	}
}

func setBlockChildren(b notionapi.Block, kids notionapi.Blocks) {
	switch v := b.(type) {
	case *notionapi.ParagraphBlock:
		v.Paragraph.Children = kids
	case *notionapi.Heading1Block:
		v.Heading1.Children = kids
	case *notionapi.Heading2Block:
		v.Heading2.Children = kids
	case *notionapi.Heading3Block:
		v.Heading3.Children = kids
	case *notionapi.BulletedListItemBlock:
		v.BulletedListItem.Children = kids
	case *notionapi.NumberedListItemBlock:
		v.NumberedListItem.Children = kids
	case *notionapi.ToDoBlock:
		v.ToDo.Children = kids
	case *notionapi.ToggleBlock:
		v.Toggle.Children = kids
	case *notionapi.QuoteBlock:
		v.Quote.Children = kids
	case *notionapi.CalloutBlock:
		v.Callout.Children = kids
	case *notionapi.TableBlock:
		v.Table.Children = kids
	}
}

// cloneBlocks deep-copies a block list. The formatter works on clones so
// its passes stay pure with respect to caller-owned input.
func cloneBlocks(blocks notionapi.Blocks) notionapi.Blocks {
	if blocks == nil {
		return nil
	}
	out := make(notionapi.Blocks, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, cloneBlock(b))
	}
	return out
}

func cloneBlock(b notionapi.Block) notionapi.Block {
	switch v := b.(type) {
	case *notionapi.ParagraphBlock:
		c := *v
		c.Paragraph.RichText = cloneRichTexts(v.Paragraph.RichText)
		c.Paragraph.Children = cloneBlocks(v.Paragraph.Children)
		return &c
	case *notionapi.Heading1Block:
		c := *v
		c.Heading1.RichText = cloneRichTexts(v.Heading1.RichText)
		c.Heading1.Children = cloneBlocks(v.Heading1.Children)
		return &c
	case *notionapi.Heading2Block:
		c := *v
		c.Heading2.RichText = cloneRichTexts(v.Heading2.RichText)
		c.Heading2.Children = cloneBlocks(v.Heading2.Children)
		return &c
	case *notionapi.Heading3Block:
		c := *v
		c.Heading3.RichText = cloneRichTexts(v.Heading3.RichText)
		c.Heading3.Children = cloneBlocks(v.Heading3.Children)
		return &c
	case *notionapi.BulletedListItemBlock:
		c := *v
		c.BulletedListItem.RichText = cloneRichTexts(v.BulletedListItem.RichText)
		c.BulletedListItem.Children = cloneBlocks(v.BulletedListItem.Children)
		return &c
	case *notionapi.NumberedListItemBlock:
		c := *v
		c.NumberedListItem.RichText = cloneRichTexts(v.NumberedListItem.RichText)
		c.NumberedListItem.Children = cloneBlocks(v.NumberedListItem.Children)
		return &c
	case *notionapi.ToDoBlock:
		c := *v
		c.ToDo.RichText = cloneRichTexts(v.ToDo.RichText)
		c.ToDo.Children = cloneBlocks(v.ToDo.Children)
		return &c
	case *notionapi.ToggleBlock:
		c := *v
		c.Toggle.RichText = cloneRichTexts(v.Toggle.RichText)
		c.Toggle.Children = cloneBlocks(v.Toggle.Children)
		return &c
	case *notionapi.QuoteBlock:
		c := *v
		c.Quote.RichText = cloneRichTexts(v.Quote.RichText)
		c.Quote.Children = cloneBlocks(v.Quote.Children)
		return &c
	case *notionapi.CalloutBlock:
		c := *v
		c.Callout.RichText = cloneRichTexts(v.Callout.RichText)
		c.Callout.Children = cloneBlocks(v.Callout.Children)
		if v.Callout.Icon != nil {
			icon := *v.Callout.Icon
			if v.Callout.Icon.Emoji != nil {
				e := *v.Callout.Icon.Emoji
				icon.Emoji = &e
			}
			c.Callout.Icon = &icon
		}
		return &c
	case *notionapi.CodeBlock:
		c := *v
		c.Code.RichText = cloneRichTexts(v.Code.RichText)
		c.Code.Caption = cloneRichTexts(v.Code.Caption)
		return &c
	case *notionapi.TableBlock:
		c := *v
		c.Table.Children = cloneBlocks(v.Table.Children)
		return &c
	case *notionapi.TableRowBlock:
		c := *v
		cells := make([][]notionapi.RichText, len(v.TableRow.Cells))
		for i, cell := range v.TableRow.Cells {
			cells[i] = cloneRichTexts(cell)
		}
		c.TableRow.Cells = cells
		return &c
	case *notionapi.ImageBlock:
		c := *v
		c.Image.Caption = cloneRichTexts(v.Image.Caption)
		c.Image.File = cloneFileObject(v.Image.File)
		c.Image.External = cloneFileObject(v.Image.External)
		return &c
	case *notionapi.VideoBlock:
		c := *v
		c.Video.Caption = cloneRichTexts(v.Video.Caption)
		c.Video.File = cloneFileObject(v.Video.File)
		c.Video.External = cloneFileObject(v.Video.External)
		return &c
	case *notionapi.AudioBlock:
		c := *v
		c.Audio.Caption = cloneRichTexts(v.Audio.Caption)
		c.Audio.File = cloneFileObject(v.Audio.File)
		c.Audio.External = cloneFileObject(v.Audio.External)
		return &c
	case *notionapi.FileBlock:
		c := *v
		c.File.Caption = cloneRichTexts(v.File.Caption)
		c.File.File = cloneFileObject(v.File.File)
		c.File.External = cloneFileObject(v.File.External)
		return &c
	case *notionapi.BookmarkBlock:
		c := *v
		c.Bookmark.Caption = cloneRichTexts(v.Bookmark.Caption)
		return &c
	case *notionapi.EmbedBlock:
		c := *v
		c.Embed.Caption = cloneRichTexts(v.Embed.Caption)
		return &c
	case *notionapi.EquationBlock:
		c := *v
		return &c
	case *notionapi.DividerBlock:
		c := *v
		return &c
	default:
		// Unknown types pass through by reference; the formatter leaves
		// them untouched.
		return b
	}
}

func cloneRichTexts(rts []notionapi.RichText) []notionapi.RichText {
	if rts == nil {
		return nil
	}
	out := make([]notionapi.RichText, len(rts))
	for i, rt := range rts {
		c := rt
		if rt.Text != nil {
			text := *rt.Text
			if rt.Text.Link != nil {
				link := *rt.Text.Link
				text.Link = &link
			}
			c.Text = &text
		}
		if rt.Annotations != nil {
			ann := *rt.Annotations
			c.Annotations = &ann
		}
		if rt.Equation != nil {
			eq := *rt.Equation
			c.Equation = &eq
		}
		out[i] = c
	}
	return out
}

func cloneFileObject(f *notionapi.FileObject) *notionapi.FileObject {
	if f == nil {
		return nil
	}
	c := *f
	return &c
}
