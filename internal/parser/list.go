package parser

import (
	"github.com/gerunddev/notionclip/internal/ast"
	"github.com/gerunddev/notionclip/internal/token"
)

// indentPerLevel is the indentation width of one nesting level. A tab was
// already normalized to two columns by the lexer.
const indentPerLevel = 2

// parseList groups a run of consecutive list item tokens into one list
// node. Nesting is tracked with an explicit stack of open items keyed by
// indent depth; depth beyond the configured maximum flattens to the cap.
func (p *Parser) parseList(first token.Token, ts *token.Stream) ast.Node {
	list := &ast.List{}

	type openItem struct {
		depth int
		item  *ast.ListItem
	}
	var stack []openItem

	add := func(t token.Token) {
		meta, _ := t.Meta.(token.ListItemMeta)
		depth := meta.Indent / indentPerLevel
		if depth >= p.opts.MaxNestingDepth {
			depth = p.opts.MaxNestingDepth - 1
		}

		for len(stack) > 0 && stack[len(stack)-1].depth >= depth {
			stack = stack[:len(stack)-1]
		}

		item := &ast.ListItem{
			Kind:    listKind(meta),
			Checked: meta.Checked,
			Depth:   len(stack),
			Runs:    p.runs(t.Content),
		}
		if len(stack) == 0 {
			list.Items = append(list.Items, item)
		} else {
			parent := stack[len(stack)-1].item
			parent.Children = append(parent.Children, item)
		}
		stack = append(stack, openItem{depth: depth, item: item})
	}

	add(first)
	for ts.Peek().Kind == token.ListItem {
		add(ts.Next())
	}
	return list
}

func listKind(meta token.ListItemMeta) ast.ListKind {
	switch {
	case meta.Todo:
		return ast.Todo
	case meta.Ordered:
		return ast.Numbered
	default:
		return ast.Bulleted
	}
}

// parseTable collects the row tokens of one detected table. Rows keep their
// raw cell text; the converter squares them off.
func (p *Parser) parseTable(first token.Token, ts *token.Stream) ast.Node {
	table := &ast.Table{}
	appendRow := func(t token.Token) {
		meta, _ := t.Meta.(token.TableRowMeta)
		if meta.Header {
			table.HasHeader = true
		}
		table.Rows = append(table.Rows, meta.Cells)
	}
	appendRow(first)
	for ts.Peek().Kind == token.TableRow {
		appendRow(ts.Next())
	}
	return table
}
