package parser

import (
	"testing"

	"github.com/gerunddev/notionclip/internal/ast"
	"github.com/gerunddev/notionclip/internal/inline"
	"github.com/gerunddev/notionclip/internal/lexer"
)

func parse(t *testing.T, input string, opts Options) *ast.Document {
	t.Helper()
	doc, err := New(opts).Parse(lexer.Tokenize(input, lexer.Options{
		EnableMediaDetection: opts.EnableMediaDetection,
	}))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return doc
}

func TestParseHeadingLevels(t *testing.T) {
	doc := parse(t, "# One\n## Two\n### Three\n#### Four", Options{})
	if len(doc.Nodes) != 4 {
		t.Fatalf("got %d nodes, want 4", len(doc.Nodes))
	}
	wantLevels := []int{1, 2, 3, 3} // deeper levels clamp to 3
	for i, want := range wantLevels {
		h, ok := doc.Nodes[i].(*ast.Heading)
		if !ok {
			t.Fatalf("node %d is %T, want heading", i, doc.Nodes[i])
		}
		if h.Level != want {
			t.Errorf("node %d level = %d, want %d", i, h.Level, want)
		}
	}
}

func TestParseParagraphMergesLines(t *testing.T) {
	doc := parse(t, "first line\nsecond line\n\nnew paragraph", Options{})
	if len(doc.Nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(doc.Nodes))
	}
	p := doc.Nodes[0].(*ast.Paragraph)
	if got := inline.Text(p.Runs); got != "first line second line" {
		t.Errorf("merged paragraph = %q", got)
	}
}

func TestParseInlineFormatting(t *testing.T) {
	doc := parse(t, "**bold** and *italic*", Options{EnableInlineFormatting: true})
	p := doc.Nodes[0].(*ast.Paragraph)
	if len(p.Runs) != 3 {
		t.Fatalf("got %d runs, want 3", len(p.Runs))
	}
	if !p.Runs[0].Bold || p.Runs[0].Text != "bold" {
		t.Errorf("first run = %+v", p.Runs[0])
	}
	if !p.Runs[2].Italic || p.Runs[2].Text != "italic" {
		t.Errorf("third run = %+v", p.Runs[2])
	}

	// Disabled: markers stay verbatim in a single run.
	doc = parse(t, "**bold** and *italic*", Options{})
	p = doc.Nodes[0].(*ast.Paragraph)
	if len(p.Runs) != 1 || p.Runs[0].Text != "**bold** and *italic*" {
		t.Errorf("runs with formatting disabled = %+v", p.Runs)
	}
}

func TestParseNestedList(t *testing.T) {
	input := "- parent\n  - child\n    - grandchild\n- sibling"
	doc := parse(t, input, Options{})
	list, ok := doc.Nodes[0].(*ast.List)
	if !ok {
		t.Fatalf("node is %T, want list", doc.Nodes[0])
	}
	if len(list.Items) != 2 {
		t.Fatalf("got %d top items, want 2", len(list.Items))
	}
	parent := list.Items[0]
	if len(parent.Children) != 1 {
		t.Fatalf("parent has %d children, want 1", len(parent.Children))
	}
	child := parent.Children[0]
	if len(child.Children) != 1 {
		t.Fatalf("child has %d children, want 1", len(child.Children))
	}
	if inline.Text(child.Children[0].Runs) != "grandchild" {
		t.Errorf("grandchild text = %q", inline.Text(child.Children[0].Runs))
	}
}

func TestParseListKinds(t *testing.T) {
	input := "- bullet\n1. numbered\n- [ ] open\n- [x] done"
	doc := parse(t, input, Options{})
	list := doc.Nodes[0].(*ast.List)
	if len(list.Items) != 4 {
		t.Fatalf("got %d items, want 4", len(list.Items))
	}
	wantKinds := []ast.ListKind{ast.Bulleted, ast.Numbered, ast.Todo, ast.Todo}
	for i, want := range wantKinds {
		if list.Items[i].Kind != want {
			t.Errorf("item %d kind = %v, want %v", i, list.Items[i].Kind, want)
		}
	}
	if list.Items[2].Checked || !list.Items[3].Checked {
		t.Error("checkbox states wrong")
	}
}

func TestParseDeepNestingFlattens(t *testing.T) {
	input := "- a\n    - b\n        - c\n            - d"
	doc := parse(t, input, Options{MaxNestingDepth: 2})
	list := doc.Nodes[0].(*ast.List)

	var maxDepth func(items []*ast.ListItem) int
	maxDepth = func(items []*ast.ListItem) int {
		deepest := 0
		for _, it := range items {
			if d := 1 + maxDepth(it.Children); d > deepest {
				deepest = d
			}
		}
		return deepest
	}
	if got := maxDepth(list.Items); got > 2 {
		t.Errorf("nesting depth = %d, want <= 2", got)
	}
}

func TestParseQuoteMergesLines(t *testing.T) {
	doc := parse(t, "> line one\n> line two", Options{})
	q, ok := doc.Nodes[0].(*ast.Quote)
	if !ok {
		t.Fatalf("node is %T, want quote", doc.Nodes[0])
	}
	if got := inline.Text(q.Runs); got != "line one\nline two" {
		t.Errorf("quote text = %q", got)
	}
}

func TestParseCallout(t *testing.T) {
	doc := parse(t, "> [!warning] Watch out\n> The details.", Options{})
	c, ok := doc.Nodes[0].(*ast.Callout)
	if !ok {
		t.Fatalf("node is %T, want callout", doc.Nodes[0])
	}
	if c.Kind != "warning" || c.Icon != "⚠️" {
		t.Errorf("kind = %q icon = %q", c.Kind, c.Icon)
	}
	if inline.Text(c.Runs) != "Watch out" {
		t.Errorf("title = %q", inline.Text(c.Runs))
	}
	if len(c.Children) != 1 {
		t.Fatalf("got %d children, want 1", len(c.Children))
	}
	if _, ok := c.Children[0].(*ast.Paragraph); !ok {
		t.Errorf("child is %T, want paragraph", c.Children[0])
	}
}

func TestParseUnknownCalloutKindGetsDefaultIcon(t *testing.T) {
	doc := parse(t, "> [!custom] Title", Options{})
	c := doc.Nodes[0].(*ast.Callout)
	if c.Icon != "💡" {
		t.Errorf("icon = %q, want default", c.Icon)
	}
}

func TestParseFoldedCalloutBecomesToggle(t *testing.T) {
	doc := parse(t, "> [!faq]- The question\n> The answer.", Options{})
	tg, ok := doc.Nodes[0].(*ast.Toggle)
	if !ok {
		t.Fatalf("node is %T, want toggle", doc.Nodes[0])
	}
	if inline.Text(tg.Runs) != "The question" {
		t.Errorf("title = %q", inline.Text(tg.Runs))
	}
	if len(tg.Children) != 1 {
		t.Errorf("got %d children, want 1", len(tg.Children))
	}
}

func TestParseToggleHeading(t *testing.T) {
	doc := parse(t, "> [!faq]- ## Collapsed section\n> body text", Options{})
	h, ok := doc.Nodes[0].(*ast.Heading)
	if !ok {
		t.Fatalf("node is %T, want heading", doc.Nodes[0])
	}
	if !h.Toggleable || h.Level != 2 {
		t.Errorf("toggleable = %v level = %d", h.Toggleable, h.Level)
	}
	if inline.Text(h.Runs) != "Collapsed section" {
		t.Errorf("title = %q", inline.Text(h.Runs))
	}
	if len(h.Children) != 1 {
		t.Errorf("got %d children, want 1", len(h.Children))
	}
}

func TestParseDetailsBlock(t *testing.T) {
	input := "<details>\n<summary>More info</summary>\nhidden paragraph\n</details>"
	doc := parse(t, input, Options{})
	tg, ok := doc.Nodes[0].(*ast.Toggle)
	if !ok {
		t.Fatalf("node is %T, want toggle", doc.Nodes[0])
	}
	if inline.Text(tg.Runs) != "More info" {
		t.Errorf("title = %q", inline.Text(tg.Runs))
	}
}

func TestParseFrontMatter(t *testing.T) {
	input := "---\ntitle: My Note\ntags:\n  - alpha\n  - beta\n---\nbody"
	doc := parse(t, input, Options{})
	if doc.Meta == nil {
		t.Fatal("no metadata parsed")
	}
	if doc.Meta["title"] != "My Note" {
		t.Errorf("title = %v", doc.Meta["title"])
	}
	if len(doc.Nodes) != 1 {
		t.Errorf("got %d nodes, want 1 body paragraph", len(doc.Nodes))
	}
}

func TestParseMalformedFrontMatterDropped(t *testing.T) {
	input := "---\n: : not yaml : :\n---\nbody"
	doc := parse(t, input, Options{})
	if doc.Meta != nil {
		t.Errorf("meta = %v, want nil for malformed yaml", doc.Meta)
	}
}

func TestParseTable(t *testing.T) {
	input := "| a | b |\n|---|---|\n| 1 | 2 |"
	doc := parse(t, input, Options{})
	tbl, ok := doc.Nodes[0].(*ast.Table)
	if !ok {
		t.Fatalf("node is %T, want table", doc.Nodes[0])
	}
	if !tbl.HasHeader || len(tbl.Rows) != 2 {
		t.Errorf("header = %v rows = %d", tbl.HasHeader, len(tbl.Rows))
	}
}

func TestParseMedia(t *testing.T) {
	doc := parse(t, "![chart](https://example.com/c.png)", Options{EnableMediaDetection: true})
	m, ok := doc.Nodes[0].(*ast.Media)
	if !ok {
		t.Fatalf("node is %T, want media", doc.Nodes[0])
	}
	if m.Kind != ast.MediaImage || m.URL != "https://example.com/c.png" {
		t.Errorf("media = %+v", m)
	}
	if inline.Text(m.Caption) != "chart" {
		t.Errorf("caption = %q", inline.Text(m.Caption))
	}
}

func TestParseLocalMediaGetsUploadRef(t *testing.T) {
	doc := parse(t, "![shot](./images/shot.png)", Options{EnableMediaDetection: true})
	m := doc.Nodes[0].(*ast.Media)
	if m.URL != "" || m.UploadRef != "./images/shot.png" {
		t.Errorf("media = %+v", m)
	}
}

func TestParseEquationAndDivider(t *testing.T) {
	doc := parse(t, "$$x^2$$\n\n---", Options{})
	if _, ok := doc.Nodes[0].(*ast.Equation); !ok {
		t.Errorf("node 0 is %T, want equation", doc.Nodes[0])
	}
	if _, ok := doc.Nodes[1].(*ast.Divider); !ok {
		t.Errorf("node 1 is %T, want divider", doc.Nodes[1])
	}
}

func TestParseEmptyInput(t *testing.T) {
	doc := parse(t, "", Options{})
	if len(doc.Nodes) != 0 {
		t.Errorf("got %d nodes, want 0", len(doc.Nodes))
	}
}
