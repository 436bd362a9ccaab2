// Package ast defines the intermediate tree between the Markdown parser and
// the Notion block converter. Nodes form a tagged union: converters type-
// switch over the concrete variants, so a new variant fails loudly at the
// switch instead of silently at runtime.
package ast

import "github.com/gerunddev/notionclip/internal/inline"

// Node is the union of block-level variants.
type Node interface {
	node()
}

// ListKind discriminates list item flavors.
type ListKind int

const (
	Bulleted ListKind = iota
	Numbered
	Todo
)

// MediaKind discriminates media variants by their target.
type MediaKind int

const (
	MediaImage MediaKind = iota
	MediaVideo
	MediaAudio
	MediaFile
)

// Document is a parsed input: front matter metadata plus block nodes.
type Document struct {
	Meta  map[string]any
	Nodes []Node
}

// Paragraph is a run of plain text lines.
type Paragraph struct {
	Runs []inline.Run
}

// Heading is an ATX heading clamped to levels 1-3. A toggleable heading
// collapses its children.
type Heading struct {
	Level      int
	Toggleable bool
	Runs       []inline.Run
	Children   []Node
}

// List groups consecutive list items of any flavor.
type List struct {
	Items []*ListItem
}

// ListItem is one list entry. Depth is the nesting level derived from
// indentation; Children are deeper items.
type ListItem struct {
	Kind     ListKind
	Checked  bool
	Depth    int
	Runs     []inline.Run
	Children []*ListItem
}

// Table holds raw cell text. Rows are not guaranteed rectangular here; the
// converter pads and clips them.
type Table struct {
	Rows      [][]string
	HasHeader bool
}

// Code is a fenced code block, content verbatim.
type Code struct {
	Language string
	Text     string
}

// Quote is a blockquote paragraph.
type Quote struct {
	Runs []inline.Run
}

// Callout is an admonition with a derived kind and icon.
type Callout struct {
	Kind     string
	Icon     string
	Runs     []inline.Run
	Children []Node
}

// Toggle is a collapsible block.
type Toggle struct {
	Runs     []inline.Run
	Children []Node
}

// Equation is a block-level LaTeX expression.
type Equation struct {
	Expression string
}

// Media is an image, video, audio or file reference. URL is set for remote
// targets; UploadRef carries a placeholder reference for local paths that a
// caller-side uploader resolves.
type Media struct {
	Kind      MediaKind
	URL       string
	UploadRef string
	Caption   []inline.Run
}

// Divider is a thematic break.
type Divider struct{}

// Bookmark is a bare URL block.
type Bookmark struct {
	URL string
}

func (*Paragraph) node() {}
func (*Heading) node()   {}
func (*List) node()      {}
func (*ListItem) node()  {}
func (*Table) node()     {}
func (*Code) node()      {}
func (*Quote) node()     {}
func (*Callout) node()   {}
func (*Toggle) node()    {}
func (*Equation) node()  {}
func (*Media) node()     {}
func (*Divider) node()   {}
func (*Bookmark) node()  {}
