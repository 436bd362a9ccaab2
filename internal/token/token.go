// Package token defines the lexical tokens produced by the clip lexer and
// the lazy stream the parser consumes them from.
package token

// Kind classifies a token.
type Kind int

const (
	// Text is the fallback kind: any line no rule claimed.
	Text Kind = iota
	// Blank is an empty (or whitespace-only) line.
	Blank
	// Heading is an ATX heading line (1-6 leading '#').
	Heading
	// ListItem is a bulleted, numbered or todo list marker line.
	ListItem
	// TableRow is one row of a detected pipe or CSV/TSV table.
	TableRow
	// Code is a complete fenced code block, fences stripped.
	Code
	// Quote is a single blockquote line, one '>' level stripped.
	Quote
	// Callout is a complete admonition block ("> [!type]" plus continuations).
	Callout
	// Toggle is a complete collapsible block (folded callout or <details>).
	Toggle
	// Equation is a block equation ("$$...$$"), delimiters stripped.
	Equation
	// Divider is a thematic break line.
	Divider
	// Media is a standalone image/video/file line ("![alt](target)").
	Media
	// Bookmark is a bare URL on its own line.
	Bookmark
	// FrontMatter is a leading YAML front matter block, fences stripped.
	FrontMatter
	// EOF is the terminal sentinel; streams produce it forever once exhausted.
	EOF
)

var kindNames = map[Kind]string{
	Text:        "text",
	Blank:       "blank",
	Heading:     "heading",
	ListItem:    "list_item",
	TableRow:    "table_row",
	Code:        "code",
	Quote:       "quote",
	Callout:     "callout",
	Toggle:      "toggle",
	Equation:    "equation",
	Divider:     "divider",
	Media:       "media",
	Bookmark:    "bookmark",
	FrontMatter: "front_matter",
	EOF:         "eof",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Position locates a token in the raw input. Lines and columns are 1-based.
type Position struct {
	Line int
	Col  int
}

// Token is a classified span of the input. Content carries the token's text
// with syntax markers stripped; Meta carries kind-specific structure.
type Token struct {
	Kind    Kind
	Content string
	Pos     Position
	Meta    any
}

// HeadingMeta describes a heading token.
type HeadingMeta struct {
	Level      int
	Toggleable bool
}

// ListItemMeta describes a list item token. Indent is the raw indentation
// width (a tab counts as two columns).
type ListItemMeta struct {
	Indent  int
	Ordered bool
	Todo    bool
	Checked bool
}

// TableRowMeta describes one table row token.
type TableRowMeta struct {
	Cells  []string
	Header bool
}

// CodeMeta describes a fenced code block token.
type CodeMeta struct {
	Language string
}

// CalloutMeta describes a callout or toggle token. Body holds the
// continuation lines with their quote prefix stripped; they are re-parsed
// into child blocks by the parser.
type CalloutMeta struct {
	Kind   string
	Folded bool
	Title  string
	Body   []string
}

// MediaMeta describes a media token.
type MediaMeta struct {
	Target string
	Alt    string
}
