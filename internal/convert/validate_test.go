package convert

import (
	"strings"
	"testing"

	"github.com/jomei/notionapi"
)

func countSeverity(issues []Issue, sev Severity) int {
	n := 0
	for _, i := range issues {
		if i.Severity == sev {
			n++
		}
	}
	return n
}

func TestValidateCleanBlocks(t *testing.T) {
	blocks := notionapi.Blocks{paragraph("fine")}
	if issues := Validate(blocks, DefaultLimits()); len(issues) != 0 {
		t.Errorf("issues = %v, want none", issues)
	}
}

func TestValidateOversizedRichText(t *testing.T) {
	long := strings.Repeat("x", 2500)
	p := &notionapi.ParagraphBlock{
		BasicBlock: notionapi.BasicBlock{Object: notionapi.ObjectTypeBlock, Type: notionapi.BlockTypeParagraph},
		Paragraph: notionapi.Paragraph{RichText: []notionapi.RichText{{
			Type:      notionapi.ObjectTypeText,
			Text:      &notionapi.Text{Content: long},
			PlainText: long,
		}}},
	}
	issues := Validate(notionapi.Blocks{p}, DefaultLimits())
	if countSeverity(issues, SeverityError) != 1 {
		t.Fatalf("issues = %v, want one error", issues)
	}
	if issues[0].Path != "blocks[0].rich_text[0]" {
		t.Errorf("path = %q", issues[0].Path)
	}
}

func TestValidateTooManyBlocks(t *testing.T) {
	var blocks notionapi.Blocks
	for i := 0; i < 101; i++ {
		blocks = append(blocks, paragraph("p"))
	}
	issues := Validate(blocks, DefaultLimits())
	if countSeverity(issues, SeverityError) != 1 {
		t.Errorf("issues = %v, want one error", issues)
	}
}

func TestValidateTableRowWidthMismatch(t *testing.T) {
	tbl := &notionapi.TableBlock{
		BasicBlock: notionapi.BasicBlock{Object: notionapi.ObjectTypeBlock, Type: "table"},
		Table: notionapi.Table{
			TableWidth: 3,
			Children: notionapi.Blocks{
				&notionapi.TableRowBlock{
					BasicBlock: notionapi.BasicBlock{Object: notionapi.ObjectTypeBlock, Type: "table_row"},
					TableRow: notionapi.TableRow{Cells: [][]notionapi.RichText{
						plainRichText("only", DefaultMaxRichTextLength),
					}},
				},
			},
		},
	}
	issues := Validate(notionapi.Blocks{tbl}, DefaultLimits())
	if countSeverity(issues, SeverityError) != 1 {
		t.Fatalf("issues = %v, want one error", issues)
	}
	if !strings.Contains(issues[0].Reason, "1 cells") {
		t.Errorf("reason = %q", issues[0].Reason)
	}
}

func TestValidateEmptyTable(t *testing.T) {
	tbl := &notionapi.TableBlock{
		BasicBlock: notionapi.BasicBlock{Object: notionapi.ObjectTypeBlock, Type: "table"},
	}
	issues := Validate(notionapi.Blocks{tbl}, DefaultLimits())
	if countSeverity(issues, SeverityError) != 2 {
		t.Errorf("issues = %v, want errors for width and rows", issues)
	}
}

func TestValidateBookmarkWithoutURL(t *testing.T) {
	b := &notionapi.BookmarkBlock{
		BasicBlock: notionapi.BasicBlock{Object: notionapi.ObjectTypeBlock, Type: "bookmark"},
	}
	issues := Validate(notionapi.Blocks{b}, DefaultLimits())
	if countSeverity(issues, SeverityError) != 1 {
		t.Errorf("issues = %v, want one error", issues)
	}
}

func TestValidateNestingDepth(t *testing.T) {
	leaf := paragraph("leaf")
	var b notionapi.Block = leaf
	for i := 0; i < 4; i++ {
		b = paragraphWithChildren("wrap", b)
	}
	issues := Validate(notionapi.Blocks{b}, Limits{MaxNestingDepth: 3})
	if countSeverity(issues, SeverityError) == 0 {
		t.Error("deep nesting produced no error")
	}
}

func TestValidateTooManyChildren(t *testing.T) {
	var kids notionapi.Blocks
	for i := 0; i < 101; i++ {
		kids = append(kids, paragraph("child"))
	}
	parent := paragraphWithChildren("parent", kids...)
	issues := Validate(notionapi.Blocks{parent}, DefaultLimits())
	if countSeverity(issues, SeverityError) != 1 {
		t.Errorf("issues = %v, want one error", issues)
	}
}

func TestValidateCodeWithoutLanguageWarns(t *testing.T) {
	code := &notionapi.CodeBlock{
		BasicBlock: notionapi.BasicBlock{Object: notionapi.ObjectTypeBlock, Type: notionapi.BlockTypeCode},
		Code:       notionapi.Code{RichText: plainRichText("x", DefaultMaxRichTextLength)},
	}
	issues := Validate(notionapi.Blocks{code}, DefaultLimits())
	if countSeverity(issues, SeverityWarning) != 1 {
		t.Errorf("issues = %v, want one warning", issues)
	}
}

func TestValidateDoesNotMutate(t *testing.T) {
	blocks := notionapi.Blocks{paragraph("unchanged")}
	before := blocks[0].(*notionapi.ParagraphBlock).Paragraph.RichText[0].Text.Content
	Validate(blocks, DefaultLimits())
	after := blocks[0].(*notionapi.ParagraphBlock).Paragraph.RichText[0].Text.Content
	if before != after {
		t.Error("validator mutated input")
	}
}
