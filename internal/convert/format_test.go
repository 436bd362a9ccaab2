package convert

import (
	"strings"
	"testing"

	"github.com/jomei/notionapi"
)

func paragraph(text string) notionapi.Block {
	return PlainParagraph(text, DefaultLimits())
}

func paragraphWithChildren(text string, kids ...notionapi.Block) notionapi.Block {
	p := PlainParagraph(text, DefaultLimits()).(*notionapi.ParagraphBlock)
	p.Paragraph.Children = kids
	return p
}

func TestFormatDoesNotMutateInput(t *testing.T) {
	blocks := notionapi.Blocks{paragraph("  spaced   out  ")}
	original := blocks[0].(*notionapi.ParagraphBlock).Paragraph.RichText[0].Text.Content

	Format(blocks, DefaultFormatOptions())

	after := blocks[0].(*notionapi.ParagraphBlock).Paragraph.RichText[0].Text.Content
	if after != original {
		t.Errorf("input mutated: %q became %q", original, after)
	}
}

func TestFormatRemovesEmptyBlocks(t *testing.T) {
	blocks := notionapi.Blocks{
		paragraph("keep"),
		paragraph(""),
		paragraph("   "),
		paragraph("also keep"),
	}
	out := Format(blocks, FormatOptions{RemoveEmptyBlocks: true})
	if len(out) != 2 {
		t.Fatalf("got %d blocks, want 2", len(out))
	}
}

func TestFormatNormalizesWhitespace(t *testing.T) {
	blocks := notionapi.Blocks{paragraph("too    many\t\tspaces")}
	out := Format(blocks, FormatOptions{NormalizeWhitespace: true})
	got := out[0].(*notionapi.ParagraphBlock).Paragraph.RichText[0].Text.Content
	if got != "too many spaces" {
		t.Errorf("got %q, want %q", got, "too many spaces")
	}
}

func TestFormatWhitespaceSkipsCode(t *testing.T) {
	code := &notionapi.CodeBlock{
		BasicBlock: notionapi.BasicBlock{Object: notionapi.ObjectTypeBlock, Type: notionapi.BlockTypeCode},
		Code: notionapi.Code{
			RichText: plainRichText("x :=  1\n    indented", DefaultMaxRichTextLength),
			Language: "go",
		},
	}
	out := Format(notionapi.Blocks{code}, FormatOptions{NormalizeWhitespace: true})
	got := out[0].(*notionapi.CodeBlock).Code.RichText[0].Text.Content
	if got != "x :=  1\n    indented" {
		t.Errorf("code whitespace altered: %q", got)
	}
}

func TestFormatMergesParagraphs(t *testing.T) {
	blocks := notionapi.Blocks{paragraph("first"), paragraph("second"), paragraph("third")}
	out := Format(blocks, FormatOptions{MergeConsecutiveParagraphs: true})
	if len(out) != 1 {
		t.Fatalf("got %d blocks, want 1", len(out))
	}
	text := richTextPlain(out[0].(*notionapi.ParagraphBlock).Paragraph.RichText)
	if text != "first\nsecond\nthird" {
		t.Errorf("merged text = %q", text)
	}
}

func TestFormatCapsEmptyRuns(t *testing.T) {
	blocks := notionapi.Blocks{
		paragraph("a"),
		paragraph(""), paragraph(""), paragraph(""),
		paragraph("b"),
	}
	out := Format(blocks, FormatOptions{MaxConsecutiveEmptyLines: 1})
	if len(out) != 3 {
		t.Fatalf("got %d blocks, want 3", len(out))
	}
}

func TestFormatMergesCodeBlocks(t *testing.T) {
	mk := func(lang, text string) notionapi.Block {
		return &notionapi.CodeBlock{
			BasicBlock: notionapi.BasicBlock{Object: notionapi.ObjectTypeBlock, Type: notionapi.BlockTypeCode},
			Code: notionapi.Code{
				RichText: plainRichText(text, DefaultMaxRichTextLength),
				Language: lang,
			},
		}
	}
	blocks := notionapi.Blocks{mk("go", "a := 1"), mk("go", "b := 2"), mk("python", "c = 3")}
	out := Format(blocks, FormatOptions{MergeSimilarBlocks: true})
	if len(out) != 2 {
		t.Fatalf("got %d blocks, want 2", len(out))
	}
	merged := richTextPlain(out[0].(*notionapi.CodeBlock).Code.RichText)
	if merged != "a := 1\nb := 2" {
		t.Errorf("merged code = %q", merged)
	}
}

func TestFormatTrimMergesSameStyleRuns(t *testing.T) {
	p := &notionapi.ParagraphBlock{
		BasicBlock: notionapi.BasicBlock{Object: notionapi.ObjectTypeBlock, Type: notionapi.BlockTypeParagraph},
		Paragraph: notionapi.Paragraph{RichText: append(
			plainRichText("  hello ", DefaultMaxRichTextLength),
			plainRichText("world  ", DefaultMaxRichTextLength)...,
		)},
	}
	out := Format(notionapi.Blocks{p}, FormatOptions{TrimRichText: true})
	rts := out[0].(*notionapi.ParagraphBlock).Paragraph.RichText
	if len(rts) != 1 {
		t.Fatalf("got %d runs, want 1 merged run", len(rts))
	}
	if rts[0].Text.Content != "hello world" {
		t.Errorf("text = %q, want %q", rts[0].Text.Content, "hello world")
	}
}

func TestFormatEnforcesRichTextLimit(t *testing.T) {
	long := strings.Repeat("x", 5000)
	p := &notionapi.ParagraphBlock{
		BasicBlock: notionapi.BasicBlock{Object: notionapi.ObjectTypeBlock, Type: notionapi.BlockTypeParagraph},
		Paragraph: notionapi.Paragraph{RichText: []notionapi.RichText{{
			Type:      notionapi.ObjectTypeText,
			Text:      &notionapi.Text{Content: long},
			PlainText: long,
		}}},
	}
	out := Format(notionapi.Blocks{p}, FormatOptions{EnforceBlockLimits: true})
	rts := out[0].(*notionapi.ParagraphBlock).Paragraph.RichText
	if len(rts) != 3 {
		t.Fatalf("got %d runs, want 3", len(rts))
	}
	for i, rt := range rts[:2] {
		if len(rt.Text.Content) != 2000 {
			t.Errorf("chunk %d = %d chars, want 2000", i, len(rt.Text.Content))
		}
	}
}

func TestFormatEnforcesBlockCount(t *testing.T) {
	var blocks notionapi.Blocks
	for i := 0; i < 150; i++ {
		blocks = append(blocks, paragraph("p"))
	}
	out := Format(blocks, FormatOptions{EnforceBlockLimits: true})
	if len(out) != DefaultMaxBlocksPerRequest {
		t.Errorf("got %d blocks, want %d", len(out), DefaultMaxBlocksPerRequest)
	}
}

func TestFormatClampsDepth(t *testing.T) {
	deep := paragraph("level2")
	mid := paragraphWithChildren("level1", deep)
	top := paragraphWithChildren("level0", mid)

	out := Format(notionapi.Blocks{top}, FormatOptions{
		EnforceBlockLimits: true,
		Limits:             Limits{MaxNestingDepth: 2},
	})

	var depth func(bs notionapi.Blocks) int
	depth = func(bs notionapi.Blocks) int {
		deepest := 0
		for _, b := range bs {
			if d := 1 + depth(blockChildren(b)); d > deepest {
				deepest = d
			}
		}
		return deepest
	}
	if got := depth(out); got > 2 {
		t.Errorf("depth = %d, want <= 2", got)
	}
	// Content is lifted, never dropped.
	text := ""
	walkBlocks(out, func(b notionapi.Block) {
		text += richTextPlain(blockRichText(b))
	})
	for _, want := range []string{"level0", "level1", "level2"} {
		if !strings.Contains(text, want) {
			t.Errorf("flattening dropped %q", want)
		}
	}
}

func TestFormatDropsConsecutiveDuplicates(t *testing.T) {
	blocks := notionapi.Blocks{paragraph("same"), paragraph("same"), paragraph("other")}
	out := Format(blocks, FormatOptions{OptimizeStructure: true})
	if len(out) != 2 {
		t.Fatalf("got %d blocks, want 2", len(out))
	}
}

func TestFormatAppliesColor(t *testing.T) {
	out := Format(notionapi.Blocks{paragraph("tinted")}, FormatOptions{ApplyColor: "gray_background"})
	if got := out[0].(*notionapi.ParagraphBlock).Paragraph.Color; got != "gray_background" {
		t.Errorf("color = %q", got)
	}
}
