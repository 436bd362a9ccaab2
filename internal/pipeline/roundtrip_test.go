package pipeline

import (
	"os"
	"strings"
	"testing"
)

// TestRoundtripMarkdownToBlocksToMarkdown tests that converting
// markdown -> blocks -> markdown preserves content
func TestRoundtripMarkdownToBlocksToMarkdown(t *testing.T) {
	mdContent, err := os.ReadFile("testdata/sample.md")
	if err != nil {
		t.Fatalf("Failed to read markdown fixture: %v", err)
	}

	p := New(nil, nil)

	res, err := p.ParseContent(string(mdContent), DefaultOptions())
	if err != nil {
		t.Fatalf("ParseContent failed: %v", err)
	}
	if !res.Success {
		t.Fatalf("conversion failed: %v", res.Issues)
	}

	reconstructed := p.ToMarkdown(res.Blocks)

	expected := normalizeWhitespace(string(mdContent))
	actual := normalizeWhitespace(reconstructed)

	if actual != expected {
		t.Errorf("Roundtrip md->blocks->md failed to preserve content.\n\nOriginal:\n%s\n\nAfter roundtrip:\n%s",
			expected, actual)
		showDiff(t, expected, actual)
	}
}

// TestIdempotence tests that converting multiple times produces the same result
func TestIdempotenceMarkdownRoundtrip(t *testing.T) {
	mdContent, err := os.ReadFile("testdata/sample.md")
	if err != nil {
		t.Fatalf("Failed to read markdown fixture: %v", err)
	}

	p := New(nil, nil)

	res1, err := p.ParseContent(string(mdContent), DefaultOptions())
	if err != nil {
		t.Fatalf("First ParseContent failed: %v", err)
	}
	md1 := p.ToMarkdown(res1.Blocks)

	res2, err := p.ParseContent(md1, DefaultOptions())
	if err != nil {
		t.Fatalf("Second ParseContent failed: %v", err)
	}
	md2 := p.ToMarkdown(res2.Blocks)

	if normalizeWhitespace(md1) != normalizeWhitespace(md2) {
		t.Errorf("Conversion is not idempotent.\n\nFirst conversion:\n%s\n\nSecond conversion:\n%s",
			md1, md2)
		showDiff(t, normalizeWhitespace(md1), normalizeWhitespace(md2))
	}
}

func normalizeWhitespace(s string) string {
	// Normalize line endings and trim trailing whitespace
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func showDiff(t *testing.T, expected, actual string) {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	maxLines := len(expectedLines)
	if len(actualLines) > maxLines {
		maxLines = len(actualLines)
	}

	t.Log("\nLine-by-line diff:")
	for i := 0; i < maxLines; i++ {
		var expLine, actLine string
		if i < len(expectedLines) {
			expLine = expectedLines[i]
		}
		if i < len(actualLines) {
			actLine = actualLines[i]
		}

		if expLine != actLine {
			t.Logf("Line %d:\n  Expected: %q\n  Actual:   %q", i+1, expLine, actLine)
		}
	}
}
