package pdf

import (
	"strings"
	"testing"
	"time"

	"github.com/wudi/pdfkit/builder"
)

func testGeometry() geometry {
	return geometry{
		pageWidth:    pageWidthA4,
		pageHeight:   pageHeightA4,
		marginTop:    0.5 * inch,
		marginBottom: 0.5 * inch,
		marginLeft:   0.6 * inch,
		marginRight:  0.6 * inch,
	}
}

func TestWrapTextSingleLine(t *testing.T) {
	lines := wrapText("hello world", 500, 10)
	if len(lines) != 1 || lines[0] != "hello world" {
		t.Fatalf("got %v", lines)
	}
}

func TestWrapTextBreaksLongText(t *testing.T) {
	text := strings.Repeat("word ", 50)
	lines := wrapText(text, 100, 10)
	if len(lines) < 2 {
		t.Fatalf("expected multiple lines, got %d", len(lines))
	}
	for _, line := range lines {
		if estimateWidth(line, 10) > 100 {
			t.Fatalf("line %q exceeds max width", line)
		}
	}
}

func TestWrapTextOverlongWordStandsAlone(t *testing.T) {
	lines := wrapText("short "+strings.Repeat("x", 80)+" tail", 100, 10)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %v", lines)
	}
}

func TestWrapTextEmpty(t *testing.T) {
	if lines := wrapText("   ", 100, 10); lines != nil {
		t.Fatalf("expected nil for blank text, got %v", lines)
	}
}

func TestFlowSinglePageForShortStory(t *testing.T) {
	ss := NewStyleSheet()
	story := BuildStory(Snapshot{Name: "Jane Doe"}, ss, time.Now())

	b := builder.NewBuilder()
	f := newFlow(b, testGeometry())
	f.drawStory(story)

	doc, err := b.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(doc.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(doc.Pages))
	}
}

func TestFlowBreaksAcrossPages(t *testing.T) {
	ss := NewStyleSheet()
	snap := Snapshot{Name: "Jane Doe"}
	for i := 0; i < 20; i++ {
		snap.Experience = append(snap.Experience, Experience{
			Company:     "Company",
			Position:    "Engineer",
			StartDate:   date(2020, time.January),
			Current:     true,
			Description: "Did a thing\nDid another thing\nKept doing things",
		})
	}
	story := BuildStory(snap, ss, time.Now())

	b := builder.NewBuilder()
	f := newFlow(b, testGeometry())
	f.drawStory(story)

	doc, err := b.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(doc.Pages) < 2 {
		t.Fatalf("expected a page break, got %d page(s)", len(doc.Pages))
	}
}

func TestKeepTogetherTableNeverTallerThanPage(t *testing.T) {
	// A table taller than the remaining space but no taller than a full
	// page must start on a fresh page instead of splitting.
	geo := testGeometry()
	b := builder.NewBuilder()
	f := newFlow(b, geo)
	f.ensurePage()
	f.y = geo.marginBottom + 20 // almost no room left

	ss := NewStyleSheet()
	f.drawTable(entryTable(ss, "Acme", "Engineer", "Jan 2020 - Present"))

	doc, err := b.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(doc.Pages) != 2 {
		t.Fatalf("expected table to move to a new page, got %d page(s)", len(doc.Pages))
	}
}
