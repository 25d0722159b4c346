package pdf

import (
	"strings"

	"github.com/wudi/pdfkit/builder"
)

// geometry fixes the page size and margins for a render.
type geometry struct {
	pageWidth    float64
	pageHeight   float64
	marginTop    float64
	marginBottom float64
	marginLeft   float64
	marginRight  float64
}

func (g geometry) contentWidth() float64 {
	return g.pageWidth - g.marginLeft - g.marginRight
}

func (g geometry) usableHeight() float64 {
	return g.pageHeight - g.marginTop - g.marginBottom
}

// flow walks a block sequence down the page, breaking to a new page whenever
// the next unit of content would cross the bottom margin. Each render owns
// its own flow; nothing is shared between calls.
type flow struct {
	b    builder.PDFBuilder
	geo  geometry
	page builder.PageBuilder
	y    float64
}

func newFlow(b builder.PDFBuilder, geo geometry) *flow {
	return &flow{b: b, geo: geo}
}

func (f *flow) ensurePage() {
	if f.page == nil {
		f.newPage()
	}
}

func (f *flow) newPage() {
	if f.page != nil {
		f.page.Finish()
	}
	f.page = f.b.NewPage(f.geo.pageWidth, f.geo.pageHeight)
	f.y = f.geo.pageHeight - f.geo.marginTop
}

// fit starts a new page if height no longer fits above the bottom margin.
func (f *flow) fit(height float64) {
	f.ensurePage()
	if f.y-height < f.geo.marginBottom {
		f.newPage()
	}
}

// remaining reports the vertical space left on the current page.
func (f *flow) remaining() float64 {
	f.ensurePage()
	return f.y - f.geo.marginBottom
}

// keepTogether pre-breaks so a block of the given height stays on one page,
// but only when a fresh page could actually hold it.
func (f *flow) keepTogether(height float64) {
	if height > f.remaining() && height <= f.geo.usableHeight() {
		f.newPage()
	}
}

func (f *flow) drawStory(story []Block) {
	f.ensurePage()
	for _, block := range story {
		switch b := block.(type) {
		case Paragraph:
			f.drawParagraph(b)
		case Spacer:
			f.drawSpacer(b)
		case Rule:
			f.drawRule(b)
		case Table:
			f.drawTable(b)
		}
	}
	if f.page != nil {
		f.page.Finish()
	}
}

func (f *flow) drawParagraph(p Paragraph) {
	if p.Text == "" {
		return
	}
	style := p.Style
	avail := f.geo.contentWidth() - style.LeftIndent
	lines := wrapText(p.Text, avail, style.FontSize)
	if len(lines) == 0 {
		return
	}
	lh := style.leading()
	total := float64(len(lines)) * lh

	f.y -= style.SpaceBefore
	f.keepTogether(total)

	if style.Background != nil {
		f.fit(total + 2*style.BorderPad)
		f.page.DrawRectangle(
			f.geo.marginLeft,
			f.y-total-style.BorderPad,
			f.geo.contentWidth(),
			total+2*style.BorderPad,
			builder.RectOptions{FillColor: *style.Background, Fill: true},
		)
		f.y -= style.BorderPad
	}

	for _, line := range lines {
		f.fit(lh)
		x := f.geo.marginLeft + style.LeftIndent
		if style.Alignment == AlignCenter {
			if w := estimateWidth(line, style.FontSize); w < avail {
				x = f.geo.marginLeft + style.LeftIndent + (avail-w)/2
			}
		}
		f.page.DrawText(line, x, f.y-style.FontSize, builder.TextOptions{
			Font:     style.Font,
			FontSize: style.FontSize,
			Color:    style.Color,
		})
		f.y -= lh
	}
	if style.Background != nil {
		f.y -= style.BorderPad
	}
	f.y -= style.SpaceAfter
}

// drawSpacer advances the cursor; spacers that would cross the page bottom
// start a new page instead of carrying blank height over.
func (f *flow) drawSpacer(s Spacer) {
	f.ensurePage()
	if f.y-s.Height < f.geo.marginBottom {
		f.newPage()
		return
	}
	f.y -= s.Height
}

func (f *flow) drawRule(r Rule) {
	f.y -= r.SpaceBefore
	f.fit(r.Thickness)
	f.page.DrawLine(
		f.geo.marginLeft, f.y,
		f.geo.marginLeft+f.geo.contentWidth(), f.y,
		builder.LineOptions{StrokeColor: r.Color, LineWidth: r.Thickness},
	)
	f.y -= r.Thickness + r.SpaceAfter
}

// drawTable lays out two-column rows. The whole table is kept on one page
// when it fits; individual rows never split.
func (f *flow) drawTable(t Table) {
	if len(t.Rows) == 0 {
		return
	}
	leftShare := t.LeftShare
	if leftShare <= 0 || leftShare >= 1 {
		leftShare = 0.7
	}
	leftWidth := f.geo.contentWidth() * leftShare
	rightWidth := f.geo.contentWidth() - leftWidth

	type laidRow struct {
		left, right []string
		leading     float64
		height      float64
	}
	rows := make([]laidRow, 0, len(t.Rows))
	total := 0.0
	for _, row := range t.Rows {
		lr := laidRow{
			left:    wrapText(row.Left.Text, leftWidth, row.Left.Style.FontSize),
			right:   wrapText(row.Right.Text, rightWidth, row.Right.Style.FontSize),
			leading: row.Left.Style.leading(),
		}
		if rl := row.Right.Style.leading(); rl > lr.leading {
			lr.leading = rl
		}
		n := len(lr.left)
		if len(lr.right) > n {
			n = len(lr.right)
		}
		if n == 0 {
			n = 1
		}
		lr.height = float64(n) * lr.leading
		total += lr.height
		rows = append(rows, lr)
	}

	f.keepTogether(total)
	for i, lr := range rows {
		f.fit(lr.height)
		row := t.Rows[i]
		y := f.y
		for _, line := range lr.left {
			f.page.DrawText(line, f.geo.marginLeft, y-row.Left.Style.FontSize, builder.TextOptions{
				Font:     row.Left.Style.Font,
				FontSize: row.Left.Style.FontSize,
				Color:    row.Left.Style.Color,
			})
			y -= lr.leading
		}
		y = f.y
		rightX := f.geo.marginLeft + leftWidth
		for _, line := range lr.right {
			f.page.DrawText(line, rightX, y-row.Right.Style.FontSize, builder.TextOptions{
				Font:     row.Right.Style.Font,
				FontSize: row.Right.Style.FontSize,
				Color:    row.Right.Style.Color,
			})
			y -= lr.leading
		}
		f.y -= lr.height
	}
}

// wrapText greedily packs words into lines no wider than maxWidth, using the
// same average glyph width heuristic as the layout engine this flow is
// modeled on. A word wider than the line stands alone rather than split.
func wrapText(text string, maxWidth, fontSize float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if estimateWidth(current+" "+word, fontSize) <= maxWidth {
			current += " " + word
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	return append(lines, current)
}

// estimateWidth assumes an average character width of 0.5 em.
func estimateWidth(text string, fontSize float64) float64 {
	return float64(len([]rune(text))) * fontSize * 0.5
}
