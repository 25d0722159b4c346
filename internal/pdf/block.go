package pdf

import "github.com/wudi/pdfkit/builder"

const inch = 72.0

// Block is an atomic layout unit consumed by the flow engine: a paragraph,
// a vertical spacer, a horizontal rule, or a two-column table.
type Block interface {
	block()
}

// Paragraph is a styled run of text, wrapped to the content width.
type Paragraph struct {
	Text  string
	Style ParagraphStyle
}

// Spacer advances the cursor by a fixed height. Spacers are discarded at
// page boundaries rather than carried over.
type Spacer struct {
	Height float64
}

// Rule is a full-width horizontal line.
type Rule struct {
	Thickness   float64
	Color       builder.Color
	SpaceBefore float64
	SpaceAfter  float64
}

// TableCell is one cell of a two-column table row.
type TableCell struct {
	Text  string
	Style ParagraphStyle
}

// TableRow pairs a left-weighted and a right-weighted cell.
type TableRow struct {
	Left  TableCell
	Right TableCell
}

// Table aligns title/date pairs in two columns. LeftShare is the fraction of
// the content width given to the left column. Rows are kept together across
// page breaks when they fit on a fresh page.
type Table struct {
	Rows      []TableRow
	LeftShare float64
}

func (Paragraph) block() {}
func (Spacer) block()    {}
func (Rule) block()      {}
func (Table) block()     {}
