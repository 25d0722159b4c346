package pdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wudi/pdfkit/builder"
	"github.com/wudi/pdfkit/ir/semantic"
	"github.com/wudi/pdfkit/writer"
)

// A4 page size in points.
const (
	pageWidthA4  = 595.28
	pageHeightA4 = 841.89
)

// Generator renders resume snapshots into paginated PDF documents. It holds
// only fixed page geometry, so a single Generator is safe for concurrent use.
type Generator struct {
	geo geometry
}

// NewGenerator returns a Generator with A4 pages, 0.5in top/bottom and
// 0.6in left/right margins.
func NewGenerator() *Generator {
	return &Generator{
		geo: geometry{
			pageWidth:    pageWidthA4,
			pageHeight:   pageHeightA4,
			marginTop:    0.5 * inch,
			marginBottom: 0.5 * inch,
			marginLeft:   0.6 * inch,
			marginRight:  0.6 * inch,
		},
	}
}

// Render lays the snapshot out into a PDF and returns its bytes. The now
// argument supplies the footer's generation timestamp. Missing optional data
// degrades to omission; the only failures are a snapshot without a name and
// errors from the underlying PDF encoder.
func (g *Generator) Render(ctx context.Context, snap Snapshot, now time.Time) ([]byte, error) {
	if strings.TrimSpace(snap.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrMalformedSnapshot)
	}

	ss := NewStyleSheet()
	story := BuildStory(snap, ss, now)

	b := builder.NewBuilder()
	b.SetInfo(&semantic.DocumentInfo{
		Title:   snap.Name + " - Resume",
		Author:  snap.Name,
		Creator: "portfolio-backend",
	})

	f := newFlow(b, g.geo)
	f.drawStory(story)

	doc, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("%w: build document: %v", ErrLayout, err)
	}

	var buf bytes.Buffer
	w := (&writer.WriterBuilder{}).Build()
	if err := w.Write(ctx, doc, &buf, writer.Config{Deterministic: true}); err != nil {
		return nil, fmt.Errorf("%w: encode document: %v", ErrLayout, err)
	}
	return buf.Bytes(), nil
}
