package pdf

import (
	"strconv"

	"github.com/wudi/pdfkit/builder"
)

// Font names understood by the PDF builder's standard 14 set.
const (
	fontRegular = "Helvetica"
	fontBold    = "Helvetica-Bold"
	fontOblique = "Helvetica-Oblique"
)

// Named paragraph styles exposed by the StyleSheet.
const (
	StyleNameTitle    = "NameTitle"
	StyleJobTitle     = "JobTitle"
	StyleSectionTitle = "SectionTitle"
	StyleContactInfo  = "ContactInfo"
	StyleSummaryText  = "SummaryText"
	StyleBodyText     = "BodyText"
	StyleLinkStyle    = "LinkStyle"
	StyleCompany      = "Company"
	StylePosition     = "Position"
	StyleDate         = "Date"
)

// Alignment controls horizontal paragraph placement within the content area.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
)

// ParagraphStyle is the full formatting description for one paragraph block.
type ParagraphStyle struct {
	Font        string
	FontSize    float64
	Leading     float64 // line advance; defaults to FontSize * 1.2 when zero
	Color       builder.Color
	Alignment   Alignment
	SpaceBefore float64
	SpaceAfter  float64
	LeftIndent  float64
	Background  *builder.Color
	BorderPad   float64 // padding around the background box
}

// leading returns the effective line advance for the style.
func (s ParagraphStyle) leading() float64 {
	if s.Leading > 0 {
		return s.Leading
	}
	return s.FontSize * 1.2
}

// StyleSheet holds the fixed palette and the named paragraph styles derived
// from it. Each render constructs its own instance; there is no shared
// registry and no existence checks.
type StyleSheet struct {
	Primary   builder.Color
	Secondary builder.Color
	Accent    builder.Color
	Dark      builder.Color
	LightBG   builder.Color

	styles map[string]ParagraphStyle
}

// NewStyleSheet builds the stylesheet used for resume rendering.
func NewStyleSheet() *StyleSheet {
	ss := &StyleSheet{
		Primary:   hexColor("#2E86AB"),
		Secondary: hexColor("#6C757D"),
		Accent:    hexColor("#2E86AB"),
		Dark:      hexColor("#2B2D42"),
		LightBG:   hexColor("#F8F9FA"),
	}

	lightBG := ss.LightBG
	ss.styles = map[string]ParagraphStyle{
		StyleNameTitle: {
			Font:       fontBold,
			FontSize:   26,
			Color:      ss.Primary,
			Alignment:  AlignCenter,
			SpaceAfter: 8,
		},
		StyleJobTitle: {
			Font:       fontOblique,
			FontSize:   16,
			Color:      ss.Secondary,
			Alignment:  AlignCenter,
			SpaceAfter: 16,
		},
		StyleSectionTitle: {
			Font:        fontBold,
			FontSize:    14,
			Color:       ss.Dark,
			SpaceBefore: 16,
			SpaceAfter:  8,
			Background:  &lightBG,
			BorderPad:   5,
		},
		StyleContactInfo: {
			Font:       fontRegular,
			FontSize:   10,
			Color:      ss.Secondary,
			Alignment:  AlignCenter,
			SpaceAfter: 8,
		},
		StyleSummaryText: {
			Font:       fontRegular,
			FontSize:   11,
			Leading:    14,
			Color:      ss.Dark,
			SpaceAfter: 12,
		},
		StyleBodyText: {
			Font:       fontRegular,
			FontSize:   10,
			Leading:    12,
			Color:      ss.Dark,
			SpaceAfter: 4,
			LeftIndent: 10,
		},
		StyleLinkStyle: {
			Font:       fontRegular,
			FontSize:   10,
			Color:      ss.Accent,
			Alignment:  AlignCenter,
			SpaceAfter: 4,
		},
		StyleCompany: {
			Font:       fontBold,
			FontSize:   12,
			Color:      ss.Dark,
			SpaceAfter: 2,
		},
		StylePosition: {
			Font:       fontRegular,
			FontSize:   11,
			Color:      ss.Primary,
			SpaceAfter: 2,
		},
		StyleDate: {
			Font:       fontRegular,
			FontSize:   11,
			Color:      ss.Primary,
			SpaceAfter: 8,
		},
	}
	return ss
}

// Style returns the named paragraph style. Unknown names return the zero
// style, which renders as 0pt text; section renderers only use the constants
// above.
func (ss *StyleSheet) Style(name string) ParagraphStyle {
	return ss.styles[name]
}

// hexColor parses a "#RRGGBB" string into a builder color.
func hexColor(s string) builder.Color {
	if len(s) == 7 && s[0] == '#' {
		r, errR := strconv.ParseUint(s[1:3], 16, 8)
		g, errG := strconv.ParseUint(s[3:5], 16, 8)
		b, errB := strconv.ParseUint(s[5:7], 16, 8)
		if errR == nil && errG == nil && errB == nil {
			return builder.Color{
				R: float64(r) / 255,
				G: float64(g) / 255,
				B: float64(b) / 255,
			}
		}
	}
	return builder.Color{}
}
