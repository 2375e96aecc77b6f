package card

import (
	"io"
	"strconv"
	"strings"

	"github.com/akyairhashvil/profilecard/internal/config"
	"github.com/go-pdf/fpdf"
)

const (
	pdfMargin     = 15.0
	pdfLineHeight = 5.5
)

// WritePDF draws the card on a landscape A5 page and writes the document to w.
// Characters the core fonts cannot encode, such as emoji icons, are dropped.
func WritePDF(w io.Writer, c Card, theme Theme) error {
	pdf := fpdf.New("L", "mm", "A5", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string { return tr(latin1(s)) }

	pageW, _ := pdf.GetPageSize()
	inner := pageW - 2*pdfMargin
	top := pdf.GetY()

	setTextColor(pdf, theme.Palette.Primary)
	pdf.SetFont("Courier", "B", 16)
	pdf.CellFormat(inner, 9, text(c.Title), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	labelWidth := 0
	for _, ct := range c.Contacts {
		labelWidth = max(labelWidth, len(text(ct.Label)))
	}
	for _, ct := range c.Contacts {
		label := text(ct.Label)
		setTextColor(pdf, theme.Palette.Heading)
		pdf.SetFont("Courier", "B", 10)
		pdf.CellFormat(float64(labelWidth+1)*2.2, pdfLineHeight, label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Courier", "", 10)
		if ct.Link {
			setTextColor(pdf, theme.Palette.Link)
			pdf.SetFont("Courier", "U", 10)
		}
		pdf.CellFormat(0, pdfLineHeight, ":: "+text(ct.Value), "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	for _, e := range c.Entries {
		setTextColor(pdf, theme.Palette.Heading)
		pdf.SetFont("Courier", "B", 10)
		pdf.CellFormat(inner, pdfLineHeight, text(e.Label), "", 1, "L", false, 0, "")

		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Courier", "", 10)
		values := []string{Truncate(e.Value, c.LineLength)}
		if e.Wrap {
			values = Wrap(e.Value, c.LineLength, config.MaxWrapLines)
		}
		for _, v := range values {
			pdf.CellFormat(inner, pdfLineHeight, "  "+text(v), "", 1, "L", false, 0, "")
		}
	}

	if c.Footer != "" {
		pdf.Ln(3)
		setTextColor(pdf, theme.Palette.Subtle)
		pdf.SetFont("Courier", "I", 9)
		pdf.CellFormat(inner, pdfLineHeight, text("> Run "+c.Footer+" anytime to see this card"), "", 1, "L", false, 0, "")
	}

	r, g, b := hexRGB(theme.Palette.Primary)
	pdf.SetDrawColor(r, g, b)
	pdf.SetLineWidth(0.6)
	pdf.Rect(pdfMargin-4, top-4, inner+8, pdf.GetY()-top+8, "D")

	return pdf.Output(w)
}

func setTextColor(pdf *fpdf.Fpdf, hex string) {
	r, g, b := hexRGB(hex)
	pdf.SetTextColor(r, g, b)
}

// hexRGB parses #RRGGBB; anything else is black.
func hexRGB(hex string) (int, int, int) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF)
}

// latin1 keeps what the core PDF fonts can encode.
func latin1(s string) string {
	s = strings.ReplaceAll(s, config.Ellipsis, "...")
	var b strings.Builder
	for _, r := range s {
		if r <= 0xFF {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
