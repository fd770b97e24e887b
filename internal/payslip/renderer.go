// =============================================================================
// Payslip Mailer - PDF Renderer
// =============================================================================
//
// This module serializes a payslip Document into PDF bytes. It contains no
// business logic: all text arrives already formatted and all layout metrics
// come from the document's fixed constants. The static overlay (border box
// and disclaimer) is installed as the page-header hook so it is redrawn
// identically on the first and every subsequent page.
//
// =============================================================================

package payslip

import (
	"bytes"
	"fmt"
	"os"

	"github.com/jung-kurt/gofpdf"
)

const baseFont = "Helvetica"

// Render serializes a Document into an in-memory PDF.
//
// RETURNS:
//   - A buffer positioned at its start, ready to attach to a message.
//   - An error if PDF serialization fails. A missing logo asset is not a
//     failure; the header renders a placeholder block instead.
func Render(doc *Document) (*bytes.Buffer, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(pageMargin+5, pageMargin+5, pageMargin+5)
	pdf.SetAutoPageBreak(true, pageMargin)

	// The header hook fires on every page, including pages created by
	// automatic breaks, which keeps the overlay identical throughout.
	pdf.SetHeaderFunc(func() {
		drawOverlay(pdf, doc.Overlay)
	})

	pdf.AddPage()

	drawHeaderBlock(pdf, doc.Header)
	drawGrid(pdf, doc.Info)
	drawGrid(pdf, doc.Financial)
	drawGrid(pdf, doc.NetPay)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize payslip PDF: %w", err)
	}
	return &buf, nil
}

// drawOverlay draws the border box and the centered disclaimer line.
func drawOverlay(pdf *gofpdf.Fpdf, o Overlay) {
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(o.LineWidth)
	pdf.Rect(o.BoxX, o.BoxY, o.BoxWidth, o.BoxHeight, "D")

	pdf.SetFont(baseFont, "", 9)
	pageWidth, _ := pdf.GetPageSize()
	textWidth := pdf.GetStringWidth(o.Disclaimer)
	pdf.Text((pageWidth-textWidth)/2, o.DisclaimerY, o.Disclaimer)
}

// drawHeaderBlock draws the logo column and the centered company identity.
func drawHeaderBlock(pdf *gofpdf.Fpdf, h Header) {
	left, top, _, _ := pdf.GetMargins()
	startY := top

	// Logo column. The asset is optional: a textual placeholder stands in
	// when the file is absent so delivery never depends on the image.
	if logoUsable(h.LogoFile) {
		pdf.ImageOptions(h.LogoFile, left, startY, h.LogoWidth, h.LogoHeight,
			false, gofpdf.ImageOptions{ReadDpi: true}, 0, "")
	} else {
		pdf.SetFont(baseFont, "B", 10)
		pdf.SetXY(left, startY)
		pdf.MultiCell(h.LogoColWidth, 12, "LOGO\nMISSING", "", "L", false)
	}

	// Text column, centered within its own width.
	textX := left + h.LogoColWidth
	pdf.SetXY(textX, startY)
	pdf.SetFont(baseFont, "B", 14)
	pdf.MultiCell(h.TextColWidth, 16, h.CompanyName, "", "C", false)

	pdf.SetX(textX)
	pdf.SetFont(baseFont, "", 10)
	for _, line := range h.AddressLines {
		pdf.MultiCell(h.TextColWidth, 12, line, "", "C", false)
		pdf.SetX(textX)
	}

	pdf.SetFont(baseFont, "", 10)
	pdf.MultiCell(h.TextColWidth, 12, h.Title, "", "C", false)

	// Continue below whichever column reached further down.
	logoBottom := startY + h.LogoHeight
	if pdf.GetY() < logoBottom {
		pdf.SetY(logoBottom)
	}
	pdf.SetX(left)
}

// logoUsable reports whether the logo asset exists on disk.
func logoUsable(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// drawGrid draws one grid block at the current cursor position.
func drawGrid(pdf *gofpdf.Fpdf, g Grid) {
	left, _, _, _ := pdf.GetMargins()

	if g.SpaceBefore > 0 {
		pdf.Ln(g.SpaceBefore)
	}

	for _, row := range g.Rows {
		pdf.SetX(left)

		if row.RuleAbove {
			drawRule(pdf, left, rowWidth(row))
		}

		for _, cell := range row.Cells {
			style := ""
			if cell.Bold {
				style = "B"
			}
			pdf.SetFont(baseFont, style, 10)
			pdf.CellFormat(cell.Width, g.RowHeight, cell.Text, "", 0, cell.Align, false, 0, "")
		}
		pdf.Ln(g.RowHeight)

		if row.RuleBelow {
			drawRule(pdf, left, rowWidth(row))
		}
	}
}

// drawRule draws a 1.5pt horizontal line across the given width at the
// current vertical position.
func drawRule(pdf *gofpdf.Fpdf, x, width float64) {
	y := pdf.GetY()
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(1.5)
	pdf.Line(x, y, x+width, y)
}

// rowWidth sums the cell widths of a row.
func rowWidth(row Row) float64 {
	var total float64
	for _, cell := range row.Cells {
		total += cell.Width
	}
	return total
}
