package compose

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// defaultCover authors the built-in cover page used when no template file is
// configured. The page leaves the bottom-right date line empty; the stamp
// step fills it in.
func defaultCover() ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 20, "Statement Enclosed")
	pdf.Ln(28)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 14, "Please find attached the most recent billing statement for reimbursement.")
	pdf.Ln(18)
	pdf.Cell(0, 14, "This document was generated and mailed automatically.")

	pdf.SetY(-100)
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 12, "Date:", "", 0, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: generate cover page: %v", ErrDocument, err)
	}
	return buf.Bytes(), nil
}

// blankDocument returns a minimal valid single-page document. Used as the
// merge identity when there is nothing to merge.
func blankDocument() ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.AddPage()

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: generate blank document: %v", ErrDocument, err)
	}
	return buf.Bytes(), nil
}
