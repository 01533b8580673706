package infra

// pdf.go — A4 document generation using go-pdf/fpdf.
// Two renderers share the organization letterhead:
//   - GenerateInvoicePDF: monthly tuition invoice (header, invoice number,
//     Béjaïa date line, month/amount table, bold total, amount in words)
//   - GenerateDocumentPDF: one-paragraph administrative letters
//     (certificat de scolarité, attestation d'inscription)

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Mehdi1002/bambin-dashboard-secret/internal/dto"
	"github.com/Mehdi1002/bambin-dashboard-secret/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateInvoicePDF renders an invoice to storagePath/{invoice_number}.pdf and
// returns the absolute path of the file.
func GenerateInvoicePDF(inv *dto.InvoiceResponse, setting *model.Setting, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}
	filePath := filepath.Join(storagePath, inv.InvoiceNumber+".pdf")

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("") // cp1252, covers French accents
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	writeLetterhead(pdf, tr, setting, contentW, "N° "+inv.InvoiceNumber)

	// Issue date, "Béjaïa, le JJ/MM/AAAA" on the right like the paper original.
	issue := inv.IssueDate
	if t, err := time.Parse("2006-01-02", inv.IssueDate); err == nil {
		issue = t.Format("02/01/2006")
	}
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, tr("Béjaïa, le "+issue), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 15)
	pdf.CellFormat(contentW, 9, "Facture", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Billing table ────────────────────────────────────────────────────────
	col1 := contentW * 0.40 // child name
	col2 := contentW * 0.32 // billed month
	col3 := contentW * 0.28 // amount

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(55, 65, 81)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(col1, 8, tr("Nom & Prénom"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(col2, 8, tr("Mois facturé"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(col3, 8, tr("Total à payer"), "1", 1, "C", true, 0, "")
	pdf.SetTextColor(0, 0, 0)

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range inv.Lines {
		pdf.CellFormat(col1, 8, tr(inv.ChildName), "1", 0, "C", false, 0, "")
		pdf.CellFormat(col2, 8, tr(line.MonthLabel), "1", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 8, formatDinars(line.Amount), "1", 1, "C", false, 0, "")
	}
	pdf.Ln(6)

	// ── Totals ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(contentW, 8, "Total : "+formatDinars(inv.Total), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(contentW, 6,
		tr("Arrêtée la présente facture à la somme de : "+inv.TotalInWords+"."),
		"", "L", false)

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}

// GenerateDocumentPDF renders a one-paragraph administrative letter to
// storagePath/fileName and returns the absolute path of the file.
func GenerateDocumentPDF(title, body string, setting *model.Setting, fileName, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 40

	writeLetterhead(pdf, tr, setting, contentW, "")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 15)
	pdf.CellFormat(contentW, 9, tr(title), "", 1, "C", false, 0, "")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(contentW, 8, tr(body), "", "J", false)

	pdf.Ln(30)
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(contentW, 6, "Le Directeur", "", 1, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}

// writeLetterhead prints the organization header, with an optional bold
// reference (invoice number) on the right.
func writeLetterhead(pdf *fpdf.Fpdf, tr func(string) string, setting *model.Setting, contentW float64, right string) {
	leftW := contentW * 0.70
	rightW := contentW - leftW

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(leftW, 7, tr(setting.Nom), "", 0, "L", false, 0, "")
	if right != "" {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(rightW, 7, tr(right), "", 0, "R", false, 0, "")
	}
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 9)
	for _, line := range []string{
		setting.SousTitre,
		setting.Adresse,
		setting.Telephone,
		setting.Email,
	} {
		if line == "" {
			continue
		}
		pdf.CellFormat(contentW, 5, tr(line), "", 1, "L", false, 0, "")
	}

	fiscal := ""
	if setting.NIF != "" {
		fiscal += "NIF : " + setting.NIF
	}
	if setting.RC != "" {
		if fiscal != "" {
			fiscal += "  -  "
		}
		fiscal += "RC : " + setting.RC
	}
	if fiscal != "" {
		pdf.SetFont("Helvetica", "", 8)
		pdf.CellFormat(contentW, 5, tr(fiscal), "", 1, "L", false, 0, "")
	}

	pdf.Ln(2)
	x, y := pdf.GetX(), pdf.GetY()
	pdf.Line(x, y, x+contentW, y)
	pdf.Ln(3)
}

// formatDinars renders "12 000 DA" with fr-DZ thousand grouping.
func formatDinars(amount int64) string {
	s := strconv.FormatInt(amount, 10)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg, s = true, s[1:]
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ' ')
		}
		out = append(out, c)
	}
	if neg {
		out = append([]byte{'-'}, out...)
	}
	return string(out) + " DA"
}
