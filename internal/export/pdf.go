package export

import (
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	stderrors "grievance-desk/internal/common/errors"
	"grievance-desk/internal/common/metrics"
	"grievance-desk/internal/models"
)

// WriteComplaintsPDF writes a tabular complaint report.
func WriteComplaintsPDF(w io.Writer, title string, complaints []models.Complaint) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)

	widths := []float64{30, 35, 80, 28, 35, 34, 34}
	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range complaintHeader {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, c := range complaints {
		cells := []string{
			c.ID,
			c.Category,
			c.Subject,
			c.Status,
			c.AssignedTo,
			c.CreatedAt.Format("2006-01-02"),
			c.UpdatedAt.Format("2006-01-02"),
		}
		for i, v := range cells {
			pdf.CellFormat(widths[i], 6, v, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "I", 7)
	pdf.Ln(4)
	pdf.Cell(0, 5, "Generated "+time.Now().Format(time.RFC1123))

	if err := pdf.Output(w); err != nil {
		return stderrors.NewExportFailedError("pdf", err)
	}

	metrics.ExportsGenerated.WithLabelValues("pdf").Inc()
	return nil
}
