// Package export renders complaint data into downloadable report formats.
package export

import (
	"encoding/csv"
	"io"
	"time"

	stderrors "grievance-desk/internal/common/errors"
	"grievance-desk/internal/common/metrics"
	"grievance-desk/internal/models"
)

var complaintHeader = []string{"ID", "Category", "Subject", "Status", "Assigned To", "Created", "Updated"}

// WriteComplaintsCSV writes the complaint list as CSV: one header row, then
// one row per complaint.
func WriteComplaintsCSV(w io.Writer, complaints []models.Complaint) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(complaintHeader); err != nil {
		return stderrors.NewExportFailedError("csv", err)
	}
	for _, c := range complaints {
		row := []string{
			c.ID,
			c.Category,
			c.Subject,
			c.Status,
			c.AssignedTo,
			c.CreatedAt.Format(time.RFC3339),
			c.UpdatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return stderrors.NewExportFailedError("csv", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return stderrors.NewExportFailedError("csv", err)
	}

	metrics.ExportsGenerated.WithLabelValues("csv").Inc()
	return nil
}
