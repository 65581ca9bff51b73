package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	stderrors "grievance-desk/internal/common/errors"
	"grievance-desk/internal/common/metrics"
	"grievance-desk/internal/models"
)

const complaintsSheet = "Complaints"

// WriteComplaintsXLSX writes the complaint list as a spreadsheet with a
// styled header row.
func WriteComplaintsXLSX(w io.Writer, complaints []models.Complaint) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(complaintsSheet)
	if err != nil {
		return stderrors.NewExportFailedError("xlsx", err)
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	for col, title := range complaintHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return stderrors.NewExportFailedError("xlsx", err)
		}
		if err := f.SetCellValue(complaintsSheet, cell, title); err != nil {
			return stderrors.NewExportFailedError("xlsx", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		endCell, _ := excelize.CoordinatesToCellName(len(complaintHeader), 1)
		_ = f.SetCellStyle(complaintsSheet, "A1", endCell, headerStyle)
	}

	for i, c := range complaints {
		row := i + 2
		values := []interface{}{
			c.ID,
			c.Category,
			c.Subject,
			c.Status,
			c.AssignedTo,
			c.CreatedAt.Format(time.RFC3339),
			c.UpdatedAt.Format(time.RFC3339),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return stderrors.NewExportFailedError("xlsx", err)
			}
			if err := f.SetCellValue(complaintsSheet, cell, v); err != nil {
				return stderrors.NewExportFailedError("xlsx", err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return stderrors.NewExportFailedError("xlsx", err)
	}

	metrics.ExportsGenerated.WithLabelValues("xlsx").Inc()
	return nil
}

// WriteSummaryXLSX writes the analytics summary as a two-column sheet.
func WriteSummaryXLSX(w io.Writer, summary *models.AnalyticsSummary) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Summary"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return stderrors.NewExportFailedError("xlsx", err)
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	rows := [][]interface{}{
		{"Total complaints", summary.TotalComplaints},
		{"Open complaints", summary.OpenComplaints},
		{"Resolved complaints", summary.ResolvedComplaints},
		{"Escalated", summary.EscalatedCount},
		{"Avg resolution (days)", summary.AvgResolutionDays},
	}
	for status, count := range summary.ByStatus {
		rows = append(rows, []interface{}{fmt.Sprintf("Status: %s", status), count})
	}
	for category, count := range summary.ByCategory {
		rows = append(rows, []interface{}{fmt.Sprintf("Category: %s", category), count})
	}

	for i, row := range rows {
		for col, v := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+1)
			if err != nil {
				return stderrors.NewExportFailedError("xlsx", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return stderrors.NewExportFailedError("xlsx", err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return stderrors.NewExportFailedError("xlsx", err)
	}

	metrics.ExportsGenerated.WithLabelValues("xlsx").Inc()
	return nil
}
