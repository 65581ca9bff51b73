package models

// AnalyticsSummary aggregates backend-computed complaint figures for the
// admin dashboard and the export helpers.
type AnalyticsSummary struct {
	TotalComplaints    int            `json:"totalComplaints"`
	OpenComplaints     int            `json:"openComplaints"`
	ResolvedComplaints int            `json:"resolvedComplaints"`
	EscalatedCount     int            `json:"escalatedCount"`
	AvgResolutionDays  float64        `json:"avgResolutionDays"`
	ByCategory         map[string]int `json:"byCategory"`
	ByStatus           map[string]int `json:"byStatus"`
}
