package services

import (
	"context"

	"grievance-desk/internal/common/logger"
	"grievance-desk/internal/models"
)

// AnalyticsService reads backend-computed aggregates for the admin dashboard
// and the export helpers. All aggregation happens server-side.
type AnalyticsService struct {
	client *Client
	logger logger.Logger
}

func NewAnalyticsService(client *Client, log logger.Logger) *AnalyticsService {
	return &AnalyticsService{
		client: client,
		logger: log.WithFields(map[string]interface{}{"service": "analytics"}),
	}
}

// Summary fetches the complaint aggregates.
func (s *AnalyticsService) Summary(ctx context.Context) (*models.AnalyticsSummary, error) {
	var summary models.AnalyticsSummary
	if err := s.client.get(ctx, "/api/analytics/summary", &summary, "analytics", "summary"); err != nil {
		return nil, err
	}
	return &summary, nil
}

// StatusBreakdown fetches the complaint count per status.
func (s *AnalyticsService) StatusBreakdown(ctx context.Context) (map[string]int, error) {
	var breakdown map[string]int
	if err := s.client.get(ctx, "/api/analytics/status-breakdown", &breakdown, "analytics", "status_breakdown"); err != nil {
		return nil, err
	}
	return breakdown, nil
}
