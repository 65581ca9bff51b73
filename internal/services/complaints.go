package services

import (
	"context"
	"fmt"

	stderrors "grievance-desk/internal/common/errors"
	"grievance-desk/internal/common/logger"
	"grievance-desk/internal/models"
)

// ComplaintService wraps the complaint endpoints: submission, listing, and
// the per-complaint timeline.
type ComplaintService struct {
	client *Client
	logger logger.Logger
}

func NewComplaintService(client *Client, log logger.Logger) *ComplaintService {
	return &ComplaintService{
		client: client,
		logger: log.WithFields(map[string]interface{}{"service": "complaints"}),
	}
}

// Submit files a new complaint and returns the created record.
func (s *ComplaintService) Submit(ctx context.Context, draft *models.ComplaintDraft) (*models.Complaint, error) {
	if draft.Subject == "" || draft.Description == "" {
		return nil, stderrors.NewValidationFailedError("subject and description are required")
	}

	var created models.Complaint
	err := s.client.post(ctx, "/api/complaints", draft, &created, "complaints", "submit")
	if err != nil {
		if httpErr, ok := err.(*HTTPError); ok {
			return nil, stderrors.NewComplaintSubmitFailedError(httpErr.Error())
		}
		return nil, err
	}

	s.logger.Info("complaint submitted", map[string]interface{}{
		"complaintId": created.ID,
		"category":    created.Category,
	})
	return &created, nil
}

// List returns the caller's complaints, newest first per backend ordering.
func (s *ComplaintService) List(ctx context.Context) ([]models.Complaint, error) {
	var complaints []models.Complaint
	if err := s.client.get(ctx, "/api/complaints", &complaints, "complaints", "list"); err != nil {
		return nil, err
	}
	return complaints, nil
}

// Timeline returns the ordered event history of one complaint.
func (s *ComplaintService) Timeline(ctx context.Context, complaintID string) ([]models.ComplaintEvent, error) {
	if complaintID == "" {
		return nil, stderrors.NewValidationFailedError("complaint id is required")
	}

	var events []models.ComplaintEvent
	path := fmt.Sprintf("/api/complaints/%s/timeline", complaintID)
	if err := s.client.get(ctx, path, &events, "complaints", "timeline"); err != nil {
		return nil, err
	}
	return events, nil
}
