package services

import (
	"context"
	"fmt"

	stderrors "grievance-desk/internal/common/errors"
	"grievance-desk/internal/common/logger"
	"grievance-desk/internal/models"
)

// RequestService wraps the employee-request endpoints used by staff to work
// assigned complaints.
type RequestService struct {
	client *Client
	logger logger.Logger
}

func NewRequestService(client *Client, log logger.Logger) *RequestService {
	return &RequestService{
		client: client,
		logger: log.WithFields(map[string]interface{}{"service": "requests"}),
	}
}

// List returns the requests assigned to the calling staff member.
func (s *RequestService) List(ctx context.Context) ([]models.EmployeeRequest, error) {
	var requests []models.EmployeeRequest
	if err := s.client.get(ctx, "/api/requests", &requests, "requests", "list"); err != nil {
		return nil, err
	}
	return requests, nil
}

// Accept marks an assigned request as being worked.
func (s *RequestService) Accept(ctx context.Context, requestID string) error {
	if requestID == "" {
		return stderrors.NewValidationFailedError("request id is required")
	}
	path := fmt.Sprintf("/api/requests/%s/accept", requestID)
	return s.client.post(ctx, path, nil, nil, "requests", "accept")
}

// Respond records the staff member's response on a request.
func (s *RequestService) Respond(ctx context.Context, requestID, response string) error {
	if requestID == "" || response == "" {
		return stderrors.NewValidationFailedError("request id and response are required")
	}

	path := fmt.Sprintf("/api/requests/%s/respond", requestID)
	err := s.client.post(ctx, path, map[string]string{"response": response}, nil, "requests", "respond")
	if err != nil {
		return err
	}

	s.logger.Info("request responded", map[string]interface{}{
		"requestId": requestID,
	})
	return nil
}
