package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	stderrors "grievance-desk/internal/common/errors"
	"grievance-desk/internal/common/logger"
	"grievance-desk/internal/models"
	"grievance-desk/internal/qualify"
	"grievance-desk/internal/wizard"
)

// statusRecordSchema is the status-fetch contract. The backend owns the
// business rules; the portal only refuses payloads it cannot trust.
const statusRecordSchema = `{
	"type": "object",
	"required": ["status", "applicationDate", "lastUpdate"],
	"properties": {
		"status": {
			"type": "string",
			"enum": ["pending", "approved", "rejected", "test-completed"]
		},
		"applicationDate": {"type": "string"},
		"lastUpdate": {"type": "string"},
		"testScore": {"type": ["number", "null"]},
		"feedback": {"type": ["string", "null"]}
	}
}`

// StaffService wraps the staff-application endpoints. It implements
// wizard.Submitter.
type StaffService struct {
	client *Client
	schema *gojsonschema.Schema
	logger logger.Logger
}

func NewStaffService(client *Client, log logger.Logger) (*StaffService, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(statusRecordSchema))
	if err != nil {
		return nil, fmt.Errorf("compile status record schema: %w", err)
	}
	return &StaffService{
		client: client,
		schema: schema,
		logger: log.WithFields(map[string]interface{}{"service": "staff"}),
	}, nil
}

// SubmitApplication posts the completed draft. Any non-2xx response is
// uniformly a submission failure; the caller keeps the draft and may retry.
func (s *StaffService) SubmitApplication(ctx context.Context, draft *wizard.ApplicationDraft) (string, error) {
	var resp models.SubmissionResponse
	err := s.client.post(ctx, "/api/staff/applications", draft, &resp, "staff", "submit_application")
	if err != nil {
		if httpErr, ok := err.(*HTTPError); ok {
			return "", stderrors.NewSubmissionFailedError(httpErr.Error())
		}
		if se, ok := err.(*stderrors.StandardError); ok && se.Code == stderrors.ErrCodeResponseDecodeFailed {
			return "", se
		}
		return "", stderrors.NewSubmissionFailedError(err.Error())
	}
	if resp.RequestID == "" {
		return "", stderrors.NewContractViolationError("submission response missing requestId")
	}

	s.logger.Info("staff application submitted", map[string]interface{}{
		"requestId": resp.RequestID,
	})
	return resp.RequestID, nil
}

// FetchApplicationStatus loads the caller's application status record. A 404
// means no prior application and yields a nil record. Every other failure is
// a distinct STATUS_FETCH_FAILED; it must never be rendered as "no
// application exists".
func (s *StaffService) FetchApplicationStatus(ctx context.Context) (*models.ApplicationStatusRecord, error) {
	raw, err := s.client.getRaw(ctx, "/api/staff/applications/status", "staff", "fetch_status")
	if err != nil {
		if httpErr, ok := err.(*HTTPError); ok {
			if httpErr.StatusCode == http.StatusNotFound {
				return nil, nil
			}
			return nil, stderrors.NewStatusFetchFailedError(httpErr)
		}
		return nil, stderrors.NewStatusFetchFailedError(err)
	}

	result, err := s.schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, stderrors.NewContractViolationError(err.Error())
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return nil, stderrors.NewContractViolationError(strings.Join(details, "; "))
	}

	var record models.ApplicationStatusRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, stderrors.NewResponseDecodeFailedError(err)
	}
	return &record, nil
}

// CompleteTest persists a passing qualification result. The optimistic local
// transition to test-completed happens at the caller once this returns.
func (s *StaffService) CompleteTest(ctx context.Context, completion qualify.Completion) error {
	payload := models.TestCompletion{
		RequestID: completion.RequestID,
		Score:     completion.Score,
	}
	err := s.client.post(ctx, "/api/staff/applications/test-completion", payload, nil, "staff", "complete_test")
	if err != nil {
		return stderrors.NewTestResultSubmitFailedError(err.Error())
	}

	s.logger.Info("qualification result recorded", map[string]interface{}{
		"requestId": completion.RequestID,
		"score":     completion.Score,
	})
	return nil
}
