package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stderrors "grievance-desk/internal/common/errors"
	"grievance-desk/internal/common/logger"
	"grievance-desk/internal/models"
)

func newComplaintService(t *testing.T, handler http.Handler) *ComplaintService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewComplaintService(newTestClient(t, srv.URL), logger.NewNoOpLogger())
}

func TestComplaintSubmitRequiresSubjectAndDescription(t *testing.T) {
	svc := newComplaintService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("backend must not be reached on a local validation failure")
	}))

	_, err := svc.Submit(context.Background(), &models.ComplaintDraft{Category: "workplace"})
	assert.Equal(t, stderrors.ErrCodeValidationFailed, stderrors.CodeOf(err))
}

func TestComplaintSubmitSuccess(t *testing.T) {
	var gotDraft models.ComplaintDraft
	svc := newComplaintService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/complaints", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotDraft))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": "cmp-009", "category": "workplace", "subject": "Broken AC", "status": "open"}`))
	}))

	created, err := svc.Submit(context.Background(), &models.ComplaintDraft{
		Category:    "workplace",
		Subject:     "Broken AC",
		Description: "The AC on floor 3 has been down for a week.",
	})
	require.NoError(t, err)
	assert.Equal(t, "cmp-009", created.ID)
	assert.Equal(t, models.ComplaintOpen, created.Status)
	assert.Equal(t, "Broken AC", gotDraft.Subject)
}

func TestComplaintSubmitBackendRejection(t *testing.T) {
	svc := newComplaintService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))

	_, err := svc.Submit(context.Background(), &models.ComplaintDraft{
		Subject:     "Broken AC",
		Description: "Still broken.",
	})
	assert.Equal(t, stderrors.ErrCodeComplaintSubmitFailed, stderrors.CodeOf(err))
}

func TestComplaintList(t *testing.T) {
	svc := newComplaintService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/complaints", r.URL.Path)
		w.Write([]byte(`[
			{"id": "cmp-002", "subject": "Second", "status": "open"},
			{"id": "cmp-001", "subject": "First", "status": "resolved"}
		]`))
	}))

	complaints, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, complaints, 2)
	assert.Equal(t, "cmp-002", complaints[0].ID, "backend ordering is preserved")
}

func TestComplaintTimeline(t *testing.T) {
	svc := newComplaintService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/complaints/cmp-001/timeline", r.URL.Path)
		w.Write([]byte(`[
			{"id": "evt-1", "complaintId": "cmp-001", "status": "open", "occurredAt": "2026-03-01T09:30:00Z"},
			{"id": "evt-2", "complaintId": "cmp-001", "status": "in-progress", "actor": "staff-7", "occurredAt": "2026-03-02T10:00:00Z"}
		]`))
	}))

	events, err := svc.Timeline(context.Background(), "cmp-001")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, models.ComplaintInProgress, events[1].Status)
	assert.Equal(t, "staff-7", events[1].Actor)
}

func TestComplaintTimelineRequiresID(t *testing.T) {
	svc := newComplaintService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	_, err := svc.Timeline(context.Background(), "")
	assert.Equal(t, stderrors.ErrCodeValidationFailed, stderrors.CodeOf(err))
}
