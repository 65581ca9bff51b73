package status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stderrors "grievance-desk/internal/common/errors"
	"grievance-desk/internal/models"
)

func parseTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return ts
}

func TestSelectNilRecordRendersWizard(t *testing.T) {
	vm := Select(nil)
	assert.Equal(t, ViewWizard, vm.View)
	assert.Empty(t, vm.Title)
}

func TestSelectByStatus(t *testing.T) {
	applied := parseTime(t, "2026-04-01T10:00:00Z")
	updated := parseTime(t, "2026-04-10T08:15:00Z")

	tests := []struct {
		name     string
		status   string
		expected View
		title    string
	}{
		{"pending", models.StatusPending, ViewUnderReview, "Application Under Review"},
		{"approved", models.StatusApproved, ViewApproved, "Application Approved"},
		{"rejected", models.StatusRejected, ViewRejected, "Application Rejected"},
		{"test completed", models.StatusTestCompleted, ViewTestCompleted, "Qualification Test Completed"},
		{"unrecognized server state", "quarantined", ViewUnderReview, "Application Under Review"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vm := Select(&models.ApplicationStatusRecord{
				Status:          tt.status,
				ApplicationDate: applied,
				LastUpdate:      updated,
			})
			assert.Equal(t, tt.expected, vm.View)
			assert.Equal(t, tt.title, vm.Title)
			assert.Equal(t, applied, vm.ApplicationDate)
			assert.Equal(t, updated, vm.LastUpdate)
		})
	}
}

func TestSelectApprovedWithScoreAndFeedback(t *testing.T) {
	score := 85.0
	feedback := "Welcome aboard. Onboarding starts Monday."

	vm := Select(&models.ApplicationStatusRecord{
		Status:          models.StatusApproved,
		ApplicationDate: parseTime(t, "2026-04-01T10:00:00Z"),
		LastUpdate:      parseTime(t, "2026-04-10T08:15:00Z"),
		TestScore:       &score,
		Feedback:        &feedback,
	})

	assert.Equal(t, ViewApproved, vm.View)
	require.NotNil(t, vm.TestScore)
	assert.Equal(t, 85.0, *vm.TestScore)
	assert.Equal(t, feedback, vm.Feedback)
}

func TestSelectWithErrorNeverFallsThroughToWizard(t *testing.T) {
	fetchErr := stderrors.NewStatusFetchFailedError(assert.AnError)

	vm := SelectWithError(nil, fetchErr)
	assert.Equal(t, ViewRetryFetch, vm.View)
	assert.NotEmpty(t, vm.RetryMessage)

	// Even with a stale record present, a fetch error forces the retry view.
	stale := &models.ApplicationStatusRecord{Status: models.StatusApproved}
	vm = SelectWithError(stale, fetchErr)
	assert.Equal(t, ViewRetryFetch, vm.View)
}

func TestSelectWithErrorNilErrorDelegates(t *testing.T) {
	vm := SelectWithError(nil, nil)
	assert.Equal(t, ViewWizard, vm.View)

	vm = SelectWithError(&models.ApplicationStatusRecord{Status: models.StatusPending}, nil)
	assert.Equal(t, ViewUnderReview, vm.View)
}
