// Package status chooses which read-only application summary view to render
// from a server-reported status record.
package status

import (
	"time"

	"grievance-desk/internal/models"
)

// View identifies the template to render. The selector owns no transitions;
// it is re-evaluated once per mount and never polls.
type View string

const (
	// ViewWizard means no prior application exists; render the wizard.
	ViewWizard View = "wizard"
	// ViewRetryFetch means the status fetch itself failed. It must never be
	// conflated with "no application exists".
	ViewRetryFetch View = "retry-fetch"

	ViewUnderReview   View = "under-review"
	ViewApproved      View = "approved"
	ViewRejected      View = "rejected"
	ViewTestCompleted View = "test-completed"
)

// ViewModel carries the fields the chosen template displays.
type ViewModel struct {
	View            View
	Title           string
	ApplicationDate time.Time
	LastUpdate      time.Time
	TestScore       *float64
	Feedback        string
	RetryMessage    string
}

var titles = map[View]string{
	ViewUnderReview:   "Application Under Review",
	ViewApproved:      "Application Approved",
	ViewRejected:      "Application Rejected",
	ViewTestCompleted: "Qualification Test Completed",
}

// Select maps a fetched record to its view. A nil record means no prior
// application, which falls through to the wizard.
func Select(record *models.ApplicationStatusRecord) ViewModel {
	if record == nil {
		return ViewModel{View: ViewWizard}
	}

	var view View
	switch record.Status {
	case models.StatusApproved:
		view = ViewApproved
	case models.StatusRejected:
		view = ViewRejected
	case models.StatusTestCompleted:
		view = ViewTestCompleted
	default:
		// pending and any unrecognized server state render as under review.
		view = ViewUnderReview
	}

	vm := ViewModel{
		View:            view,
		Title:           titles[view],
		ApplicationDate: record.ApplicationDate,
		LastUpdate:      record.LastUpdate,
		TestScore:       record.TestScore,
	}
	if record.Feedback != nil {
		vm.Feedback = *record.Feedback
	}
	return vm
}

// SelectWithError resolves the fetch outcome. A fetch error yields the retry
// view with an affordance message, regardless of any stale record.
func SelectWithError(record *models.ApplicationStatusRecord, fetchErr error) ViewModel {
	if fetchErr != nil {
		return ViewModel{
			View:         ViewRetryFetch,
			Title:        "Could Not Load Application Status",
			RetryMessage: "We could not load your application status. Please retry.",
		}
	}
	return Select(record)
}
