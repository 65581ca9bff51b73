package wizard

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	stderrors "grievance-desk/internal/common/errors"
	"grievance-desk/internal/common/logger"
	"grievance-desk/internal/common/metrics"
)

var (
	ErrNotOnFinalStep = errors.New("submit is only available on the final step")
	ErrSubmitInFlight = errors.New("a submission is already in progress")
	ErrUnknownField   = errors.New("unknown draft field")
	ErrInvalidValue   = errors.New("value type does not match the field")
)

// GeneralSubmitError is the banner message shown on the final step when the
// backend rejects or times out a submission. Per-field messages never use it.
const GeneralSubmitError = "Submission failed. Please check your connection and try again."

// Submitter hands a completed draft to the service layer. Implementations
// return the backend-issued request ID.
type Submitter interface {
	SubmitApplication(ctx context.Context, draft *ApplicationDraft) (string, error)
}

// Controller sequences the five application steps. Step advancement is gated
// by per-step validation; going back never validates. The controller owns the
// draft exclusively until submission succeeds.
type Controller struct {
	rules     Rules
	submitter Submitter
	logger    logger.Logger

	step          int
	draft         ApplicationDraft
	fieldErrors   map[string]string
	generalError  string
	requestID     string
	submitTimeout time.Duration
	submitting    atomic.Bool

	// onAccepted fires after a successful submission, carrying the backend
	// request ID. The caller uses it to open the qualification test.
	onAccepted func(requestID string)
}

// NewController creates a wizard controller starting at step 1 with an empty
// draft.
func NewController(rules Rules, submitter Submitter, submitTimeout time.Duration, log logger.Logger) *Controller {
	if submitTimeout <= 0 {
		submitTimeout = 30 * time.Second
	}
	return &Controller{
		rules:         rules,
		submitter:     submitter,
		logger:        log.WithFields(map[string]interface{}{"component": "wizard"}),
		step:          FirstStep,
		fieldErrors:   make(map[string]string),
		submitTimeout: submitTimeout,
	}
}

// OnAccepted registers the submission-accepted callback.
func (c *Controller) OnAccepted(fn func(requestID string)) {
	c.onAccepted = fn
}

func (c *Controller) CurrentStep() int { return c.step }

// Draft returns the draft for rendering. Mutation goes through EditField.
func (c *Controller) Draft() *ApplicationDraft { return &c.draft }

// FieldErrors returns the stored per-field messages for the current step.
func (c *Controller) FieldErrors() map[string]string { return c.fieldErrors }

// GeneralError returns the banner message, empty when none.
func (c *Controller) GeneralError() string { return c.generalError }

// RequestID returns the backend request ID after a successful submission.
func (c *Controller) RequestID() string { return c.requestID }

// Next validates the current step. On success it advances one step (capped at
// the final step); on failure it stays and stores the field errors.
func (c *Controller) Next() bool {
	errs := c.rules.ValidateStep(c.step, &c.draft)
	if len(errs) > 0 {
		c.fieldErrors = errs
		c.logger.Debug("step blocked by validation", map[string]interface{}{
			"step":       c.step,
			"errorCount": len(errs),
		})
		return false
	}

	c.fieldErrors = make(map[string]string)
	if c.step < LastStep {
		c.step++
	}
	return true
}

// Back moves one step back (floored at step 1). It neither validates nor
// clears the errors of the step left behind.
func (c *Controller) Back() {
	if c.step > FirstStep {
		c.step--
	}
}

// EditField updates one draft field. If that field currently holds a stored
// error, only that error is cleared; the rest of the step is not re-validated.
func (c *Controller) EditField(field string, value interface{}) error {
	if err := c.applyEdit(field, value); err != nil {
		return err
	}
	delete(c.fieldErrors, field)
	return nil
}

func (c *Controller) applyEdit(field string, value interface{}) error {
	switch field {
	case "fullName", "email", "phone", "address", "dateOfBirth",
		"highestEducation", "institution", "fieldOfStudy",
		"yearsOfExperience", "currentPosition", "currentCompany", "skills",
		"motivation":
		s, ok := value.(string)
		if !ok {
			return ErrInvalidValue
		}
		c.applyStringEdit(field, s)
	case "graduationYear":
		switch v := value.(type) {
		case int:
			c.draft.Education.GraduationYear = v
		case float64:
			c.draft.Education.GraduationYear = int(v)
		default:
			return ErrInvalidValue
		}
	case "resume":
		switch v := value.(type) {
		case FileRef:
			c.draft.Documents.Resume = v
		case string:
			c.draft.Documents.Resume = FileRef(v)
		default:
			return ErrInvalidValue
		}
	case "agreeToTerms", "agreeToBackgroundCheck":
		b, ok := value.(bool)
		if !ok {
			return ErrInvalidValue
		}
		if field == "agreeToTerms" {
			c.draft.Consent.AgreeToTerms = b
		} else {
			c.draft.Consent.AgreeToBackgroundCheck = b
		}
	default:
		return ErrUnknownField
	}
	return nil
}

func (c *Controller) applyStringEdit(field, value string) {
	switch field {
	case "fullName":
		c.draft.Personal.FullName = value
	case "email":
		c.draft.Personal.Email = value
	case "phone":
		c.draft.Personal.Phone = value
	case "address":
		c.draft.Personal.Address = value
	case "dateOfBirth":
		c.draft.Personal.DateOfBirth = value
	case "highestEducation":
		c.draft.Education.HighestEducation = value
	case "institution":
		c.draft.Education.Institution = value
	case "fieldOfStudy":
		c.draft.Education.FieldOfStudy = value
	case "yearsOfExperience":
		c.draft.Experience.YearsOfExperience = value
	case "currentPosition":
		c.draft.Experience.CurrentPosition = value
	case "currentCompany":
		c.draft.Experience.CurrentCompany = value
	case "skills":
		c.draft.Experience.Skills = value
	case "motivation":
		c.draft.Documents.Motivation = value
	}
}

// AddCertificate appends a certificate reference to the draft.
func (c *Controller) AddCertificate(ref FileRef) {
	c.draft.Documents.Certificates = append(c.draft.Documents.Certificates, ref)
}

// Submit validates the final step and hands the draft to the service layer.
// While a submission is outstanding, further Submit calls are rejected. A
// backend failure or timeout keeps the controller on the final step with the
// general banner message set; the draft survives for retry.
func (c *Controller) Submit(ctx context.Context) error {
	if c.step != LastStep {
		return ErrNotOnFinalStep
	}

	errs := c.rules.ValidateStep(LastStep, &c.draft)
	if len(errs) > 0 {
		c.fieldErrors = errs
		return stderrors.NewValidationFailedError("final step incomplete")
	}

	if !c.submitting.CompareAndSwap(false, true) {
		return ErrSubmitInFlight
	}
	defer c.submitting.Store(false)

	c.generalError = ""

	ctx, cancel := context.WithTimeout(ctx, c.submitTimeout)
	defer cancel()

	requestID, err := c.submitter.SubmitApplication(ctx, &c.draft)
	if err != nil {
		c.generalError = GeneralSubmitError
		metrics.ApplicationSubmissions.WithLabelValues("failure").Inc()

		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			timeoutErr := stderrors.NewSubmissionTimeoutError(c.submitTimeout)
			c.logger.Error("submission timed out", map[string]interface{}{
				"timeout": c.submitTimeout.String(),
			})
			return timeoutErr
		}

		c.logger.Error("submission failed", map[string]interface{}{
			"error": err.Error(),
		})
		if se, ok := err.(*stderrors.StandardError); ok {
			return se
		}
		return stderrors.NewSubmissionFailedError(err.Error())
	}

	c.requestID = requestID
	metrics.ApplicationSubmissions.WithLabelValues("success").Inc()
	c.logger.Info("application submitted", map[string]interface{}{
		"requestId": requestID,
	})

	if c.onAccepted != nil {
		c.onAccepted(requestID)
	}
	return nil
}

// Submitting reports whether a submission call is outstanding; the view uses
// it to disable the submit control and show the loading indicator.
func (c *Controller) Submitting() bool {
	return c.submitting.Load()
}
