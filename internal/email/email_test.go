package email

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stderrors "grievance-desk/internal/common/errors"
	"grievance-desk/internal/common/logger"
)

// fakeSender records delivery attempts for assertions.
type fakeSender struct {
	from, to, subject, body string
	err                     error
	calls                   int
}

func (f *fakeSender) Send(ctx context.Context, from, to, subject, body string) (string, error) {
	f.calls++
	f.from, f.to, f.subject, f.body = from, to, subject, body
	if f.err != nil {
		return "", f.err
	}
	return "msg-001", nil
}

func TestRenderComplaintReceived(t *testing.T) {
	msg, err := Render("complaint-received", map[string]interface{}{
		"fullName":    "Priya Nair",
		"subject":     "Broken AC on floor 3",
		"complaintId": "cmp-001",
	})
	require.NoError(t, err)

	assert.Equal(t, "Complaint cmp-001 received", msg.Subject)
	assert.Contains(t, msg.Body, "Dear Priya Nair,")
	assert.Contains(t, msg.Body, `"Broken AC on floor 3"`)
}

func TestRenderIsPure(t *testing.T) {
	params := map[string]interface{}{
		"fullName":  "Priya Nair",
		"requestId": "req-555",
		"score":     80,
	}

	first, err := Render("test-passed", params)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := Render("test-passed", params)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Contains(t, first.Body, "You scored 80%")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := Render("password-reset", nil)
	assert.Equal(t, stderrors.ErrCodeTemplateNotFound, stderrors.CodeOf(err))
}

func TestRenderMissingParams(t *testing.T) {
	_, err := Render("application-received", map[string]interface{}{
		"fullName": "Priya Nair",
	})
	require.Equal(t, stderrors.ErrCodeTemplateParamsMissing, stderrors.CodeOf(err))

	se := err.(*stderrors.StandardError)
	assert.Contains(t, se.Details, "requestId")
}

func TestRenderOptionalConditionalSections(t *testing.T) {
	withNote, err := Render("complaint-status-update", map[string]interface{}{
		"fullName":    "Priya Nair",
		"complaintId": "cmp-001",
		"status":      "resolved",
		"note":        "Unit replaced.",
	})
	require.NoError(t, err)
	assert.Contains(t, withNote.Body, "Note from the handling team: Unit replaced.")

	withoutNote, err := Render("complaint-status-update", map[string]interface{}{
		"fullName":    "Priya Nair",
		"complaintId": "cmp-001",
		"status":      "resolved",
	})
	require.NoError(t, err)
	assert.NotContains(t, withoutNote.Body, "Note from the handling team")
}

func TestRenderRejectsInvalidEnum(t *testing.T) {
	_, err := Render("application-outcome", map[string]interface{}{
		"fullName":  "Priya Nair",
		"requestId": "req-555",
		"outcome":   "pending",
	})
	assert.Equal(t, stderrors.ErrCodeTemplateParamsMissing, stderrors.CodeOf(err))
}

func TestServiceSend(t *testing.T) {
	sender := &fakeSender{}
	svc := NewService(sender, "noreply@grievance.example", logger.NewNoOpLogger())

	messageID, err := svc.Send(context.Background(), "priya@example.com", "application-received", map[string]interface{}{
		"fullName":  "Priya Nair",
		"requestId": "req-555",
	})
	require.NoError(t, err)
	assert.Equal(t, "msg-001", messageID)
	assert.Equal(t, "noreply@grievance.example", sender.from)
	assert.Equal(t, "priya@example.com", sender.to)
	assert.Equal(t, "Your staff application was received", sender.subject)
}

func TestServiceSendDeliveryFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("smtp: connection refused")}
	svc := NewService(sender, "noreply@grievance.example", logger.NewNoOpLogger())

	_, err := svc.Send(context.Background(), "priya@example.com", "application-received", map[string]interface{}{
		"fullName":  "Priya Nair",
		"requestId": "req-555",
	})
	assert.Equal(t, stderrors.ErrCodeEmailSendFailed, stderrors.CodeOf(err))
}

func TestServiceSendSkipsDeliveryOnRenderError(t *testing.T) {
	sender := &fakeSender{}
	svc := NewService(sender, "noreply@grievance.example", logger.NewNoOpLogger())

	_, err := svc.Send(context.Background(), "priya@example.com", "application-received", nil)
	assert.Error(t, err)
	assert.Zero(t, sender.calls)
}
