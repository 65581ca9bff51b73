package templates

import "grievance-desk/internal/common/validation"

// Template defines one notification email: its identity, the schema of the
// parameters it renders with, and its subject/body sources (text/template
// syntax).
type Template struct {
	ID          string                `json:"id"`
	Description string                `json:"description"`
	Subject     string                `json:"subject"`
	Body        string                `json:"body"`
	Params      validation.JSONSchema `json:"params"`
}

func builtin() []Template {
	return []Template{
		{
			ID:          "complaint-received",
			Description: "Sent to the complainant when a new complaint is filed",
			Subject:     "Complaint {{.complaintId}} received",
			Body: "Dear {{.fullName}},\n\n" +
				"Your complaint \"{{.subject}}\" has been received and assigned reference {{.complaintId}}.\n" +
				"You can follow its progress from your dashboard.\n\n" +
				"Regards,\nGrievance Desk",
			Params: validation.JSONSchema{
				Type:     "object",
				Required: []string{"fullName", "subject", "complaintId"},
				Properties: map[string]validation.Property{
					"fullName":    {Type: "string", MinLength: validation.IntPtr(1)},
					"subject":     {Type: "string", MinLength: validation.IntPtr(1)},
					"complaintId": {Type: "string", MinLength: validation.IntPtr(1)},
				},
				AdditionalProperties: true,
			},
		},
		{
			ID:          "complaint-status-update",
			Description: "Sent when a complaint changes status",
			Subject:     "Update on complaint {{.complaintId}}",
			Body: "Dear {{.fullName}},\n\n" +
				"Your complaint {{.complaintId}} is now: {{.status}}.\n" +
				"{{if .note}}Note from the handling team: {{.note}}\n{{end}}\n" +
				"Regards,\nGrievance Desk",
			Params: validation.JSONSchema{
				Type:     "object",
				Required: []string{"fullName", "complaintId", "status"},
				Properties: map[string]validation.Property{
					"fullName":    {Type: "string", MinLength: validation.IntPtr(1)},
					"complaintId": {Type: "string", MinLength: validation.IntPtr(1)},
					"status":      {Type: "string", MinLength: validation.IntPtr(1)},
					"note":        {Type: "string"},
				},
				AdditionalProperties: true,
			},
		},
		{
			ID:          "application-received",
			Description: "Sent when a staff application is submitted",
			Subject:     "Your staff application was received",
			Body: "Dear {{.fullName}},\n\n" +
				"Thank you for applying. Your application reference is {{.requestId}}.\n" +
				"The next step is the qualification test available on your status page.\n\n" +
				"Regards,\nGrievance Desk",
			Params: validation.JSONSchema{
				Type:     "object",
				Required: []string{"fullName", "requestId"},
				Properties: map[string]validation.Property{
					"fullName":  {Type: "string", MinLength: validation.IntPtr(1)},
					"requestId": {Type: "string", MinLength: validation.IntPtr(1)},
				},
				AdditionalProperties: true,
			},
		},
		{
			ID:          "test-passed",
			Description: "Sent after a passing qualification test",
			Subject:     "Qualification test passed",
			Body: "Dear {{.fullName}},\n\n" +
				"You scored {{.score}}% on the qualification test and passed.\n" +
				"Your application {{.requestId}} is now pending final review.\n\n" +
				"Regards,\nGrievance Desk",
			Params: validation.JSONSchema{
				Type:     "object",
				Required: []string{"fullName", "requestId", "score"},
				Properties: map[string]validation.Property{
					"fullName":  {Type: "string", MinLength: validation.IntPtr(1)},
					"requestId": {Type: "string", MinLength: validation.IntPtr(1)},
					"score":     {Type: "number"},
				},
				AdditionalProperties: true,
			},
		},
		{
			ID:          "application-outcome",
			Description: "Sent when a staff application is approved or rejected",
			Subject:     "Your staff application: {{.outcome}}",
			Body: "Dear {{.fullName}},\n\n" +
				"Your staff application {{.requestId}} has been {{.outcome}}.\n" +
				"{{if .feedback}}Feedback: {{.feedback}}\n{{end}}\n" +
				"Regards,\nGrievance Desk",
			Params: validation.JSONSchema{
				Type:     "object",
				Required: []string{"fullName", "requestId", "outcome"},
				Properties: map[string]validation.Property{
					"fullName":  {Type: "string", MinLength: validation.IntPtr(1)},
					"requestId": {Type: "string", MinLength: validation.IntPtr(1)},
					"outcome":   {Type: "string", Enum: []string{"approved", "rejected"}},
					"feedback":  {Type: "string"},
				},
				AdditionalProperties: true,
			},
		},
	}
}
