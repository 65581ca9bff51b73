// Package email renders notification templates and hands them to a delivery
// provider.
package email

import (
	"bytes"
	"context"
	"text/template"

	stderrors "grievance-desk/internal/common/errors"
	"grievance-desk/internal/common/logger"
	"grievance-desk/internal/common/metrics"
	"grievance-desk/internal/common/validation"
	"grievance-desk/pkg/templates"
)

// Message is a rendered, not-yet-sent email.
type Message struct {
	TemplateID string
	Subject    string
	Body       string
}

// Service renders registry templates and sends them.
type Service struct {
	sender Sender
	from   string
	logger logger.Logger
}

func NewService(sender Sender, from string, log logger.Logger) *Service {
	return &Service{
		sender: sender,
		from:   from,
		logger: log.WithFields(map[string]interface{}{"component": "email"}),
	}
}

// Render validates the parameters against the template's schema and renders
// subject and body. Rendering is pure given the parameters.
func Render(templateID string, params map[string]interface{}) (*Message, error) {
	tmpl, ok := templates.Lookup(templateID)
	if !ok {
		return nil, stderrors.NewTemplateNotFoundError(templateID)
	}

	if result := validation.ValidateInput(params, tmpl.Params); !result.Valid {
		missing := make([]string, 0, len(result.Errors))
		for _, ve := range result.Errors {
			missing = append(missing, ve.Field)
		}
		return nil, stderrors.NewTemplateParamsMissingError(templateID, missing)
	}

	subject, err := renderOne(templateID+":subject", tmpl.Subject, params)
	if err != nil {
		return nil, err
	}
	body, err := renderOne(templateID+":body", tmpl.Body, params)
	if err != nil {
		return nil, err
	}

	return &Message{TemplateID: templateID, Subject: subject, Body: body}, nil
}

func renderOne(name, src string, params map[string]interface{}) (string, error) {
	t, err := template.New(name).Option("missingkey=zero").Parse(src)
	if err != nil {
		return "", stderrors.NewEmailSendFailedError(err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, params); err != nil {
		return "", stderrors.NewEmailSendFailedError(err)
	}
	return buf.String(), nil
}

// Send renders the template and delivers it to one recipient.
func (s *Service) Send(ctx context.Context, to, templateID string, params map[string]interface{}) (string, error) {
	msg, err := Render(templateID, params)
	if err != nil {
		metrics.EmailsSent.WithLabelValues(templateID, "render_error").Inc()
		return "", err
	}

	messageID, err := s.sender.Send(ctx, s.from, to, msg.Subject, msg.Body)
	if err != nil {
		metrics.EmailsSent.WithLabelValues(templateID, "failure").Inc()
		s.logger.Error("email delivery failed", map[string]interface{}{
			"template": templateID,
			"to":       to,
			"error":    err.Error(),
		})
		return "", stderrors.NewEmailSendFailedError(err)
	}

	metrics.EmailsSent.WithLabelValues(templateID, "success").Inc()
	s.logger.Info("email sent", map[string]interface{}{
		"template":  templateID,
		"to":        to,
		"messageId": messageID,
	})
	return messageID, nil
}
