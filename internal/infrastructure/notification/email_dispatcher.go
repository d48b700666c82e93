// Package notification delivers transactional emails to policy holders.
package notification

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"text/template"
	"time"

	"seguros_xpto/internal/usecase/interfaces"
	"seguros_xpto/pkg/requestctx"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

var (
	ErrEmailAPINotConfigured = errors.New("email api not configured")
	ErrInvalidRecipient      = errors.New("invalid recipient email")
	ErrTemplate              = errors.New("notification template error")
	ErrDeliveryFailed        = errors.New("email delivery failed")
)

const (
	sendPath       = "/v1/messages"
	requestTimeout = 10 * time.Second
	retryCount     = 2
)

type Options struct {
	APIURL   string
	APIKey   string
	From     string
	MockMode bool
}

type emailMessage struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

type emailAPIError struct {
	Message string `json:"message"`
}

// EmailDispatcher renders subject and body with text/template and posts them
// to the transactional email API. In mock mode the rendered message is only
// logged.
type EmailDispatcher struct {
	client   *resty.Client
	from     string
	mockMode bool
	logger   *zap.Logger
}

var _ interfaces.INotifier = (*EmailDispatcher)(nil)

func NewEmailDispatcher(opts Options, logger *zap.Logger) (*EmailDispatcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.MockMode {
		logger.Info("[notification][email] mock mode enabled")
		return &EmailDispatcher{from: opts.From, mockMode: true, logger: logger}, nil
	}
	if strings.TrimSpace(opts.APIURL) == "" {
		logger.Error("[notification][email] missing EMAIL_API_URL")
		return nil, ErrEmailAPINotConfigured
	}

	client := resty.New().
		SetBaseURL(opts.APIURL).
		SetTimeout(requestTimeout).
		SetRetryCount(retryCount).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= 500
		}).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if opts.APIKey != "" {
		client.SetAuthToken(opts.APIKey)
	}

	logger.Info("[notification][email] client initialized", zap.String("base_url", opts.APIURL))
	return &EmailDispatcher{client: client, from: opts.From, logger: logger}, nil
}

func (d *EmailDispatcher) Send(ctx context.Context, recipientEmail, subjectTemplate, bodyTemplate string, variables map[string]any) error {
	recipientEmail = strings.TrimSpace(recipientEmail)
	if _, err := mail.ParseAddress(recipientEmail); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidRecipient, recipientEmail)
	}

	vars := make(map[string]any, len(variables)+1)
	for k, v := range variables {
		vars[k] = v
	}
	if _, ok := vars["Brand"]; !ok {
		vars["Brand"] = requestctx.Brand(ctx)
	}

	subject, err := render("subject", subjectTemplate, vars)
	if err != nil {
		return err
	}
	body, err := render("body", bodyTemplate, vars)
	if err != nil {
		return err
	}
	msg := emailMessage{From: d.from, To: recipientEmail, Subject: subject, Text: body}

	if d.mockMode {
		d.logger.Info("[notification][email] mock send",
			zap.String("to", msg.To), zap.String("subject", msg.Subject), zap.Int("body_len", len(msg.Text)))
		return nil
	}
	if d.client == nil {
		return ErrEmailAPINotConfigured
	}

	var apiErr emailAPIError
	resp, err := d.client.R().
		SetContext(ctx).
		SetBody(msg).
		SetError(&apiErr).
		Post(sendPath)
	if err != nil {
		d.logger.Warn("[notification][email] request failed", zap.String("to", msg.To), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}
	if resp.IsError() {
		d.logger.Warn("[notification][email] api rejected message",
			zap.String("to", msg.To), zap.Int("status_code", resp.StatusCode()), zap.String("message", apiErr.Message))
		return fmt.Errorf("%w: status %d %s", ErrDeliveryFailed, resp.StatusCode(), apiErr.Message)
	}

	d.logger.Info("[notification][email] sent", zap.String("to", msg.To), zap.String("subject", msg.Subject))
	return nil
}

func render(name, text string, vars map[string]any) (string, error) {
	tmpl, err := template.New(name).Option("missingkey=zero").Parse(text)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTemplate, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		return "", fmt.Errorf("%w: %w", ErrTemplate, err)
	}
	return buf.String(), nil
}
