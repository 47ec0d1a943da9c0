// Package email delivers budget alert emails via Resend.
package email

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/resend/resend-go/v2"

	"github.com/finance-tracker/smartfinance/internal/application/adapter"
	domainerror "github.com/finance-tracker/smartfinance/internal/domain/error"
)

// rejectionMarkers identify Resend answers that will fail again for the same
// key and recipient: bad credentials, unverified sender or invalid payload.
var rejectionMarkers = []string{"401", "403", "422", "unauthorized", "forbidden", "validation", "invalid"}

// ResendClient sends alert emails through the Resend API.
type ResendClient struct {
	client *resend.Client
	from   string
}

var _ adapter.EmailSender = (*ResendClient)(nil)

// NewResendClient creates a client sending as "fromName <fromEmail>".
func NewResendClient(apiKey, fromName, fromEmail string) *ResendClient {
	return &ResendClient{
		client: resend.NewClient(apiKey),
		from:   fmt.Sprintf("%s <%s>", fromName, fromEmail),
	}
}

// Send delivers one message. Failures are returned as *domainerror.EmailError,
// permanent when Resend rejected the request itself.
func (c *ResendClient) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	resp, err := c.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{input.To},
		Subject: input.Subject,
		Html:    input.HTML,
		Text:    input.Text,
	})
	if err != nil {
		return nil, classifySendError(err)
	}

	return &adapter.SendEmailResult{ResendID: resp.Id}, nil
}

func classifySendError(err error) *domainerror.EmailError {
	msg := strings.ToLower(err.Error())
	for _, marker := range rejectionMarkers {
		if strings.Contains(msg, marker) {
			return domainerror.NewEmailError(domainerror.ErrCodePermanentEmailFailure, "email rejected by resend", err)
		}
	}
	return domainerror.NewEmailError(domainerror.ErrCodeTemporaryEmailFailure, "email delivery failed", err)
}

// MockEmailSender records messages instead of sending them. It backs the
// notifier and API tests.
type MockEmailSender struct {
	mu        sync.Mutex
	sent      []adapter.SendEmailInput
	failWith  error
	permanent bool
}

var _ adapter.EmailSender = (*MockEmailSender)(nil)

// NewMockEmailSender creates an empty mock sender.
func NewMockEmailSender() *MockEmailSender {
	return &MockEmailSender{}
}

// Send records input, or fails when SetFailure was called.
func (m *MockEmailSender) Send(_ context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWith != nil {
		code := domainerror.ErrCodeTemporaryEmailFailure
		if m.permanent {
			code = domainerror.ErrCodePermanentEmailFailure
		}
		return nil, domainerror.NewEmailError(code, "mock send failure", m.failWith)
	}

	m.sent = append(m.sent, input)
	return &adapter.SendEmailResult{ResendID: fmt.Sprintf("mock-%d", len(m.sent))}, nil
}

// SetFailure makes every following Send fail with err.
func (m *MockEmailSender) SetFailure(err error, permanent bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.failWith = err
	m.permanent = permanent
}

// Sent returns a copy of the messages recorded so far.
func (m *MockEmailSender) Sent() []adapter.SendEmailInput {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]adapter.SendEmailInput{}, m.sent...)
}

// Reset forgets recorded messages and any configured failure.
func (m *MockEmailSender) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sent = nil
	m.failWith = nil
	m.permanent = false
}
