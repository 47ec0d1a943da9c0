package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/finance-tracker/smartfinance/internal/application/adapter"
	"github.com/finance-tracker/smartfinance/internal/domain/entity"
	domainerror "github.com/finance-tracker/smartfinance/internal/domain/error"
	"github.com/finance-tracker/smartfinance/internal/integration/email/templates"
)

// AlertToggle reports whether budget alerts should be delivered.
type AlertToggle interface {
	BudgetAlertsEnabled() bool
}

// BudgetAlertNotifier implements adapter.BudgetAlertSender by email.
type BudgetAlertNotifier struct {
	sender   adapter.EmailSender
	renderer *templates.Renderer
	to       string
	toggle   AlertToggle

	// suspended is set once the sender rejects a message permanently.
	suspended atomic.Bool
}

var _ adapter.BudgetAlertSender = (*BudgetAlertNotifier)(nil)

// NewBudgetAlertNotifier creates a notifier sending to the address to.
// toggle may be nil.
func NewBudgetAlertNotifier(sender adapter.EmailSender, renderer *templates.Renderer, to string, toggle AlertToggle) *BudgetAlertNotifier {
	return &BudgetAlertNotifier{
		sender:   sender,
		renderer: renderer,
		to:       to,
		toggle:   toggle,
	}
}

// SendBudgetAlert renders and sends one alert. Alerts are skipped when no
// recipient is configured, budget alerts are switched off or an earlier
// message was rejected permanently.
func (n *BudgetAlertNotifier) SendBudgetAlert(ctx context.Context, alert adapter.BudgetAlert) error {
	if n.to == "" || (n.toggle != nil && !n.toggle.BudgetAlertsEnabled()) || n.suspended.Load() {
		slog.Debug("Budget alert skipped", "budget_id", alert.Budget.ID)
		return nil
	}

	data := alertData(alert)
	html, text, err := n.renderer.Render(templates.TemplateBudgetAlert, data)
	if err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeTemplateRenderFailed,
			"failed to render budget alert",
			err,
		)
	}

	result, err := n.sender.Send(ctx, adapter.SendEmailInput{
		To:      n.to,
		Subject: data.Subject,
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		var emailErr *domainerror.EmailError
		if errors.As(err, &emailErr) && emailErr.IsPermanent() {
			n.suspended.Store(true)
			slog.Error("Budget alerts suspended after permanent email failure", "to", n.to, "error", err)
		}
		return err
	}

	slog.Info("Budget alert sent",
		"budget_id", alert.Budget.ID,
		"status", alert.Budget.Status,
		"resend_id", result.ResendID,
	)
	return nil
}

func alertData(alert adapter.BudgetAlert) templates.BudgetAlertData {
	b := alert.Budget
	exceeded := b.Status == entity.BudgetStatusExceeded

	label := "Budget warning"
	if exceeded {
		label = "Budget exceeded"
	}
	percentage := fmt.Sprintf("%.0f", alert.Percentage)

	return templates.BudgetAlertData{
		Subject:    fmt.Sprintf("%s: %s (%s%%)", label, b.Name, percentage),
		BudgetName: b.Name,
		Category:   titleCase(string(b.Category)),
		Period:     string(b.Period),
		Spent:      b.Spent.StringFixed(2),
		Amount:     b.Amount.StringFixed(2),
		Remaining:  b.Amount.Sub(b.Spent).StringFixed(2),
		Overspent:  b.Spent.Sub(b.Amount).StringFixed(2),
		Percentage: percentage,
		EndDate:    b.EndDate.Format("Jan 2, 2006"),
		Exceeded:   exceeded,
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
