// Package resend delivers frustration alerts by email through the Resend API.
package resend

import (
	"context"
	"errors"
	"fmt"
	"html"

	"github.com/resend/resend-go/v3"
	"go.uber.org/zap"

	"ux-metrics-service/internal/metrics/core/domain"
)

// EmailSender is the part of the Resend client the notifier needs.
type EmailSender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

type Notifier struct {
	emails EmailSender
	from   string
	to     []string
	logger *zap.Logger
}

func NewNotifier(apiKey, from string, to []string, logger *zap.Logger) *Notifier {
	return NewNotifierWithSender(resend.NewClient(apiKey).Emails, from, to, logger)
}

func NewNotifierWithSender(emails EmailSender, from string, to []string, logger *zap.Logger) *Notifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Notifier{emails: emails, from: from, to: to, logger: logger}
}

func (n *Notifier) NotifyHighFrustration(ctx context.Context, a domain.FrustrationAlert) error {
	if len(n.to) == 0 {
		return errors.New("no alert recipients configured")
	}

	resp, err := n.emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    n.from,
		To:      n.to,
		Subject: Subject(a),
		Html:    body(a),
	})
	if err != nil {
		return fmt.Errorf("failed to send frustration alert email: %w", err)
	}

	if resp != nil {
		n.logger.Debug("frustration alert email accepted", zap.String("email_id", resp.Id))
	}
	return nil
}

func Subject(a domain.FrustrationAlert) string {
	return fmt.Sprintf("High frustration: %s %.1f%% (threshold %.1f%%)", a.MetricName, a.Percentage, a.Threshold)
}

func body(a domain.FrustrationAlert) string {
	f := a.Frustration
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family:Arial,Helvetica,sans-serif;">
  <h2>High frustration detected</h2>
  <p>%s (%s) over %s</p>
  <table cellpadding="4">
    <tr><td>Sessions</td><td>%d</td></tr>
    <tr><td>Dead clicks</td><td>%d</td></tr>
    <tr><td>Rage clicks</td><td>%d</td></tr>
    <tr><td>Quick backs</td><td>%d</td></tr>
    <tr><td>Signals per 100 sessions</td><td>%.2f</td></tr>
    <tr><td>Threshold</td><td>%.2f</td></tr>
  </table>
</body>
</html>`,
		html.EscapeString(a.MetricName), html.EscapeString(string(a.Scope)), html.EscapeString(a.Range.String()),
		a.Sessions, f.DeadClicks, f.RageClicks, f.QuickBacks, a.Percentage, a.Threshold)
}

// LogNotifier stands in for email when alerts are disabled.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) NotifyHighFrustration(ctx context.Context, a domain.FrustrationAlert) error {
	n.logger.Warn("high frustration detected (email alerts disabled)",
		zap.String("metric_name", a.MetricName),
		zap.String("range", a.Range.String()),
		zap.Int64("sessions", a.Sessions),
		zap.Int64("signals", a.Frustration.Total),
		zap.Float64("percentage", a.Percentage),
		zap.Float64("threshold", a.Threshold),
	)
	return nil
}
