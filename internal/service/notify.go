package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/focusquest/focusquest/internal/model"
)

// NotifyService delivers the engine's side-channel signals (damage reports,
// level-ups) by email. In development it logs instead of sending.
type NotifyService struct {
	client    *resend.Client
	fromEmail string
	appName   string
	isDev     bool
}

func NewNotifyService(apiKey, fromEmail, appName string, isDev bool) *NotifyService {
	var client *resend.Client
	if apiKey != "" && !isDev {
		client = resend.NewClient(apiKey)
	}

	return &NotifyService{
		client:    client,
		fromEmail: fromEmail,
		appName:   appName,
		isDev:     isDev,
	}
}

func (s *NotifyService) SendDamageReport(email string, report *model.DamageReport) error {
	subject, body := damageReportEmailTemplate(report, s.appName)

	if s.isDev {
		slog.Info("email sent (dev mode)", "type", "damage_report", "to", email, "subject", subject, "xp_lost", report.XPLost)
		return nil
	}

	if s.client == nil {
		return fmt.Errorf("notify service not configured (missing RESEND_API_KEY)")
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{email},
		Subject: subject,
		Text:    body,
	}

	_, err := s.client.Emails.SendWithContext(context.Background(), params)
	if err == nil {
		slog.Info("email sent", "type", "damage_report", "to", email)
	}
	return err
}

func (s *NotifyService) SendLevelUp(email string, level int) error {
	subject, body := levelUpEmailTemplate(level, s.appName)

	if s.isDev {
		slog.Info("email sent (dev mode)", "type", "level_up", "to", email, "level", level)
		return nil
	}

	if s.client == nil {
		return fmt.Errorf("notify service not configured (missing RESEND_API_KEY)")
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{email},
		Subject: subject,
		Text:    body,
	}

	_, err := s.client.Emails.SendWithContext(context.Background(), params)
	if err == nil {
		slog.Info("email sent", "type", "level_up", "to", email)
	}
	return err
}

func damageReportEmailTemplate(report *model.DamageReport, appName string) (string, string) {
	subject := fmt.Sprintf("[%s] Your quests took damage", appName)

	var b strings.Builder
	fmt.Fprintf(&b, "You missed %d quest deadline(s) and lost %d XP:\n\n", len(report.Titles), report.XPLost)
	for _, title := range report.Titles {
		fmt.Fprintf(&b, "  - %s\n", title)
	}
	b.WriteString("\nBuy a shield in the store to protect your next missed deadline.\n")

	return subject, b.String()
}

func levelUpEmailTemplate(level int, appName string) (string, string) {
	subject := fmt.Sprintf("[%s] Level up!", appName)
	body := fmt.Sprintf("You reached level %d. Keep the streak going.\n", level)
	return subject, body
}
