package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/daymark-app/daymark/internal/model"
)

type EmailService struct {
	client    *resend.Client
	fromEmail string
	appName   string
	isDev     bool
}

func NewEmailService(apiKey, fromEmail, appName string, isDev bool) *EmailService {
	var client *resend.Client
	if apiKey != "" && !isDev {
		client = resend.NewClient(apiKey)
	}

	return &EmailService{
		client:    client,
		fromEmail: fromEmail,
		appName:   appName,
		isDev:     isDev,
	}
}

// SendReviewDigest mails the end-of-day summary after a review is completed.
func (s *EmailService) SendReviewDigest(email, date string, priorities []*model.Priority, review *model.DailyReview) error {
	subject, body := reviewDigestTemplate(s.appName, date, priorities, review)

	if s.isDev {
		slog.Info("email sent (dev mode)", "type", "review_digest", "to", email, "subject", subject)
		return nil
	}

	if s.client == nil {
		return fmt.Errorf("email service not configured (missing RESEND_API_KEY)")
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{email},
		Subject: subject,
		Text:    body,
	}

	_, err := s.client.Emails.SendWithContext(context.Background(), params)
	if err == nil {
		slog.Info("email sent", "type", "review_digest", "to", email)
	}
	return err
}

func reviewDigestTemplate(appName, date string, priorities []*model.Priority, review *model.DailyReview) (string, string) {
	subject := fmt.Sprintf("%s: your day in review (%s)", appName, date)

	var b strings.Builder
	fmt.Fprintf(&b, "Here's how %s went.\n\n", date)

	if len(priorities) > 0 {
		b.WriteString("Top priorities:\n")
		for _, p := range priorities {
			mark := "[ ]"
			if p.Completed {
				mark = "[x]"
			}
			fmt.Fprintf(&b, "  %s %s\n", mark, p.Title)
		}
		b.WriteString("\n")
	}

	if review.WentWell != "" {
		fmt.Fprintf(&b, "What went well:\n%s\n\n", review.WentWell)
	}
	if review.NeedsWork != "" {
		fmt.Fprintf(&b, "What needs work:\n%s\n\n", review.NeedsWork)
	}
	if review.TomorrowNote != "" {
		fmt.Fprintf(&b, "For tomorrow:\n%s\n\n", review.TomorrowNote)
	}

	fmt.Fprintf(&b, "- %s", appName)

	return subject, b.String()
}
