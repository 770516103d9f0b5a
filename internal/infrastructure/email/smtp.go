package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"deskflow/internal/domain/ticket"
	"deskflow/internal/domain/user"
	"deskflow/internal/shared/logger"
	"deskflow/internal/shared/services/markdown"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // Base URL for ticket links (e.g., "http://localhost:8080")
}

// SMTPAssignmentNotifier emails assigned workers when an approval puts a
// ticket on their plate. The ticket description is authored as markdown, so
// it is rendered and sanitized before going into the HTML body.
type SMTPAssignmentNotifier struct {
	config   SMTPConfig
	dialer   *gomail.Dialer
	users    user.UserRepository
	renderer markdown.MarkdownService
	logger   logger.Interface
}

func NewSMTPAssignmentNotifier(config SMTPConfig, users user.UserRepository, log logger.Interface) *SMTPAssignmentNotifier {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPAssignmentNotifier{
		config:   config,
		dialer:   dialer,
		users:    users,
		renderer: markdown.NewMarkdownService(),
		logger:   log,
	}
}

func (n *SMTPAssignmentNotifier) NotifyAssignment(ctx context.Context, t *ticket.Ticket, workerIDs []uint) error {
	recipients, err := n.users.GetByIDs(ctx, workerIDs)
	if err != nil {
		return fmt.Errorf("failed to load assigned workers: %w", err)
	}
	if len(recipients) == 0 {
		return nil
	}

	descriptionHTML, err := n.renderer.ToHTMLSanitized(t.Description())
	if err != nil {
		n.logger.Warnw("failed to render ticket description, sending plain text only",
			"ticket_number", t.Number(), "error", err)
		descriptionHTML = ""
	}

	ticketURL := fmt.Sprintf("%s/tickets/%s", n.config.BaseURL, t.Number())
	subject := fmt.Sprintf("Work assigned: %s - %s", t.Number(), t.Title())

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>You have been assigned to ticket %s</h2>
			<p><strong>%s</strong></p>
			%s
			<p><a href="%s">Open the ticket</a></p>
		</body>
		</html>
	`, t.Number(), t.Title(), descriptionHTML, ticketURL)

	plainBody := fmt.Sprintf(`
You have been assigned to ticket %s

%s

%s

Open the ticket: %s
	`, t.Number(), t.Title(), t.Description(), ticketURL)

	for _, recipient := range recipients {
		if err := n.sendEmail(recipient.Email(), subject, htmlBody, plainBody); err != nil {
			return err
		}
	}

	return nil
}

func (n *SMTPAssignmentNotifier) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(n.config.FromAddress, n.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// NopAssignmentNotifier is used when email delivery is disabled.
type NopAssignmentNotifier struct{}

func (NopAssignmentNotifier) NotifyAssignment(ctx context.Context, t *ticket.Ticket, workerIDs []uint) error {
	return nil
}
