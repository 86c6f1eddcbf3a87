package contact

import (
	"context"
	"crypto/tls"
	"fmt"
	"html"
	"net/smtp"
	"strings"
	"time"

	stderrors "errors"

	"valuemed-backend/internal/common/errors"
	"valuemed-backend/internal/common/logger"
	"valuemed-backend/internal/common/metrics"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	sestypes "github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// Transport delivers one rendered email. Exactly one attempt per
// submission; retry is the visitor's resubmit.
type Transport interface {
	Name() string
	Send(ctx context.Context, email OutboundEmail) (messageID string, err error)
}

type SESAPI interface {
	SendEmail(ctx context.Context, input *ses.SendEmailInput) (*ses.SendEmailOutput, error)
}

type SNSAPI interface {
	Publish(ctx context.Context, input *sns.PublishInput) (*sns.PublishOutput, error)
}

type Service struct {
	config    *Config
	logger    logger.Logger
	transport Transport
	sns       SNSAPI
}

func NewService(deps ServiceDependencies, config *Config, transport Transport, snsClient SNSAPI) *Service {
	return &Service{
		config:    config,
		logger:    deps.Logger,
		transport: transport,
		sns:       snsClient,
	}
}

func (s *Service) Execute(ctx context.Context, input *Input) (*Output, error) {
	s.logger.Info("Relaying contact submission", map[string]interface{}{
		"email":       input.Email,
		"projectType": input.ProjectType,
		"provider":    s.transport.Name(),
	})

	email := BuildEmail(input, s.config.RecipientEmail)

	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	start := time.Now()
	messageID, err := s.transport.Send(ctx, email)
	metrics.ContactRelayDuration.WithLabelValues(s.transport.Name()).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.ContactSubmissionsTotal.WithLabelValues("failed").Inc()
		s.logger.Error("Contact relay failed", map[string]interface{}{
			"error":    err.Error(),
			"provider": s.transport.Name(),
		})
		if stderrors.Is(err, context.DeadlineExceeded) {
			return nil, errors.NewTransportTimeoutError(err)
		}
		return nil, errors.NewEmailSendFailedError(err)
	}

	metrics.ContactSubmissionsTotal.WithLabelValues("sent").Inc()
	s.logger.Info("Contact submission relayed", map[string]interface{}{
		"messageId": messageID,
		"provider":  s.transport.Name(),
	})

	s.sendLeadAlert(ctx, input)

	return &Output{
		Success:   true,
		Message:   "Message sent successfully!",
		MessageID: messageID,
		Provider:  s.transport.Name(),
		SentAt:    time.Now().UTC(),
	}, nil
}

// sendLeadAlert pings the on-call number about a new lead. Delivery is
// best effort; a failure never fails the submission.
func (s *Service) sendLeadAlert(ctx context.Context, input *Input) {
	if !s.config.LeadAlertEnabled || s.sns == nil {
		return
	}

	projectType := input.ProjectType
	if projectType == "" {
		projectType = "General Inquiry"
	}
	message := fmt.Sprintf("New lead: %s (%s) - %s", input.Name, input.Email, projectType)

	_, err := s.sns.Publish(ctx, &sns.PublishInput{
		PhoneNumber: awssdk.String(s.config.LeadAlertPhone),
		Message:     awssdk.String(message),
	})
	if err != nil {
		s.logger.Warn("Lead alert SMS failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// BuildEmail renders the submission into the notification sent to the
// business inbox.
func BuildEmail(input *Input, recipient string) OutboundEmail {
	projectType := input.ProjectType
	if projectType == "" {
		projectType = "General Inquiry"
	}

	return OutboundEmail{
		From:    fmt.Sprintf("%q <%s>", input.Name, input.Email),
		ReplyTo: input.Email,
		To:      recipient,
		Subject: "New Contact Form Submission: " + projectType,
		HTML:    renderHTML(input),
	}
}

func renderHTML(input *Input) string {
	phone := input.Phone
	if phone == "" {
		phone = "Not provided"
	}
	projectType := input.ProjectType
	if projectType == "" {
		projectType = "Not specified"
	}
	message := strings.ReplaceAll(html.EscapeString(input.Message), "\n", "<br>")

	var b strings.Builder
	b.WriteString("<h2>New Contact Form Submission</h2>\n")
	fmt.Fprintf(&b, "<p><strong>Name:</strong> %s</p>\n", html.EscapeString(input.Name))
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>\n", html.EscapeString(input.Email))
	fmt.Fprintf(&b, "<p><strong>Phone:</strong> %s</p>\n", html.EscapeString(phone))
	fmt.Fprintf(&b, "<p><strong>Project Type:</strong> %s</p>\n", html.EscapeString(projectType))
	b.WriteString("<h3>Message:</h3>\n")
	fmt.Fprintf(&b, "<p>%s</p>\n", message)
	b.WriteString("<hr>\n")
	b.WriteString("<p>This message was sent from the contact form on valuemedhealthcare.com</p>")
	return b.String()
}

// ====================
// SMTP transport
// ====================

type SMTPTransport struct {
	config *Config
}

func NewSMTPTransport(config *Config) *SMTPTransport {
	return &SMTPTransport{config: config}
}

func (t *SMTPTransport) Name() string { return "smtp" }

func (t *SMTPTransport) Send(ctx context.Context, email OutboundEmail) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("context cancelled before sending email: %w", err)
	}

	message := t.buildMessage(email)
	addr := fmt.Sprintf("%s:%d", t.config.SMTPHost, t.config.SMTPPort)

	var auth smtp.Auth
	if t.config.SMTPUsername != "" && t.config.SMTPPassword != "" {
		auth = smtp.PlainAuth("", t.config.SMTPUsername, t.config.SMTPPassword, t.config.SMTPHost)
	}

	var err error
	if t.config.UseTLS {
		err = t.sendWithTLS(addr, auth, email.ReplyTo, []string{email.To}, []byte(message))
	} else {
		err = smtp.SendMail(addr, auth, email.ReplyTo, []string{email.To}, []byte(message))
	}
	if err != nil {
		return "", err
	}

	return t.generateMessageID(email.To), nil
}

func (t *SMTPTransport) buildMessage(email OutboundEmail) string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("From: %s\r\n", email.From))
	builder.WriteString(fmt.Sprintf("To: %s\r\n", email.To))
	if email.ReplyTo != "" {
		builder.WriteString(fmt.Sprintf("Reply-To: %s\r\n", email.ReplyTo))
	}
	builder.WriteString(fmt.Sprintf("Subject: %s\r\n", email.Subject))
	builder.WriteString("MIME-Version: 1.0\r\n")
	builder.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	builder.WriteString("\r\n")
	builder.WriteString(email.HTML)

	return builder.String()
}

func (t *SMTPTransport) sendWithTLS(addr string, auth smtp.Auth, from string, to []string, msg []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer client.Close()

	tlsConfig := &tls.Config{
		ServerName:         t.config.SMTPHost,
		InsecureSkipVerify: false,
	}
	if err = client.StartTLS(tlsConfig); err != nil {
		return fmt.Errorf("failed to start TLS: %w", err)
	}

	if auth != nil {
		if err = client.Auth(auth); err != nil {
			return fmt.Errorf("SMTP authentication failed: %w", err)
		}
	}

	if err = client.Mail(from); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	for _, addr := range to {
		if err = client.Rcpt(addr); err != nil {
			return fmt.Errorf("failed to set recipient %s: %w", addr, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to open data writer: %w", err)
	}
	if _, err = w.Write(msg); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	return client.Quit()
}

func (t *SMTPTransport) generateMessageID(to string) string {
	timestamp := time.Now().UnixNano()
	return fmt.Sprintf("<%d.%s@%s>", timestamp, sanitizeEmail(to), t.config.SMTPHost)
}

func sanitizeEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) > 0 {
		local := strings.Map(func(r rune) rune {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
				return r
			}
			return -1
		}, parts[0])

		if len(local) > 10 {
			local = local[:10]
		}
		return local
	}
	return "user"
}

// ====================
// SES transport
// ====================

type SESTransport struct {
	client SESAPI
	config *Config
}

// NewSESTransport sends through Amazon SES. The Source must be a
// verified identity, so the visitor's address goes in Reply-To instead.
func NewSESTransport(client SESAPI, config *Config) *SESTransport {
	return &SESTransport{client: client, config: config}
}

func (t *SESTransport) Name() string { return "ses" }

func (t *SESTransport) Send(ctx context.Context, email OutboundEmail) (string, error) {
	out, err := t.client.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &sestypes.Destination{
			ToAddresses: []string{email.To},
		},
		Message: &sestypes.Message{
			Subject: &sestypes.Content{Data: awssdk.String(email.Subject)},
			Body: &sestypes.Body{
				Html: &sestypes.Content{Data: awssdk.String(email.HTML)},
			},
		},
		Source:           awssdk.String(t.config.SESFromEmail),
		ReplyToAddresses: []string{email.ReplyTo},
	})
	if err != nil {
		return "", err
	}
	if out.MessageId != nil {
		return *out.MessageId, nil
	}
	return "", nil
}
