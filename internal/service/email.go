package service

import (
	"context"
	"fmt"
	"html"
	"net/http"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"estatespace-backend/internal/logger"
)

const sendGridMailPath = "/v3/mail/send"

// Message is a single transactional email. An empty From uses the mailer's sender.
type Message struct {
	From     string
	FromName string
	To       string
	Subject  string
	Text     string
	HTML     string
}

// InvitationMessage is the email telling an invitee how to join a space.
func InvitationMessage(email, link string) *Message {
	return &Message{
		To:      email,
		Subject: "You are invited to a Space on EstateSpace",
		Text: fmt.Sprintf("You have been invited to a Space.\n\n"+
			"Sign in with %s and open the link:\n%s\n", email, link),
		HTML: fmt.Sprintf(`<p>You have been invited to a Space.</p>`+
			`<p>Sign in with <strong>%s</strong> and open the link:</p>`+
			`<p><a href="%s">%s</a></p>`,
			html.EscapeString(email), html.EscapeString(link), html.EscapeString(link)),
	}
}

// TestMessage is the fixed probe sent by the mail test endpoint.
func TestMessage(to string) *Message {
	return &Message{
		To:      to,
		Subject: "EstateSpace mail test",
		Text:    "If you received this message, email delivery from the backend works.",
		HTML:    "<p>If you received this message, email delivery from the backend works.</p>",
	}
}

type sendGridMailer struct {
	apiKey    string
	host      string
	fromEmail string
	fromName  string
	client    *rest.Client
}

// NewSendGridMailer sends through the SendGrid v3 API. An empty host targets
// api.sendgrid.com; a nil httpClient uses http.DefaultClient.
func NewSendGridMailer(apiKey, fromEmail, fromName, host string, httpClient *http.Client) Mailer {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &sendGridMailer{
		apiKey:    apiKey,
		host:      host,
		fromEmail: fromEmail,
		fromName:  fromName,
		client:    &rest.Client{HTTPClient: httpClient},
	}
}

func (s *sendGridMailer) Send(ctx context.Context, msg *Message) error {
	fromEmail, fromName := s.fromEmail, s.fromName
	if msg.From != "" {
		fromEmail, fromName = msg.From, msg.FromName
	}

	message := mail.NewSingleEmail(
		mail.NewEmail(fromName, fromEmail),
		msg.Subject,
		mail.NewEmail("", msg.To),
		msg.Text,
		msg.HTML,
	)

	request := sendgrid.GetRequest(s.apiKey, sendGridMailPath, s.host)
	request.Method = rest.Post
	request.Body = mail.GetRequestBody(message)

	logger.ExternalServiceCall("sendgrid", "send", "to", msg.To)
	response, err := s.client.SendWithContext(ctx, request)
	if err != nil {
		err = fmt.Errorf("failed to send email: %w", err)
		logger.ExternalServiceResult("sendgrid", "send", err, "to", msg.To)
		return err
	}
	if response.StatusCode >= 400 {
		err = fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
		logger.ExternalServiceResult("sendgrid", "send", err, "to", msg.To)
		return err
	}

	logger.ExternalServiceResult("sendgrid", "send", nil, "to", msg.To, "status", response.StatusCode)
	return nil
}

type logMailer struct {
	fromEmail string
}

// NewLogMailer writes messages to the log instead of sending them. For local development.
func NewLogMailer(fromEmail string) Mailer {
	return &logMailer{fromEmail: fromEmail}
}

func (s *logMailer) Send(ctx context.Context, msg *Message) error {
	from := msg.From
	if from == "" {
		from = s.fromEmail
	}
	logger.InfoContext(ctx, "Email not delivered (log mail provider)",
		"from", from,
		"to", msg.To,
		"subject", msg.Subject,
		"body", msg.Text,
	)
	return nil
}
