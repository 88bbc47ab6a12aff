package email

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/emrebktas/modpack-assistant/config"
	"github.com/emrebktas/modpack-assistant/internal/domain"
)

// NewSender picks the delivery backend from configuration. The rest of the
// application only ever sees the domain.EmailSender interface.
func NewSender(cfg *config.EmailConfig) (domain.EmailSender, error) {
	switch cfg.Provider {
	case "sendgrid":
		return NewSendGridSender(cfg), nil
	case "smtp":
		return NewSMTPSender(cfg), nil
	}
	return nil, fmt.Errorf("unknown email provider %q", cfg.Provider)
}

// Notifier sends the approval-flow emails. Every send runs on its own
// goroutine with a bounded timeout; failures are logged and swallowed so
// delivery problems never fail registration or resolution.
type Notifier struct {
	sender     domain.EmailSender
	baseURL    string
	adminEmail string
	timeout    time.Duration
	log        *zap.Logger
}

func NewNotifier(sender domain.EmailSender, baseURL, adminEmail string, timeout time.Duration, log *zap.Logger) *Notifier {
	return &Notifier{
		sender:     sender,
		baseURL:    baseURL,
		adminEmail: adminEmail,
		timeout:    timeout,
		log:        log,
	}
}

func (n *Notifier) NotifyAdmin(_ context.Context, username, userEmail, approvalToken string) {
	approveURL := fmt.Sprintf("%s/api/auth/approve-user?token=%s&action=approve", n.baseURL, url.QueryEscape(approvalToken))
	rejectURL := fmt.Sprintf("%s/api/auth/approve-user?token=%s&action=reject", n.baseURL, url.QueryEscape(approvalToken))

	mail := BuildAdminApprovalEmail(username, userEmail, approveURL, rejectURL)
	mail.To = n.adminEmail
	n.dispatch(mail)
}

func (n *Notifier) NotifyApplicant(_ context.Context, userEmail, username string, approved bool) {
	var mail Email
	if approved {
		mail = BuildApprovedEmail(username)
	} else {
		mail = BuildRejectedEmail(username)
	}
	mail.To = userEmail
	n.dispatch(mail)
}

// dispatch is fire-and-forget. The request context is deliberately not
// used: the email outlives the triggering request.
func (n *Notifier) dispatch(mail Email) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
		defer cancel()
		if err := n.sender.Send(ctx, mail.To, mail.Subject, mail.HTML); err != nil {
			n.log.Warn("email delivery failed",
				zap.String("to", mail.To),
				zap.String("subject", mail.Subject),
				zap.Error(err))
		}
	}()
}
