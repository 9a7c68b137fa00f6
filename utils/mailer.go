package utils

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"
)

// Mailer sends transactional mail best-effort. A nil Mailer is a no-op, so
// callers never have to branch on whether SMTP is configured.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	log    *zap.Logger
}

func NewMailer(host string, port int, user, pass, from string, log *zap.Logger) *Mailer {
	if host == "" {
		return nil
	}
	return &Mailer{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   from,
		log:    log,
	}
}

func (m *Mailer) send(to, subject, body string) {
	if m == nil {
		return
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.log.Warn("failed to send email", zap.String("to", to), zap.String("subject", subject), zap.Error(err))
	}
}

func (m *Mailer) SendWelcome(to, fullName string) {
	m.send(to, "Welcome to BookNest",
		fmt.Sprintf("Hi %s,\n\nYour BookNest account is ready. Happy reading!\n", fullName))
}

func (m *Mailer) SendOrderConfirmation(to string, orderID uint, total decimal.Decimal) {
	m.send(to, fmt.Sprintf("Order #%d confirmed", orderID),
		fmt.Sprintf("Thank you for your order!\n\nOrder number: %d\nTotal: %s\n\nWe will let you know once it ships.\n",
			orderID, total.StringFixed(2)))
}
