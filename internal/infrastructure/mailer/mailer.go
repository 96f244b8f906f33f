package mailer

import (
	"fmt"

	"github.com/nourishnet/ordering-service/config"
	"gopkg.in/gomail.v2"
)

type Mailer struct {
	config *config.Config
}

func CreateMailer(config *config.Config) *Mailer {
	return &Mailer{config: config}
}

// SendPaymentReceipt emails the payer once a payment has been reconciled as
// completed. Best effort; callers log and move on when it fails.
func (m *Mailer) SendPaymentReceipt(recipient string, orderID int64, amount float64, receiptNumber string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.config.SMTPConfig.Sender)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", fmt.Sprintf("Payment received for order #%d", orderID))
	msg.SetBody("text/plain", fmt.Sprintf(
		"We have received your payment of KES %.2f for order #%d.\nM-Pesa receipt number: %s\n",
		amount, orderID, receiptNumber,
	))

	d := gomail.NewDialer(m.config.SMTPConfig.Host, m.config.SMTPConfig.Port, m.config.SMTPConfig.Sender, m.config.SMTPConfig.Password)

	return d.DialAndSend(msg)
}
