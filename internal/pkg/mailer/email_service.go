package mailer

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"
)

type OrderLine struct {
	Name     string
	Quantity int
	Options  []string
	Total    string
}

type OrderConfirmation struct {
	OrderNumber  string
	CustomerName string
	Lines        []OrderLine
	Total        string
	PickupDate   string
	PickupTime   string
	Address      string
}

type IEmailService interface {
	SendOrderConfirmation(toEmail string, order OrderConfirmation) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	orderInbox  string
}

// NewEmailService builds the SMTP mailer. orderInbox, when set, gets a BCC of
// every confirmation so the shop sees incoming orders.
func NewEmailService(host string, port int, username, password, senderEmail, orderInbox string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)
	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		orderInbox:  orderInbox,
	}
}

func (s *emailService) SendOrderConfirmation(toEmail string, order OrderConfirmation) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	if s.orderInbox != "" {
		m.SetHeader("Bcc", s.orderInbox)
	}
	m.SetHeader("Subject", fmt.Sprintf("Your ValetKleen Order %s", order.OrderNumber))

	var rows strings.Builder
	for _, line := range order.Lines {
		name := line.Name
		if len(line.Options) > 0 {
			name = fmt.Sprintf("%s (%s)", name, strings.Join(line.Options, ", "))
		}
		rows.WriteString(fmt.Sprintf(
			`<tr><td style="padding: 6px 12px;">%dx %s</td><td style="padding: 6px 12px; text-align: right;">%s</td></tr>`,
			line.Quantity, name, line.Total))
	}

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Thank you, %s!</h2>
			<p>Your order <strong>%s</strong> has been received.</p>
			<table style="border-collapse: collapse; width: 100%%;">%s</table>
			<h3 style="text-align: right;">Total: %s</h3>
			<p><strong>Pickup:</strong> %s, %s<br/>
			<strong>Address:</strong> %s</p>
			<p>We'll pick up your items at the scheduled time. Cleaning takes 24-48 hours and we deliver back to your door.</p>
		</div>
	`, order.CustomerName, order.OrderNumber, rows.String(), order.Total,
		order.PickupDate, order.PickupTime, order.Address)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send order confirmation to %s: %w", toEmail, err)
	}
	return nil
}
