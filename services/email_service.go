package services

import (
	"bnc-store/models"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService() (*EmailService, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = smtpUser
	}

	return &EmailService{
		dialer: gomail.NewDialer(smtpHost, port, smtpUser, smtpPass),
		from:   from,
	}, nil
}

func (s *EmailService) SendOrderPlaced(order *models.Order) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.from, "Bharath National Computers"))
	m.SetHeader("To", order.Email)
	m.SetHeader("Reply-To", s.from)
	m.SetHeader("Subject", fmt.Sprintf("We received your Order Enquiry – #%d", order.ID))

	var itemRows strings.Builder
	for _, item := range order.Items {
		itemRows.WriteString(fmt.Sprintf(`
			<tr>
				<td style="padding: 8px; border-bottom: 1px solid #eee;">%s</td>
				<td style="padding: 8px; border-bottom: 1px solid #eee; text-align: center;">%d</td>
				<td style="padding: 8px; border-bottom: 1px solid #eee; text-align: right;">%s</td>
				<td style="padding: 8px; border-bottom: 1px solid #eee; text-align: right;">%s</td>
			</tr>`,
			htmlEscape(item.ProductName), item.Quantity,
			formatINR(item.UnitPrice), formatINR(item.UnitPrice*float64(item.Quantity))))
	}

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
        .header { text-align: center; margin-bottom: 30px; }
        .logo { font-size: 24px; font-weight: bold; color: #1d4ed8; }
        .order-box { background-color: #eff6ff; padding: 20px; margin: 20px 0; border-radius: 8px; }
        .items { width: 100%%; border-collapse: collapse; margin: 20px 0; }
        .items th { text-align: left; padding: 8px; border-bottom: 2px solid #1d4ed8; }
        .total { font-size: 18px; font-weight: bold; color: #1d4ed8; text-align: right; }
        .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <div class="logo">Bharath National Computers</div>
        </div>
        <h2 style="color: #333;">Order Enquiry Received</h2>
        <p>Hello %s,</p>
        <p>Thank you for your order enquiry. Our team will contact you shortly to confirm availability and delivery.</p>

        <div class="order-box">
            <p><strong>Enquiry Number:</strong> #%d</p>
            <p><strong>Delivery Place:</strong> %s</p>
            <p><strong>Phone:</strong> %s</p>
        </div>

        <table class="items">
            <tr><th>Product</th><th style="text-align: center;">Qty</th><th style="text-align: right;">Unit Price</th><th style="text-align: right;">Amount</th></tr>
            %s
        </table>

        <p class="total">Total: %s</p>

        <div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #eee;">
            <p style="color: #666; font-size: 14px;">Thank you for choosing us!<br>Bharath National Computers Team</p>
        </div>

        <div class="footer">
            <p>This is an automated email. Please do not reply.</p>
        </div>
    </div>
</body>
</html>
	`, htmlEscape(order.FullName), order.ID, htmlEscape(order.Place), htmlEscape(order.Phone),
		itemRows.String(), formatINR(order.TotalAmount))

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send order enquiry email: %w", err)
	}
	return nil
}

func (s *EmailService) SendContactAck(contact *models.Contact) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.from, "Bharath National Computers"))
	m.SetHeader("To", contact.Email)
	m.SetHeader("Reply-To", s.from)
	m.SetHeader("Subject", "We received your enquiry – Bharath National Computers")

	interest := ""
	if contact.InterestedIn != nil && *contact.InterestedIn != "" {
		interest = fmt.Sprintf(`<p><strong>Interested In:</strong> %s</p>`, htmlEscape(*contact.InterestedIn))
	}

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
        .logo { font-size: 24px; font-weight: bold; color: #1d4ed8; text-align: center; }
        .box { background-color: #eff6ff; padding: 20px; margin: 20px 0; border-radius: 8px; }
        .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="logo">Bharath National Computers</div>
        <h2 style="color: #333;">Enquiry Received</h2>
        <p>Hello %s,</p>
        <p>We have received your enquiry and will get back to you as soon as possible.</p>
        <div class="box">
            <p><strong>Phone:</strong> %s</p>
            %s
        </div>
        <div class="footer">
            <p>This is an automated email. Please do not reply.</p>
        </div>
    </div>
</body>
</html>
	`, htmlEscape(contact.Name), htmlEscape(contact.Phone), interest)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send acknowledgement email: %w", err)
	}
	return nil
}

func htmlEscape(v string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	return r.Replace(v)
}

func formatINR(amount float64) string {
	str := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(str, ".", 2)
	intPart := parts[0]

	n := len(intPart)
	if n <= 3 {
		return "₹" + str
	}

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (n-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}
	return "₹" + grouped.String() + "." + parts[1]
}
