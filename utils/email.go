package utils

import (
	"fmt"
	"os"
	"strconv"

	"github.com/TrungLe-99/ShopViet/models"
	"gopkg.in/gomail.v2"
)

// SendEmail sends an HTML email through the configured SMTP relay
func SendEmail(to, subject, body string) error {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(os.Getenv("SMTP_HOST"), port, os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"))
	if err := d.DialAndSend(m); err != nil {
		return NewTransientError("failed to send email", err)
	}
	return nil
}

// SendOrderConfirmation emails the order summary after checkout. Failures
// are the caller's to log; placement never rolls back on email errors.
func SendOrderConfirmation(to string, order *models.Order) error {
	body := fmt.Sprintf(`
		<h2>Thank you for your order!</h2>
		<p>Order number: <strong>%s</strong></p>
		<table>
			<tr><td>Subtotal</td><td>%.0f VND</td></tr>
			<tr><td>Discount</td><td>-%.0f VND</td></tr>
			<tr><td>Shipping</td><td>%.0f VND</td></tr>
			<tr><td><strong>Total</strong></td><td><strong>%.0f VND</strong></td></tr>
		</table>
		<p>Shipping to: %s</p>`,
		order.OrderNumber, order.Subtotal, order.DiscountAmount, order.ShippingAmount,
		order.TotalAmount, order.ShippingAddress)

	subject := fmt.Sprintf("Order %s confirmed", order.OrderNumber)
	return RetryTransient(func() error {
		return SendEmail(to, subject, body)
	})
}
