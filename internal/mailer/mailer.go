package mailer

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"
)

type Sender interface {
	SendOTP(emailID string, otp int) error
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (m *SMTPMailer) SendOTP(emailID string, otp int) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", emailID)
	msg.SetHeader("Subject", "Your verification code")
	msg.SetBody("text/html", fmt.Sprintf("<p>Your verification code is <b>%d</b>. It expires in 15 minutes.</p>", otp))

	return m.dialer.DialAndSend(msg)
}
