package service

import "fmt"

var (
	mailOtpPrefix = "mail-otp:%s" // <emailID>
	userPrefix    = "user:%s"     // <userID>
)

func MailOtpPrefix(emailID string) string {
	return fmt.Sprintf(mailOtpPrefix, emailID)
}

func UserPrefix(userID string) string {
	return fmt.Sprintf(userPrefix, userID)
}
