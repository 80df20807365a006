package utils

import "gopkg.in/gomail.v2"

func SendEmail(message *gomail.Message, sender string, password string, smtpServer string, smtpPort int) error {
	d := gomail.NewDialer(smtpServer, smtpPort, sender, password)

	return d.DialAndSend(message)
}
