package domain

// Compose builds the outgoing email and the credentials to send it with. The
// credentials hold their own copy of the app password: zero them right after the
// send, independently of s.
func Compose(s *DecryptedSettings, subject, body string, attachments []Attachment) (Email, *Credentials) {
	email := Email{
		To:          s.recipients.Clone(),
		Cc:          s.ccRecipients.Clone(),
		Bcc:         s.bccRecipients.Clone(),
		Subject:     subject,
		Body:        body,
		ReplyTo:     cloneAccount(s.replyTo),
		Attachments: attachments,
	}
	return email, NewCredentials(s.smtpServer, s.sender, s.appPassword.Clone())
}
