package mailer

import "errors"

var (
	// ErrSendFailed is returned when the SMTP server rejects the message
	ErrSendFailed = errors.New("mailer.client: failed to send email")

	// ErrBuildMessage is returned when the message cannot be composed
	ErrBuildMessage = errors.New("mailer.client: failed to build message")

	// ErrDisabled is returned when the mail gateway is switched off
	ErrDisabled = errors.New("mailer.client: mail delivery disabled")
)
