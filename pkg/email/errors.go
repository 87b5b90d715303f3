package email

import "errors"

var (
	ErrFailedToSendEmail = errors.New("failed to send email")
	ErrInvalidConfig     = errors.New("invalid email configuration")
	ErrInvalidParams     = errors.New("invalid email parameters")
	ErrDisabled          = errors.New("email delivery is disabled")
)
