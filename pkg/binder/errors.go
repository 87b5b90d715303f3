package binder

import "errors"

var (
	// ErrNotApplicable tells the caller to try the next binder.
	ErrNotApplicable = errors.New("binder not applicable to request")

	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON request body")
	ErrFailedToParseQuery   = errors.New("failed to parse query parameters")
	ErrFailedToParseSignals = errors.New("failed to parse datastar signals")
)
