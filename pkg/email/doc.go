// Package email delivers onboarding drafts to an operator inbox.
//
// New selects a sender from Config.Provider:
//
//	postmark  Postmark transactional API
//	smtp      any SMTP relay
//	dev       writes .html, .txt and .json files to Config.DevDir
//	disabled  rejects every send with ErrDisabled (default)
//
// Sink adapts an EmailSender to the render.Writer boundary so a rendered
// Payload can be sent to the configured recipient the same way it is copied
// to the clipboard in the browser.
package email
