// Package render turns an assembled onboarding Document into the payloads the
// operator pastes into an email client.
//
// Email returns a templ component producing inline-styled HTML, suitable for
// the text/html clipboard slot and for the live preview. Text produces the
// plain-text fallback. NewPayload bundles both with a subject line.
//
// The clipboard itself is a Writer: the browser implements it for the copy
// button and package email implements it to deliver the draft to an inbox.
package render
