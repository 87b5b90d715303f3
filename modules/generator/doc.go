// Package generator is the web shell of the onboarding email generator.
//
// It serves a single page with the selection form and a live preview. The
// form state lives in DataStar signals in the browser; every change issues a
// GET /preview that re-renders the email and patches the canCopy signal. The
// Copy button places the preview on the clipboard as rich text. When an
// email sink is configured, POST /send delivers the same payload to the
// operator inbox.
//
//	svc := generator.NewService(cfg, views.Default(), log, errorHandler,
//		generator.WithSink(email.NewSink(sender, recipient, log)),
//	)
//	r.Mount("/", svc.Handle())
//
// Routes:
//
//	GET  /          page, prefilled from ?client=&crm=&product=&guide=
//	GET  /preview   preview fragment (SSE patch for DataStar requests)
//	GET  /payload   rendered subject, HTML and text as JSON
//	POST /send      deliver the draft through the sink
//	GET  /assets/*  guide images
package generator
