package common

import (
	"log"
	"net/http"

	"github.com/getsentry/sentry-go"
)

// ReportError logs err and sends it to sentry, using the request's hub when
// the sentry middleware attached one.
func ReportError(r *http.Request, msg string, err error) {
	log.Default().Println(msg, ": ", err)

	if hub := sentry.GetHubFromContext(r.Context()); hub != nil {
		hub.CaptureException(err)
		return
	}

	sentry.CaptureException(err)
}
