package api

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/slack-go/slack"
)

// verifySlack rejects requests that are not signed with the app signing
// secret. The body is buffered and put back for the next handler.
func (a *Api) verifySlack(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			a.badRequestResponse(w, r, fmt.Errorf("read body: %w", err))
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		if a.skipVerify {
			next.ServeHTTP(w, r)
			return
		}

		sv, err := slack.NewSecretsVerifier(r.Header, a.signingSecret)
		if err != nil {
			a.unauthorizedResponse(w, r, err)
			return
		}

		if _, err := sv.Write(body); err != nil {
			a.serverErrorResponse(w, r, err)
			return
		}

		if err := sv.Ensure(); err != nil {
			a.unauthorizedResponse(w, r, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}
