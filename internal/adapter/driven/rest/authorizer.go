package rest

import (
	"log/slog"
	"net/http"

	"github.com/lacosdigitais/lacosctl/internal/domain/port/driven"
)

// Authorizer is an http.RoundTripper that makes every outgoing request
// participate in the session lifecycle without call sites knowing about
// tokens. Before each request it attaches the stored bearer token, if
// any; after each response it reacts to a 401 by clearing the stored
// session keys so the next session check observes logged-out state.
//
// The Authorizer only ever clears the session keys. Writing them is the
// session service's job; keeping that asymmetry is what stops the
// transport layer and the session layer fighting over session creation.
type Authorizer struct {
	kv     driven.KeyValueStore
	base   http.RoundTripper
	logger *slog.Logger
}

// NewAuthorizer wraps base with bearer-token attachment and 401-driven
// session cleanup. A nil base uses http.DefaultTransport.
func NewAuthorizer(kv driven.KeyValueStore, base http.RoundTripper, logger *slog.Logger) *Authorizer {
	if base == nil {
		base = http.DefaultTransport
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Authorizer{kv: kv, base: base, logger: logger}
}

// RoundTrip implements http.RoundTripper. A failed token read never fails
// the request; the request simply goes out without an Authorization
// header. A 401 response clears the stored token and principal and is
// then returned to the caller unchanged.
func (a *Authorizer) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	token, err := a.kv.Get(ctx, driven.KeyAuthToken)
	switch {
	case err != nil:
		a.logger.Warn("token read failed, sending request unauthenticated",
			"path", req.URL.Path,
			"error", err,
		)
	case token != "":
		// RoundTrippers must not mutate the caller's request.
		req = req.Clone(ctx)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		a.logger.Info("server rejected session token, clearing stored session",
			"path", req.URL.Path,
		)
		if err := a.kv.Delete(ctx, driven.KeyAuthToken); err != nil {
			a.logger.Error("clear stored token", "error", err)
		}
		if err := a.kv.Delete(ctx, driven.KeyUserData); err != nil {
			a.logger.Error("clear stored principal", "error", err)
		}
	}

	return resp, nil
}
