package model

// SessionPhase is the lifecycle state of the session store.
type SessionPhase string

const (
	// PhaseUnauthenticated means no principal is present.
	PhaseUnauthenticated SessionPhase = "unauthenticated"
	// PhaseAuthenticating means a register or login call is in flight.
	PhaseAuthenticating SessionPhase = "authenticating"
	// PhaseAuthenticated means a principal is present. It may still be
	// awaiting background token verification after a restore; check
	// SessionService.Verified to distinguish the optimistic window.
	PhaseAuthenticated SessionPhase = "authenticated"
)

// Session is the in-memory authentication state of the running client.
//
// Invariant: Token is non-empty if and only if Principal is non-nil.
// There is never a partial session.
type Session struct {
	Token     string
	Principal *Principal
}

// Active reports whether a principal is present.
func (s Session) Active() bool {
	return s.Token != "" && s.Principal != nil
}

// Clear resets the session to the unauthenticated zero value.
func (s *Session) Clear() {
	s.Token = ""
	s.Principal = nil
}
