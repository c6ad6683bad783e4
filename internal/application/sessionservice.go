// Package application contains the services driving the client: session
// lifecycle, content access with offline fallback, and the local diary.
package application

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/lacosdigitais/lacosctl/internal/domain/model"
	"github.com/lacosdigitais/lacosctl/internal/domain/port/driven"
)

// SessionService is the single source of truth for "who is using the app
// right now" and the only component that creates session state. The
// authorizer transport may clear the persisted keys on a 401, but it
// never writes them.
//
// Mutating operations (Register, Login, InstitutionLogin, Logout, the
// restore step of CheckAndRestore) are serialized behind one mutex, so
// concurrent callers observe last-write-wins ordering rather than
// interleaved partial updates.
type SessionService struct {
	api    driven.AuthAPI
	kv     driven.KeyValueStore
	logger *slog.Logger

	// opMu serializes session-mutating operations end to end.
	// mu guards reads/writes of the state fields below and is never
	// held across a network or storage call.
	opMu sync.Mutex
	mu   sync.RWMutex

	session  model.Session
	phase    model.SessionPhase
	verified bool
}

// NewSessionService creates a SessionService. The initial state is
// Unauthenticated with verification not yet completed; call
// CheckAndRestore once at startup.
func NewSessionService(api driven.AuthAPI, kv driven.KeyValueStore, logger *slog.Logger) *SessionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionService{
		api:    api,
		kv:     kv,
		logger: logger,
		phase:  model.PhaseUnauthenticated,
	}
}

// Current returns the session's principal, if one is present.
func (s *SessionService) Current() (model.Principal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.session.Active() {
		return model.Principal{}, false
	}
	return *s.session.Principal, true
}

// Phase returns the session lifecycle state.
func (s *SessionService) Phase() model.SessionPhase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase
}

// Verified reports whether startup verification has completed. A caller
// seeing an authenticated principal with Verified() == false is inside
// the optimistic-restore window and may want to show a loading state.
func (s *SessionService) Verified() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.verified
}

// Register creates a new account and establishes a session for it. On
// failure the existing session, if any, is left untouched.
func (s *SessionService) Register(ctx context.Context, username, password string) (model.Principal, error) {
	return s.authenticate(ctx, func() (model.Principal, string, error) {
		return s.api.Register(ctx, username, password)
	})
}

// Login signs an existing user in, replacing any current session on
// success. On failure the existing session is left untouched.
func (s *SessionService) Login(ctx context.Context, username, password string) (model.Principal, error) {
	return s.authenticate(ctx, func() (model.Principal, string, error) {
		return s.api.Login(ctx, username, password)
	})
}

// InstitutionLogin signs a partner institution in by registration number.
func (s *SessionService) InstitutionLogin(ctx context.Context, registration, password string) (model.Principal, error) {
	return s.authenticate(ctx, func() (model.Principal, string, error) {
		return s.api.InstitutionLogin(ctx, registration, password)
	})
}

// authenticate runs one register/login call against the API and, on
// success, persists the new session durably before exposing it in
// memory. Token and principal are written in that order and both must
// succeed; a failed principal write rolls the token write back so the
// store never holds half a session.
func (s *SessionService) authenticate(ctx context.Context, call func() (model.Principal, string, error)) (model.Principal, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	prev := s.Phase()
	s.setPhase(model.PhaseAuthenticating)

	principal, token, err := call()
	if err != nil {
		s.setPhase(prev)
		return model.Principal{}, err
	}

	if err := s.persist(ctx, token, principal); err != nil {
		s.setPhase(prev)
		return model.Principal{}, err
	}

	s.mu.Lock()
	s.session = model.Session{Token: token, Principal: &principal}
	s.phase = model.PhaseAuthenticated
	s.verified = true
	s.mu.Unlock()

	s.logger.Info("session established",
		"principal", principal.DisplayName,
		"kind", principal.Kind,
	)
	return principal, nil
}

// persist writes the token and principal to the persistent store. The
// stored session is snapshotted first so a failed write rolls back to
// the previous durable pair; the store never ends up holding half of
// either session.
func (s *SessionService) persist(ctx context.Context, token string, principal model.Principal) error {
	data, err := json.Marshal(principal)
	if err != nil {
		return fmt.Errorf("encode principal: %w", err)
	}

	prevToken, err := s.kv.Get(ctx, driven.KeyAuthToken)
	if err != nil {
		return fmt.Errorf("read stored token before replace: %w", err)
	}
	prevData, err := s.kv.Get(ctx, driven.KeyUserData)
	if err != nil {
		return fmt.Errorf("read stored principal before replace: %w", err)
	}

	if err := s.kv.Set(ctx, driven.KeyAuthToken, token); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	if err := s.kv.Set(ctx, driven.KeyUserData, string(data)); err != nil {
		s.restoreKey(ctx, driven.KeyAuthToken, prevToken)
		s.restoreKey(ctx, driven.KeyUserData, prevData)
		return fmt.Errorf("store principal: %w", err)
	}
	return nil
}

// restoreKey puts a snapshotted value back, deleting the key when the
// snapshot was empty.
func (s *SessionService) restoreKey(ctx context.Context, key, value string) {
	var err error
	if value == "" {
		err = s.kv.Delete(ctx, key)
	} else {
		err = s.kv.Set(ctx, key, value)
	}
	if err != nil {
		s.logger.Error("restore stored session key after write failure", "key", key, "error", err)
	}
}

// Logout clears the persisted session and the in-memory state. It is
// idempotent and never fails: a failed persistent delete is logged and
// the in-memory session is cleared regardless. Logout is local only;
// there is no server round-trip.
func (s *SessionService) Logout(ctx context.Context) {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	s.clearSession(ctx)
}

func (s *SessionService) clearSession(ctx context.Context) {
	if err := s.kv.Delete(ctx, driven.KeyAuthToken); err != nil {
		s.logger.Error("clear stored token", "error", err)
	}
	if err := s.kv.Delete(ctx, driven.KeyUserData); err != nil {
		s.logger.Error("clear stored principal", "error", err)
	}

	s.mu.Lock()
	s.session.Clear()
	s.phase = model.PhaseUnauthenticated
	s.verified = true
	s.mu.Unlock()
}

// CheckAndRestore runs once at startup. It optimistically restores any
// persisted session into memory without waiting on the network, then
// verifies the token against the server in the background. A failed
// verification silently degrades to logged-out state; it is never
// surfaced as an error.
func (s *SessionService) CheckAndRestore(ctx context.Context) {
	if !s.restore(ctx) {
		return
	}
	// The startup context may be short-lived; verification should
	// finish on its own schedule.
	go s.verifyRestored(context.WithoutCancel(ctx))
}

// restore loads the persisted session into memory. It reports whether a
// principal was restored and therefore needs background verification.
// A stored record that is missing either half, or fails to decode, is
// treated as absent and cleaned up.
func (s *SessionService) restore(ctx context.Context) bool {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	data, err := s.kv.Get(ctx, driven.KeyUserData)
	if err != nil {
		s.logger.Warn("read stored principal", "error", err)
		data = ""
	}
	token, err := s.kv.Get(ctx, driven.KeyAuthToken)
	if err != nil {
		s.logger.Warn("read stored token", "error", err)
		token = ""
	}

	if data == "" && token == "" {
		s.markUnauthenticatedVerified()
		return false
	}

	var principal model.Principal
	if data == "" || token == "" || json.Unmarshal([]byte(data), &principal) != nil {
		// Half a session or an undecodable principal: treat as absent.
		s.logger.Warn("stored session is inconsistent, discarding")
		s.clearSession(ctx)
		return false
	}

	s.mu.Lock()
	s.session = model.Session{Token: token, Principal: &principal}
	s.phase = model.PhaseAuthenticated
	s.verified = false
	s.mu.Unlock()

	s.logger.Info("session restored, verification pending",
		"principal", principal.DisplayName,
		"kind", principal.Kind,
	)
	return true
}

// verifyRestored asks the server whether the restored token is still
// valid. Any failure (rejection or network) degrades to logout; the
// next Phase() call reflects it.
func (s *SessionService) verifyRestored(ctx context.Context) {
	if err := s.api.Verify(ctx); err != nil {
		s.logger.Info("restored session no longer valid, logging out", "error", err)
		s.opMu.Lock()
		defer s.opMu.Unlock()
		s.clearSession(ctx)
		return
	}

	s.mu.Lock()
	s.verified = true
	s.mu.Unlock()
	s.logger.Debug("restored session verified")
}

func (s *SessionService) setPhase(phase model.SessionPhase) {
	s.mu.Lock()
	s.phase = phase
	s.mu.Unlock()
}

func (s *SessionService) markUnauthenticatedVerified() {
	s.mu.Lock()
	s.session.Clear()
	s.phase = model.PhaseUnauthenticated
	s.verified = true
	s.mu.Unlock()
}
