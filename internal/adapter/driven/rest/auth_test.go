package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lacosdigitais/lacosctl/internal/domain/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClientWithHTTPClient(srv.Client(), srv.URL, testLogger())
}

func TestClient_LoginSuccess(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "tester1", creds["username"])
		assert.Equal(t, "teste123", creds["password"])

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"token":   "tok-1",
			"user":    map[string]any{"id": 7, "username": "tester1"},
		})
	}))

	principal, token, err := client.Login(context.Background(), "tester1", "teste123")
	require.NoError(t, err)

	assert.Equal(t, "tok-1", token)
	assert.Equal(t, int64(7), principal.ID)
	assert.Equal(t, "tester1", principal.DisplayName)
	assert.Equal(t, model.PrincipalKindUser, principal.Kind)
}

func TestClient_LoginInvalidCredentials(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Credenciais inválidas"})
	}))

	_, _, err := client.Login(context.Background(), "tester1", "wrong")
	require.Error(t, err)

	var authErr *model.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, model.AuthErrorInvalidCredentials, authErr.Kind)
	assert.Equal(t, "Credenciais inválidas", authErr.Message)
}

func TestClient_LoginInvalidCredentialsDefaultMessage(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, _, err := client.Login(context.Background(), "tester1", "wrong")

	var authErr *model.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, model.AuthErrorInvalidCredentials, authErr.Kind)
	assert.Equal(t, "invalid credentials", authErr.Message)
}

func TestClient_LoginServerError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "banco indisponível"})
	}))

	_, _, err := client.Login(context.Background(), "tester1", "teste123")

	var authErr *model.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, model.AuthErrorGeneric, authErr.Kind)
	assert.Equal(t, "banco indisponível", authErr.Message)
}

func TestClient_LoginUnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := NewClientWithHTTPClient(srv.Client(), srv.URL, testLogger())
	srv.Close()

	_, _, err := client.Login(context.Background(), "tester1", "teste123")
	require.Error(t, err)

	var transportErr *model.TransportError
	assert.ErrorAs(t, err, &transportErr)
}

func TestClient_LoginMalformedBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "<html>not json</html>")
	}))

	_, _, err := client.Login(context.Background(), "tester1", "teste123")

	var transportErr *model.TransportError
	assert.ErrorAs(t, err, &transportErr)
}

func TestClient_LoginUnsuccessfulBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": false})
	}))

	_, _, err := client.Login(context.Background(), "tester1", "teste123")

	var authErr *model.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, model.AuthErrorGeneric, authErr.Kind)
	assert.Equal(t, "login failed", authErr.Message)
}

func TestClient_RegisterSuccess(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/register", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"token":   "tok-new",
			"user":    map[string]any{"id": 12, "username": "novato"},
		})
	}))

	principal, token, err := client.Register(context.Background(), "novato", "senha123")
	require.NoError(t, err)
	assert.Equal(t, "tok-new", token)
	assert.Equal(t, "novato", principal.DisplayName)
}

func TestClient_RegisterConflictIsGeneric(t *testing.T) {
	// Registration failures are never "invalid credentials", even for
	// authorization-class statuses.
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "usuário já existe"})
	}))

	_, _, err := client.Register(context.Background(), "tester1", "teste123")

	var authErr *model.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, model.AuthErrorGeneric, authErr.Kind)
	assert.Equal(t, "usuário já existe", authErr.Message)
}

func TestClient_InstitutionLoginSuccess(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/institution/login", r.URL.Path)

		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "20231234", creds["registration"])

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"token":   "tok-inst",
			"institution": map[string]any{
				"id":        3,
				"nome":      "UNINASSAU",
				"matricula": "20231234",
			},
		})
	}))

	principal, token, err := client.InstitutionLogin(context.Background(), "20231234", "teste123")
	require.NoError(t, err)
	assert.Equal(t, "tok-inst", token)
	assert.Equal(t, "UNINASSAU", principal.DisplayName)
	assert.Equal(t, model.PrincipalKindInstitution, principal.Kind)
}

func TestClient_VerifyOK(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/verify", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))

	assert.NoError(t, client.Verify(context.Background()))
}

func TestClient_VerifyRejected(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	err := client.Verify(context.Background())
	require.Error(t, err)

	// The port promises the domain taxonomy, not the raw API error.
	var authErr *model.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, model.AuthErrorGeneric, authErr.Kind)
	assert.Equal(t, "session no longer valid", authErr.Message)
}

func TestClient_VerifyUnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := NewClientWithHTTPClient(srv.Client(), srv.URL, testLogger())
	srv.Close()

	err := client.Verify(context.Background())
	require.Error(t, err)

	var transportErr *model.TransportError
	assert.ErrorAs(t, err, &transportErr)
}
