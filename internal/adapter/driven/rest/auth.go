package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/lacosdigitais/lacosctl/internal/domain/model"
)

// credentials is the request body for the auth endpoints.
type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// institutionCredentials is the request body for institution sign-in,
// which authenticates by registration number rather than username.
type institutionCredentials struct {
	Registration string `json:"registration"`
	Password     string `json:"password"`
}

// userJSON is the platform's user object in auth responses.
type userJSON struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// institutionJSON is the platform's institution object in auth responses.
type institutionJSON struct {
	ID           int64  `json:"id"`
	Name         string `json:"nome"`
	Registration string `json:"matricula"`
}

// authResponse is the success body of /auth/register and /auth/login.
type authResponse struct {
	Success bool      `json:"success"`
	Token   string    `json:"token"`
	User    *userJSON `json:"user"`
}

// institutionAuthResponse is the success body of /institution/login.
type institutionAuthResponse struct {
	Success     bool             `json:"success"`
	Token       string           `json:"token"`
	Institution *institutionJSON `json:"institution"`
}

// Register creates a new anonymous user account.
func (c *Client) Register(ctx context.Context, username, password string) (model.Principal, string, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/auth/register", credentials{Username: username, Password: password})
	if err != nil {
		return model.Principal{}, "", err
	}

	var resp authResponse
	if err := c.do(req, &resp); err != nil {
		return model.Principal{}, "", classifyAuthErr(err, false, "registration failed")
	}
	if !resp.Success || resp.Token == "" || resp.User == nil {
		return model.Principal{}, "", &model.AuthError{Kind: model.AuthErrorGeneric, Message: "registration failed"}
	}

	return model.Principal{
		ID:          resp.User.ID,
		DisplayName: resp.User.Username,
		Kind:        model.PrincipalKindUser,
	}, resp.Token, nil
}

// Login signs an existing user in. Authorization-class rejections are
// classified as invalid credentials; everything else keeps the server's
// message.
func (c *Client) Login(ctx context.Context, username, password string) (model.Principal, string, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/auth/login", credentials{Username: username, Password: password})
	if err != nil {
		return model.Principal{}, "", err
	}

	var resp authResponse
	if err := c.do(req, &resp); err != nil {
		return model.Principal{}, "", classifyAuthErr(err, true, "login failed")
	}
	if !resp.Success || resp.Token == "" || resp.User == nil {
		return model.Principal{}, "", &model.AuthError{Kind: model.AuthErrorGeneric, Message: "login failed"}
	}

	return model.Principal{
		ID:          resp.User.ID,
		DisplayName: resp.User.Username,
		Kind:        model.PrincipalKindUser,
	}, resp.Token, nil
}

// InstitutionLogin signs a partner institution in by registration number.
func (c *Client) InstitutionLogin(ctx context.Context, registration, password string) (model.Principal, string, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/institution/login", institutionCredentials{Registration: registration, Password: password})
	if err != nil {
		return model.Principal{}, "", err
	}

	var resp institutionAuthResponse
	if err := c.do(req, &resp); err != nil {
		return model.Principal{}, "", classifyAuthErr(err, true, "institution login failed")
	}
	if !resp.Success || resp.Token == "" || resp.Institution == nil {
		return model.Principal{}, "", &model.AuthError{Kind: model.AuthErrorGeneric, Message: "institution login failed"}
	}

	return model.Principal{
		ID:          resp.Institution.ID,
		DisplayName: resp.Institution.Name,
		Kind:        model.PrincipalKindInstitution,
	}, resp.Token, nil
}

// Verify checks the stored token against the server. The authorizer
// transport attaches the token; a 401 means the session is gone.
func (c *Client) Verify(ctx context.Context) error {
	if err := c.get(ctx, "/auth/verify", nil); err != nil {
		return classifyAuthErr(err, false, "session no longer valid")
	}
	return nil
}

// classifyAuthErr maps a transport-level error from do() into the domain
// error taxonomy. TransportErrors pass through untouched; apiErrors
// become AuthErrors with the server message preserved when present.
// classifyInvalid additionally maps authorization-class statuses to
// invalid credentials, which applies to sign-in but not registration.
func classifyAuthErr(err error, classifyInvalid bool, fallbackMsg string) error {
	var apiErr *apiError
	if !errors.As(err, &apiErr) {
		return err
	}

	kind := model.AuthErrorGeneric
	msg := apiErr.Message

	if classifyInvalid && (apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden) {
		kind = model.AuthErrorInvalidCredentials
		if msg == "" {
			msg = "invalid credentials"
		}
	}
	if msg == "" {
		msg = fallbackMsg
	}

	return &model.AuthError{Kind: kind, Message: msg}
}
