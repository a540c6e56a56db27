package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/younivent/platform/internal/core/domain"
)

type stubAuthService struct {
	user       *domain.User
	token      string
	loginErr   error
	resumeErr  error
	loggedOut  []string
	lastEmail  string
	lastPasswd string
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (string, *domain.User, error) {
	s.lastEmail, s.lastPasswd = email, password
	if s.loginErr != nil {
		return "", nil, s.loginErr
	}
	return s.token, s.user, nil
}

func (s *stubAuthService) Logout(_ context.Context, userID string) error {
	s.loggedOut = append(s.loggedOut, userID)
	return nil
}

func (s *stubAuthService) Resume(_ context.Context, userID string) (*domain.User, error) {
	if s.resumeErr != nil {
		return nil, s.resumeErr
	}
	return s.user, nil
}

func TestAuthHandler_Login(t *testing.T) {
	stub := &stubAuthService{token: "tok-123", user: clientAdmin()}
	h := NewAuthHandler(stub)
	e := newTestEcho()

	c, rec := newTestContext(e, http.MethodPost, "/auth/login", `{"email":"sarah@eventcorp.com","password":"pw"}`, nil)
	if err := h.Login(c); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	requireCode(t, rec, http.StatusOK)

	var resp struct {
		Token string       `json:"token"`
		User  *domain.User `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Token != "tok-123" || resp.User == nil || resp.User.ID != "u-2" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if stub.lastEmail != "sarah@eventcorp.com" {
		t.Fatalf("email not forwarded: %q", stub.lastEmail)
	}
}

func TestAuthHandler_LoginValidation(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	e := newTestEcho()

	c, _ := newTestContext(e, http.MethodPost, "/auth/login", `{"email":"not-an-email","password":"pw"}`, nil)
	err := h.Login(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestAuthHandler_LoginBadCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials})
	e := newTestEcho()

	c, _ := newTestContext(e, http.MethodPost, "/auth/login", `{"email":"sarah@eventcorp.com","password":"bad"}`, nil)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials passthrough, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	stub := &stubAuthService{}
	h := NewAuthHandler(stub)
	e := newTestEcho()

	c, rec := newTestContext(e, http.MethodPost, "/auth/logout", "", clientAdmin())
	if err := h.Logout(c); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	requireCode(t, rec, http.StatusNoContent)
	if len(stub.loggedOut) != 1 || stub.loggedOut[0] != "u-2" {
		t.Fatalf("logout not forwarded: %v", stub.loggedOut)
	}
}

func TestAuthHandler_MeWithoutClaims(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{user: clientAdmin()})
	e := newTestEcho()

	c, _ := newTestContext(e, http.MethodGet, "/auth/me", "", nil)
	err := h.Me(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %v", err)
	}
}

func TestAuthHandler_MeStaleSession(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{resumeErr: domain.ErrUserNotFound})
	e := newTestEcho()

	c, _ := newTestContext(e, http.MethodGet, "/auth/me", "", clientAdmin())
	if err := h.Me(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound passthrough, got %v", err)
	}
}
