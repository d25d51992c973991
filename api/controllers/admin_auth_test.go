package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/theegirlieshub/girlieshub-backend/internal/auth"
	pkgerrors "github.com/theegirlieshub/girlieshub-backend/pkg/errors"
)

type stubAuthService struct {
	session     *auth.Session
	loginErr    error
	validateErr error
	loggedOut   string
}

func (s *stubAuthService) Login(context.Context, string) (*auth.Session, error) {
	return s.session, s.loginErr
}

func (s *stubAuthService) Validate(context.Context, string) error {
	return s.validateErr
}

func (s *stubAuthService) Logout(_ context.Context, token string) error {
	s.loggedOut = token
	return nil
}

func TestAdminLoginSuccess(t *testing.T) {
	t.Parallel()

	session := &auth.Session{Token: "tok-123", ExpiresAt: time.Now().Add(time.Hour)}
	handler := AdminLogin(&stubAuthService{session: session}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/auth/login", strings.NewReader(`{"password": "secret"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data auth.Session `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Token != "tok-123" {
		t.Fatalf("unexpected token: %s", envelope.Data.Token)
	}
}

func TestAdminLoginWrongPassword(t *testing.T) {
	t.Parallel()

	svc := &stubAuthService{loginErr: pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid password")}
	handler := AdminLogin(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/auth/login", strings.NewReader(`{"password": "wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAdminLoginMissingPassword(t *testing.T) {
	t.Parallel()

	handler := AdminLogin(&stubAuthService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/auth/login", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAdminLogoutForwardsToken(t *testing.T) {
	t.Parallel()

	svc := &stubAuthService{}
	handler := AdminLogout(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer tok-456")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.loggedOut != "tok-456" {
		t.Fatalf("token not forwarded: %q", svc.loggedOut)
	}
}
