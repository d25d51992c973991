package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/theegirlieshub/girlieshub-backend/internal/auth"
	pkgerrors "github.com/theegirlieshub/girlieshub-backend/pkg/errors"
)

type fakeAuthService struct {
	validTokens map[string]bool
	gotToken    string
}

func (f *fakeAuthService) Login(ctx context.Context, password string) (*auth.Session, error) {
	return nil, pkgerrors.New(pkgerrors.CodeInternal, "not implemented")
}

func (f *fakeAuthService) Validate(ctx context.Context, token string) error {
	f.gotToken = token
	if f.validTokens[token] {
		return nil
	}
	return pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid or expired session")
}

func (f *fakeAuthService) Logout(ctx context.Context, token string) error {
	return nil
}

func TestAdminAuth_MissingToken(t *testing.T) {
	svc := &fakeAuthService{validTokens: map[string]bool{}}
	handler := AdminAuth(svc, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run without credentials")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/dashboard", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	var payload struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if payload.Error.Code != string(pkgerrors.CodeUnauthorized) {
		t.Fatalf("unexpected code: %s", payload.Error.Code)
	}
}

func TestAdminAuth_InvalidToken(t *testing.T) {
	svc := &fakeAuthService{validTokens: map[string]bool{}}
	handler := AdminAuth(svc, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run with an invalid token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/dashboard", nil)
	req.Header.Set("Authorization", "Bearer nope")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if svc.gotToken != "nope" {
		t.Fatalf("expected token to reach service, got %q", svc.gotToken)
	}
}

func TestAdminAuth_ValidTokenPassesThrough(t *testing.T) {
	svc := &fakeAuthService{validTokens: map[string]bool{"session-token": true}}
	called := false
	handler := AdminAuth(svc, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/dashboard", nil)
	req.Header.Set("Authorization", "Bearer session-token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !called {
		t.Fatal("expected next handler to run")
	}
	if svc.gotToken != "session-token" {
		t.Fatalf("unexpected token: %q", svc.gotToken)
	}
}
