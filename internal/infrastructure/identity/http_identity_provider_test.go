package identity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gyeonjeok/internal/usecase/interfaces"
)

func TestNewHTTPIdentityProvider(t *testing.T) {
	t.Run("missing base url", func(t *testing.T) {
		_, err := NewHTTPIdentityProvider("  ", "key")
		if !errors.Is(err, ErrMissingIdentityBaseURL) {
			t.Fatalf("expected ErrMissingIdentityBaseURL, got %v", err)
		}
	})

	t.Run("trailing slash trimmed", func(t *testing.T) {
		p, err := NewHTTPIdentityProvider("https://auth.example.com/", "key")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.baseURL != "https://auth.example.com" {
			t.Fatalf("unexpected base url: %q", p.baseURL)
		}
	})

	t.Run("mock mode needs no base url", func(t *testing.T) {
		t.Setenv("IDENTITY_MOCK", "1")
		p, err := NewHTTPIdentityProvider("", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !p.mockMode {
			t.Fatalf("expected mock mode")
		}
	})
}

func TestHTTPIdentityProvider_VerifyToken(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet || r.URL.Path != "/user" {
				t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
			if got := r.Header.Get("Authorization"); got != "Bearer token-1" {
				t.Errorf("unexpected authorization header: %q", got)
			}
			_ = json.NewEncoder(w).Encode(map[string]any{
				"id":            "user-1",
				"email":         "a@b.com",
				"user_metadata": map[string]string{"name": "홍길동"},
			})
		}))
		defer srv.Close()

		p, err := NewHTTPIdentityProvider(srv.URL, "service-key")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		id, err := p.VerifyToken(context.Background(), "token-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id.ID != "user-1" || id.Email != "a@b.com" || id.Name != "홍길동" {
			t.Fatalf("unexpected identity: %+v", id)
		}
	})

	t.Run("401 maps to ErrInvalidToken", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		p, _ := NewHTTPIdentityProvider(srv.URL, "service-key")
		_, err := p.VerifyToken(context.Background(), "bad")
		if !errors.Is(err, interfaces.ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("empty user id counts as invalid", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"id": ""})
		}))
		defer srv.Close()

		p, _ := NewHTTPIdentityProvider(srv.URL, "service-key")
		_, err := p.VerifyToken(context.Background(), "token")
		if !errors.Is(err, interfaces.ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("5xx surfaces as plain error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		p, _ := NewHTTPIdentityProvider(srv.URL, "service-key")
		_, err := p.VerifyToken(context.Background(), "token")
		if err == nil || errors.Is(err, interfaces.ErrInvalidToken) {
			t.Fatalf("expected non-token error, got %v", err)
		}
	})

	t.Run("mock mode is deterministic per token", func(t *testing.T) {
		t.Setenv("IDENTITY_MOCK", "1")
		p, _ := NewHTTPIdentityProvider("", "")

		a, err := p.VerifyToken(context.Background(), "token-a")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b, _ := p.VerifyToken(context.Background(), "token-a")
		c, _ := p.VerifyToken(context.Background(), "token-b")

		if a.ID != b.ID {
			t.Fatalf("same token produced different ids: %q / %q", a.ID, b.ID)
		}
		if a.ID == c.ID {
			t.Fatalf("different tokens produced the same id: %q", a.ID)
		}

		if _, err := p.VerifyToken(context.Background(), "  "); !errors.Is(err, interfaces.ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for blank token, got %v", err)
		}
	})
}

func TestHTTPIdentityProvider_CreateUser(t *testing.T) {
	t.Run("success confirms email", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/admin/users" {
				t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
			if got := r.Header.Get("Authorization"); got != "Bearer service-key" {
				t.Errorf("unexpected authorization header: %q", got)
			}

			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Errorf("decode body: %v", err)
			}
			if body["email_confirm"] != true {
				t.Errorf("expected email_confirm=true, got %v", body["email_confirm"])
			}

			_ = json.NewEncoder(w).Encode(map[string]any{
				"id":            "user-1",
				"email":         "a@b.com",
				"user_metadata": map[string]string{"name": "홍길동"},
			})
		}))
		defer srv.Close()

		p, _ := NewHTTPIdentityProvider(srv.URL, "service-key")
		id, err := p.CreateUser(context.Background(), "a@b.com", "secret123", "홍길동")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id.ID != "user-1" {
			t.Fatalf("unexpected identity: %+v", id)
		}
	})

	t.Run("4xx maps to ErrSignupRejected", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(map[string]string{"msg": "email already registered"})
		}))
		defer srv.Close()

		p, _ := NewHTTPIdentityProvider(srv.URL, "service-key")
		_, err := p.CreateUser(context.Background(), "a@b.com", "secret123", "홍길동")
		if !errors.Is(err, interfaces.ErrSignupRejected) {
			t.Fatalf("expected ErrSignupRejected, got %v", err)
		}
	})

	t.Run("mock mode issues fresh ids", func(t *testing.T) {
		t.Setenv("IDENTITY_MOCK", "1")
		p, _ := NewHTTPIdentityProvider("", "")

		a, err := p.CreateUser(context.Background(), "a@b.com", "secret123", "홍길동")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b, _ := p.CreateUser(context.Background(), "a@b.com", "secret123", "홍길동")
		if a.ID == b.ID {
			t.Fatalf("expected distinct mock ids, got %q twice", a.ID)
		}
		if a.Email != "a@b.com" || a.Name != "홍길동" {
			t.Fatalf("unexpected identity: %+v", a)
		}
	})
}
