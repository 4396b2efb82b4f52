package identity

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"gyeonjeok/internal/usecase/interfaces"
)

var ErrMissingIdentityBaseURL = errors.New("missing IDENTITY_BASE_URL")

// HTTPIdentityProvider talks to a GoTrue-compatible auth API.
//
// Token verification is GET {base}/user with the caller's bearer token;
// account creation is POST {base}/admin/users with the service role key and
// email_confirm set, so no verification mail goes out.
//
// Mock mode (IDENTITY_MOCK=1) resolves tokens to identities derived from the
// token bytes, for local development without a provider.

type HTTPIdentityProvider struct {
	baseURL    string
	serviceKey string
	client     *http.Client
	mockMode   bool
}

var _ interfaces.IIdentityProvider = (*HTTPIdentityProvider)(nil)

func NewHTTPIdentityProvider(baseURL, serviceKey string) (*HTTPIdentityProvider, error) {
	if isIdentityMockEnabled() {
		log.Printf("[auth][identity] mock mode enabled")
		return &HTTPIdentityProvider{mockMode: true}, nil
	}

	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		log.Printf("[auth][identity] missing IDENTITY_BASE_URL")
		return nil, ErrMissingIdentityBaseURL
	}

	return &HTTPIdentityProvider{
		baseURL:    baseURL,
		serviceKey: serviceKey,
		client:     &http.Client{Timeout: 10 * time.Second},
	}, nil
}

type providerUser struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	UserMetadata struct {
		Name string `json:"name"`
	} `json:"user_metadata"`
}

func (p *HTTPIdentityProvider) VerifyToken(ctx context.Context, accessToken string) (interfaces.Identity, error) {
	if p.mockMode {
		if strings.TrimSpace(accessToken) == "" {
			return interfaces.Identity{}, interfaces.ErrInvalidToken
		}
		sum := sha256.Sum256([]byte(accessToken))
		return interfaces.Identity{ID: fmt.Sprintf("mock-%x", sum[:6])}, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/user", nil)
	if err != nil {
		return interfaces.Identity{}, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("apikey", p.serviceKey)

	resp, err := p.client.Do(req)
	if err != nil {
		log.Printf("[auth][identity] verify request failed err=%v", err)
		return interfaces.Identity{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return interfaces.Identity{}, interfaces.ErrInvalidToken
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("[auth][identity] verify unexpected status=%d", resp.StatusCode)
		return interfaces.Identity{}, fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}

	var u providerUser
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return interfaces.Identity{}, err
	}
	if u.ID == "" {
		return interfaces.Identity{}, interfaces.ErrInvalidToken
	}
	return interfaces.Identity{ID: u.ID, Email: u.Email, Name: u.UserMetadata.Name}, nil
}

func (p *HTTPIdentityProvider) CreateUser(ctx context.Context, email, password, name string) (interfaces.Identity, error) {
	if p.mockMode {
		log.Printf("[auth][identity] mock create user email=%s", email)
		return interfaces.Identity{ID: uuid.NewString(), Email: email, Name: name}, nil
	}

	body, err := json.Marshal(map[string]any{
		"email":         email,
		"password":      password,
		"email_confirm": true,
		"user_metadata": map[string]string{"name": name},
	})
	if err != nil {
		return interfaces.Identity{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/admin/users", bytes.NewReader(body))
	if err != nil {
		return interfaces.Identity{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.serviceKey)
	req.Header.Set("apikey", p.serviceKey)

	resp, err := p.client.Do(req)
	if err != nil {
		log.Printf("[auth][identity] create user request failed err=%v", err)
		return interfaces.Identity{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Printf("[auth][identity] create user rejected status=%d body=%s", resp.StatusCode, msg)
		return interfaces.Identity{}, interfaces.ErrSignupRejected
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("[auth][identity] create user unexpected status=%d", resp.StatusCode)
		return interfaces.Identity{}, fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}

	var u providerUser
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return interfaces.Identity{}, err
	}
	return interfaces.Identity{ID: u.ID, Email: u.Email, Name: u.UserMetadata.Name}, nil
}

func isIdentityMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("IDENTITY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
