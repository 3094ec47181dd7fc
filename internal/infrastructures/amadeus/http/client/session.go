package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	derr "github.com/tripdeck/concierge/internal/domain/errors"
	"github.com/tripdeck/concierge/internal/infrastructures/amadeus/dto"
	"github.com/tripdeck/concierge/internal/secrets"
)

// Environment secrets for the distribution-system session.
const (
	KeyVariable    = "AMADEUS_API_KEY"
	SecretVariable = "AMADEUS_API_SECRET"
)

// tokenSafety is subtracted from the advertised token lifetime so a token is
// never used in its final moments.
const tokenSafety = 30 * time.Second

// Session owns the process-lifetime authenticated token for the distribution
// system. Concurrent readers of a valid token share a read lock;
// re-authentication takes the write lock so two overlapping calls never race
// a refresh.
type Session struct {
	baseURL    string
	resolver   secrets.Resolver
	httpClient *http.Client

	mu        sync.RWMutex
	token     string
	expiresAt time.Time
}

func NewSession(baseURL string, resolver secrets.Resolver, timeout time.Duration) *Session {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = "https://test.api.amadeus.com"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Session{
		baseURL:    strings.TrimRight(baseURL, "/"),
		resolver:   resolver,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Token returns the cached bearer token, authenticating first when no valid
// token is held.
func (s *Session) Token(ctx context.Context) (string, error) {
	s.mu.RLock()
	token, expiresAt := s.token, s.expiresAt
	s.mu.RUnlock()
	if token != "" && time.Now().Before(expiresAt) {
		return token, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-check: another caller may have refreshed while we waited.
	if s.token != "" && time.Now().Before(s.expiresAt) {
		return s.token, nil
	}
	return s.authenticateLocked(ctx)
}

// Invalidate drops the cached token if it matches the one a caller was
// rejected with, forcing the next Token call to re-authenticate. A token
// already replaced by a concurrent refresh is left alone.
func (s *Session) Invalidate(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == token {
		s.token = ""
		s.expiresAt = time.Time{}
	}
}

func (s *Session) authenticateLocked(ctx context.Context) (string, error) {
	key, err := s.resolver.Resolve(KeyVariable)
	if err != nil {
		return "", err
	}
	secret, err := s.resolver.Resolve(SecretVariable)
	if err != nil {
		return "", err
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", key)
	form.Set("client_secret", secret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/security/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build auth request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: distribution system authentication failed", derr.ErrSourceUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: distribution system authentication status %s", derr.ErrSourceUnavailable, resp.Status)
	}

	var payload dto.TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("%w: decode authentication response", derr.ErrProviderPayload)
	}
	if strings.TrimSpace(payload.AccessToken) == "" {
		return "", fmt.Errorf("%w: authentication response carries no token", derr.ErrProviderPayload)
	}

	s.token = payload.AccessToken
	s.expiresAt = time.Now().Add(time.Duration(payload.ExpiresIn)*time.Second - tokenSafety)
	return s.token, nil
}
