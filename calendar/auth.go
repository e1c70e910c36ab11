package calendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
)

// Credential errors are distinct from gateway errors so callers can tell
// "sign in again" apart from "the calendar service misbehaved".
var (
	// ErrAuthRequired means no credential is present at all.
	ErrAuthRequired = errors.New("authentication required")

	// ErrAuthExpired means the credential expired and cannot be refreshed.
	ErrAuthExpired = errors.New("credential expired and not refreshable")

	// ErrAuthFailed means a refresh or exchange was attempted and rejected.
	ErrAuthFailed = errors.New("authentication failed")
)

// OAuthConfig builds the oauth2 configuration for the Google consent flow
// with the scopes the gateway needs.
func OAuthConfig(clientID, clientSecret, redirectURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes: []string{
			gcal.CalendarEventsScope,
			gcal.CalendarScope,
			"openid",
			"https://www.googleapis.com/auth/userinfo.email",
		},
		Endpoint: google.Endpoint,
	}
}

// Exchange trades an authorization code for a token.
func Exchange(ctx context.Context, cfg *oauth2.Config, code string) (*oauth2.Token, error) {
	tok, err := cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}
	return tok, nil
}

// Client validates the stored token and returns an HTTP client that carries
// it, refreshing transparently when a refresh token is present. The
// refreshed token, if any, is reported through the returned token source so
// callers can persist it.
func Client(ctx context.Context, cfg *oauth2.Config, tok *oauth2.Token) (*http.Client, oauth2.TokenSource, error) {
	if tok == nil {
		return nil, nil, ErrAuthRequired
	}
	if !tok.Valid() && tok.RefreshToken == "" {
		return nil, nil, ErrAuthExpired
	}

	ts := cfg.TokenSource(ctx, tok)
	if !tok.Valid() {
		// Force the refresh now so an unusable credential fails the run
		// before any gateway call is made.
		if _, err := ts.Token(); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrAuthFailed, err)
		}
	}
	return oauth2.NewClient(ctx, ts), ts, nil
}
