package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"flight-tracker-service/pkg/logger"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// LookupOAuth handles client-credentials authentication with the flight lookup API
type LookupOAuth struct {
	config *clientcredentials.Config
	logger logger.Logger
}

// NewLookupOAuth creates a new lookup OAuth handler
func NewLookupOAuth(clientID, clientSecret, tokenURL string, logger logger.Logger) *LookupOAuth {
	return &LookupOAuth{
		config: &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     tokenURL,
		},
		logger: logger,
	}
}

// Enabled reports whether enough settings are present to request tokens
func Enabled(clientID, clientSecret, tokenURL string) bool {
	return clientID != "" && clientSecret != "" && tokenURL != ""
}

// GetTokenSource returns a caching token source for the lookup API
func (o *LookupOAuth) GetTokenSource(ctx context.Context) oauth2.TokenSource {
	return o.config.TokenSource(ctx)
}

// HTTPClient returns a client that attaches bearer tokens to every request
func (o *LookupOAuth) HTTPClient(ctx context.Context) *http.Client {
	o.logger.Info("Using OAuth2 client credentials for flight lookup", "tokenURL", o.config.TokenURL)
	return o.config.Client(ctx)
}

// FetchToken requests a fresh access token
func (o *LookupOAuth) FetchToken(ctx context.Context) (*oauth2.Token, error) {
	token, err := o.config.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch token: %w", err)
	}
	return token, nil
}

// TokenToJSON converts a token to JSON
func (o *LookupOAuth) TokenToJSON(token *oauth2.Token) (string, error) {
	data, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
