package oauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"flight-tracker-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnabled(t *testing.T) {
	assert.True(t, Enabled("id", "secret", "https://auth.example.com/token"))
	assert.False(t, Enabled("id", "", "https://auth.example.com/token"))
	assert.False(t, Enabled("", "secret", ""))
}

func TestLookupOAuth_FetchToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"abc123","token_type":"bearer","expires_in":3600}`))
	}))
	defer server.Close()

	o := NewLookupOAuth("id", "secret", server.URL, logger.NewNopLogger())

	token, err := o.FetchToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc123", token.AccessToken)

	out, err := o.TokenToJSON(token)
	require.NoError(t, err)
	assert.Contains(t, out, "abc123")
}

func TestLookupOAuth_HTTPClientAttachesBearer(t *testing.T) {
	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"xyz","token_type":"bearer","expires_in":3600}`))
	}))
	defer tokenServer.Close()

	var gotAuth string
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer api.Close()

	o := NewLookupOAuth("id", "secret", tokenServer.URL, logger.NewNopLogger())
	resp, err := o.HTTPClient(context.Background()).Get(api.URL)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "Bearer xyz", gotAuth)
}
