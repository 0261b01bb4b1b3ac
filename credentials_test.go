package okta_test

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	okta "github.com/sgnl-actions/okta-unsuspend-user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestResolveHeaders(t *testing.T) {
	basic := base64.StdEncoding.EncodeToString([]byte("admin:s3cret"))

	tests := []struct {
		name     string
		creds    okta.Credentials
		expected string
		wantErr  bool
	}{
		{
			name:     "bearer token",
			creds:    okta.Credentials{Scheme: okta.SchemeBearer, APIToken: "tok"},
			expected: "Bearer tok",
		},
		{
			name:    "bearer token missing",
			creds:   okta.Credentials{Scheme: okta.SchemeBearer},
			wantErr: true,
		},
		{
			name:     "basic auth",
			creds:    okta.Credentials{Scheme: okta.SchemeBasic, Username: "admin", Password: "s3cret"},
			expected: "Basic " + basic,
		},
		{
			name:    "basic auth missing password",
			creds:   okta.Credentials{Scheme: okta.SchemeBasic, Username: "admin"},
			wantErr: true,
		},
		{
			name: "authorization code token",
			creds: okta.Credentials{
				Scheme: okta.SchemeOAuth2AuthorizationCode,
				Token:  &oauth2.Token{AccessToken: "ac-token"},
			},
			expected: "Bearer ac-token",
		},
		{
			name:    "authorization code token missing",
			creds:   okta.Credentials{Scheme: okta.SchemeOAuth2AuthorizationCode},
			wantErr: true,
		},
		{
			name:    "client credentials incomplete",
			creds:   okta.Credentials{Scheme: okta.SchemeOAuth2ClientCredentials, ClientID: "id"},
			wantErr: true,
		},
		{
			name:    "unsupported scheme",
			creds:   okta.Credentials{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers, err := okta.ResolveHeaders(context.Background(), tt.creds)
			if tt.wantErr {
				require.Error(t, err)

				var richErr *goerrors.Error
				require.True(t, goerrors.As(err, &richErr))
				assert.Equal(t, okta.TextCodeCredentialConfig, richErr.TextCode)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, headers.Get("Authorization"))
		})
	}
}

func TestResolveHeadersClientCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.FormValue("grant_type"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token":"cc-token","token_type":"Bearer","expires_in":3600}`)
	}))
	defer server.Close()

	headers, err := okta.ResolveHeaders(context.Background(), okta.Credentials{
		Scheme:       okta.SchemeOAuth2ClientCredentials,
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		TokenURL:     server.URL + "/oauth2/v1/token",
		Scopes:       []string{"okta.users.manage"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer cc-token", headers.Get("Authorization"))
}

func TestResolveHeadersClientCredentialsExchangeFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":"invalid_client"}`)
	}))
	defer server.Close()

	_, err := okta.ResolveHeaders(context.Background(), okta.Credentials{
		Scheme:       okta.SchemeOAuth2ClientCredentials,
		ClientID:     "client-id",
		ClientSecret: "wrong",
		TokenURL:     server.URL + "/oauth2/v1/token",
	})
	require.Error(t, err)

	var richErr *goerrors.Error
	require.True(t, goerrors.As(err, &richErr))
	assert.Equal(t, goerrors.CategoryAuth, richErr.Category)
}

func TestNormalizeAuthorization(t *testing.T) {
	tests := []struct {
		name     string
		scheme   okta.AuthScheme
		value    string
		expected string
	}{
		{
			name:     "generic bearer prefix rewritten",
			scheme:   okta.SchemeBearer,
			value:    "Bearer tok",
			expected: "SSWS tok",
		},
		{
			name:     "existing prefix untouched",
			scheme:   okta.SchemeBearer,
			value:    "SSWS tok",
			expected: "SSWS tok",
		},
		{
			name:     "raw token gains prefix",
			scheme:   okta.SchemeBearer,
			value:    "tok",
			expected: "SSWS tok",
		},
		{
			name:     "basic scheme passes through",
			scheme:   okta.SchemeBasic,
			value:    "Basic YWRtaW46czNjcmV0",
			expected: "Basic YWRtaW46czNjcmV0",
		},
		{
			name:     "oauth2 bearer passes through",
			scheme:   okta.SchemeOAuth2ClientCredentials,
			value:    "Bearer cc-token",
			expected: "Bearer cc-token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := http.Header{}
			headers.Set("Authorization", tt.value)

			normalized := okta.NormalizeAuthorization(headers, tt.scheme)
			assert.Equal(t, tt.expected, normalized.Get("Authorization"))
		})
	}
}

func TestNormalizeAuthorizationDoesNotMutateInput(t *testing.T) {
	headers := http.Header{}
	headers.Set("Authorization", "Bearer tok")
	headers.Set("X-Custom", "kept")

	normalized := okta.NormalizeAuthorization(headers, okta.SchemeBearer)

	assert.Equal(t, "SSWS tok", normalized.Get("Authorization"))
	assert.Equal(t, "kept", normalized.Get("X-Custom"))
	assert.Equal(t, "Bearer tok", headers.Get("Authorization"), "resolver output must stay untouched")
}

func TestNormalizeAuthorizationNilHeaders(t *testing.T) {
	normalized := okta.NormalizeAuthorization(nil, okta.SchemeBearer)
	assert.NotNil(t, normalized)
	assert.Empty(t, normalized.Get("Authorization"))
}
