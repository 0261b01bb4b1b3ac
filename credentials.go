package okta

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// AuthScheme discriminates the supported credential forms. The active scheme
// is resolved once, up front, instead of being inferred from whichever field
// happens to be populated.
type AuthScheme string

const (
	SchemeBearer                  AuthScheme = "bearer"
	SchemeBasic                   AuthScheme = "basic"
	SchemeOAuth2ClientCredentials AuthScheme = "oauth2_client_credentials"
	SchemeOAuth2AuthorizationCode AuthScheme = "oauth2_authorization_code"
)

// sswsPrefix is the token prefix Okta requires on its management API.
const sswsPrefix = "SSWS "

// Credentials carries the data for exactly one authentication scheme,
// selected by Scheme.
type Credentials struct {
	Scheme AuthScheme

	// APIToken backs SchemeBearer.
	APIToken string

	// Username and Password back SchemeBasic.
	Username string
	Password string

	// ClientID, ClientSecret, TokenURL, and Scopes back
	// SchemeOAuth2ClientCredentials.
	ClientID     string
	ClientSecret string
	TokenURL     string
	Scopes       []string

	// Token backs SchemeOAuth2AuthorizationCode: an access token already
	// obtained by the caller through the authorization code flow.
	Token *oauth2.Token
}

// ResolveHeaders builds the Authorization header set for the configured
// scheme. OAuth2 client credentials perform a token exchange here, before any
// call to the provider API.
func ResolveHeaders(ctx context.Context, creds Credentials) (http.Header, error) {
	headers := http.Header{}

	switch creds.Scheme {
	case SchemeBearer:
		if creds.APIToken == "" {
			return nil, credentialError("api token is required for the bearer scheme")
		}
		headers.Set("Authorization", "Bearer "+creds.APIToken)

	case SchemeBasic:
		if creds.Username == "" || creds.Password == "" {
			return nil, credentialError("username and password are required for the basic scheme")
		}
		encoded := base64.StdEncoding.EncodeToString([]byte(creds.Username + ":" + creds.Password))
		headers.Set("Authorization", "Basic "+encoded)

	case SchemeOAuth2ClientCredentials:
		if creds.ClientID == "" || creds.ClientSecret == "" || creds.TokenURL == "" {
			return nil, credentialError("client id, client secret, and token url are required for client credentials")
		}
		cfg := clientcredentials.Config{
			ClientID:     creds.ClientID,
			ClientSecret: creds.ClientSecret,
			TokenURL:     creds.TokenURL,
			Scopes:       creds.Scopes,
		}
		token, err := cfg.Token(ctx)
		if err != nil {
			return nil, goerrors.Wrap(err, goerrors.CategoryAuth, "client credentials token exchange failed").
				WithTextCode(TextCodeCredentialConfig).
				WithCode(goerrors.CodeUnauthorized)
		}
		headers.Set("Authorization", "Bearer "+token.AccessToken)

	case SchemeOAuth2AuthorizationCode:
		if creds.Token == nil || creds.Token.AccessToken == "" {
			return nil, credentialError("access token is required for the authorization code scheme")
		}
		headers.Set("Authorization", "Bearer "+creds.Token.AccessToken)

	default:
		return nil, credentialError("unsupported authentication scheme")
	}

	return headers, nil
}

// NormalizeAuthorization rewrites a native bearer credential to the SSWS form
// the provider expects: a generic "Bearer " prefix is stripped and the SSWS
// prefix added unless already present. All other schemes pass through
// untouched. The input header set is treated as an immutable value; callers
// always get a fresh copy.
func NormalizeAuthorization(headers http.Header, scheme AuthScheme) http.Header {
	out := headers.Clone()
	if out == nil {
		out = http.Header{}
	}

	if scheme != SchemeBearer {
		return out
	}

	value := out.Get("Authorization")
	if value == "" || strings.HasPrefix(value, sswsPrefix) {
		return out
	}

	value = strings.TrimPrefix(value, "Bearer ")
	out.Set("Authorization", sswsPrefix+value)

	return out
}

func credentialError(message string) *goerrors.Error {
	return goerrors.New(message, goerrors.CategoryAuth).
		WithTextCode(TextCodeCredentialConfig).
		WithCode(goerrors.CodeUnauthorized)
}
