package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

type clientSecrets map[string]creds

type creds struct {
	ClientId                string   `json:"client_id"`
	ProjectId               string   `json:"project_id"`
	AuthUri                 string   `json:"auth_uri"`
	TokenUri                string   `json:"token_uri"`
	AuthProviderX509CertUrl string   `json:"auth_provider_x509_cert_url"`
	ClientSecret            string   `json:"client_secret"`
	RedirectUris            []string `json:"redirect_uris"`
}

// GoogleTokenSource builds a token source for the mailbox that granted
// refreshToken. secretPath points to the client secret json downloaded from
// the Google console, clientType picks the client inside it ("web" or
// "installed").
func GoogleTokenSource(ctx context.Context, secretPath, clientType, refreshToken string, scopes ...string) (oauth2.TokenSource, error) {
	file, err := os.Open(secretPath)
	if err != nil {
		return nil, fmt.Errorf("can't open client secret: %w", err)
	}
	defer file.Close()

	cs := make(clientSecrets)
	if err := json.NewDecoder(file).Decode(&cs); err != nil {
		return nil, fmt.Errorf("can't parse secrets: %w", err)
	}

	secret, ok := cs[clientType]
	if !ok {
		return nil, fmt.Errorf("no %q client in secrets", clientType)
	}

	if refreshToken == "" {
		return nil, fmt.Errorf("refresh token is empty")
	}

	conf := oauth2.Config{
		ClientID:     secret.ClientId,
		ClientSecret: secret.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       scopes,
	}

	return conf.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken}), nil
}
