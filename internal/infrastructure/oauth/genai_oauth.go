package oauth

import (
	"context"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"tripgenie-service/pkg/logger"
)

// GenAIOAuth handles OAuth authentication against the generation gateway
// using the client-credentials grant.
type GenAIOAuth struct {
	config *clientcredentials.Config
	logger logger.Logger
}

// NewGenAIOAuth creates a new generation gateway OAuth handler
func NewGenAIOAuth(clientID, clientSecret, tokenURL string, logger logger.Logger) *GenAIOAuth {
	return &GenAIOAuth{
		config: &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     tokenURL,
		},
		logger: logger,
	}
}

// Enabled reports whether gateway authentication is configured at all.
// Local gateways typically run without it.
func (o *GenAIOAuth) Enabled() bool {
	return o.config.TokenURL != "" && o.config.ClientID != ""
}

// GetTokenSource returns a self-refreshing token source for the gateway
func (o *GenAIOAuth) GetTokenSource(ctx context.Context) oauth2.TokenSource {
	return o.config.TokenSource(ctx)
}
