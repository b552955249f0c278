package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estateflow-be/internal/config"
	"estateflow-be/internal/pkg/apperr"
)

func newOAuthFixture() IOAuthService {
	cfg := &config.Config{
		OAuth: config.OAuthConfig{
			GoogleClientID:       "google-client",
			GoogleClientSecret:   "google-secret",
			GoogleRedirectURL:    "http://localhost:3000/api/oauth/google/callback",
			FacebookClientID:     "facebook-client",
			FacebookClientSecret: "facebook-secret",
			FacebookRedirectURL:  "http://localhost:3000/api/oauth/facebook/callback",
		},
	}
	return NewOAuthService(&fakeFactory{uow: newFakeUow()}, cfg)
}

func TestGetLoginURLPerProvider(t *testing.T) {
	svc := newOAuthFixture()

	tests := []struct {
		name     string
		provider string
		contains string
	}{
		{name: "google", provider: "google", contains: "accounts.google.com"},
		{name: "facebook", provider: "facebook", contains: "facebook.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, err := svc.GetLoginURL(tt.provider)
			require.NoError(t, err)
			assert.Contains(t, url, tt.contains)
			assert.Contains(t, url, tt.provider+"-client")
		})
	}
}

func TestGetLoginURLUnsupportedProvider(t *testing.T) {
	svc := newOAuthFixture()

	_, err := svc.GetLoginURL("github")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestFetchProviderProfileRejectsUnknownProvider(t *testing.T) {
	_, err := fetchProviderProfile("github", "token")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}
