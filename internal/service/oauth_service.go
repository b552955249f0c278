package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"
	"golang.org/x/oauth2/google"

	"estateflow-be/internal/config"
	"estateflow-be/internal/dto"
	"estateflow-be/internal/entity"
	"estateflow-be/internal/pkg/apperr"
	"estateflow-be/internal/repository/specification"
	"estateflow-be/internal/repository/unitofwork"
)

type IOAuthService interface {
	GetLoginURL(provider string) (string, error)
	HandleCallback(ctx context.Context, provider string, code string) (*dto.LoginResponse, error)
}

// providerProfile is the provider-agnostic identity extracted from the
// userinfo endpoint after the code exchange.
type providerProfile struct {
	ID      string
	Email   string
	Name    string
	Picture string
}

type oauthService struct {
	uowFactory unitofwork.RepositoryFactory
	configs    map[string]*oauth2.Config
}

func NewOAuthService(uowFactory unitofwork.RepositoryFactory, cfg *config.Config) IOAuthService {
	configs := map[string]*oauth2.Config{
		"google": {
			ClientID:     cfg.OAuth.GoogleClientID,
			ClientSecret: cfg.OAuth.GoogleClientSecret,
			RedirectURL:  cfg.OAuth.GoogleRedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		"facebook": {
			ClientID:     cfg.OAuth.FacebookClientID,
			ClientSecret: cfg.OAuth.FacebookClientSecret,
			RedirectURL:  cfg.OAuth.FacebookRedirectURL,
			Scopes:       []string{"email", "public_profile"},
			Endpoint:     facebook.Endpoint,
		},
	}

	return &oauthService{
		uowFactory: uowFactory,
		configs:    configs,
	}
}

func (s *oauthService) conf(provider string) (*oauth2.Config, error) {
	conf, ok := s.configs[provider]
	if !ok {
		return nil, apperr.Validation("unsupported provider")
	}
	return conf, nil
}

func (s *oauthService) GetLoginURL(provider string) (string, error) {
	conf, err := s.conf(provider)
	if err != nil {
		return "", err
	}

	b := make([]byte, 16)
	rand.Read(b)
	state := base64.URLEncoding.EncodeToString(b)

	return conf.AuthCodeURL(state), nil
}

func fetchProviderProfile(provider, accessToken string) (*providerProfile, error) {
	var userInfoURL string
	switch provider {
	case "google":
		userInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo?access_token=" + accessToken
	case "facebook":
		userInfoURL = "https://graph.facebook.com/me?fields=id,name,email,picture&access_token=" + accessToken
	default:
		return nil, apperr.Validation("unsupported provider")
	}

	resp, err := http.Get(userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("failed getting user info: %v", err)
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed reading response: %v", err)
	}

	if provider == "facebook" {
		var fbUser struct {
			ID      string `json:"id"`
			Email   string `json:"email"`
			Name    string `json:"name"`
			Picture struct {
				Data struct {
					URL string `json:"url"`
				} `json:"data"`
			} `json:"picture"`
		}
		if err := json.Unmarshal(content, &fbUser); err != nil {
			return nil, err
		}
		return &providerProfile{
			ID:      fbUser.ID,
			Email:   fbUser.Email,
			Name:    fbUser.Name,
			Picture: fbUser.Picture.Data.URL,
		}, nil
	}

	var googleUser struct {
		ID      string `json:"id"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.Unmarshal(content, &googleUser); err != nil {
		return nil, err
	}
	return &providerProfile{
		ID:      googleUser.ID,
		Email:   googleUser.Email,
		Name:    googleUser.Name,
		Picture: googleUser.Picture,
	}, nil
}

func (s *oauthService) HandleCallback(ctx context.Context, provider string, code string) (*dto.LoginResponse, error) {
	conf, err := s.conf(provider)
	if err != nil {
		return nil, err
	}

	token, err := conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("code exchange failed: %v", err)
	}

	profile, err := fetchProviderProfile(provider, token.AccessToken)
	if err != nil {
		return nil, err
	}
	if profile.Email == "" {
		// Facebook accounts registered by phone number carry no email.
		return nil, apperr.Validation("provider account has no email address")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: profile.Email})
	if err != nil {
		return nil, err
	}

	if user == nil {
		username := strings.Split(profile.Email, "@")[0]
		newUser := &entity.User{
			Id:              uuid.New(),
			Username:        username,
			Email:           profile.Email,
			PasswordHash:    nil,
			Role:            entity.UserRoleRenterBuyer,
			IsEmailVerified: true,
			ListingLimit:    entity.ListingLimitForRole(entity.UserRoleRenterBuyer),
			AvatarURL:       profile.Picture,
			CreatedAt:       time.Now(),
			UpdatedAt:       time.Now(),
		}

		if err := uow.Begin(ctx); err != nil {
			return nil, err
		}

		if err := uow.UserRepository().Create(ctx, newUser); err != nil {
			uow.Rollback()
			return nil, err
		}

		if err := uow.Commit(); err != nil {
			return nil, err
		}

		user = newUser
	}

	var tokenExpiry *time.Time
	if !token.Expiry.IsZero() {
		expiry := token.Expiry
		tokenExpiry = &expiry
	}

	cred, err := uow.UserRepository().FindOAuthCredential(ctx, provider, profile.ID)
	if err != nil {
		return nil, err
	}
	if cred == nil {
		cred = &entity.OAuthCredential{
			Id:             uuid.New(),
			UserId:         user.Id,
			Provider:       provider,
			ProviderUserId: profile.ID,
			CreatedAt:      time.Now(),
		}
	}
	cred.AccessToken = token.AccessToken
	cred.ExpiresAt = tokenExpiry
	if err := uow.UserRepository().SaveOAuthCredential(ctx, cred); err != nil {
		return nil, fmt.Errorf("failed to save provider info: %v", err)
	}

	signedToken, err := signAccessToken(user.Id, user.Role)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: signedToken,
		User:        userToDTO(user),
	}, nil
}
