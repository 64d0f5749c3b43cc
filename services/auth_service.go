package services

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/supabase-community/gotrue-go/types"
	"github.com/supabase-community/supabase-go"

	"hotel-frontend/models"
)

// AuthService is the boundary to the external session provider. It hands out
// models.Session values so the rest of the codebase never touches provider
// types.
type AuthService struct {
	sb  *supabase.Client
	log *logrus.Logger
}

func NewAuthService(projectURL, anonKey string, log *logrus.Logger) (*AuthService, error) {
	client, err := supabase.NewClient(projectURL, anonKey, nil)
	if err != nil {
		return nil, err
	}
	return &AuthService{sb: client, log: log}, nil
}

// SignIn exchanges credentials for a session.
func (a *AuthService) SignIn(email, password string) (models.Session, error) {
	sess, err := a.sb.SignInWithEmailPassword(email, password)
	if err != nil {
		return models.Session{}, err
	}
	return models.Session{
		Email:     sess.User.Email,
		Token:     sess.AccessToken,
		ExpiresAt: time.Now().Add(time.Duration(sess.ExpiresIn) * time.Second),
	}, nil
}

// SignOut revokes the session token at the provider. Best-effort: a failure
// is logged but the guest is logged out locally either way.
func (a *AuthService) SignOut(token string) {
	if token == "" {
		return
	}
	if err := a.sb.Auth.WithToken(token).Logout(); err != nil {
		a.log.WithError(err).Warn("provider sign-out failed")
	}
}

// Register creates a new account. Depending on provider settings the guest
// may still need to confirm their email before signing in.
func (a *AuthService) Register(email, password, name string) error {
	_, err := a.sb.Auth.Signup(types.SignupRequest{
		Email:    email,
		Password: password,
		Data:     map[string]interface{}{"name": name},
	})
	return err
}

// ForgotPassword asks the provider to send a recovery email.
func (a *AuthService) ForgotPassword(email string) error {
	return a.sb.Auth.Recover(types.RecoverRequest{Email: email})
}
