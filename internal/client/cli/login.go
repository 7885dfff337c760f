package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/wedmac/wedmac-admin/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login runs the phone/OTP exchange. After a successful send the resend
// control stays locked for the configured cooldown; the countdown ticks once
// per second and dies with the surrounding context.
func (a *App) Login(ctx context.Context) {
	phone, err := getSimpleText(a.reader, "Enter your 10-digit phone number", os.Stdout)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	if err := a.auth.RequestOTP(ctx, phone); err != nil {
		a.printAuthError(err)
		return
	}
	fmt.Println("OTP sent.")

	cooldownCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	remaining := a.startResendCooldown(cooldownCtx)

	for {
		code, err := getSimpleText(a.reader, "Enter the OTP ('resend' to request a new code, empty line to abort)", os.Stdout)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}

		switch code {
		case "":
			fmt.Println("Login aborted.")
			return
		case "resend":
			if left := remaining.Load(); left > 0 {
				fmt.Printf("Resend available in %ds.\n", left)
				continue
			}
			if err := a.auth.RequestOTP(ctx, phone); err != nil {
				a.printAuthError(err)
				continue
			}
			fmt.Println("OTP sent.")
			cancel()
			cooldownCtx, cancel = context.WithCancel(ctx)
			defer cancel()
			remaining = a.startResendCooldown(cooldownCtx)
			continue
		}

		if err := a.auth.VerifyOTP(ctx, phone, code); err != nil {
			a.printAuthError(err)
			continue
		}

		fmt.Printf("Welcome, %s!\n", a.session.User().DisplayName())
		return
	}
}

// PasswordLogin is the legacy username/password path.
func (a *App) PasswordLogin(ctx context.Context) {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	defer common.WipeByteArray(password)

	if !a.auth.Login(ctx, username, password) {
		fmt.Println("Login unsuccessful.")
		return
	}
	fmt.Printf("Welcome, %s!\n", a.session.User().DisplayName())
}

func (a *App) Logout(ctx context.Context) {
	if err := a.auth.Logout(ctx); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	fmt.Println("Logged out.")
}

func (a *App) whoami() {
	user := a.session.User()
	fmt.Printf("Logged in as %s", user.DisplayName())
	if user.IsSuperuser() {
		fmt.Print(" (superuser)")
	}
	if at := a.session.LoggedInAt(); !at.IsZero() {
		fmt.Printf(", since %s", at.Format(time.RFC822))
	}
	fmt.Println()
}

// startResendCooldown arms a fresh countdown and returns the live counter
// of remaining seconds. Cancelling ctx stops the ticker.
func (a *App) startResendCooldown(ctx context.Context) *atomic.Int64 {
	remaining := &atomic.Int64{}
	remaining.Store(int64(a.config.ResendCooldown / time.Second))

	go func() {
		ticker := time.NewTicker(a.cooldownTick)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if remaining.Add(-1) <= 0 {
					remaining.Store(0)
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return remaining
}

func (a *App) printAuthError(err error) {
	switch {
	case errors.Is(err, common.ErrInvalidPhone), errors.Is(err, common.ErrInvalidOTP):
		fmt.Printf("%s\n", capitalizeFirst(err.Error()))
	case errors.Is(err, common.ErrNoToken):
		fmt.Println("Login failed: the server did not return an access token.")
	default:
		fmt.Printf("Login failed: %v\n", err)
	}
}

func capitalizeFirst(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
