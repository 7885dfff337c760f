package config

import (
	"flag"
	"os"
	"time"

	"github.com/wedmac/wedmac-admin/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the back-office API (default from Config)
//	-d string   data directory for the local session cache
//	-r int      OTP resend cooldown in seconds
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the back-office API")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory for the local session cache")
	resendCooldown := fs.Int("r", int(cfg.ResendCooldown.Seconds()), "OTP resend cooldown (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.ResendCooldown = time.Duration(*resendCooldown) * time.Second
}
