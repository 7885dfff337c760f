package config

import "time"

// Config holds runtime settings for the WedMac admin CLI.
//
// Fields:
//   - APIBaseURL: scheme://host of the back-office REST API.
//   - DataDir: where the local session cache lives. Empty means a
//     per-user default resolved at startup.
//   - ResendCooldown: how long the OTP resend stays locked after a send.
//   - PreviewLimit: how many parsed rows the import preview renders.
//   - PageSize: activity-log page size.
type Config struct {
	APIBaseURL     string
	DataDir        string
	ResendCooldown time.Duration
	PreviewLimit   int
	PageSize       int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://api.wedmac.in"
	c.DataDir = ""
	c.ResendCooldown = 30 * time.Second
	c.PreviewLimit = 200
	c.PageSize = 10
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
