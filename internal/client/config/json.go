package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/wedmac/wedmac-admin/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations are
// given in whole seconds so config files stay plain.
type JsonConfig struct {
	APIBaseURL            string `json:"api_base_url"`
	DataDir               string `json:"data_dir"`
	ResendCooldownSeconds int    `json:"resend_cooldown_seconds"`
	PreviewLimit          int    `json:"preview_limit"`
	PageSize              int    `json:"page_size"`
}

// parseJson overlays Config with values loaded from a JSON file named by the
// -c or -config flag. When neither flag is present no JSON is loaded.
// Unset JSON fields keep the current Config value. Read or unmarshal errors
// panic (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.ResendCooldownSeconds > 0 {
		cfg.ResendCooldown = time.Duration(jc.ResendCooldownSeconds) * time.Second
	}
	if jc.PreviewLimit > 0 {
		cfg.PreviewLimit = jc.PreviewLimit
	}
	if jc.PageSize > 0 {
		cfg.PageSize = jc.PageSize
	}
}
