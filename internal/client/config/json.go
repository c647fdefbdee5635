package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/folio/internal/flagx"
	"github.com/dmitrijs2005/folio/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. The timeout is
// a timex.Duration so the file may say "30s" or give nanoseconds.
type JsonConfig struct {
	APIBaseURL        string         `json:"api_base_url"`
	RequestTimeout    timex.Duration `json:"request_timeout"`
	StoragePath       string         `json:"storage_path"`
	RequestsPerSecond float64        `json:"requests_per_second"`
	RequestBurst      int            `json:"request_burst"`
	LogFormat         string         `json:"log_format"`
	LogLevel          string         `json:"log_level"`
	Environment       string         `json:"environment"`
}

// parseJson overlays Config with values from the file named by -c/-config.
// Fields missing from the file keep their current value. Read or decode
// errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigPath(os.Args[1:])
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

	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	setString(&cfg.StoragePath, jc.StoragePath)
	setString(&cfg.LogFormat, jc.LogFormat)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.Environment, jc.Environment)
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.RequestsPerSecond != 0 {
		cfg.RequestsPerSecond = jc.RequestsPerSecond
	}
	if jc.RequestBurst != 0 {
		cfg.RequestBurst = jc.RequestBurst
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
