package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/masjidapp/backend/internal/flagx"
	"github.com/masjidapp/backend/internal/timex"
)

// JsonConfig is an intermediate DTO used only for reading JSON configuration
// files. Interval fields use timex.Duration, which accepts both string values
// such as "100ms" and integer nanoseconds. After unmarshalling, the fields
// are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddr          string         `json:"endpoint_addr"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	VerifyMaxAttempts     uint64         `json:"verify_max_attempts"`
	VerifyRetryDelay      timex.Duration `json:"verify_retry_delay"`
	PersistentConnection  bool           `json:"persistent_connection"`
}

// parseJson loads configuration values from the JSON file named by the
// -c or -config command-line flags. When neither flag is set, nothing is
// loaded. An unreadable or invalid file panics: a config file that was
// explicitly requested must not be silently skipped.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.EndpointAddr = c.EndpointAddr
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.TokenValidityDuration = time.Duration(c.TokenValidityDuration.Duration)
	config.VerifyMaxAttempts = c.VerifyMaxAttempts
	config.VerifyRetryDelay = time.Duration(c.VerifyRetryDelay.Duration)
	config.PersistentConnection = c.PersistentConnection
}
