// Package config loads CLI defaults from an optional .env file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DefaultEnvFile is read from the working directory when present
	DefaultEnvFile = ".env"

	EnvSite       = "TOOLKIT_SITE"
	EnvAutoSubmit = "TOOLKIT_AUTO_SUBMIT"
	EnvDebug      = "TOOLKIT_DEBUG"
)

// Config holds defaults for flags the user did not set.
type Config struct {
	Site       string
	AutoSubmit bool
	Debug      bool
}

// Load reads envFile (missing files are ignored) and overlays the process
// environment, which always wins.
func Load(envFile string) (Config, error) {
	values := map[string]string{}
	if envFile != "" {
		fileValues, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to read %s: %w", envFile, err)
		}
		for k, v := range fileValues {
			values[k] = v
		}
	}
	for _, key := range []string{EnvSite, EnvAutoSubmit, EnvDebug} {
		if v, ok := os.LookupEnv(key); ok {
			values[key] = v
		}
	}

	cfg := Config{Site: strings.TrimSpace(values[EnvSite])}

	var err error
	if cfg.AutoSubmit, err = parseBool(values, EnvAutoSubmit); err != nil {
		return Config{}, err
	}
	if cfg.Debug, err = parseBool(values, EnvDebug); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func parseBool(values map[string]string, key string) (bool, error) {
	raw := strings.TrimSpace(values[key])
	if raw == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return b, nil
}
