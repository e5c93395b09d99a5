package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/yaklabco/javalint/pkg/config"
)

// envVarPrefix is the prefix for all javalint environment variables.
const envVarPrefix = "JAVALINT_"

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with JAVALINT_ (e.g., JAVALINT_JOBS).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	if value := os.Getenv(envVarPrefix + "JOBS"); value != "" {
		n, err := parsePositiveInt(value, envVarPrefix+"JOBS")
		if err != nil {
			return err
		}
		cfg.Jobs = n
	}

	if value := os.Getenv(envVarPrefix + "MAX_FIX_PASSES"); value != "" {
		n, err := parsePositiveInt(value, envVarPrefix+"MAX_FIX_PASSES")
		if err != nil {
			return err
		}
		cfg.MaxFixPasses = n
	}

	if value := os.Getenv(envVarPrefix + "FORMAT"); value != "" {
		cfg.Format = config.OutputFormat(value)
	}

	if value := os.Getenv(envVarPrefix + "UNSAFE_FIXES"); value != "" {
		b, err := parseEnvBool(value, envVarPrefix+"UNSAFE_FIXES")
		if err != nil {
			return err
		}
		cfg.UnsafeFixes = b
	}

	if value := os.Getenv(envVarPrefix + "BACKUP"); value != "" {
		b, err := parseEnvBool(value, envVarPrefix+"BACKUP")
		if err != nil {
			return err
		}
		cfg.Backup = b
	}

	return nil
}

func parseEnvBool(value, envVar string) (bool, error) {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
	}
	return b, nil
}
