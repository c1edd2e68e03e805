// Package credentials resolves the xAI API key from the environment or
// dotenv files
package credentials

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// APIKeyName is the variable holding the xAI API key
const APIKeyName = "XAI_API_KEY"

// ErrMissingAPIKey is the cause wrapped by ConfigError
var ErrMissingAPIKey = errors.New(APIKeyName + " is not set")

// ConfigError reports a missing or unreadable credential
type ConfigError struct {
	Searched []string
	Err      error
}

func (e *ConfigError) Error() string {
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Remediation returns instructions for fixing the error
func (e *ConfigError) Remediation() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Set %s=xai-xxxxx in your environment or in a .env file", APIKeyName)
	if len(e.Searched) > 0 {
		fmt.Fprintf(&b, " (searched: %s)", strings.Join(e.Searched, ", "))
	}
	return b.String()
}

// APIKey returns the API key from the process environment, falling back
// to the first of envFiles that defines it. Missing files are skipped;
// earlier sources win over later ones.
func APIKey(envFiles ...string) (string, error) {
	if key := strings.TrimSpace(os.Getenv(APIKeyName)); key != "" {
		return key, nil
	}

	for _, path := range envFiles {
		key, err := readEnvFile(path)
		if err != nil {
			return "", &ConfigError{Searched: envFiles, Err: err}
		}
		if key != "" {
			return key, nil
		}
	}

	return "", &ConfigError{Searched: envFiles, Err: ErrMissingAPIKey}
}

// readEnvFile returns the API key defined in a dotenv file, or "" when
// the file does not exist or does not define it
func readEnvFile(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("stat %s: %w", path, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return strings.TrimSpace(v.GetString(APIKeyName)), nil
}
