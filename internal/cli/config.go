// Config loading for the faults CLI.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configFileName     = "config"
	configFileType     = "yaml"
	configFileFullName = configFileName + "." + configFileType

	cfgKeyFormat = "format"

	formatTable = "table"
	formatJSON  = "json"
)

// ErrFormatUnknown is returned when config.yaml names an output format other
// than table or json.
var ErrFormatUnknown = errors.New("unknown output format")

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# faults CLI configuration

# Default output format: table or json (the --json flag overrides this)
format: table
`

// loadFormat reads config.yaml from the resolved config directory using
// Viper and returns the configured output format. It creates the config
// directory and a default config.yaml on first run; a missing config.yaml
// is not an error.
func loadFormat(configDir string) (string, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return "", fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return "", fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyFormat, formatTable)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return "", fmt.Errorf("read config: %w", err)
		}
	}

	format := v.GetString(cfgKeyFormat)
	if format != formatTable && format != formatJSON {
		return "", fmt.Errorf("%w: %q", ErrFormatUnknown, format)
	}
	return format, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileFullName)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return err
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
