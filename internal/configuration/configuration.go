// Package configuration loads the user defaults for linking runs. Defaults
// are kept in a dotenv-type file, by default located in the XDG configuration
// directory, and can be overridden by environment variables of the same name.
package configuration

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/desertwitch/golnk/internal/schema"
)

// DefaultFile is the configuration file looked up in the XDG configuration
// directories when no explicit file is given.
const DefaultFile = "golnk/golnk.env"

const (
	// KeySymbolic enables symbolic links instead of hard links.
	KeySymbolic = "GOLNK_SYMBOLIC"

	// KeyRelative makes symbolic links relative to their own directory.
	KeyRelative = "GOLNK_RELATIVE"

	// KeyForce removes existing destinations before linking.
	KeyForce = "GOLNK_FORCE"

	// KeyBackup renames existing destinations out of the way before linking.
	KeyBackup = "GOLNK_BACKUP"

	// KeySuffix is the suffix appended to backups.
	KeySuffix = "GOLNK_SUFFIX"

	// KeyFilesOnly only links files symbolically and recreates directories.
	KeyFilesOnly = "GOLNK_FILES_ONLY"

	// KeyLogLevel is the log level (debug, info, warn, error).
	KeyLogLevel = "GOLNK_LOG_LEVEL"
)

type genericConfigProvider interface {
	Read(filenames ...string) (map[string]string, error)
}

type osProvider interface {
	Stat(name string) (os.FileInfo, error)
}

type envProvider func(key string) (string, bool)

// Config are the defaults for a linking run.
type Config struct {
	Options  schema.LinkOptions
	LogLevel string
}

// Handler is the principal implementation for the configuration services.
type Handler struct {
	configHandler genericConfigProvider
	osHandler     osProvider
	lookupEnv     envProvider
}

// NewHandler returns a pointer to a new configuration [Handler]. A nil
// lookupEnv disables environment overrides.
func NewHandler(configHandler genericConfigProvider, osHandler osProvider, lookupEnv func(key string) (string, bool)) *Handler {
	return &Handler{
		configHandler: configHandler,
		osHandler:     osHandler,
		lookupEnv:     lookupEnv,
	}
}

// DefaultPath returns the path of the default configuration file, if one
// exists in any of the XDG configuration directories.
func DefaultPath() (string, bool) {
	path, err := xdg.SearchConfigFile(DefaultFile)
	if err != nil {
		return "", false
	}

	return path, true
}

// Load returns the [Config] read from path, overridden by the environment. An
// empty path loads the default file, which is allowed to be missing.
func (c *Handler) Load(path string) (*Config, error) {
	envMap := make(map[string]string)

	if path == "" {
		if defaultPath, ok := DefaultPath(); ok {
			path = defaultPath
		}
	} else if _, err := c.osHandler.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("(config) %w: %s", ErrConfigNotFound, path)
		}

		return nil, fmt.Errorf("(config) failed to stat: %w", err)
	}

	if path != "" {
		data, err := c.configHandler.Read(path)
		if err != nil {
			return nil, fmt.Errorf("(config) failed to read: %w", err)
		}
		envMap = data

		slog.Debug("Loaded configuration file", "path", path)
	}

	c.applyEnvironment(envMap)

	return parse(envMap)
}

func (c *Handler) applyEnvironment(envMap map[string]string) {
	if c.lookupEnv == nil {
		return
	}

	for _, key := range []string{KeySymbolic, KeyRelative, KeyForce, KeyBackup, KeySuffix, KeyFilesOnly, KeyLogLevel} {
		if value, ok := c.lookupEnv(key); ok {
			envMap[key] = value
		}
	}
}

func parse(envMap map[string]string) (*Config, error) {
	config := &Config{
		Options:  schema.DefaultLinkOptions(),
		LogLevel: MapKeyToString(envMap, KeyLogLevel),
	}

	bools := []struct {
		key    string
		target *bool
	}{
		{KeySymbolic, &config.Options.Symbolic},
		{KeyRelative, &config.Options.Relative},
		{KeyForce, &config.Options.Force},
		{KeyBackup, &config.Options.Backup},
		{KeyFilesOnly, &config.Options.SymlinkFilesOnly},
	}

	for _, b := range bools {
		value, err := MapKeyToBool(envMap, b.key)
		if err != nil {
			return nil, fmt.Errorf("(config) %w", err)
		}
		*b.target = value
	}

	if suffix := MapKeyToString(envMap, KeySuffix); suffix != "" {
		config.Options.BackupSuffix = suffix
	}

	return config, nil
}

// MapKeyToString returns the value of key, or an empty string if unset.
func MapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return value
	}

	return ""
}

// MapKeyToBool returns the boolean value of key, which is false if unset.
// Accepted are yes/no, true/false, on/off and 1/0 in any case.
func MapKeyToBool(envMap map[string]string, key string) (bool, error) {
	value := strings.ToLower(strings.TrimSpace(MapKeyToString(envMap, key)))

	switch value {
	case "", "no", "false", "off", "0":
		return false, nil
	case "yes", "true", "on", "1":
		return true, nil
	default:
		return false, fmt.Errorf("%w: %s=%q", ErrInvalidBool, key, value)
	}
}
