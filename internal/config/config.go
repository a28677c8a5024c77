// Package config contains the configuration of the govapi command.
//
// The configuration is a JSON file that may contain comments and
// trailing commas (see github.com/tailscale/hujson). By default we
// keep it inside the govapi home directory (see [DefaultHome]).
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/govapi/govapi/pkg/govapi"
	"github.com/pkg/errors"
	"github.com/tailscale/hujson"
)

// Version is the current version of the config file format.
const Version = 1

// StoreKey is the key under which we save the config in a [model.KeyValueStore].
const StoreKey = "config.json"

// Environment variables overriding the values in the config file.
const (
	EnvToken    = "GOVAPI_TOKEN"
	EnvAppToken = "GOVAPI_APP_TOKEN"
	EnvHome     = "GOVAPI_HOME"
)

// Config is the govapi command configuration.
type Config struct {
	// Private settings
	Comment string `json:"_,omitempty"`
	Version int64  `json:"_version"`

	// Token is the MANDATORY token identifying the caller.
	Token string `json:"token"`

	// AppToken is the OPTIONAL application token.
	AppToken string `json:"app_token,omitempty"`

	// ResponseFormat is the OPTIONAL default response format.
	ResponseFormat govapi.ResponseFormat `json:"response_format,omitempty"`

	// ServiceRoot is the OPTIONAL service root URL.
	ServiceRoot string `json:"service_root,omitempty"`

	mutex sync.Mutex
	path  string
}

// ParseConfig returns config from JSON bytes. The bytes may use the
// HuJSON extensions (comments and trailing commas).
func ParseConfig(b []byte) (*Config, error) {
	std, err := hujson.Standardize(b)
	if err != nil {
		return nil, errors.Wrap(err, "parsing hujson")
	}

	c := &Config{}
	if err := json.Unmarshal(std, c); err != nil {
		return nil, errors.Wrap(err, "parsing json")
	}

	if err := c.Default(); err != nil {
		return nil, errors.Wrap(err, "defaulting")
	}

	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "validating")
	}

	return c, nil
}

// ReadConfig reads the configuration from the path. Write will
// later save the configuration to the same path.
func ReadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}

	c, err := ParseConfig(b)
	if err != nil {
		return nil, errors.Wrap(err, "parsing config")
	}
	c.path = path
	return c, nil
}

// New returns an empty config that Write saves to path.
func New(path string) *Config {
	c := &Config{path: path}
	c.Default()
	return c
}

// Path returns the path used by Write.
func (c *Config) Path() string {
	return c.path
}

// marshal returns the indented JSON serialization of the config.
func (c *Config) marshal() ([]byte, error) {
	c.Lock()
	defer c.Unlock()
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "marshalling config")
	}
	return append(data, '\n'), nil
}

// Write the config file in json to the path
func (c *Config) Write() error {
	if c.path == "" {
		return errors.New("config file path is empty")
	}
	data, err := c.marshal()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0700); err != nil {
		return errors.Wrap(err, "creating config dir")
	}
	// The config contains the API tokens
	if err := os.WriteFile(c.path, data, 0600); err != nil {
		return errors.Wrap(err, "writing config JSON")
	}
	return nil
}

// Lock acquires the write mutex
func (c *Config) Lock() {
	c.mutex.Lock()
}

// Unlock releases the write mutex
func (c *Config) Unlock() {
	c.mutex.Unlock()
}

// Default config settings
func (c *Config) Default() error {
	if c.Version == 0 {
		c.Version = Version
	}
	return nil
}

// Validate the config file
func (c *Config) Validate() error {
	if c.Version > Version {
		return errors.Errorf("unsupported config version: %d", c.Version)
	}
	if c.ResponseFormat != "" {
		if _, err := govapi.ValidateFormat(c.ResponseFormat); err != nil {
			return err
		}
	}
	return nil
}

// ApplyEnv overrides the tokens of cc using the environment variables read
// using the given lookup function (usually [os.LookupEnv]). Empty variables
// are ignored. The overrides only affect cc: we never save them.
func ApplyEnv(cc *govapi.Config, lookup func(key string) (string, bool)) {
	if value, found := lookup(EnvToken); found && value != "" {
		cc.Token = value
	}
	if value, found := lookup(EnvAppToken); found && value != "" {
		cc.AppToken = value
	}
}

// ClientConfig returns the [govapi.Config] for constructing a client. The
// caller is responsible for filling the HTTPClient, Logger, and UserAgent.
func (c *Config) ClientConfig() govapi.Config {
	c.Lock()
	defer c.Unlock()
	return govapi.Config{
		Token:       c.Token,
		AppToken:    c.AppToken,
		Format:      c.ResponseFormat,
		ServiceRoot: c.ServiceRoot,
	}
}

// DefaultHome returns the govapi home directory, which is the value of
// the GOVAPI_HOME environment variable, if set, or ~/.govapi.
func DefaultHome() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "finding the home directory")
	}
	return filepath.Join(home, ".govapi"), nil
}
