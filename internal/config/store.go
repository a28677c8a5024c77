package config

import (
	"github.com/govapi/govapi/internal/kvstore"
	"github.com/govapi/govapi/internal/model"
	"github.com/pkg/errors"
)

// Load reads the config from the given store. A missing config is not an
// error: we return a default config, which the configure command fills.
func Load(store model.KeyValueStore) (*Config, error) {
	data, err := store.Get(StoreKey)
	if errors.Is(err, kvstore.ErrNoSuchKey) {
		c := &Config{}
		if err := c.Default(); err != nil {
			return nil, errors.Wrap(err, "defaulting")
		}
		return c, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "loading config")
	}
	c, err := ParseConfig(data)
	if err != nil {
		return nil, errors.Wrap(err, "parsing config")
	}
	return c, nil
}

// Save writes the config into the given store.
func (c *Config) Save(store model.KeyValueStore) error {
	data, err := c.marshal()
	if err != nil {
		return err
	}
	if err := store.Set(StoreKey, data); err != nil {
		return errors.Wrap(err, "saving config")
	}
	return nil
}
