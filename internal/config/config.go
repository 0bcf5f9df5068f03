// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/BurntSushi/toml"
)

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var (
		c             Config
		JSONConfigEnv string
		err           error
	)

	// Read main configuration
	if path == "" {
		path = "./etc/"
	}

	if _, err = toml.DecodeFile(path+"main.toml", &c); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	// override it from env
	JSONConfigEnv = os.Getenv("BOS_CONFIG_JSON")

	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	if err = validate(&c); err != nil {
		return Config{}, err
	}

	return c, nil
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read config from env")
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate minimal config settings for bos and fill in the numbering
// defaults the original deployment seeded.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	switch c.DB.GormEngine {
	case EngineMySQL, EnginePostgres:
		if c.DB.Name == "" {
			return errors.Wrap(ErrDBNameEmpty, invalidErrMessage)
		}
	case EngineSQLite:
		if c.DB.Path == "" {
			return errors.Wrap(ErrDBPathEmpty, invalidErrMessage)
		}
	default:
		return errors.Wrap(ErrUnknownGormEngine, invalidErrMessage)
	}

	if c.Numbering.Customer.CounterStart == 0 {
		c.Numbering.Customer.CounterStart = DefaultCustomerCounterStart
	}

	if c.Numbering.Customer.Schema == "" {
		c.Numbering.Customer.Schema = DefaultCustomerSchema
	}

	if c.Numbering.Quote.CounterStart == 0 {
		c.Numbering.Quote.CounterStart = DefaultQuoteCounterStart
	}

	if c.Numbering.Quote.Schema == "" {
		c.Numbering.Quote.Schema = DefaultQuoteSchema
	}

	return nil
}
