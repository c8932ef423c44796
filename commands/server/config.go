package server

import (
	"github.com/iov-one/revshare/errors"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix of all environment variables read by the server.
const EnvPrefix = "REVSHARE"

// Config holds the settings of the start command. Values are read from the
// environment first and can be overwritten by command line flags.
type Config struct {
	Bind  string `default:"tcp://localhost:26658" envconfig:"BIND"`
	Debug bool   `envconfig:"DEBUG"`
}

// LoadConfig reads the server configuration from REVSHARE_* environment
// variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrInput, err.Error())
	}
	return cfg, nil
}
