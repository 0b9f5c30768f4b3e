// Copyright (c) 2020 - for information on the respective copyright owner
// see the NOTICE file and/or the repository at
// https://github.com/direct-state-transfer/walletkit
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config parses walletkit configuration from a config file and the
// environment into an explicit walletkit.Config value.
package config

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/direct-state-transfer/walletkit"
	"github.com/direct-state-transfer/walletkit/envelope"
	"github.com/direct-state-transfer/walletkit/log"
	"github.com/direct-state-transfer/walletkit/provider"
)

// EnvPrefix is the prefix of environment variables that override values in the config file.
// For example, WALLETKIT_PROVIDER_APIKEY sets provider.apikey.
const EnvPrefix = "WALLETKIT"

var defaults = map[string]interface{}{
	"loglevel":        "info",
	"logfile":         "",
	"keystoredir":     "keystore",
	"network":         "mainnet",
	"provider.apikey": "",
	"provider.host":   provider.DefaultHost,
	"scrypt.n":        0,
	"scrypt.p":        0,
}

// Parse reads the configuration from the given file, overlays values from the environment and validates it.
// If configFile is empty, only defaults and the environment are used. Values already set on v (for example,
// bound command line flags) take precedence over both.
func Parse(v *viper.Viper, configFile string) (walletkit.Config, error) {
	if v == nil {
		v = viper.New()
	}
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(filepath.Clean(configFile))
		if err := v.ReadInConfig(); err != nil {
			return walletkit.Config{}, errors.Wrap(err, "reading config file")
		}
	}

	var cfg walletkit.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return walletkit.Config{}, errors.Wrap(err, "decoding config")
	}
	return cfg, Validate(cfg)
}

// Validate checks the values in the configuration.
func Validate(cfg walletkit.Config) error {
	if !log.IsSupportedLevel(cfg.LogLevel) {
		return errors.Errorf("unsupported log level - %s", cfg.LogLevel)
	}
	if cfg.KeystoreDir == "" {
		return errors.New("keystore dir is not set")
	}
	if cfg.Network != "" && !isKnownNetwork(cfg.Network) {
		return errors.Errorf("unknown network - %s", cfg.Network)
	}
	if cfg.Scrypt.N < 0 || cfg.Scrypt.P < 0 {
		return errors.New("scrypt parameters must not be negative")
	}
	// Mnemonics are encrypted with these parameters too.
	if err := EnvelopeParams(cfg.Scrypt).Validate(); err != nil {
		return errors.Wrap(err, "scrypt")
	}
	return nil
}

// EnvelopeParams returns the parameters for encrypting mnemonics derived from the scrypt config.
// Fields that are zero take the value of envelope.DefaultScryptParams.
func EnvelopeParams(cfg walletkit.ScryptConfig) envelope.ScryptParams {
	params := envelope.DefaultScryptParams
	if cfg.N != 0 {
		params.N = cfg.N
	}
	if cfg.P != 0 {
		params.P = cfg.P
	}
	return params
}

func isKnownNetwork(network string) bool {
	for _, n := range provider.Networks() {
		if n == network {
			return true
		}
	}
	return false
}
