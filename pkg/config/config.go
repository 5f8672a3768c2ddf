// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package config holds the tool configuration: the set of known networks and
// the chain contexts their signatures are bound to.
package config

import (
	"github.com/spf13/viper"

	"gitlab.com/meridiannetwork/meridian/pkg/errors"
)

// Config is the persistent tool configuration.
type Config struct {
	viper *viper.Viper

	Networks Networks `mapstructure:"networks"`
}

// Load loads and validates the configuration from viper.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{viper: v}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.ErrInvalidConfig.Wrap(err)
	}
	if err := cfg.Networks.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save validates the configuration and writes it back to the file viper
// loaded it from.
func (cfg *Config) Save() error {
	if err := cfg.Networks.Validate(); err != nil {
		return err
	}

	// viper cannot marshal nested structs; hand it plain maps.
	all := make(map[string]interface{}, len(cfg.Networks.All))
	for name, net := range cfg.Networks.All {
		m := map[string]interface{}{"chain_context": net.ChainContext}
		if net.Description != "" {
			m["description"] = net.Description
		}
		all[name] = m
	}
	cfg.viper.Set("networks", map[string]interface{}{
		"default": cfg.Networks.Default,
		"all":     all,
	})
	if err := cfg.viper.WriteConfig(); err != nil {
		return errors.ErrInvalidConfig.Wrap(err)
	}
	return nil
}
