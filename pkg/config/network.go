// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package config

import (
	"regexp"

	"gitlab.com/meridiannetwork/meridian/pkg/crypto/hash"
	"gitlab.com/meridiannetwork/meridian/pkg/errors"
)

// identifierRegex restricts names used as configuration keys.
var identifierRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,62}$`)

// ValidateIdentifier checks that a name is usable as a configuration key.
func ValidateIdentifier(name string) error {
	if !identifierRegex.MatchString(name) {
		return errors.ErrInvalidConfig.WithFormat("malformed identifier %q", name)
	}
	return nil
}

// Network is a known deployment: a chain context that signatures are bound
// to, plus operator-facing metadata.
type Network struct {
	// ChainContext is the chain domain separation context, the lowercase
	// hex form of a genesis document digest.
	ChainContext string `mapstructure:"chain_context"`

	// Description is a free-form operator note.
	Description string `mapstructure:"description,omitempty"`
}

// Validate performs config validation.
func (n *Network) Validate() error {
	var h hash.Hash
	if err := h.UnmarshalText([]byte(n.ChainContext)); err != nil {
		return errors.ErrInvalidConfig.WithFormat("malformed chain context %q: %w", n.ChainContext, err)
	}
	return nil
}

// Networks is the set of configured networks.
type Networks struct {
	// Default is the name of the default network.
	Default string `mapstructure:"default"`

	// All is a map of all configured networks.
	All map[string]*Network `mapstructure:"all"`
}

// Validate performs config validation.
func (n *Networks) Validate() error {
	if _, exists := n.All[n.Default]; n.Default != "" && !exists {
		return errors.ErrInvalidConfig.WithFormat("default network %q does not exist", n.Default)
	}

	for name, net := range n.All {
		if err := ValidateIdentifier(name); err != nil {
			return errors.ErrInvalidConfig.WithFormat("malformed network name %q", name)
		}
		if err := net.Validate(); err != nil {
			return errors.ErrInvalidConfig.WithFormat("network %q: %w", name, err)
		}
	}
	return nil
}

// Add adds a new network. The first network added becomes the default.
func (n *Networks) Add(name string, net *Network) error {
	if err := ValidateIdentifier(name); err != nil {
		return err
	}
	if _, exists := n.All[name]; exists {
		return errors.ErrInvalidConfig.WithFormat("network %q already exists", name)
	}
	if err := net.Validate(); err != nil {
		return err
	}

	if n.All == nil {
		n.All = make(map[string]*Network)
	}
	n.All[name] = net

	if n.Default == "" {
		n.Default = name
	}
	return nil
}

// Remove removes an existing network.
func (n *Networks) Remove(name string) error {
	if _, exists := n.All[name]; !exists {
		return errors.ErrInvalidConfig.WithFormat("network %q does not exist", name)
	}
	delete(n.All, name)

	if n.Default == name {
		n.Default = ""
	}
	return nil
}

// SetDefault sets the given network as the default one.
func (n *Networks) SetDefault(name string) error {
	if _, exists := n.All[name]; !exists {
		return errors.ErrInvalidConfig.WithFormat("network %q does not exist", name)
	}
	n.Default = name
	return nil
}
