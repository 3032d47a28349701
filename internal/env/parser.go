// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package env parses service configuration structs from environment
// variables, honoring `env` and `envDefault` struct tags.
package env

import (
	"github.com/caarlos0/env/v7"
)

// Options is a set of parsing options.
type Options struct {
	// Environment keys and values that will be accessible for the service.
	Environment map[string]string

	// TagName specifies another tag name to use rather than the default env.
	TagName string

	// RequiredIfNoDef automatically sets all fields as required if they do not declare envDefault.
	RequiredIfNoDef bool

	// Prefix defines a prefix for each key.
	Prefix string
}

// Parse parses an env-tagged struct from the process environment.
func Parse(v interface{}, opts ...Options) error {
	altOpts := []env.Options{}

	for _, opt := range opts {
		altOpts = append(altOpts, env.Options{
			Environment:     opt.Environment,
			TagName:         opt.TagName,
			RequiredIfNoDef: opt.RequiredIfNoDef,
			Prefix:          opt.Prefix,
		})
	}

	return env.Parse(v, altOpts...)
}
