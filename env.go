// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package smppclient holds process-wide helpers shared by the SMPP client
// service binaries.
package smppclient

import (
	"os"

	"github.com/subosito/gotenv"
)

// Version is the service version reported on startup.
const Version = "0.1.0"

// Env reads specified environment variable. If no value has been found,
// fallback is returned.
func Env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

// LoadEnvFile loads environment variables defined in an .env formatted file.
func LoadEnvFile(envfilepath string) error {
	return gotenv.Load(envfilepath)
}
