// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package logger contains a structured JSON logger used by the SMPP client
// service. Severity levels carry numeric values so that configuration can
// map level names to severities.
package logger

import (
	"io"
	"os"

	"github.com/go-kit/log"
)

var _ Logger = (*logger)(nil)

// Logger specifies logging API.
type Logger interface {
	// Debug logs any object in JSON format on debug level.
	Debug(msg string)
	// Info logs any object in JSON format on info level.
	Info(msg string)
	// Warn logs any object in JSON format on warning level.
	Warn(msg string)
	// Error logs any object in JSON format on error level.
	Error(msg string)
	// Fatal logs any object in JSON format on fatal level and exits.
	Fatal(msg string)
}

type logger struct {
	kitLogger log.Logger
	level     Level
}

// New returns a wrapped go kit logger that discards entries below the
// given severity level name.
func New(out io.Writer, levelText string) (Logger, error) {
	var level Level
	if err := level.UnmarshalText(levelText); err != nil {
		return nil, err
	}
	l := log.NewJSONLogger(log.NewSyncWriter(out))
	l = log.With(l, "ts", log.DefaultTimestampUTC)
	return &logger{l, level}, nil
}

func (l logger) Debug(msg string) {
	if Debug.isAllowed(l.level) {
		_ = l.kitLogger.Log("level", Debug.String(), "message", msg)
	}
}

func (l logger) Info(msg string) {
	if Info.isAllowed(l.level) {
		_ = l.kitLogger.Log("level", Info.String(), "message", msg)
	}
}

func (l logger) Warn(msg string) {
	if Warn.isAllowed(l.level) {
		_ = l.kitLogger.Log("level", Warn.String(), "message", msg)
	}
}

func (l logger) Error(msg string) {
	if Error.isAllowed(l.level) {
		_ = l.kitLogger.Log("level", Error.String(), "message", msg)
	}
}

func (l logger) Fatal(msg string) {
	_ = l.kitLogger.Log("fatal", msg)
	os.Exit(1)
}
