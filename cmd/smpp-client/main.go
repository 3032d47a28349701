// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package main contains smpp-client main function to start the SMPP client service.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	smppclient "github.com/absmach/smpp-client"
	"github.com/absmach/smpp-client/bootstrap"
	"github.com/absmach/smpp-client/internal/env"
	mflog "github.com/absmach/smpp-client/logger"
	"github.com/absmach/smpp-client/smpp"
	gosmpp "github.com/fiorix/go-smpp/smpp"
	"github.com/fiorix/go-smpp/smpp/pdu"
	"github.com/fiorix/go-smpp/smpp/pdu/pdufield"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

const (
	svcName       = "smpp-client"
	clientSection = "client"
)

type config struct {
	LogLevel   string `env:"SMPP_CLIENT_LOG_LEVEL"   envDefault:""`
	ConfigFile string `env:"SMPP_CLIENT_CONFIG_FILE" envDefault:"/etc/smpp-client/config.toml"`
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)

	if envFile := smppclient.Env("SMPP_CLIENT_ENV_FILE", ""); envFile != "" {
		if err := smppclient.LoadEnvFile(envFile); err != nil {
			log.Fatalf("failed to load env file %s : %s", envFile, err)
		}
	}

	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to load %s configuration : %s", svcName, err)
	}

	store := viper.New()
	store.SetConfigFile(cfg.ConfigFile)
	if err := store.ReadInConfig(); err != nil {
		log.Fatalf("failed to read %s configuration file : %s", svcName, err)
	}

	svcCfg, err := bootstrap.Load(store)
	if err != nil {
		log.Fatalf("failed to load %s bootstrap configuration : %s", svcName, err)
	}

	// Env takes precedence over the file store for the service log level.
	level := svcCfg.LogLevel.String()
	if cfg.LogLevel != "" {
		level = cfg.LogLevel
	}
	logger, err := mflog.New(logOutput(svcCfg.LogFile), level)
	if err != nil {
		log.Fatalf("failed to init logger: %s", err)
	}
	logger.Info(fmt.Sprintf("%s service %s started", svcName, smppclient.Version))

	fields, err := smpp.TranslateAll(store.GetStringMap(clientSection))
	if err != nil {
		logger.Fatal(fmt.Sprintf("failed to translate client configuration keys : %s", err))
	}
	clientCfg, err := smpp.Build(fields)
	if err != nil {
		logger.Fatal(fmt.Sprintf("failed to build client configuration : %s", err))
	}

	session, err := smpp.NewSession(clientCfg, handlePDU(logger))
	if err != nil {
		logger.Fatal(fmt.Sprintf("failed to create SMPP session : %s", err))
	}
	defer session.Close()

	g.Go(func() error {
		return watch(ctx, clientCfg, session, logger)
	})

	g.Go(func() error {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		select {
		case sig := <-c:
			cancel()
			logger.Info(fmt.Sprintf("%s service shutdown by signal: %s", svcName, sig))
			return nil
		case <-ctx.Done():
			return nil
		}
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("%s service terminated: %s", svcName, err))
	}
}

// watch binds the session and follows connection status changes until the
// context is canceled or the configured policy gives up on reconnecting.
func watch(ctx context.Context, cfg smpp.Config, session gosmpp.ClientConn, logger mflog.Logger) error {
	status := session.Bind()
	for {
		select {
		case <-ctx.Done():
			return nil
		case st, ok := <-status:
			if !ok {
				return nil
			}
			switch st.Status() {
			case gosmpp.Connected:
				logger.Info(fmt.Sprintf("%s bound to %s:%d as %s", cfg.ID, cfg.Host, cfg.Port, cfg.BindOperation))
			case gosmpp.Disconnected:
				if !cfg.ReconnectOnConnectionLoss {
					return st.Error()
				}
				logger.Warn(fmt.Sprintf("%s disconnected, rebinding: %v", cfg.ID, st.Error()))
			default:
				if !cfg.ReconnectOnConnectionFailure {
					return st.Error()
				}
				logger.Warn(fmt.Sprintf("%s %s, retrying: %v", cfg.ID, st.Status(), st.Error()))
			}
		}
	}
}

func handlePDU(logger mflog.Logger) gosmpp.HandlerFunc {
	return func(p pdu.Body) {
		switch p.Header().ID {
		case pdu.DeliverSMID:
			f := p.Fields()
			logger.Info(fmt.Sprintf("deliver_sm from %v: %v", f[pdufield.SourceAddr], f[pdufield.ShortMessage]))
		default:
			logger.Debug(fmt.Sprintf("inbound PDU %s", p.Header().ID))
		}
	}
}

func logOutput(path string) io.Writer {
	if path == "" {
		return os.Stdout
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Printf("failed to open log file %s, falling back to stdout: %s", path, err)
		return os.Stdout
	}
	return f
}
