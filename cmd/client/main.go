// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v11"

	"github.com/MKhiriev/go-user-auth/internal/adapter"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/tui"
	"github.com/MKhiriev/go-user-auth/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

type clientConfig struct {
	Adapter adapter.Config
	// Token is a bearer token from an earlier login.
	// Env: CLIENT_TOKEN
	Token string `env:"TOKEN"`
	// LogLevel narrows the client log level.
	// Env: CLIENT_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`
}

func main() {
	log := logger.NewLogger("auth-client")

	cfg, args, err := loadConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetGlobalLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	client, err := adapter.NewHTTPAuthClient(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create auth client")
	}
	client.SetToken(cfg.Token)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// Without a command the interactive client starts.
	if len(args) == 0 {
		ui, err := tui.New(client, buildInfo(), log)
		if err != nil {
			log.Fatal().Err(err).Msg("create tui")
		}
		if err = ui.Run(ctx); err != nil {
			fmt.Fprintln(os.Stderr, err)
			stop()
			os.Exit(1)
		}
		return
	}

	if err = run(ctx, client, args, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// loadConfig reads CLIENT_* environment variables and then lets flags
// override them. The remaining arguments form the command; none means
// the interactive client.
func loadConfig(args []string) (clientConfig, []string, error) {
	var cfg clientConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "CLIENT_"}); err != nil {
		return cfg, nil, fmt.Errorf("error parsing env: %w", err)
	}

	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.StringVar(&cfg.Adapter.Address, "a", cfg.Adapter.Address, "Server address")
	fs.DurationVar(&cfg.Adapter.Timeout, "timeout", cfg.Adapter.Timeout, "Request timeout")
	fs.StringVar(&cfg.Token, "token", cfg.Token, "Bearer token")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level")
	version := fs.Bool("version", false, "Print build info and exit")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: %s [flags] [command [args]]\n\n%s\nflags:\n", os.Args[0], usage)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return cfg, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if *version {
		printBuildInfo()
		os.Exit(0)
	}

	return cfg, fs.Args(), nil
}

func buildInfo() models.AppBuildInfo {
	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}

func printBuildInfo() {
	info := buildInfo()
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
