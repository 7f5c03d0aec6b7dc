// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/viper"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/cookbook/pkg/client"
	k8sclient "github.com/NVIDIA/cookbook/pkg/k8s/client"
	"github.com/NVIDIA/cookbook/pkg/logging"
)

const (
	name           = "cookbook"
	versionDefault = "dev"

	envPrefix      = "COOKBOOK"
	configFileName = ".cookbook"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Execute runs the CLI with os.Args and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout).Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// settings layers flags over the config file and COOKBOOK_* environment.
type settings struct {
	v *viper.Viper
}

func newSettings() *settings {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("server", client.DefaultServerURL)
	v.SetDefault("format", "yaml")
	return &settings{v: v}
}

// load reads path, or discovers $HOME/.cookbook.yaml and ./.cookbook.yaml.
// An explicit path must exist; a discovered one is optional.
func (s *settings) load(path string) error {
	if path != "" {
		s.v.SetConfigFile(path)
		if err := s.v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		return nil
	}

	if home, err := os.UserHomeDir(); err == nil {
		s.v.AddConfigPath(home)
	}
	s.v.AddConfigPath(".")
	s.v.SetConfigType("yaml")
	s.v.SetConfigName(configFileName)

	if err := s.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return nil
}

// get returns the flag value when set on the command line, else the
// config/env value, else the flag default.
func (s *settings) get(cmd *cli.Command, key string) string {
	if cmd.IsSet(key) {
		return cmd.String(key)
	}
	if v := s.v.GetString(key); v != "" {
		return v
	}
	return cmd.String(key)
}

func (s *settings) client(cmd *cli.Command, opts ...client.Option) (*client.Client, error) {
	return client.New(s.get(cmd, "server"), opts...)
}

func newRootCmd(out io.Writer) *cli.Command {
	cfg := newSettings()

	return &cli.Command{
		Name:                  name,
		Usage:                 "Register ingredients and recipes, and summarize recipes into base ingredients",
		Version:               fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		EnableShellCompletion: true,
		Writer:                out,
		ErrWriter:             os.Stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: fmt.Sprintf("config file (default is $HOME/%s.yaml)", configFileName),
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "log level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:    "server",
				Aliases: []string{"s"},
				Value:   client.DefaultServerURL,
				Usage:   "cookbook server URL (env COOKBOOK_SERVER, config key server)",
			},
			&cli.StringFlag{
				Name:  "kubeconfig",
				Usage: "kubeconfig used for cm:// catalogs (defaults to KUBECONFIG, then ~/.kube/config)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if err := cfg.load(cmd.String("config")); err != nil {
				return ctx, err
			}
			if kc := cfg.get(cmd, "kubeconfig"); kc != "" {
				if err := os.Setenv(k8sclient.EnvKubeconfig, kc); err != nil {
					return ctx, fmt.Errorf("failed to set %s: %w", k8sclient.EnvKubeconfig, err)
				}
			}
			level := cfg.get(cmd, "log-level")
			logging.SetDefaultStructuredLoggerWithLevel(name, version, level)
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"config", configUsed(cfg.v))
			return ctx, nil
		},
		Commands: []*cli.Command{
			parseCmd(cfg),
			addCmd(cfg),
			loadCmd(cfg),
			summaryCmd(cfg),
			exportCmd(cfg),
		},
	}
}

func configUsed(v *viper.Viper) string {
	if f := v.ConfigFileUsed(); f != "" {
		return filepath.Clean(f)
	}
	return "none"
}
