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

package server

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/NVIDIA/cookbook/pkg/defaults"
	"golang.org/x/time/rate"
)

const (
	// EnvPort overrides Config.Port.
	EnvPort = "PORT"
	// EnvShutdownTimeoutSeconds overrides Config.ShutdownTimeout.
	EnvShutdownTimeoutSeconds = "SHUTDOWN_TIMEOUT_SECONDS"
	// EnvRateLimit overrides Config.RateLimit (requests per second).
	EnvRateLimit = "RATE_LIMIT"
)

// Config holds server settings.
type Config struct {
	Name    string
	Version string

	// Handlers maps mux patterns to handlers; each is wrapped in the
	// middleware chain.
	Handlers map[string]http.HandlerFunc

	Address string
	Port    int

	RateLimit      rate.Limit // requests per second
	RateLimitBurst int

	MaxBulkRequests int

	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// NewConfig returns defaults with environment overrides applied.
func NewConfig() *Config {
	return parseConfig()
}

func parseConfig() *Config {
	cfg := &Config{
		Name:              "server",
		Version:           "undefined",
		Handlers:          map[string]http.HandlerFunc{},
		Port:              8080,
		RateLimit:         100,
		RateLimitBurst:    200,
		MaxBulkRequests:   100,
		ReadTimeout:       defaults.ServerReadTimeout,
		ReadHeaderTimeout: defaults.ServerReadHeaderTimeout,
		WriteTimeout:      defaults.ServerWriteTimeout,
		IdleTimeout:       defaults.ServerIdleTimeout,
		ShutdownTimeout:   defaults.ServerShutdownTimeout,
	}

	if port, ok := positiveIntEnv(EnvPort); ok {
		cfg.Port = port
	}
	if seconds, ok := positiveIntEnv(EnvShutdownTimeoutSeconds); ok {
		cfg.ShutdownTimeout = time.Duration(seconds) * time.Second
	}
	if limit, ok := positiveIntEnv(EnvRateLimit); ok {
		cfg.RateLimit = rate.Limit(limit)
		cfg.RateLimitBurst = 2 * limit
	}

	return cfg
}

func positiveIntEnv(key string) (int, bool) {
	s := os.Getenv(key)
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

func (c *Config) addr() string {
	return fmt.Sprintf("%s:%d", c.Address, c.Port)
}
