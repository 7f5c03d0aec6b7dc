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
	"net/http"
	"testing"
	"time"

	"github.com/NVIDIA/cookbook/pkg/defaults"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv(EnvPort, "")
	t.Setenv(EnvShutdownTimeoutSeconds, "")
	t.Setenv(EnvRateLimit, "")

	cfg := NewConfig()
	assert.Equal(t, "server", cfg.Name)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, rate.Limit(100), cfg.RateLimit)
	assert.Equal(t, 200, cfg.RateLimitBurst)
	assert.Equal(t, defaults.ServerReadTimeout, cfg.ReadTimeout)
	assert.Equal(t, defaults.ServerShutdownTimeout, cfg.ShutdownTimeout)
	assert.NotNil(t, cfg.Handlers)
}

func TestNewConfig_EnvOverrides(t *testing.T) {
	tests := []struct {
		name         string
		env          map[string]string
		wantPort     int
		wantShutdown time.Duration
		wantLimit    rate.Limit
	}{
		{
			name:         "all set",
			env:          map[string]string{EnvPort: "9000", EnvShutdownTimeoutSeconds: "5", EnvRateLimit: "10"},
			wantPort:     9000,
			wantShutdown: 5 * time.Second,
			wantLimit:    10,
		},
		{
			name:         "invalid values ignored",
			env:          map[string]string{EnvPort: "abc", EnvShutdownTimeoutSeconds: "-1", EnvRateLimit: "0"},
			wantPort:     8080,
			wantShutdown: defaults.ServerShutdownTimeout,
			wantLimit:    100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg := NewConfig()
			assert.Equal(t, tt.wantPort, cfg.Port)
			assert.Equal(t, tt.wantShutdown, cfg.ShutdownTimeout)
			assert.Equal(t, tt.wantLimit, cfg.RateLimit)
		})
	}
}

func TestNegotiateAPIVersion(t *testing.T) {
	tests := []struct {
		accept string
		want   string
	}{
		{"", DefaultAPIVersion},
		{"application/json", DefaultAPIVersion},
		{"application/vnd.nvidia.cookbook.v1+json", "v1"},
		{"text/html, application/vnd.nvidia.cookbook.v1+json", "v1"},
		{"application/vnd.nvidia.cookbook.v9+json", DefaultAPIVersion},
	}

	for _, tt := range tests {
		t.Run(tt.accept, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, "/", nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			assert.Equal(t, tt.want, negotiateAPIVersion(req))
		})
	}
}
