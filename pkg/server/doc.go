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

// Package server provides the HTTP server shared by cookbook services.
//
// A Server wraps every configured handler in the same middleware chain:
//
//  1. Metrics (cookbook_http_* Prometheus series)
//  2. API version negotiation (Accept: application/vnd.nvidia.cookbook.v1+json)
//  3. Request ID (X-Request-Id, generated when missing or not a UUID)
//  4. Panic recovery
//  5. Rate limiting (token bucket, golang.org/x/time/rate)
//  6. Request logging
//
// /health, /ready and /metrics are mounted outside the chain. Unless a "/"
// handler is supplied, an index route lists the registered routes.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("cookbookd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/entry": h.HandleEntry,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Run blocks until SIGINT, SIGTERM or ctx cancellation and then drains
// in-flight requests for Config.ShutdownTimeout.
//
// # Configuration
//
// NewConfig applies environment overrides:
//
//	PORT                      listen port (default 8080)
//	SHUTDOWN_TIMEOUT_SECONDS  graceful shutdown budget (default 30)
//	RATE_LIMIT                requests per second; burst is twice the limit
//
// # Errors
//
// Handlers report failures with WriteError or WriteErrorFromErr, which render
// an ErrorResponse:
//
//	{
//	  "code": "DUPLICATE_NAME",
//	  "message": "entry already registered",
//	  "details": {"name": "Egg"},
//	  "requestId": "3f0c...",
//	  "timestamp": "2025-01-01T00:00:00Z",
//	  "retryable": false
//	}
package server
