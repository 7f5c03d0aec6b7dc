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

// Package logging configures the process-wide slog logger used by the
// cookbookd server and the cookbook CLI.
//
// Records are JSON on stderr and always carry the module and version
// attributes. Debug records also carry their source location.
//
// # Levels
//
// ParseLogLevel accepts debug, info, warn (or warning) and error in any
// case. Anything else is info. The server reads LOG_LEVEL; the CLI takes
// --log-level or COOKBOOK_LOG_LEVEL and passes it explicitly:
//
//	logging.SetDefaultStructuredLogger("cookbookd", version)
//	logging.SetDefaultStructuredLoggerWithLevel("cookbook", version, level)
//
// A record from the registry looks like:
//
//	{"time":"2025-01-15T10:30:00Z","level":"INFO","msg":"catalog loaded",
//	 "module":"cookbookd","version":"v1.0.0","entries":3,"total":3}
//
// NewLogLogger adapts the handler for APIs that still want a *log.Logger,
// such as http.Server.ErrorLog.
package logging
