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

// Package cli implements the cookbook command-line client.
//
// # Commands
//
// parse - Normalize a handwritten name locally (or with --remote on the server):
//
//	cookbook parse "meat-ball_s"
//
// add - Register a single entry:
//
//	cookbook add ingredient --name Egg --cook-time 6
//	cookbook add recipe --name Omelette --item Egg=2 --item Butter=1
//
// load - Register every entry of a catalog file, URL, or ConfigMap:
//
//	cookbook load --catalog breakfast.yaml
//
// summary - Summarize a recipe on the server, or locally against a catalog:
//
//	cookbook summary --name Omelette [--catalog breakfast.yaml] [--format json]
//
// export - Write the server's entries as a catalog:
//
//	cookbook export --output cm://cookbook/catalog
//
// # Global Flags
//
//	--server, -s   Server URL (default: http://localhost:8080)
//	--config       Config file (default: $HOME/.cookbook.yaml)
//	--log-level    Logging verbosity (debug, info, warn, error)
//	--kubeconfig   Kubeconfig for cm:// sources and destinations
//
// # Configuration
//
// Flags override COOKBOOK_* environment variables, which override the config
// file, for example:
//
//	server: http://cookbook.internal:8080
//	format: json
//
// Environment: COOKBOOK_SERVER, COOKBOOK_FORMAT, COOKBOOK_LOG_LEVEL,
// COOKBOOK_KUBECONFIG.
//
// # Exit Codes
//
//	0  Success
//	1  Any failure; the error is printed to stderr
package cli
