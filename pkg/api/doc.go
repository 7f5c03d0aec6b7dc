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

// Package api wires the cookbook HTTP service: structured logging, the
// entry store, optional catalog seeding, and the shared server.
//
// Environment:
//
//	PORT                      listen port (default 8080)
//	LOG_LEVEL                 debug, info, warn or error (default info)
//	COOKBOOK_CATALOG          catalog to load at startup: file, http(s) URL or cm://namespace/name
//	SHUTDOWN_TIMEOUT_SECONDS  graceful shutdown budget
//	KUBECONFIG                used for cm:// catalogs outside a cluster
//
// A catalog that fails to load aborts startup.
//
// Routes:
//
//	POST /entry            register an ingredient or recipe
//	GET  /summary?name=X   flatten a recipe into base ingredients
//	POST /parse            normalize handwritten text into a name
//	GET  /entries          export all entries as a catalog
//	GET  /health, /ready   probes
//	GET  /metrics          Prometheus metrics
package api
