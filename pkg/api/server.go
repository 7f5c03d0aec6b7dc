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

package api

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/NVIDIA/cookbook/pkg/cookbook"
	"github.com/NVIDIA/cookbook/pkg/defaults"
	"github.com/NVIDIA/cookbook/pkg/logging"
	"github.com/NVIDIA/cookbook/pkg/serializer"
	"github.com/NVIDIA/cookbook/pkg/server"
)

// EnvCatalog names a catalog (path, URL, or cm://namespace/name) loaded at startup.
const EnvCatalog = "COOKBOOK_CATALOG"

const (
	name           = "cookbookd"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/cookbook/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve runs the cookbook API until SIGINT or SIGTERM.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	s, _, err := newServer(ctx, os.Getenv(EnvCatalog))
	if err != nil {
		slog.Error("startup failed", "error", err)
		return err
	}

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}
	return nil
}

// newServer builds the store, seeds it from catalogSource when set, and
// mounts the cookbook routes.
func newServer(ctx context.Context, catalogSource string) (*server.Server, *cookbook.Store, error) {
	store := cookbook.NewStore()

	if src := strings.TrimSpace(catalogSource); src != "" {
		if err := seed(ctx, store, src); err != nil {
			return nil, nil, err
		}
	}

	h := cookbook.NewHandler(store, version)
	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(h.Routes()),
	)
	return s, store, nil
}

func seed(ctx context.Context, store *cookbook.Store, src string) error {
	ctx, cancel := context.WithTimeout(ctx, defaults.CatalogLoadTimeout)
	defer cancel()

	cat, err := serializer.FromFileWithKubeconfig[cookbook.Catalog](ctx, src, "")
	if err != nil {
		return fmt.Errorf("failed to read catalog %s: %w", src, err)
	}

	n, err := cookbook.LoadCatalog(store, cat)
	if err != nil {
		return fmt.Errorf("failed to load catalog %s: %w", src, err)
	}

	slog.Info("seeded from catalog", "source", src, "entries", n)
	return nil
}
