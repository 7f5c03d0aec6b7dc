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
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/cookbook/pkg/client"
	"github.com/NVIDIA/cookbook/pkg/cookbook"
	"github.com/NVIDIA/cookbook/pkg/defaults"
	"github.com/NVIDIA/cookbook/pkg/serializer"
)

func loadCmd(cfg *settings) *cli.Command {
	return &cli.Command{
		Name:  "load",
		Usage: "Register every entry of a catalog on the server.",
		Description: `Reads a catalog document and registers its entries in parallel.
Recipes may be registered before the entries they require.

  cookbook load --catalog breakfast.yaml
  cookbook load --catalog https://example.com/catalog.json
  cookbook load --catalog cm://cookbook/catalog`,
		Flags: []cli.Flag{
			func() cli.Flag {
				f := catalogFlag()
				f.Required = true
				return f
			}(),
			&cli.IntFlag{
				Name:  "concurrency",
				Value: defaults.ClientMaxConcurrentRequests,
				Usage: "maximum parallel registrations",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			catalog, err := cfg.readCatalog(ctx, cmd)
			if err != nil {
				return err
			}

			c, err := cfg.client(cmd, client.WithConcurrency(cmd.Int("concurrency")))
			if err != nil {
				return err
			}
			regCtx, cancel := context.WithTimeout(ctx, defaults.CatalogRegisterTimeout)
			defer cancel()
			if err := c.RegisterAll(regCtx, catalog.Entries); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.Root().Writer, "registered %d entries\n", len(catalog.Entries))
			return err
		},
	}
}

// readCatalog loads and checks the catalog named by --catalog.
func (s *settings) readCatalog(ctx context.Context, cmd *cli.Command) (*cookbook.Catalog, error) {
	src := cmd.String("catalog")

	loadCtx, cancel := context.WithTimeout(ctx, defaults.CatalogLoadTimeout)
	defer cancel()

	catalog, err := serializer.FromFileWithKubeconfig[cookbook.Catalog](loadCtx, src, s.get(cmd, "kubeconfig"))
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog from %s: %w", src, err)
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	slog.Debug("catalog read", "source", src, "entries", len(catalog.Entries))
	return catalog, nil
}
