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

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/cookbook/pkg/cookbook"
)

func summaryCmd(cfg *settings) *cli.Command {
	return &cli.Command{
		Name:  "summary",
		Usage: "Summarize a recipe into base ingredients and total cook time.",
		Description: `Queries the server, or resolves locally when --catalog is given.

  cookbook summary --name Omelette
  cookbook summary --name Omelette --catalog breakfast.yaml --format json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "name",
				Aliases:  []string{"n"},
				Required: true,
				Usage:    "recipe name",
			},
			catalogFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			var (
				summary *cookbook.Summary
				err     error
			)
			if cmd.String("catalog") != "" {
				summary, err = cfg.localSummary(ctx, cmd)
			} else {
				summary, err = cfg.remoteSummary(ctx, cmd)
			}
			if err != nil {
				return err
			}
			return cfg.writeOutput(ctx, cmd, summary)
		},
	}
}

func (s *settings) localSummary(ctx context.Context, cmd *cli.Command) (*cookbook.Summary, error) {
	catalog, err := s.readCatalog(ctx, cmd)
	if err != nil {
		return nil, err
	}
	store := cookbook.NewStore()
	if _, err := cookbook.LoadCatalog(store, catalog); err != nil {
		return nil, err
	}
	return cookbook.NewResolver(store).Summarize(cmd.String("name"))
}

func (s *settings) remoteSummary(ctx context.Context, cmd *cli.Command) (*cookbook.Summary, error) {
	c, err := s.client(cmd)
	if err != nil {
		return nil, err
	}
	return c.Summary(ctx, cmd.String("name"))
}
