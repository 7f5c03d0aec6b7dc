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
)

func exportCmd(cfg *settings) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Write the server's registered entries as a catalog.",
		Description: `The result can be loaded back with "cookbook load" or served with
COOKBOOK_CATALOG.

  cookbook export --output catalog.yaml
  cookbook export --output cm://cookbook/catalog --format json`,
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			c, err := cfg.client(cmd)
			if err != nil {
				return err
			}
			catalog, err := c.Entries(ctx)
			if err != nil {
				return err
			}
			return cfg.writeOutput(ctx, cmd, catalog)
		},
	}
}
