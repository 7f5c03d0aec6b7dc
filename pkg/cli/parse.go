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
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/cookbook/pkg/normalize"
)

func parseCmd(cfg *settings) *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Normalize a handwritten recipe name.",
		ArgsUsage: "<text>",
		Description: `Applies the canonical name rules: hyphens and underscores become
spaces, characters other than letters and spaces are dropped, whitespace is
collapsed, and each word is capitalized.

  cookbook parse "riZZ-o_TT  o"   # Rizz O Tt O

With --remote the server's /parse endpoint is used instead.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "remote",
				Usage: "normalize on the server instead of locally",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() == 0 {
				return fmt.Errorf("parse requires the text to normalize")
			}
			input := strings.Join(cmd.Args().Slice(), " ")

			var (
				out string
				err error
			)
			if cmd.Bool("remote") {
				c, cerr := cfg.client(cmd)
				if cerr != nil {
					return cerr
				}
				out, err = c.Parse(ctx, input)
			} else {
				out, err = normalize.Name(input)
			}
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.Root().Writer, out)
			return err
		},
	}
}
