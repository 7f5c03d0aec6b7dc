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
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/cookbook/pkg/cookbook"
	"github.com/NVIDIA/cookbook/pkg/normalize"
)

func addCmd(cfg *settings) *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "Register an ingredient or recipe on the server.",
		Commands: []*cli.Command{
			addIngredientCmd(cfg),
			addRecipeCmd(cfg),
		},
	}
}

func normalizeFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:  "normalize",
		Usage: "normalize names before registering",
	}
}

func addIngredientCmd(cfg *settings) *cli.Command {
	return &cli.Command{
		Name:  "ingredient",
		Usage: "Register a base ingredient.",
		Description: `Example:

  cookbook add ingredient --name Egg --cook-time 6`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "name",
				Aliases:  []string{"n"},
				Required: true,
				Usage:    "ingredient name",
			},
			&cli.IntFlag{
				Name:  "cook-time",
				Usage: "cook time (zero or more)",
			},
			normalizeFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			req := cookbook.EntryRequest{
				Type:     cookbook.KindIngredient.String(),
				Name:     cmd.String("name"),
				CookTime: cmd.Int("cook-time"),
			}
			return cfg.register(ctx, cmd, req)
		},
	}
}

func addRecipeCmd(cfg *settings) *cli.Command {
	return &cli.Command{
		Name:  "recipe",
		Usage: "Register a recipe.",
		Description: `Each --item takes Name=Quantity. A recipe may require other recipes;
they are resolved when the recipe is summarized.

  cookbook add recipe --name Omelette --item Egg=2 --item Butter=1`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "name",
				Aliases:  []string{"n"},
				Required: true,
				Usage:    "recipe name",
			},
			&cli.StringSliceFlag{
				Name:    "item",
				Aliases: []string{"i"},
				Usage:   "required item as Name=Quantity (repeatable)",
			},
			normalizeFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			items := make([]cookbook.RequiredItem, 0, len(cmd.StringSlice("item")))
			for _, s := range cmd.StringSlice("item") {
				item, err := parseItem(s)
				if err != nil {
					return err
				}
				items = append(items, item)
			}
			req := cookbook.EntryRequest{
				Type:          cookbook.KindRecipe.String(),
				Name:          cmd.String("name"),
				RequiredItems: items,
			}
			return cfg.register(ctx, cmd, req)
		},
	}
}

// parseItem parses Name=Quantity. The name may contain spaces.
func parseItem(s string) (cookbook.RequiredItem, error) {
	name, qty, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return cookbook.RequiredItem{}, fmt.Errorf("invalid item %q: expected Name=Quantity", s)
	}
	n, err := strconv.Atoi(strings.TrimSpace(qty))
	if err != nil {
		return cookbook.RequiredItem{}, fmt.Errorf("invalid quantity in item %q: %w", s, err)
	}
	return cookbook.RequiredItem{Name: name, Quantity: n}, nil
}

// normalizeRequest rewrites the entry name and every required item name.
func normalizeRequest(req cookbook.EntryRequest) (cookbook.EntryRequest, error) {
	name, err := normalize.Name(req.Name)
	if err != nil {
		return req, err
	}
	req.Name = name

	items := make([]cookbook.RequiredItem, len(req.RequiredItems))
	for i, item := range req.RequiredItems {
		n, err := normalize.Name(item.Name)
		if err != nil {
			return req, err
		}
		items[i] = cookbook.RequiredItem{Name: n, Quantity: item.Quantity}
	}
	if req.RequiredItems != nil {
		req.RequiredItems = items
	}
	return req, nil
}

func (s *settings) register(ctx context.Context, cmd *cli.Command, req cookbook.EntryRequest) error {
	if cmd.Bool("normalize") {
		var err error
		if req, err = normalizeRequest(req); err != nil {
			return err
		}
	}
	// fail before the round trip
	if err := req.Validate(); err != nil {
		return err
	}

	c, err := s.client(cmd)
	if err != nil {
		return err
	}
	resp, err := c.Register(ctx, req)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.Root().Writer, "registered %s %q\n", resp.Type, resp.Name)
	return err
}
