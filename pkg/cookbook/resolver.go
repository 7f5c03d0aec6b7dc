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

package cookbook

import (
	"log/slog"
	"math"
	"slices"
	"strings"
	"time"

	cberrors "github.com/NVIDIA/cookbook/pkg/errors"
)

// Resolver expands recipes against a Store. It holds no state of its own;
// every call resolves names against the store as it is at that moment.
type Resolver struct {
	store *Store
}

// NewResolver returns a resolver reading from store.
func NewResolver(store *Store) *Resolver {
	return &Resolver{store: store}
}

// Summarize flattens the named recipe into base ingredients and total cook
// time. It fails with NOT_FOUND when name is not a registered recipe, and
// otherwise returns whatever error Expand reports.
func (r *Resolver) Summarize(name string) (*Summary, error) {
	start := time.Now()
	summary, err := r.summarize(name)
	summaryDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		summaryFailures.WithLabelValues(string(cberrors.CodeOf(err))).Inc()
		slog.Debug("summary failed", "name", name, "error", err)
		return nil, err
	}

	slog.Debug("summary built",
		"name", name,
		"cookTime", summary.CookTime,
		"ingredients", len(summary.Ingredients),
		"duration", time.Since(start).String())
	return summary, nil
}

func (r *Resolver) summarize(name string) (*Summary, error) {
	recipe, err := r.store.LookupRecipe(name)
	if err != nil {
		return nil, err
	}

	ingredients, cookTime, err := r.expand(recipe.RequiredItems, []string{recipe.Name})
	if err != nil {
		return nil, err
	}

	return &Summary{
		Name:        recipe.Name,
		CookTime:    cookTime,
		Ingredients: ingredients,
	}, nil
}

// Expand resolves items in order. Recipes are expanded recursively with
// every nested quantity multiplied by the outer quantity; the same
// ingredient reached through different items is listed once per path.
// Any unresolved name, cycle, or overflow aborts the whole expansion.
func (r *Resolver) Expand(items []RequiredItem) ([]IngredientQuantity, int, error) {
	return r.expand(items, nil)
}

// expand tracks the recipes on the current recursion path only, so a recipe
// reached twice through separate branches is not mistaken for a cycle.
func (r *Resolver) expand(items []RequiredItem, path []string) ([]IngredientQuantity, int, error) {
	out := make([]IngredientQuantity, 0, len(items))
	total := 0

	for _, item := range items {
		entry, ok := r.store.Get(item.Name)
		if !ok {
			return nil, 0, cberrors.NewWithContext(cberrors.ErrCodeUnresolvedReference,
				"required item is not registered", map[string]any{"name": item.Name, "path": slices.Clone(path)})
		}

		var (
			itemTime int
			err      error
		)
		switch entry.Kind {
		case KindIngredient:
			out = append(out, IngredientQuantity{Name: entry.Name, Quantity: item.Quantity})
			itemTime, err = multiply(entry.CookTime, item.Quantity, entry.Name)

		case KindRecipe:
			if i := slices.Index(path, entry.Name); i >= 0 {
				cycle := append(slices.Clone(path[i:]), entry.Name)
				return nil, 0, cberrors.NewWithContext(cberrors.ErrCodeCyclicReference,
					"recipe requires itself: "+strings.Join(cycle, " -> "), map[string]any{"name": entry.Name, "path": cycle})
			}

			nested, nestedTime, nestedErr := r.expand(entry.RequiredItems, append(slices.Clone(path), entry.Name))
			if nestedErr != nil {
				return nil, 0, nestedErr
			}
			for _, n := range nested {
				q, qErr := multiply(n.Quantity, item.Quantity, n.Name)
				if qErr != nil {
					return nil, 0, qErr
				}
				out = append(out, IngredientQuantity{Name: n.Name, Quantity: q})
			}
			itemTime, err = multiply(nestedTime, item.Quantity, entry.Name)
		}
		if err != nil {
			return nil, 0, err
		}

		if total, err = add(total, itemTime, item.Name); err != nil {
			return nil, 0, err
		}
	}

	return out, total, nil
}

// multiply computes a*b for a >= 0 and b >= 1.
func multiply(a, b int, name string) (int, error) {
	if b != 0 && a > math.MaxInt/b {
		return 0, overflow(name)
	}
	return a * b, nil
}

// add computes a+b for non-negative operands.
func add(a, b int, name string) (int, error) {
	if a > math.MaxInt-b {
		return 0, overflow(name)
	}
	return a + b, nil
}

func overflow(name string) error {
	return cberrors.NewWithContext(cberrors.ErrCodeQuantityOverflow,
		"scaled quantity or cook time exceeds the supported range", map[string]any{"name": name})
}
