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
	"strings"

	cberrors "github.com/NVIDIA/cookbook/pkg/errors"
)

// EntryRequest is the registration payload accepted by POST /entry and
// stored in catalogs.
type EntryRequest struct {
	Type          string         `json:"type" yaml:"type"`
	Name          string         `json:"name" yaml:"name"`
	CookTime      int            `json:"cookTime,omitempty" yaml:"cookTime,omitempty"`
	RequiredItems []RequiredItem `json:"requiredItems,omitempty" yaml:"requiredItems,omitempty"`
}

// Validate checks the request without converting it.
func (r EntryRequest) Validate() error {
	_, err := r.ToEntry()
	return err
}

// ToEntry converts and validates the request. Fields that do not apply to
// the requested type are dropped.
func (r EntryRequest) ToEntry() (Entry, error) {
	kind := Kind(r.Type)
	if !kind.IsValid() {
		return Entry{}, cberrors.NewWithContext(cberrors.ErrCodeInvalidType,
			"type must be ingredient or recipe", map[string]any{"type": r.Type})
	}

	e := Entry{Kind: kind, Name: r.Name}
	switch kind {
	case KindIngredient:
		e.CookTime = r.CookTime
	case KindRecipe:
		e.RequiredItems = copyItems(r.RequiredItems)
		if e.RequiredItems == nil {
			e.RequiredItems = []RequiredItem{}
		}
	}

	if err := e.Validate(); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// Request returns the wire form of e.
func (e Entry) Request() EntryRequest {
	r := EntryRequest{Type: e.Kind.String(), Name: e.Name}
	if e.Kind == KindIngredient {
		r.CookTime = e.CookTime
	} else {
		r.RequiredItems = copyItems(e.RequiredItems)
	}
	return r
}

// Validate enforces the per-entry invariants. Name uniqueness is the
// store's concern.
func (e Entry) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return cberrors.New(cberrors.ErrCodeInvalidName, "name must not be empty")
	}

	switch e.Kind {
	case KindIngredient:
		if e.CookTime < 0 {
			return cberrors.NewWithContext(cberrors.ErrCodeInvalidCookTime,
				"cookTime must not be negative", map[string]any{"name": e.Name, "cookTime": e.CookTime})
		}
	case KindRecipe:
		return validateItems(e.Name, e.RequiredItems)
	default:
		return cberrors.NewWithContext(cberrors.ErrCodeInvalidType,
			"type must be ingredient or recipe", map[string]any{"type": string(e.Kind)})
	}
	return nil
}

func validateItems(recipe string, items []RequiredItem) error {
	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		ctx := map[string]any{"name": recipe, "item": item.Name, "index": i}

		if strings.TrimSpace(item.Name) == "" {
			return cberrors.NewWithContext(cberrors.ErrCodeInvalidName, "required item name must not be empty", ctx)
		}
		if _, dup := seen[item.Name]; dup {
			return cberrors.NewWithContext(cberrors.ErrCodeDuplicateRequiredItem, "required item listed more than once", ctx)
		}
		seen[item.Name] = struct{}{}

		if item.Quantity < 1 {
			ctx["quantity"] = item.Quantity
			return cberrors.NewWithContext(cberrors.ErrCodeInvalidQuantity, "required item quantity must be at least 1", ctx)
		}
		if item.Name == recipe {
			ctx["path"] = []string{recipe, recipe}
			return cberrors.NewWithContext(cberrors.ErrCodeCyclicReference, "recipe requires itself", ctx)
		}
	}
	return nil
}
