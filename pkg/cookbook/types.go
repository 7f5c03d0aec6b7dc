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

// Kind tags an Entry as an ingredient or a recipe.
type Kind string

const (
	KindIngredient Kind = "ingredient"
	KindRecipe     Kind = "recipe"
)

// String returns the wire name of the kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid reports whether k is a known kind.
func (k Kind) IsValid() bool {
	return k == KindIngredient || k == KindRecipe
}

// RequiredItem is a by-name reference from a recipe to another entry. The
// name is resolved when a summary is requested, never at registration.
type RequiredItem struct {
	Name     string `json:"name" yaml:"name"`
	Quantity int    `json:"quantity" yaml:"quantity"`
}

// Entry is a registered cookbook record. CookTime applies to ingredients
// and RequiredItems to recipes; the other field is ignored.
type Entry struct {
	Kind          Kind
	Name          string
	CookTime      int
	RequiredItems []RequiredItem
}

// Ingredient is the ingredient view of an Entry.
type Ingredient struct {
	Name     string
	CookTime int
}

// Recipe is the recipe view of an Entry.
type Recipe struct {
	Name          string
	RequiredItems []RequiredItem
}

// IngredientQuantity is one line of a summary.
type IngredientQuantity struct {
	Name     string `json:"name" yaml:"name"`
	Quantity int    `json:"quantity" yaml:"quantity"`
}

// Summary is a recipe flattened to base ingredients. Ingredients keep
// expansion order and are not merged across branches.
type Summary struct {
	Name        string               `json:"name" yaml:"name"`
	CookTime    int                  `json:"cookTime" yaml:"cookTime"`
	Ingredients []IngredientQuantity `json:"ingredients" yaml:"ingredients"`
}

func copyItems(items []RequiredItem) []RequiredItem {
	if items == nil {
		return nil
	}
	out := make([]RequiredItem, len(items))
	copy(out, items)
	return out
}

func (e Entry) clone() Entry {
	e.RequiredItems = copyItems(e.RequiredItems)
	return e
}
