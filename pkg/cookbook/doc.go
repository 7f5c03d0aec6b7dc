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

// Package cookbook implements the recipe registry: a Store of ingredients
// and recipes, a Resolver that flattens recipes into base ingredients, and
// the HTTP handlers that expose both.
//
// # Model
//
// An ingredient has a per-unit cook time. A recipe lists required items by
// name and quantity; names are resolved only when a summary is requested,
// so a recipe may be registered before the entries it needs.
//
// # Summaries
//
//	store := cookbook.NewStore()
//	_ = store.Register(cookbook.Entry{Kind: cookbook.KindIngredient, Name: "Egg", CookTime: 5})
//	_ = store.Register(cookbook.Entry{Kind: cookbook.KindRecipe, Name: "Omelette",
//	    RequiredItems: []cookbook.RequiredItem{{Name: "Egg", Quantity: 2}}})
//
//	s, err := cookbook.NewResolver(store).Summarize("Omelette")
//	// s.CookTime == 10, s.Ingredients == [{Egg 2}]
//
// Nested recipe quantities multiply down the tree and cook times add up.
// The same ingredient reached through two items appears twice. A recipe
// that reaches itself fails with CYCLIC_REFERENCE; a name that is not
// registered fails with UNRESOLVED_REFERENCE.
//
// # Catalogs
//
// A Catalog is a versioned document of EntryRequests. LoadCatalog registers
// them in order; NewCatalog exports a Store's entries.
package cookbook
