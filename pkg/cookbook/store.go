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
	"sync"

	cberrors "github.com/NVIDIA/cookbook/pkg/errors"
)

// Store is the in-memory registry. Entries are never updated or removed,
// so a value read under the lock stays valid after it is released.
type Store struct {
	mu      sync.RWMutex
	entries map[string]Entry
	order   []string
}

// NewStore returns an empty registry.
func NewStore() *Store {
	return &Store{entries: make(map[string]Entry)}
}

// Register validates e and adds it. Names are unique across both kinds;
// on any error the store is unchanged.
func (s *Store) Register(e Entry) error {
	if err := e.Validate(); err != nil {
		return err
	}
	e = e.clone()

	s.mu.Lock()
	if _, exists := s.entries[e.Name]; exists {
		s.mu.Unlock()
		return cberrors.NewWithContext(cberrors.ErrCodeDuplicateName,
			"entry already registered", map[string]any{"name": e.Name})
	}
	s.entries[e.Name] = e
	s.order = append(s.order, e.Name)
	n := len(s.order)
	s.mu.Unlock()

	entriesGauge.Set(float64(n))
	registrationsTotal.WithLabelValues(e.Kind.String()).Inc()
	slog.Debug("entry registered", "name", e.Name, "kind", e.Kind, "entries", n)
	return nil
}

// Get returns a copy of the named entry.
func (s *Store) Get(name string) (Entry, bool) {
	s.mu.RLock()
	e, ok := s.entries[name]
	s.mu.RUnlock()
	if !ok {
		return Entry{}, false
	}
	return e.clone(), true
}

// LookupIngredient returns the named ingredient; NOT_FOUND when absent or a recipe.
func (s *Store) LookupIngredient(name string) (Ingredient, error) {
	e, ok := s.Get(name)
	if !ok || e.Kind != KindIngredient {
		return Ingredient{}, cberrors.NewWithContext(cberrors.ErrCodeNotFound,
			"ingredient not found", map[string]any{"name": name})
	}
	return Ingredient{Name: e.Name, CookTime: e.CookTime}, nil
}

// LookupRecipe returns the named recipe; NOT_FOUND when absent or an ingredient.
func (s *Store) LookupRecipe(name string) (Recipe, error) {
	e, ok := s.Get(name)
	if !ok || e.Kind != KindRecipe {
		return Recipe{}, cberrors.NewWithContext(cberrors.ErrCodeNotFound,
			"recipe not found", map[string]any{"name": name})
	}
	return Recipe{Name: e.Name, RequiredItems: e.RequiredItems}, nil
}

// Entries returns copies of all entries in registration order.
func (s *Store) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.entries[name].clone())
	}
	return out
}

// Len returns the number of registered entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
