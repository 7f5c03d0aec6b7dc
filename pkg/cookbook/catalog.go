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

	cberrors "github.com/NVIDIA/cookbook/pkg/errors"
	"github.com/NVIDIA/cookbook/pkg/header"
)

// Catalog is a document of entries for bulk registration and export.
type Catalog struct {
	header.Header `json:",inline" yaml:",inline"`

	Entries []EntryRequest `json:"entries" yaml:"entries"`
}

// NewCatalog builds a catalog of entries stamped with version.
func NewCatalog(entries []Entry, version string) *Catalog {
	c := &Catalog{Entries: make([]EntryRequest, 0, len(entries))}
	c.Init(header.KindCatalog, header.APIVersionV1Alpha1, version)
	for _, e := range entries {
		c.Entries = append(c.Entries, e.Request())
	}
	return c
}

// Validate checks the document header. Entries are validated as they load.
func (c *Catalog) Validate() error {
	if c == nil {
		return cberrors.New(cberrors.ErrCodeInvalidRequest, "catalog is nil")
	}
	if c.Kind != "" && !c.Kind.IsValid() {
		return cberrors.NewWithContext(cberrors.ErrCodeInvalidRequest,
			"document is not a catalog", map[string]any{"kind": c.Kind.String()})
	}
	if c.APIVersion != "" && c.APIVersion != header.APIVersionV1Alpha1 {
		return cberrors.NewWithContext(cberrors.ErrCodeInvalidRequest,
			"unsupported catalog apiVersion", map[string]any{"apiVersion": c.APIVersion})
	}
	return nil
}

// LoadCatalog registers the catalog's entries in document order and stops at
// the first failure. Entries registered before the failure stay registered.
// It returns the number of entries registered.
func LoadCatalog(store *Store, c *Catalog) (int, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}

	for i, req := range c.Entries {
		entry, err := req.ToEntry()
		if err == nil {
			err = store.Register(entry)
		}
		if err != nil {
			return i, cberrors.WrapWithContext(cberrors.CodeOf(err), "failed to load catalog entry", err,
				map[string]any{"index": i, "name": req.Name})
		}
	}

	slog.Info("catalog loaded", "entries", len(c.Entries), "total", store.Len())
	return len(c.Entries), nil
}
