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

// Package serializer encodes and decodes cookbook documents (catalogs and
// summaries) as JSON, YAML, or a flat FIELD/VALUE table.
//
// # Destinations
//
// NewFileWriterOrStdout resolves an output location:
//
//   - "" writes to stdout
//   - cm://namespace/name applies a ConfigMap (data key catalog.<ext>)
//   - anything else creates a local file
//
// # Sources
//
// FromFile and FromFileWithKubeconfig load a typed value from a local path,
// an http(s) URL, or a cm://namespace/name ConfigMap. The format follows the
// file extension; ConfigMaps carry their own "format" key.
//
//	cat, err := serializer.FromFile[cookbook.Catalog]("catalog.yaml")
//	if err != nil {
//	    return fmt.Errorf("failed to load catalog: %w", err)
//	}
//
// Table output is write-only.
//
// # HTTP
//
// RespondJSON writes API responses. HttpReader is a pooled client with the
// timeouts from pkg/defaults; the API client reuses its http.Client.
package serializer
