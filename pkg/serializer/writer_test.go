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

package serializer

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string            `json:"name" yaml:"name"`
	CookTime int               `json:"cookTime" yaml:"cookTime"`
	Items    []sampleItem      `json:"items,omitempty" yaml:"items,omitempty"`
	Labels   map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
}

type sampleItem struct {
	Name     string `json:"name" yaml:"name"`
	Quantity int    `json:"quantity" yaml:"quantity"`
}

func TestFormat_IsUnknown(t *testing.T) {
	for _, f := range SupportedFormats() {
		assert.False(t, Format(f).IsUnknown(), f)
	}
	assert.True(t, Format("xml").IsUnknown())
	assert.True(t, Format("").IsUnknown())
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"catalog.json":  FormatJSON,
		"catalog.YAML":  FormatYAML,
		"catalog.yml":   FormatYAML,
		"summary.txt":   FormatTable,
		"summary.table": FormatTable,
		"no-extension":  FormatJSON,
	}
	for path, want := range tests {
		t.Run(path, func(t *testing.T) {
			assert.Equal(t, want, FormatFromPath(path))
		})
	}
}

func TestNewWriter_UnknownFormatDefaultsToJSON(t *testing.T) {
	w := NewWriter(Format("bogus"), &bytes.Buffer{})
	assert.Equal(t, FormatJSON, w.format)
}

func TestWriter_Serialize(t *testing.T) {
	v := sample{Name: "Omelette", CookTime: 9, Items: []sampleItem{{Name: "Egg", Quantity: 2}}}

	tests := []struct {
		name   string
		format Format
		want   []string
	}{
		{
			name:   "json",
			format: FormatJSON,
			want:   []string{`"name": "Omelette"`, `"cookTime": 9`, `"quantity": 2`},
		},
		{
			name:   "yaml",
			format: FormatYAML,
			want:   []string{"name: Omelette", "cookTime: 9", "quantity: 2"},
		},
		{
			name:   "table uses json keys",
			format: FormatTable,
			want:   []string{"FIELD", "cookTime", "items.[0].name", "Egg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewWriter(tt.format, &buf).Serialize(context.Background(), v))
			for _, s := range tt.want {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestEncodeTable_Empty(t *testing.T) {
	out, err := encodeTable(map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, "<empty>\n", string(out))
}

func TestEncodeTable_Scalar(t *testing.T) {
	out, err := encodeTable("Rizz Risotto")
	require.NoError(t, err)
	assert.Contains(t, string(out), "value")
	assert.Contains(t, string(out), "Rizz Risotto")
}

func TestNewFileWriterOrStdout(t *testing.T) {
	t.Run("empty path is stdout", func(t *testing.T) {
		s, err := NewFileWriterOrStdout(FormatJSON, "  ")
		require.NoError(t, err)
		w, ok := s.(*Writer)
		require.True(t, ok)
		assert.Equal(t, os.Stdout, w.output)
	})

	t.Run("configmap uri", func(t *testing.T) {
		s, err := NewFileWriterOrStdout(FormatYAML, "cm://kitchen/catalog")
		require.NoError(t, err)
		cm, ok := s.(*ConfigMapWriter)
		require.True(t, ok)
		assert.Equal(t, "kitchen", cm.namespace)
		assert.Equal(t, "catalog", cm.name)
	})

	t.Run("bad configmap uri", func(t *testing.T) {
		_, err := NewFileWriterOrStdout(FormatYAML, "cm://kitchen")
		assert.Error(t, err)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.yaml")
		s, err := NewFileWriterOrStdout(FormatYAML, path)
		require.NoError(t, err)
		require.NoError(t, s.Serialize(context.Background(), sample{Name: "Toast"}))
		require.NoError(t, s.(Closer).Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "name: Toast"))
	})
}

func TestWriteToFile_RoundTripsThroughFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.json")
	in := sample{Name: "Brunch", CookTime: 33, Labels: map[string]string{"meal": "late"}}

	require.NoError(t, WriteToFile(path, in))

	out, err := FromFile[sample](path)
	require.NoError(t, err)
	assert.Equal(t, in, *out)
}
