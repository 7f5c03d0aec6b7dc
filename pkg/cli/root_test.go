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
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/cookbook/pkg/cookbook"
	cberrors "github.com/NVIDIA/cookbook/pkg/errors"
	"github.com/NVIDIA/cookbook/pkg/serializer"
	"github.com/NVIDIA/cookbook/pkg/server"
)

const breakfastYAML = `kind: Catalog
apiVersion: cookbook.nvidia.com/v1alpha1
entries:
  - type: ingredient
    name: Egg
    cookTime: 5
  - type: ingredient
    name: Butter
    cookTime: 1
  - type: recipe
    name: Omelette
    requiredItems:
      - name: Egg
        quantity: 2
      - name: Butter
        quantity: 1
`

// isolate keeps the developer's config and environment out of the run.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, k := range []string{"COOKBOOK_SERVER", "COOKBOOK_FORMAT", "COOKBOOK_LOG_LEVEL", "COOKBOOK_KUBECONFIG"} {
		t.Setenv(k, "")
	}
}

func newTestServer(t *testing.T) (string, *cookbook.Store) {
	t.Helper()
	store := cookbook.NewStore()
	srv := server.New(server.WithHandler(cookbook.NewHandler(store, "test").Routes()))
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts.URL, store
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newRootCmd(&out).Run(context.Background(), append([]string{name}, args...))
	return out.String(), err
}

func writeCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "breakfast.yaml")
	require.NoError(t, os.WriteFile(path, []byte(breakfastYAML), 0o600))
	return path
}

func TestParseCmd(t *testing.T) {
	isolate(t)

	out, err := run(t, "parse", "riZZ-o_TT  o")
	require.NoError(t, err)
	assert.Equal(t, "Rizz O Tt O\n", out)

	out, err = run(t, "parse", "meat", "ball")
	require.NoError(t, err)
	assert.Equal(t, "Meat Ball\n", out)

	_, err = run(t, "parse")
	assert.Error(t, err)

	_, err = run(t, "parse", "123")
	assert.True(t, cberrors.HasCode(err, cberrors.ErrCodeInvalidName))
}

func TestParseCmd_Remote(t *testing.T) {
	isolate(t)
	url, _ := newTestServer(t)

	out, err := run(t, "--server", url, "parse", "--remote", "Skibidi_spaghetti-2")
	require.NoError(t, err)
	assert.Equal(t, "Skibidi Spaghetti\n", out)
}

func TestAddAndSummary(t *testing.T) {
	isolate(t)
	url, store := newTestServer(t)

	out, err := run(t, "--server", url, "add", "ingredient", "--name", "Egg", "--cook-time", "5")
	require.NoError(t, err)
	assert.Contains(t, out, `registered ingredient "Egg"`)

	_, err = run(t, "--server", url, "add", "recipe", "--name", "omelette", "--normalize", "--item", "egg=2")
	require.NoError(t, err)

	_, ok := store.Get("Omelette")
	assert.True(t, ok)

	out, err = run(t, "--server", url, "summary", "--name", "Omelette", "--format", "json")
	require.NoError(t, err)

	var got cookbook.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	want := cookbook.Summary{Name: "Omelette", CookTime: 10, Ingredients: []cookbook.IngredientQuantity{{Name: "Egg", Quantity: 2}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestAddCmd_Errors(t *testing.T) {
	isolate(t)
	url, store := newTestServer(t)

	tests := []struct {
		name string
		args []string
		code cberrors.ErrorCode
	}{
		{"negative cook time", []string{"add", "ingredient", "--name", "Egg", "--cook-time=-1"}, cberrors.ErrCodeInvalidCookTime},
		{"zero quantity", []string{"add", "recipe", "--name", "Omelette", "--item", "Egg=0"}, cberrors.ErrCodeInvalidQuantity},
		{"duplicate item", []string{"add", "recipe", "--name", "Omelette", "--item", "Egg=1", "--item", "Egg=2"}, cberrors.ErrCodeDuplicateRequiredItem},
		{"self reference", []string{"add", "recipe", "--name", "Omelette", "--item", "Omelette=1"}, cberrors.ErrCodeCyclicReference},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, append([]string{"--server", url}, tt.args...)...)
			require.Error(t, err)
			assert.Equal(t, tt.code, cberrors.CodeOf(err))
		})
	}
	assert.Equal(t, 0, store.Len())

	_, err := run(t, "--server", url, "add", "ingredient", "--name", "Egg")
	require.NoError(t, err)
	_, err = run(t, "--server", url, "add", "ingredient", "--name", "Egg")
	assert.Equal(t, cberrors.ErrCodeDuplicateName, cberrors.CodeOf(err))

	_, err = run(t, "--server", url, "add", "recipe", "--name", "Toast", "--item", "Bread")
	assert.Error(t, err)

	_, err = run(t, "--server", url, "add", "ingredient")
	assert.Error(t, err, "name is required")
}

func TestLoadAndExport(t *testing.T) {
	isolate(t)
	url, store := newTestServer(t)

	out, err := run(t, "--server", url, "load", "--catalog", writeCatalog(t), "--concurrency", "2")
	require.NoError(t, err)
	assert.Equal(t, "registered 3 entries\n", out)
	assert.Equal(t, 3, store.Len())

	path := filepath.Join(t.TempDir(), "export.json")
	_, err = run(t, "--server", url, "export", "--output", path, "--format", "json")
	require.NoError(t, err)

	cat, err := serializer.FromFile[cookbook.Catalog](path)
	require.NoError(t, err)
	require.NoError(t, cat.Validate())
	assert.Len(t, cat.Entries, 3)

	// the export seeds an equivalent store
	s := cookbook.NewStore()
	_, err = cookbook.LoadCatalog(s, cat)
	require.NoError(t, err)
	sum, err := cookbook.NewResolver(s).Summarize("Omelette")
	require.NoError(t, err)
	assert.Equal(t, 11, sum.CookTime)
}

func TestSummaryCmd_LocalCatalog(t *testing.T) {
	isolate(t)

	// no server is running; resolution happens in process
	out, err := run(t, "--server", "http://127.0.0.1:1", "summary", "--name", "Omelette", "--catalog", writeCatalog(t))
	require.NoError(t, err)
	assert.Contains(t, out, "cookTime: 11")
	assert.Contains(t, out, "name: Butter")

	_, err = run(t, "summary", "--name", "Egg", "--catalog", writeCatalog(t))
	assert.Equal(t, cberrors.ErrCodeNotFound, cberrors.CodeOf(err))

	_, err = run(t, "summary", "--name", "Omelette", "--catalog", writeCatalog(t), "--format", "xml")
	assert.Error(t, err)
}

func TestSummaryCmd_TableFormat(t *testing.T) {
	isolate(t)

	out, err := run(t, "summary", "--name", "Omelette", "--catalog", writeCatalog(t), "--format", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "Omelette")
}

func TestSettings_ConfigFile(t *testing.T) {
	isolate(t)
	url, store := newTestServer(t)

	cfgPath := filepath.Join(t.TempDir(), "cookbook.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("server: "+url+"\nformat: json\n"), 0o600))

	_, err := run(t, "--config", cfgPath, "add", "ingredient", "--name", "Egg", "--cook-time", "3")
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())

	_, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "parse", "egg")
	assert.Error(t, err)
}

func TestSettings_HomeConfigAndEnv(t *testing.T) {
	isolate(t)
	url, store := newTestServer(t)

	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, ".cookbook.yaml"), []byte("server: http://127.0.0.1:1\n"), 0o600))

	// environment wins over the config file
	t.Setenv("COOKBOOK_SERVER", url)
	_, err := run(t, "add", "ingredient", "--name", "Egg")
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())

	t.Setenv("COOKBOOK_FORMAT", "json")
	out, err := run(t, "summary", "--name", "Omelette", "--catalog", writeCatalog(t))
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)))
}

func TestParseItem(t *testing.T) {
	tests := []struct {
		in      string
		want    cookbook.RequiredItem
		wantErr bool
	}{
		{in: "Egg=2", want: cookbook.RequiredItem{Name: "Egg", Quantity: 2}},
		{in: "Skibidi Spaghetti = 3", want: cookbook.RequiredItem{Name: "Skibidi Spaghetti", Quantity: 3}},
		{in: "Egg", wantErr: true},
		{in: "=2", wantErr: true},
		{in: "Egg=two", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseItem(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOutputFormat(t *testing.T) {
	for _, f := range []string{"json", "YAML", " table "} {
		_, err := parseOutputFormat(f)
		assert.NoError(t, err, f)
	}
	for _, f := range []string{"", "xml"} {
		_, err := parseOutputFormat(f)
		assert.Error(t, err, f)
	}
}

func TestNormalizeRequest(t *testing.T) {
	req, err := normalizeRequest(cookbook.EntryRequest{
		Type: "recipe",
		Name: "meat-ball_s",
		RequiredItems: []cookbook.RequiredItem{
			{Name: "beef  mince", Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Meat Ball S", req.Name)
	assert.Equal(t, "Beef Mince", req.RequiredItems[0].Name)

	_, err = normalizeRequest(cookbook.EntryRequest{Type: "ingredient", Name: "42"})
	assert.Error(t, err)
}
