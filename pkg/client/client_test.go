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

package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NVIDIA/cookbook/pkg/cookbook"
	cberrors "github.com/NVIDIA/cookbook/pkg/errors"
	"github.com/NVIDIA/cookbook/pkg/server"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T) (*Client, *cookbook.Store) {
	t.Helper()
	store := cookbook.NewStore()
	srv := server.New(server.WithHandler(cookbook.NewHandler(store, "test").Routes()))
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	c, err := New(ts.URL+"/", WithHTTPClient(ts.Client()), WithConcurrency(4))
	require.NoError(t, err)
	return c, store
}

func TestNew(t *testing.T) {
	c, err := New("")
	require.NoError(t, err)
	assert.Equal(t, DefaultServerURL, c.baseURL)

	_, err = New("not a url")
	assert.True(t, cberrors.HasCode(err, cberrors.ErrCodeInvalidRequest))
}

func TestClient_RoundTrip(t *testing.T) {
	c, _ := newClient(t)
	ctx := context.Background()

	resp, err := c.Register(ctx, cookbook.EntryRequest{Type: "ingredient", Name: "Egg", CookTime: 5})
	require.NoError(t, err)
	assert.Equal(t, "Egg", resp.Name)

	_, err = c.Register(ctx, cookbook.EntryRequest{
		Type: "recipe", Name: "Omelette",
		RequiredItems: []cookbook.RequiredItem{{Name: "Egg", Quantity: 2}},
	})
	require.NoError(t, err)

	got, err := c.Summary(ctx, "Omelette")
	require.NoError(t, err)
	want := &cookbook.Summary{Name: "Omelette", CookTime: 10, Ingredients: []cookbook.IngredientQuantity{{Name: "Egg", Quantity: 2}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}

	name, err := c.Parse(ctx, "meatball_soup-extra")
	require.NoError(t, err)
	assert.Equal(t, "Meatball Soup Extra", name)

	cat, err := c.Entries(ctx)
	require.NoError(t, err)
	assert.Len(t, cat.Entries, 2)
}

func TestClient_ServerErrorsKeepCode(t *testing.T) {
	c, _ := newClient(t)
	ctx := context.Background()

	_, err := c.Register(ctx, cookbook.EntryRequest{Type: "ingredient", Name: "Egg", CookTime: 5})
	require.NoError(t, err)

	_, err = c.Register(ctx, cookbook.EntryRequest{Type: "ingredient", Name: "Egg", CookTime: 1})
	require.Error(t, err)
	assert.Equal(t, cberrors.ErrCodeDuplicateName, cberrors.CodeOf(err))

	var se *cberrors.StructuredError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusBadRequest, se.Context["status"])
	assert.Equal(t, "Egg", se.Context["name"])

	_, err = c.Summary(ctx, "Nonexistent")
	assert.Equal(t, cberrors.ErrCodeNotFound, cberrors.CodeOf(err))
}

func TestClient_RegisterAll(t *testing.T) {
	c, store := newClient(t)

	entries := []cookbook.EntryRequest{
		{Type: "recipe", Name: "Brunch", RequiredItems: []cookbook.RequiredItem{{Name: "Omelette", Quantity: 3}}},
		{Type: "recipe", Name: "Omelette", RequiredItems: []cookbook.RequiredItem{{Name: "Egg", Quantity: 2}}},
		{Type: "ingredient", Name: "Egg", CookTime: 5},
	}
	require.NoError(t, c.RegisterAll(context.Background(), entries))
	assert.Equal(t, 3, store.Len())

	got, err := c.Summary(context.Background(), "Brunch")
	require.NoError(t, err)
	assert.Equal(t, 30, got.CookTime)

	err = c.RegisterAll(context.Background(), []cookbook.EntryRequest{{Type: "ingredient", Name: "Egg"}})
	assert.Equal(t, cberrors.ErrCodeDuplicateName, cberrors.CodeOf(err))
}

func TestDecodeError_NonStructuredBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream gone", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	c, err := New(ts.URL, WithHTTPClient(ts.Client()))
	require.NoError(t, err)

	_, err = c.Entries(context.Background())
	require.Error(t, err)
	assert.Equal(t, cberrors.ErrCodeUnavailable, cberrors.CodeOf(err))
}

func TestCodeFromStatus(t *testing.T) {
	tests := map[int]cberrors.ErrorCode{
		http.StatusBadRequest:          cberrors.ErrCodeInvalidRequest,
		http.StatusNotFound:            cberrors.ErrCodeNotFound,
		http.StatusMethodNotAllowed:    cberrors.ErrCodeMethodNotAllowed,
		http.StatusTooManyRequests:     cberrors.ErrCodeRateLimitExceeded,
		http.StatusForbidden:           cberrors.ErrCodeUnauthorized,
		http.StatusGatewayTimeout:      cberrors.ErrCodeTimeout,
		http.StatusInternalServerError: cberrors.ErrCodeInternal,
	}
	for status, want := range tests {
		assert.Equal(t, want, codeFromStatus(status), status)
	}
}
