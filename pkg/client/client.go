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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/NVIDIA/cookbook/pkg/cookbook"
	"github.com/NVIDIA/cookbook/pkg/defaults"
	cberrors "github.com/NVIDIA/cookbook/pkg/errors"
	"github.com/NVIDIA/cookbook/pkg/serializer"
	"github.com/NVIDIA/cookbook/pkg/server"
	"golang.org/x/sync/errgroup"
)

// DefaultServerURL is used when no server is configured.
const DefaultServerURL = "http://localhost:8080"

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the pooled transport, mostly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithConcurrency bounds parallel requests in RegisterAll.
func WithConcurrency(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// Client talks to a cookbook server.
type Client struct {
	baseURL     string
	http        *http.Client
	concurrency int
}

// New returns a client for baseURL (DefaultServerURL when empty).
func New(baseURL string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultServerURL
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, cberrors.NewWithContext(cberrors.ErrCodeInvalidRequest,
			"invalid server URL", map[string]any{"url": baseURL})
	}

	c := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		http:        serializer.NewHttpReader(serializer.WithUserAgent("cookbook-client/1.0")).Client,
		concurrency: defaults.ClientMaxConcurrentRequests,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Register adds one entry.
func (c *Client) Register(ctx context.Context, req cookbook.EntryRequest) (*cookbook.EntryResponse, error) {
	var out cookbook.EntryResponse
	if err := c.do(ctx, http.MethodPost, cookbook.PathEntry, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Summary fetches the flattened recipe.
func (c *Client) Summary(ctx context.Context, name string) (*cookbook.Summary, error) {
	var out cookbook.Summary
	if err := c.do(ctx, http.MethodGet, cookbook.PathSummary, url.Values{"name": {name}}, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Parse normalizes input on the server.
func (c *Client) Parse(ctx context.Context, input string) (string, error) {
	var out cookbook.ParseResponse
	if err := c.do(ctx, http.MethodPost, cookbook.PathParse, nil, cookbook.ParseRequest{Input: input}, &out); err != nil {
		return "", err
	}
	return out.Msg, nil
}

// Entries exports the server's registry as a catalog.
func (c *Client) Entries(ctx context.Context) (*cookbook.Catalog, error) {
	var out cookbook.Catalog
	if err := c.do(ctx, http.MethodGet, cookbook.PathEntries, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RegisterAll registers entries with bounded concurrency and returns the
// first error. Registration order is not preserved; recipes may be sent
// before the entries they require since references resolve at query time.
func (c *Client) RegisterAll(ctx context.Context, entries []cookbook.EntryRequest) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for i, e := range entries {
		g.Go(func() error {
			if _, err := c.Register(gctx, e); err != nil {
				return cberrors.WrapWithContext(cberrors.CodeOf(err), "failed to register entry", err,
					map[string]any{"index": i, "name": e.Name})
			}
			slog.Debug("entry registered", "name", e.Name, "type", e.Type)
			return nil
		})
	}
	return g.Wait()
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return cberrors.Wrap(cberrors.ErrCodeInternal, "failed to encode request", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return cberrors.Wrap(cberrors.ErrCodeInternal, "failed to create request", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return cberrors.WrapWithContext(cberrors.ErrCodeUnavailable, "request failed", err,
			map[string]any{"url": target})
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return cberrors.Wrap(cberrors.ErrCodeInternal, "failed to decode response", err)
	}
	return nil
}

// decodeError turns a server ErrorResponse into a StructuredError with the
// same code. Bodies that are not ErrorResponses map from the status code.
func decodeError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, defaults.MaxRequestBodyBytes))

	var er server.ErrorResponse
	if err := json.Unmarshal(data, &er); err == nil && er.Code != "" {
		details := er.Details
		if details == nil {
			details = map[string]any{}
		}
		details["status"] = resp.StatusCode
		if er.RequestID != "" {
			details["requestId"] = er.RequestID
		}
		return cberrors.NewWithContext(cberrors.ErrorCode(er.Code), er.Message, details)
	}

	return cberrors.NewWithContext(codeFromStatus(resp.StatusCode),
		fmt.Sprintf("unexpected status %d", resp.StatusCode),
		map[string]any{"status": resp.StatusCode, "body": strings.TrimSpace(string(data))})
}

func codeFromStatus(status int) cberrors.ErrorCode {
	switch {
	case status == http.StatusNotFound:
		return cberrors.ErrCodeNotFound
	case status == http.StatusMethodNotAllowed:
		return cberrors.ErrCodeMethodNotAllowed
	case status == http.StatusTooManyRequests:
		return cberrors.ErrCodeRateLimitExceeded
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return cberrors.ErrCodeUnauthorized
	case status == http.StatusServiceUnavailable:
		return cberrors.ErrCodeUnavailable
	case status == http.StatusGatewayTimeout:
		return cberrors.ErrCodeTimeout
	case status >= 400 && status < 500:
		return cberrors.ErrCodeInvalidRequest
	default:
		return cberrors.ErrCodeInternal
	}
}
