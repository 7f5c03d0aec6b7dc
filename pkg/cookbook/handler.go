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
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/NVIDIA/cookbook/pkg/defaults"
	cberrors "github.com/NVIDIA/cookbook/pkg/errors"
	"github.com/NVIDIA/cookbook/pkg/normalize"
	"github.com/NVIDIA/cookbook/pkg/serializer"
	"github.com/NVIDIA/cookbook/pkg/server"
	"gopkg.in/yaml.v3"
)

// Route paths served by Handler.
const (
	PathEntry   = "/entry"
	PathSummary = "/summary"
	PathParse   = "/parse"
	PathEntries = "/entries"
)

// EntryResponse acknowledges a registration.
type EntryResponse struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

// ParseRequest is the body of POST /parse.
type ParseRequest struct {
	Input string `json:"input" yaml:"input"`
}

// ParseResponse carries the normalized name.
type ParseResponse struct {
	Msg string `json:"msg" yaml:"msg"`
}

// Handler serves the cookbook HTTP routes. Every client-side failure is a
// 400; the error code in the body identifies the cause.
type Handler struct {
	store    *Store
	resolver *Resolver
	version  string
}

// NewHandler serves store. version stamps exported catalogs.
func NewHandler(store *Store, version string) *Handler {
	return &Handler{
		store:    store,
		resolver: NewResolver(store),
		version:  version,
	}
}

// Routes returns the handler map for server.WithHandler.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		PathEntry:   h.HandleEntry,
		PathSummary: h.HandleSummary,
		PathParse:   h.HandleParse,
		PathEntries: h.HandleEntries,
	}
}

// HandleEntry registers one entry (POST /entry).
func (h *Handler) HandleEntry(w http.ResponseWriter, r *http.Request) {
	if !server.RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req EntryRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeClientError(w, r, err)
		return
	}

	entry, err := req.ToEntry()
	if err == nil {
		err = h.store.Register(entry)
	}
	if err != nil {
		slog.Debug("registration rejected", "name", req.Name, "type", req.Type, "error", err)
		writeClientError(w, r, err)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, EntryResponse{Name: entry.Name, Type: entry.Kind.String()})
}

// HandleSummary returns the flattened recipe named by ?name= (GET /summary).
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	if !server.RequireMethod(w, r, http.MethodGet) {
		return
	}

	summary, err := h.resolver.Summarize(r.URL.Query().Get("name"))
	if err != nil {
		writeClientError(w, r, err)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, summary)
}

// HandleParse normalizes free text into an entry name (POST /parse).
func (h *Handler) HandleParse(w http.ResponseWriter, r *http.Request) {
	if !server.RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req ParseRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeClientError(w, r, err)
		return
	}

	name, err := normalize.Name(req.Input)
	if err != nil {
		writeClientError(w, r, err)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, ParseResponse{Msg: name})
}

// HandleEntries exports every entry as a catalog (GET /entries).
func (h *Handler) HandleEntries(w http.ResponseWriter, r *http.Request) {
	if !server.RequireMethod(w, r, http.MethodGet) {
		return
	}

	serializer.RespondJSON(w, http.StatusOK, NewCatalog(h.store.Entries(), h.version))
}

func writeClientError(w http.ResponseWriter, r *http.Request, err error) {
	server.WriteErrorFromErrWithStatus(w, r, http.StatusBadRequest, err, "invalid request", nil)
}

// decodeBody reads a JSON body, or YAML when the Content-Type says so.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, defaults.MaxRequestBodyBytes))
	if err != nil {
		return cberrors.Wrap(cberrors.ErrCodeInvalidRequest, "failed to read request body", err)
	}
	if len(body) == 0 {
		return cberrors.New(cberrors.ErrCodeInvalidRequest, "request body is empty")
	}

	format := serializer.FormatJSON
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/yaml", "application/x-yaml", "text/yaml":
		format = serializer.FormatYAML
		err = yaml.Unmarshal(body, v)
	default:
		err = json.Unmarshal(body, v)
	}
	if err != nil {
		return cberrors.Wrap(cberrors.ErrCodeInvalidRequest,
			fmt.Sprintf("failed to decode %s body", format), err)
	}
	return nil
}
