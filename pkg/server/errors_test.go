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

package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	cberrors "github.com/NVIDIA/cookbook/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatusFromCode(t *testing.T) {
	tests := []struct {
		code cberrors.ErrorCode
		want int
	}{
		{cberrors.ErrCodeInvalidRequest, http.StatusBadRequest},
		{cberrors.ErrCodeDuplicateName, http.StatusBadRequest},
		{cberrors.ErrCodeInvalidType, http.StatusBadRequest},
		{cberrors.ErrCodeDuplicateRequiredItem, http.StatusBadRequest},
		{cberrors.ErrCodeInvalidCookTime, http.StatusBadRequest},
		{cberrors.ErrCodeInvalidQuantity, http.StatusBadRequest},
		{cberrors.ErrCodeInvalidName, http.StatusBadRequest},
		{cberrors.ErrCodeUnresolvedReference, http.StatusBadRequest},
		{cberrors.ErrCodeCyclicReference, http.StatusBadRequest},
		{cberrors.ErrCodeQuantityOverflow, http.StatusBadRequest},
		{cberrors.ErrCodeUnauthorized, http.StatusUnauthorized},
		{cberrors.ErrCodeNotFound, http.StatusNotFound},
		{cberrors.ErrCodeMethodNotAllowed, http.StatusMethodNotAllowed},
		{cberrors.ErrCodeRateLimitExceeded, http.StatusTooManyRequests},
		{cberrors.ErrCodeUnavailable, http.StatusServiceUnavailable},
		{cberrors.ErrCodeTimeout, http.StatusGatewayTimeout},
		{cberrors.ErrCodeInternal, http.StatusInternalServerError},
		{cberrors.ErrorCode("SOMETHING_ELSE"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatusFromCode(tt.code))
		})
	}
}

func TestRetryableFromCode(t *testing.T) {
	retryable := []cberrors.ErrorCode{
		cberrors.ErrCodeTimeout,
		cberrors.ErrCodeUnavailable,
		cberrors.ErrCodeRateLimitExceeded,
		cberrors.ErrCodeInternal,
	}
	for _, c := range retryable {
		assert.True(t, retryableFromCode(c), c)
	}

	notRetryable := []cberrors.ErrorCode{
		cberrors.ErrCodeInvalidRequest,
		cberrors.ErrCodeNotFound,
		cberrors.ErrCodeDuplicateName,
		cberrors.ErrCodeCyclicReference,
		cberrors.ErrorCode("SOMETHING_ELSE"),
	}
	for _, c := range notRetryable {
		assert.False(t, retryableFromCode(c), c)
	}
}

func TestMergeDetails(t *testing.T) {
	assert.Nil(t, mergeDetails(nil, nil))
	assert.Nil(t, mergeDetails(map[string]any{}, nil))

	a := map[string]any{"a": 1, "shared": "a"}
	b := map[string]any{"b": 2, "shared": "b"}
	got := mergeDetails(a, b)
	assert.Equal(t, map[string]any{"a": 1, "b": 2, "shared": "b"}, got)

	got["new"] = true
	assert.NotContains(t, a, "new", "inputs must not be mutated")
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestWriteError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req = req.WithContext(context.WithValue(req.Context(), contextKeyRequestID, "req-123"))
	w := httptest.NewRecorder()

	WriteError(w, req, http.StatusBadRequest, cberrors.ErrCodeInvalidRequest, "bad request", false, map[string]any{"k": "v"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	resp := decodeError(t, w)
	assert.Equal(t, "INVALID_REQUEST", resp.Code)
	assert.Equal(t, "bad request", resp.Message)
	assert.Equal(t, "req-123", resp.RequestID)
	assert.Equal(t, "v", resp.Details["k"])
	assert.False(t, resp.Retryable)
	assert.False(t, resp.Timestamp.IsZero())
}

func TestWriteError_GeneratesRequestID(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, httptest.NewRequest(http.MethodGet, "/x", nil), http.StatusInternalServerError,
		cberrors.ErrCodeInternal, "oops", true, nil)
	assert.NotEmpty(t, decodeError(t, w).RequestID)
}

func TestWriteErrorFromErr_Structured(t *testing.T) {
	cause := errors.New("db is down")
	err := cberrors.WrapWithContext(cberrors.ErrCodeUnavailable, "service unavailable", cause, map[string]any{"component": "db"})

	w := httptest.NewRecorder()
	WriteErrorFromErr(w, httptest.NewRequest(http.MethodGet, "/x", nil), err, "fallback", map[string]any{"extra": "yes"})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "SERVICE_UNAVAILABLE", resp.Code)
	assert.Equal(t, "service unavailable", resp.Message)
	assert.True(t, resp.Retryable)
	assert.Equal(t, "db", resp.Details["component"])
	assert.Equal(t, "yes", resp.Details["extra"])
	assert.Equal(t, "db is down", resp.Details["error"])
}

func TestWriteErrorFromErr_NonStructuredFallsBackToInternal(t *testing.T) {
	w := httptest.NewRecorder()
	WriteErrorFromErr(w, httptest.NewRequest(http.MethodGet, "/x", nil), errors.New("boom"), "fallback", map[string]any{"x": "y"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "INTERNAL", resp.Code)
	assert.Equal(t, "fallback", resp.Message)
	assert.Equal(t, "boom", resp.Details["error"])
	assert.Equal(t, "y", resp.Details["x"])
}

func TestWriteErrorFromErrWithStatus_OverridesStatus(t *testing.T) {
	err := cberrors.NewWithContext(cberrors.ErrCodeNotFound, "recipe not found", map[string]any{"name": "Toast"})

	w := httptest.NewRecorder()
	WriteErrorFromErrWithStatus(w, httptest.NewRequest(http.MethodGet, "/summary", nil), http.StatusBadRequest, err, "fallback", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "NOT_FOUND", resp.Code)
	assert.Equal(t, "Toast", resp.Details["name"])
}

func TestRequireMethod(t *testing.T) {
	w := httptest.NewRecorder()
	assert.True(t, RequireMethod(w, httptest.NewRequest(http.MethodPost, "/entry", nil), http.MethodPost))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	assert.False(t, RequireMethod(w, httptest.NewRequest(http.MethodDelete, "/entry", nil), http.MethodGet, http.MethodHead))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "GET, HEAD", w.Header().Get("Allow"))
	assert.Equal(t, "METHOD_NOT_ALLOWED", decodeError(t, w).Code)
}
