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
	stderrors "errors"
	"net/http"
	"strings"
	"time"

	cberrors "github.com/NVIDIA/cookbook/pkg/errors"
	"github.com/NVIDIA/cookbook/pkg/serializer"
	"github.com/google/uuid"
)

// ErrorResponse is the JSON body of every error returned by the server.
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// WriteError writes an ErrorResponse, reusing the request ID from context.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code cberrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	serializer.RespondJSON(w, statusCode, ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	})
}

// WriteErrorFromErr maps err to a status with HTTPStatusFromCode and writes it.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string, extraDetails map[string]any) {
	WriteErrorFromErrWithStatus(w, r, 0, err, fallbackMessage, extraDetails)
}

// WriteErrorFromErrWithStatus writes err with a fixed status code; zero
// derives the status from the error code. Structured errors keep their code,
// message and context; anything else becomes INTERNAL with fallbackMessage.
func WriteErrorFromErrWithStatus(w http.ResponseWriter, r *http.Request, statusCode int, err error, fallbackMessage string, extraDetails map[string]any) {
	code := cberrors.ErrCodeInternal
	message := fallbackMessage
	var details map[string]any

	var se *cberrors.StructuredError
	if stderrors.As(err, &se) {
		code = se.Code
		message = se.Message
		details = mergeDetails(se.Context, extraDetails)
		if se.Cause != nil {
			details = mergeDetails(details, map[string]any{"error": se.Cause.Error()})
		}
	} else {
		details = mergeDetails(extraDetails, nil)
		if err != nil {
			details = mergeDetails(details, map[string]any{"error": err.Error()})
		}
	}

	if statusCode == 0 {
		statusCode = HTTPStatusFromCode(code)
	}
	WriteError(w, r, statusCode, code, message, retryableFromCode(code), details)
}

// HTTPStatusFromCode maps an error code to its HTTP status. Validation and
// resolution failures are client errors.
func HTTPStatusFromCode(code cberrors.ErrorCode) int {
	switch code {
	case cberrors.ErrCodeInvalidRequest,
		cberrors.ErrCodeDuplicateName,
		cberrors.ErrCodeInvalidType,
		cberrors.ErrCodeDuplicateRequiredItem,
		cberrors.ErrCodeInvalidCookTime,
		cberrors.ErrCodeInvalidQuantity,
		cberrors.ErrCodeInvalidName,
		cberrors.ErrCodeUnresolvedReference,
		cberrors.ErrCodeCyclicReference,
		cberrors.ErrCodeQuantityOverflow:
		return http.StatusBadRequest
	case cberrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case cberrors.ErrCodeNotFound:
		return http.StatusNotFound
	case cberrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case cberrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case cberrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case cberrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func retryableFromCode(code cberrors.ErrorCode) bool {
	switch code {
	case cberrors.ErrCodeTimeout,
		cberrors.ErrCodeUnavailable,
		cberrors.ErrCodeRateLimitExceeded,
		cberrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// mergeDetails returns a new map with b's keys overriding a's; nil when both are empty.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// RequireMethod writes a 405 with an Allow header unless r uses one of methods.
func RequireMethod(w http.ResponseWriter, r *http.Request, methods ...string) bool {
	for _, m := range methods {
		if r.Method == m {
			return true
		}
	}

	allow := strings.Join(methods, ", ")
	w.Header().Set("Allow", allow)
	WriteError(w, r, http.StatusMethodNotAllowed, cberrors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{
			"method": r.Method,
			"allow":  allow,
		})
	return false
}
