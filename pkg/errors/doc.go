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

// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Registry and resolution failures carry a cookbook-specific code
// (ErrCodeDuplicateName, ErrCodeUnresolvedReference, ...) so the HTTP
// boundary and API clients can act on the failure kind without parsing
// messages.
//
// Example usage:
//
//	err := errors.NewWithContext(
//	    errors.ErrCodeUnresolvedReference,
//	    "required item is not registered",
//	    map[string]any{
//	        "recipe": "Brunch",
//	        "item":   "Toast",
//	    },
//	)
//
//	if errors.HasCode(err, errors.ErrCodeUnresolvedReference) {
//	    // ...
//	}
package errors
