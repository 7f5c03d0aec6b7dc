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

// Package client is a Go client for the cookbook HTTP API.
//
//	c, err := client.New("http://localhost:8080")
//	if err != nil {
//	    return err
//	}
//	s, err := c.Summary(ctx, "Brunch")
//
// Server errors come back as *errors.StructuredError with the server's code,
// so callers can branch with errors.HasCode(err, errors.ErrCodeDuplicateName).
package client
