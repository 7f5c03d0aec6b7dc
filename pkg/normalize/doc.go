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

// Package normalize turns free-form handwritten text into a canonical entry
// name.
//
// Name applies, in order:
//
//  1. '-' and '_' become spaces
//  2. every rune that is not an ASCII letter or whitespace is dropped
//  3. each word is title-cased (first letter upper, rest lower)
//  4. whitespace runs collapse to one space; leading and trailing space is trimmed
//
// An empty result is an INVALID_NAME error.
//
//	normalize.Name("    Riz@z  RISO00tto!   ") // "Rizz Risotto"
//	normalize.Name("meatball_soup-extra")      // "Meatball Soup Extra"
package normalize
