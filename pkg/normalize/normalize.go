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

package normalize

import (
	"strings"
	"unicode"

	cberrors "github.com/NVIDIA/cookbook/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Name returns the canonical form of input.
func Name(input string) (string, error) {
	var b strings.Builder
	b.Grow(len(input))

	for _, r := range input {
		switch {
		case r == '-' || r == '_':
			b.WriteByte(' ')
		case isASCIILetter(r), unicode.IsSpace(r):
			b.WriteRune(r)
		}
	}

	words := strings.Fields(b.String())
	if len(words) == 0 {
		return "", cberrors.NewWithContext(cberrors.ErrCodeInvalidName,
			"input contains no letters", map[string]any{"input": input})
	}

	// Casers carry state and are not safe for concurrent use.
	title := cases.Title(language.English)
	for i, w := range words {
		words[i] = title.String(w)
	}
	return strings.Join(words, " "), nil
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
