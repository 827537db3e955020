// Copyright 2018 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dicom

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hbollon/go-edlib"
)

// Match returns the entries whose keyword matches the glob pattern, in Entries order. The
// pattern syntax is that of github.com/bmatcuk/doublestar, e.g. "Patient*" or "*{Date,Time}".
// Matching is case sensitive.
func (d *Dictionary) Match(pattern string) ([]*DictionaryEntry, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid keyword pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	var matches []*DictionaryEntry
	for _, e := range d.entries {
		ok, err := doublestar.Match(pattern, e.Keyword)
		if err != nil {
			return nil, fmt.Errorf("matching keyword pattern %q: %v", pattern, err)
		}
		if ok {
			matches = append(matches, e)
		}
	}
	return matches, nil
}

// Suggest returns up to n keywords close to keyword, closest first, for reporting a keyword that
// missed. Distance is the case insensitive Levenshtein distance; keywords more than half as
// different as keyword is long are never suggested.
func (d *Dictionary) Suggest(keyword string, n int) []string {
	if n <= 0 || keyword == "" {
		return nil
	}

	type candidate struct {
		keyword  string
		distance int
	}

	input := strings.ToLower(keyword)
	limit := len(input)/2 + 1
	var candidates []candidate
	for _, e := range d.entries {
		distance := edlib.LevenshteinDistance(input, strings.ToLower(e.Keyword))
		if distance <= limit {
			candidates = append(candidates, candidate{e.Keyword, distance})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].keyword < candidates[j].keyword
	})
	if len(candidates) > n {
		candidates = candidates[:n]
	}

	suggestions := make([]string, len(candidates))
	for i, c := range candidates {
		suggestions[i] = c.keyword
	}
	return suggestions
}
