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
	"github.com/cespare/xxhash/v2"
)

// fingerprint hashes the table rows of entries, which must already be in Entries order.
func fingerprint(entries []*DictionaryEntry) uint64 {
	h := xxhash.New()
	for _, e := range entries {
		h.WriteString(e.row())
		h.WriteString("\n")
	}
	return h.Sum64()
}
