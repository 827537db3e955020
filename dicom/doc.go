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

// Package dicom is the core package of the dcmdict library. It provides the registry of DICOM
// data elements as specified in
// [http://dicom.nema.org/medical/dicom/current/output/html/part06.html#chapter_6].
//
// The registry is a Dictionary with two indices over one set of DictionaryEntry records: one keyed
// by DataElementTag and one keyed by keyword. The process-wide dictionary returned by Default is
// built lazily from a table embedded in the package and is immutable afterwards, so it may be
// shared freely between goroutines. Lookups never fail with an error; a miss is reported as
// (nil, false).
//
//	entry, ok := dicom.ByTag(dicom.PatientNameTag)
//	if ok {
//		fmt.Println(entry.Keyword, entry.VR().Name) // PatientName PN
//	}
//
// Repeating group attributes such as Overlay Data (60xx,3000) are stored once with a mask and
// match every group in their range, unless a non-repeating attribute is registered at the exact
// tag being looked up.
//
// The package also carries the small registries a DICOM decoder consults alongside the data
// dictionary: value representations (VR), transfer syntaxes and specific character sets.
package dicom
