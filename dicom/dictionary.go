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
	"errors"
	"fmt"
	"math/bits"
	"sort"
	"strings"
)

// ExactMask is the Mask of a DictionaryEntry that matches a single tag.
const ExactMask uint32 = 0xFFFFFFFF

var (
	// ErrDuplicateKeyword is returned when two entries share a keyword.
	ErrDuplicateKeyword = errors.New("dicom: duplicate keyword")
	// ErrDuplicateTag is returned when two entries share a tag and mask.
	ErrDuplicateTag = errors.New("dicom: duplicate tag")
)

// DictionaryEntry is one row of the data dictionary
// http://dicom.nema.org/medical/dicom/current/output/html/part06.html#chapter_6
type DictionaryEntry struct {
	// Tag of the attribute. The wildcard positions of a repeating group attribute are 0.
	Tag DataElementTag

	// Mask has a zero nibble at every wildcard position of Tag, so a tag t belongs to the entry
	// when t&Mask == Tag. ExactMask (or 0, which NewDictionary treats the same) for ordinary
	// attributes.
	Mask uint32

	Name    string
	Keyword string

	// VRs lists every VR allowed by the dictionary row, e.g. US, SS and OW for
	// "US or SS or OW". Empty for the item and delimitation items.
	VRs []*VR

	VM      ValueMultiplicity
	Retired bool
}

// VR returns the VR a decoder should assume when the encoding does not carry one. When the
// dictionary row lists several VRs the last one is chosen, and UN when it lists none.
func (e *DictionaryEntry) VR() *VR {
	if len(e.VRs) == 0 {
		return UNVR
	}
	return e.VRs[len(e.VRs)-1]
}

// IsRepeating is true if the entry describes a repeating group attribute like (60xx,3000).
func (e *DictionaryEntry) IsRepeating() bool {
	return e.Mask != ExactMask
}

// Matches is true if tag is described by the entry.
func (e *DictionaryEntry) Matches(tag DataElementTag) bool {
	return uint32(tag)&e.Mask == uint32(e.Tag)
}

// Pattern renders the tag of the entry with lower case x at wildcard positions, e.g. (60xx,3000).
func (e *DictionaryEntry) Pattern() string {
	s := []byte(e.Tag.String())
	// digits of (GGGG,EEEE) sit at 1-4 and 6-9
	pos := [8]int{1, 2, 3, 4, 6, 7, 8, 9}
	for i, p := range pos {
		if e.Mask>>(28-4*uint(i))&0xF == 0 {
			s[p] = 'x'
		}
	}
	return string(s)
}

func (e *DictionaryEntry) vrNames() string {
	names := make([]string, len(e.VRs))
	for i, vr := range e.VRs {
		names[i] = vr.Name
	}
	return strings.Join(names, " or ")
}

type tagPattern struct {
	tag  DataElementTag
	mask uint32
}

// Dictionary is an immutable registry of DictionaryEntry records indexed by tag and by keyword.
// All methods are safe for concurrent use.
type Dictionary struct {
	version string
	entries []*DictionaryEntry

	byName    map[string]*DictionaryEntry
	byTag     map[DataElementTag]*DictionaryEntry
	byPattern map[tagPattern]*DictionaryEntry
	// masks of byPattern, most specific first
	masks []uint32

	fingerprint uint64
}

// NewDictionary builds a Dictionary from entries. The entries and their VRs slices are copied.
// Every entry needs a keyword of letters and digits starting with a letter, keywords must be
// unique and no two entries may share both tag and mask. Names may not hold tabs or line breaks.
// An entry without a VM is given VM 1.
func NewDictionary(version string, entries []DictionaryEntry) (*Dictionary, error) {
	d := &Dictionary{
		version:   version,
		entries:   make([]*DictionaryEntry, 0, len(entries)),
		byName:    make(map[string]*DictionaryEntry, len(entries)),
		byTag:     make(map[DataElementTag]*DictionaryEntry, len(entries)),
		byPattern: make(map[tagPattern]*DictionaryEntry),
	}

	for i := range entries {
		e := entries[i]
		if e.Mask == 0 {
			e.Mask = ExactMask
		}
		if e.VM.text == "" {
			e.VM = vmOne
		}
		if e.Keyword == "" {
			return nil, fmt.Errorf("entry %v has no keyword", e.Tag)
		}
		if !isKeyword(e.Keyword) {
			return nil, fmt.Errorf("entry %v has keyword %q, want a letter followed by letters and digits", e.Tag, e.Keyword)
		}
		if strings.ContainsAny(e.Name, "\t\r\n") {
			return nil, fmt.Errorf("entry %v (%v) has a tab or line break in its name", e.Keyword, e.Tag)
		}
		if uint32(e.Tag)&^e.Mask != 0 {
			return nil, fmt.Errorf("entry %v (%v) has non-zero digits at wildcard positions", e.Keyword, e.Tag)
		}
		if prev, ok := d.byName[e.Keyword]; ok {
			return nil, fmt.Errorf("%w: %v used by %v and %v", ErrDuplicateKeyword, e.Keyword, prev.Pattern(), e.Pattern())
		}

		e.VRs = append([]*VR(nil), e.VRs...)

		entry := &e
		if e.Mask == ExactMask {
			if prev, ok := d.byTag[e.Tag]; ok {
				return nil, fmt.Errorf("%w: %v used by %v and %v", ErrDuplicateTag, e.Tag, prev.Keyword, e.Keyword)
			}
			d.byTag[e.Tag] = entry
		} else {
			key := tagPattern{e.Tag, e.Mask}
			if prev, ok := d.byPattern[key]; ok {
				return nil, fmt.Errorf("%w: %v used by %v and %v", ErrDuplicateTag, e.Pattern(), prev.Keyword, e.Keyword)
			}
			d.byPattern[key] = entry
		}
		d.byName[e.Keyword] = entry
		d.entries = append(d.entries, entry)
	}

	sort.Slice(d.entries, func(i, j int) bool {
		a, b := d.entries[i], d.entries[j]
		if a.Tag != b.Tag {
			return a.Tag < b.Tag
		}
		return a.Mask > b.Mask
	})
	d.masks = patternMasks(d.byPattern)
	d.fingerprint = fingerprint(d.entries)
	return d, nil
}

// isKeyword is true for keywords of the form [A-Za-z][A-Za-z0-9]*, which keeps every entry
// writable as a row of the table LoadDictionary reads.
func isKeyword(s string) bool {
	for i, r := range s {
		switch {
		case 'A' <= r && r <= 'Z', 'a' <= r && r <= 'z':
		case '0' <= r && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return s != ""
}

// patternMasks returns the distinct masks in use, ordered so that a mask with fewer wildcard
// positions is tried first.
func patternMasks(patterns map[tagPattern]*DictionaryEntry) []uint32 {
	seen := map[uint32]bool{}
	var masks []uint32
	for p := range patterns {
		if !seen[p.mask] {
			seen[p.mask] = true
			masks = append(masks, p.mask)
		}
	}
	sort.Slice(masks, func(i, j int) bool {
		ci, cj := bits.OnesCount32(masks[i]), bits.OnesCount32(masks[j])
		if ci != cj {
			return ci > cj
		}
		return masks[i] > masks[j]
	})
	return masks
}

// ByName returns the entry with the given keyword. Keywords are case sensitive.
func (d *Dictionary) ByName(keyword string) (*DictionaryEntry, bool) {
	e, ok := d.byName[keyword]
	return e, ok
}

// ByTag returns the entry describing tag. An attribute registered at exactly tag is preferred
// over any repeating group attribute matching it.
func (d *Dictionary) ByTag(tag DataElementTag) (*DictionaryEntry, bool) {
	if e, ok := d.byTag[tag]; ok {
		return e, true
	}
	return d.byRepeatingTag(tag)
}

func (d *Dictionary) byRepeatingTag(tag DataElementTag) (*DictionaryEntry, bool) {
	for _, m := range d.masks {
		if e, ok := d.byPattern[tagPattern{DataElementTag(uint32(tag) & m), m}]; ok {
			return e, true
		}
	}
	return nil, false
}

// Find is like ByTag but also describes the elements PS3.5 defines outside the dictionary: the
// group length (gggg,0000) of every group, which is UL, and private creator elements
// (gggg,0010-00FF) of odd groups, which are LO. Find returns nil when the tag is unknown.
func (d *Dictionary) Find(tag DataElementTag) *DictionaryEntry {
	if e, ok := d.byTag[tag]; ok {
		return e
	}
	if tag.IsGroupLength() {
		return &DictionaryEntry{
			Tag:  tag,
			Mask: ExactMask,
			Name: "Group Length",
			VRs:  []*VR{ULVR},
			VM:   vmOne,
		}
	}
	if e, ok := d.byRepeatingTag(tag); ok {
		return e
	}
	if tag.IsPrivateCreator() {
		return &DictionaryEntry{
			Tag:  tag,
			Mask: ExactMask,
			Name: "Private Creator",
			VRs:  []*VR{LOVR},
			VM:   vmOne,
		}
	}
	return nil
}

var vmOne = ValueMultiplicity{text: "1", ranges: []vmRange{{1, 1, 1}}}

// Len returns the number of entries. Both indices hold exactly this many entries.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Entries returns the entries ordered by tag, exact entries before repeating ones that share
// the same tag. The slice is a copy; the entries are shared and must not be modified.
func (d *Dictionary) Entries() []*DictionaryEntry {
	out := make([]*DictionaryEntry, len(d.entries))
	copy(out, d.entries)
	return out
}

// Version returns the edition of the standard the dictionary was generated from, e.g. 2024c.
func (d *Dictionary) Version() string {
	return d.version
}

// Fingerprint is a 64-bit digest of every entry. Dictionaries holding the same entries have the
// same fingerprint regardless of the order they were built in or their version label.
func (d *Dictionary) Fingerprint() uint64 {
	return d.fingerprint
}

// ByName returns the entry with the given keyword from the Default dictionary.
func ByName(keyword string) (*DictionaryEntry, bool) {
	return Default().ByName(keyword)
}

// ByTag returns the entry describing tag from the Default dictionary.
func ByTag(tag DataElementTag) (*DictionaryEntry, bool) {
	return Default().ByTag(tag)
}
