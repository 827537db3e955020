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
	"strconv"
	"strings"
)

// DataElementTag is a unique identifier for a Data Element composed of an unordered pair
// of numbers called the group number and the element number as specified in
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_3.10.
//
// The least significant 16 bits is the element number. The most significant 16 bits is the group
// number.
type DataElementTag uint32

// GroupNumber returns the group number component of the DataElementTag
func (t DataElementTag) GroupNumber() uint16 {
	return uint16(t >> 16)
}

// ElementNumber returns the element number component of the DataElementTag
func (t DataElementTag) ElementNumber() uint16 {
	return uint16(t & 0xFFFF)
}

// IsMetaElement is true if and only if the Data Element belongs to the File Meta Information
// group (0002,eeee)
func (t DataElementTag) IsMetaElement() bool {
	return t.GroupNumber() == uint16(0x0002)
}

// IsPrivate is true if and only if the group number is odd, as specified in
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.8
func (t DataElementTag) IsPrivate() bool {
	return t.GroupNumber()%2 == 1
}

// IsPrivateCreator is true if the tag reserves a block of private elements, (gggg,0010-00FF)
// with gggg odd.
func (t DataElementTag) IsPrivateCreator() bool {
	e := t.ElementNumber()
	return t.IsPrivate() && e >= 0x0010 && e <= 0x00FF
}

// IsGroupLength is true for the group length element (gggg,0000) of any group.
func (t DataElementTag) IsGroupLength() bool {
	return t.ElementNumber() == 0x0000
}

// String renders the tag as (GGGG,EEEE)
func (t DataElementTag) String() string {
	return fmt.Sprintf("(%04X,%04X)", t.GroupNumber(), t.ElementNumber())
}

// DictionaryVR returns the VR a decoder should assume for the tag when the encoding does not
// carry one. Standard and repeating group attributes use the VR of their dictionary entry, group
// length elements are UL, private creator elements are LO and everything else is UN.
func (t DataElementTag) DictionaryVR() *VR {
	if e := Default().Find(t); e != nil {
		return e.VR()
	}
	return UNVR
}

// ParseTag parses a tag written as (gggg,eeee), gggg,eeee, ggggeeee or 0xggggeeee. Hex digits are
// case insensitive and surrounding whitespace is ignored.
func ParseTag(s string) (DataElementTag, error) {
	v := strings.TrimSpace(s)
	if strings.HasPrefix(v, "(") && strings.HasSuffix(v, ")") {
		v = v[1 : len(v)-1]
	}
	if group, element, ok := strings.Cut(v, ","); ok {
		g, err := parseTagHalf(group)
		if err != nil {
			return 0, fmt.Errorf("parsing group of tag %q: %v", s, err)
		}
		e, err := parseTagHalf(element)
		if err != nil {
			return 0, fmt.Errorf("parsing element of tag %q: %v", s, err)
		}
		return DataElementTag(g<<16 | e), nil
	}

	v = strings.TrimPrefix(strings.TrimPrefix(v, "0x"), "0X")
	if len(v) != 8 {
		return 0, fmt.Errorf("tag %q must have 8 hex digits", s)
	}
	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("parsing tag %q: %v", s, err)
	}
	return DataElementTag(n), nil
}

func parseTagHalf(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	if len(s) != 4 {
		return 0, fmt.Errorf("%q must have 4 hex digits", s)
	}
	n, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, err
	}
	return uint32(n), nil
}
