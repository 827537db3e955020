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
	"testing"
)

type arithmeticSeq struct {
	start DataElementTag
	end   DataElementTag
	inc   DataElementTag
}

func TestDataElementTag_String(t *testing.T) {
	got := ItemTag.String()
	want := "(FFFE,E000)"
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDataElementTag_ElementNumber(t *testing.T) {
	tag := DataElementTag(0xFEDCBA98)
	if tag.ElementNumber() != 0xBA98 {
		t.Fatalf("got %v, want %v", tag.ElementNumber(), 0xBA98)
	}
}

func TestDataElementTag_GroupNumber(t *testing.T) {
	tag := DataElementTag(0xFEDCBA98)
	if tag.GroupNumber() != 0xFEDC {
		t.Fatalf("got %v, want %v", tag.GroupNumber(), 0xFEDC)
	}
}

func TestDataElementTag_IsMetaElement(t *testing.T) {
	if !TransferSyntaxUIDTag.IsMetaElement() {
		t.Fatalf("expected %v to be a meta element", TransferSyntaxUIDTag)
	}
	if PatientNameTag.IsMetaElement() {
		t.Fatalf("expected %v not to be a meta element", PatientNameTag)
	}
}

func TestDataElementTag_IsPrivate(t *testing.T) {
	tests := []struct {
		name string
		tag  DataElementTag
		want bool
	}{
		{
			"when group number is odd, the tag is considered private",
			DataElementTag(0x00010000),
			true,
		},
		{
			"when group number is even, the tag is considered non-private",
			DataElementTag(PixelDataTag),
			false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.tag.IsPrivate()
			if got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDataElementTag_IsPrivateCreator(t *testing.T) {
	tests := []struct {
		name string
		tag  DataElementTag
		want bool
	}{
		{"first creator of an odd group", 0x00090010, true},
		{"last creator of an odd group", 0x000900FF, true},
		{"below the creator block", 0x0009000F, false},
		{"private data element", 0x00091000, false},
		{"even group", 0x00080010, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.tag.IsPrivateCreator(); got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDataElementTag_IsGroupLength(t *testing.T) {
	if !FileMetaInformationGroupLengthTag.IsGroupLength() {
		t.Fatalf("expected %v to be a group length", FileMetaInformationGroupLengthTag)
	}
	if PatientNameTag.IsGroupLength() {
		t.Fatalf("expected %v not to be a group length", PatientNameTag)
	}
}

func TestDataElementTag_DictionaryVR(t *testing.T) {
	tests := []struct {
		name   string
		tagSet arithmeticSeq
		want   *VR
	}{
		{
			"Tags of the form (50xx,2610) have VR US",
			arithmeticSeq{0x50002610, 0x50FF2610, 0x00010000},
			USVR,
		},
		{
			"Tags without wildcard lookup",
			arithmeticSeq{MACParametersSequenceTag, MACParametersSequenceTag, 1},
			SQVR,
		},
		{
			"When the Tag has multiple associated VRs, the last one in the dictionary row is chosen",
			arithmeticSeq{GrayLookupTableDataTag, GrayLookupTableDataTag, 1},
			OWVR,
		},
		{
			"When the data dictionary is ambiguous because there is a collision between " +
				"a wildcard entry and an exact match, the exact match takes precedence",
			arithmeticSeq{TransformLabelTag, TransformLabelTag, 1},
			LOVR,
		},
		{
			"when lookup fails, UNVR is returned",
			arithmeticSeq{0xABCDEF98, 0xABCDEF98, 1},
			UNVR,
		},
		{
			"when the tag belongs to private creator group (gggg,0010-00FF) where gggg is odd, " +
				"the dictionary VR is LO",
			arithmeticSeq{0x80010010, 0x800100FF, 1},
			LOVR,
		},
		{
			"when the tag is a group length element (gggg,0000) the VR is UL",
			arithmeticSeq{0x00020000, 0x0FFF0000, 0x00010000},
			ULVR,
		},
		{
			"Tags of the form (60xx,3000) have VR OW",
			arithmeticSeq{0x60003000, 0x60FE3000, 0x00020000},
			OWVR,
		},
		{
			"Items and delimiters have no VR in the dictionary",
			arithmeticSeq{ItemTag, ItemTag, 1},
			UNVR,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for tag := tc.tagSet.start; tag <= tc.tagSet.end; tag += tc.tagSet.inc {
				got := DataElementTag(tag).DictionaryVR()
				if got != tc.want {
					t.Fatalf("%v: got %v, want %v", tag, got, tc.want)
				}
			}
		})
	}
}

func TestParseTag(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want DataElementTag
	}{
		{"parenthesized", "(0010,0010)", PatientNameTag},
		{"bare pair", "7FE0,0010", PixelDataTag},
		{"lower case", "(fffe,e000)", ItemTag},
		{"packed", "00020010", TransferSyntaxUIDTag},
		{"hex literal", "0x00100010", PatientNameTag},
		{"surrounding space", " (0010, 0010) ", PatientNameTag},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseTag(tc.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestParseTag_invalidCases(t *testing.T) {
	tests := []string{
		"",
		"(0010)",
		"(0010,001)",
		"(001G,0010)",
		"0010001",
		"0x001000100",
		"PatientName",
	}

	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseTag(in); err == nil {
				t.Fatalf("expected error parsing %q", in)
			}
		})
	}
}
