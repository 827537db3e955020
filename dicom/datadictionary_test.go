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
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const smallTable = "# version: test\n" +
	"(0010,0010)\tPatient's Name\tPatientName\tPN\t1\t\n" +
	"(0028,1200)\tGray Lookup Table Data\tGrayLookupTableData\tUS or SS or OW\t1-n or 1\tRET\n" +
	"(60xx,3000)\tOverlay Data\tOverlayData\tOB or OW\t1\t\n" +
	"(FFFE,E000)\tItem\tItem\t\t1\n"

func TestLoadDictionary(t *testing.T) {
	d, err := LoadDictionary(strings.NewReader(smallTable))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Version() != "test" {
		t.Fatalf("got version %v, want test", d.Version())
	}
	if d.Len() != 4 {
		t.Fatalf("got %v entries, want 4", d.Len())
	}

	want := []*DictionaryEntry{
		{
			Tag: PatientNameTag, Mask: ExactMask, Name: "Patient's Name", Keyword: "PatientName",
			VRs: []*VR{PNVR}, VM: mustVM(t, "1"),
		},
		{
			Tag: GrayLookupTableDataTag, Mask: ExactMask, Name: "Gray Lookup Table Data", Keyword: "GrayLookupTableData",
			VRs: []*VR{USVR, SSVR, OWVR}, VM: mustVM(t, "1-n or 1"), Retired: true,
		},
		{
			Tag: OverlayDataTag, Mask: 0xFF00FFFF, Name: "Overlay Data", Keyword: "OverlayData",
			VRs: []*VR{OBVR, OWVR}, VM: mustVM(t, "1"),
		},
		{
			Tag: ItemTag, Mask: ExactMask, Name: "Item", Keyword: "Item", VM: mustVM(t, "1"),
		},
	}
	if diff := cmp.Diff(want, d.Entries()); diff != "" {
		t.Fatalf("unexpected entries (-want +got):\n%s", diff)
	}
}

func TestLoadDictionary_invalidCases(t *testing.T) {
	tests := []struct {
		name  string
		table string
	}{
		{"empty table", "# version: test\n"},
		{"too few columns", "(0010,0010)\tPatient's Name\tPatientName\tPN\n"},
		{"too many columns", "(0010,0010)\tPatient's Name\tPatientName\tPN\t1\t\textra\n"},
		{"malformed tag", "(0010;0010)\tPatient's Name\tPatientName\tPN\t1\t\n"},
		{"non hex tag", "(00G0,0010)\tPatient's Name\tPatientName\tPN\t1\t\n"},
		{"unknown vr", "(0010,0010)\tPatient's Name\tPatientName\tXX\t1\t\n"},
		{"invalid vm", "(0010,0010)\tPatient's Name\tPatientName\tPN\tmany\t\n"},
		{"unknown retired marker", "(0010,0010)\tPatient's Name\tPatientName\tPN\t1\tOLD\n"},
		{"duplicate keyword", "(0010,0010)\tA\tPatientName\tPN\t1\t\n(0010,0020)\tB\tPatientName\tLO\t1\t\n"},
		{"keyword with space", "(0010,0010)\tPatient's Name\tPatient Name\tPN\t1\t\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadDictionary(strings.NewReader(tc.table)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestLoadDictionary_reportsLine(t *testing.T) {
	table := "# version: test\n\n(0010,0010)\tPatient's Name\tPatientName\tXX\t1\t\n"
	_, err := LoadDictionary(strings.NewReader(table))
	if err == nil || !strings.Contains(err.Error(), "line 3") {
		t.Fatalf("expected error mentioning line 3, got %v", err)
	}
}

func TestLoadDictionary_duplicateIsSentinel(t *testing.T) {
	table := "(0010,0010)\tA\tPatientName\tPN\t1\t\n(0010,0010)\tB\tOtherName\tPN\t1\t\n"
	_, err := LoadDictionary(strings.NewReader(table))
	if !errors.Is(err, ErrDuplicateTag) {
		t.Fatalf("got %v, want %v", err, ErrDuplicateTag)
	}
}

func TestDictionary_WriteTo(t *testing.T) {
	var buf bytes.Buffer
	if _, err := Default().WriteTo(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d, err := LoadDictionary(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Version() != Default().Version() {
		t.Fatalf("got version %v, want %v", d.Version(), Default().Version())
	}
	if diff := cmp.Diff(Default().Entries(), d.Entries()); diff != "" {
		t.Fatalf("unexpected entries (-want +got):\n%s", diff)
	}
	if d.Fingerprint() != Default().Fingerprint() {
		t.Fatalf("got fingerprint %x, want %x", d.Fingerprint(), Default().Fingerprint())
	}
}

func TestDictionary_WriteToCount(t *testing.T) {
	d, err := LoadDictionary(strings.NewReader(smallTable))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	n, err := d.WriteTo(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Fatalf("got %v bytes written, want %v", n, buf.Len())
	}
	if !strings.Contains(buf.String(), "(60xx,3000)\tOverlay Data\tOverlayData\tOB or OW\t1\t\n") {
		t.Fatalf("expected repeating group to be written with wildcards, got:\n%s", buf.String())
	}
}

func TestDictionary_Fingerprint(t *testing.T) {
	a, err := LoadDictionary(strings.NewReader(smallTable))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(smallTable), "\n")
	reordered := "# version: other\n" + strings.Join([]string{lines[4], lines[3], lines[2], lines[1]}, "\n")
	b, err := LoadDictionary(strings.NewReader(reordered))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Fingerprint() != b.Fingerprint() {
		t.Fatalf("expected the same entries to have the same fingerprint")
	}

	c, err := LoadDictionary(strings.NewReader(strings.Replace(smallTable, "\tRET\n", "\t\n", 1)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Fingerprint() == c.Fingerprint() {
		t.Fatalf("expected different entries to have different fingerprints")
	}
}

func TestEmbeddedDataDictionary(t *testing.T) {
	d := Default()
	for _, e := range d.Entries() {
		if e.Name == "" {
			t.Errorf("%v has no name", e.Pattern())
		}
		if e.VM.String() == "" {
			t.Errorf("%v has no VM", e.Keyword)
		}
		if len(e.VRs) == 0 && e.Tag.GroupNumber() != 0xFFFE {
			t.Errorf("%v has no VR", e.Keyword)
		}
	}
}

func TestEmbeddedDataDictionary_coverage(t *testing.T) {
	d := Default()
	if d.Len() < 4800 {
		t.Fatalf("got %v entries, want at least 4800", d.Len())
	}

	groups := map[uint16]bool{}
	for _, e := range d.Entries() {
		groups[e.Tag.GroupNumber()] = true
	}
	for _, g := range []uint16{
		0x0000, 0x0002, 0x0004, 0x0008, 0x0010, 0x0012, 0x0014, 0x0016, 0x0018, 0x0020,
		0x0022, 0x0024, 0x0028, 0x0032, 0x0038, 0x003A, 0x0040, 0x0042, 0x0044, 0x0046,
		0x0048, 0x0050, 0x0052, 0x0054, 0x0060, 0x0062, 0x0064, 0x0066, 0x0068, 0x0070,
		0x0072, 0x0074, 0x0076, 0x0078, 0x0080, 0x0082, 0x0088, 0x0100, 0x0400, 0x2000,
		0x2010, 0x2020, 0x2030, 0x2040, 0x2050, 0x2100, 0x2110, 0x2120, 0x2130, 0x2200,
		0x3002, 0x3004, 0x3006, 0x3008, 0x300A, 0x300C, 0x300E, 0x4000, 0x4008, 0x4010,
		0x4FFE, 0x5200, 0x5400, 0x5600, 0x7FE0, 0xFFFA, 0xFFFC, 0xFFFE,
	} {
		if !groups[g] {
			t.Errorf("no attributes in group %04X", g)
		}
	}

	tests := []struct {
		tag     DataElementTag
		keyword string
	}{
		{0x00720002, "HangingProtocolName"},
		{0x30080010, "MeasuredDoseReferenceSequence"},
		{0x00220035, "DepthSpatialResolution"},
		{0x00221019, "OphthalmicAxialLength"},
		{0x0014400A, "AmplifierType"},
		{0x20000010, "NumberOfCopies"},
		{0x20000020, "PrintPriority"},
		{0x00660002, "SurfaceSequence"},
		{0x00221095, "ImplantName"},
		{0x00160001, "WhitePoint"},
		{0x00240010, "VisualFieldHorizontalExtent"},
		{0x40101001, "ThreatROIVoxelSequence"},
		{0x300A00B6, "BeamLimitingDeviceSequence"},
		{0x00189302, "AcquisitionType"},
		{0x00400100, "ScheduledProcedureStepSequence"},
	}
	for _, tc := range tests {
		t.Run(tc.keyword, func(t *testing.T) {
			byTag, ok := d.ByTag(tc.tag)
			if !ok {
				t.Fatalf("expected %v to be found", tc.tag)
			}
			byName, ok := d.ByName(tc.keyword)
			if !ok {
				t.Fatalf("expected %v to be found", tc.keyword)
			}
			if byTag != byName {
				t.Fatalf("%v is %v, want %v", tc.tag, byTag.Keyword, tc.keyword)
			}
		})
	}
}

func TestTagConstants(t *testing.T) {
	tests := []struct {
		tag     DataElementTag
		keyword string
	}{
		{FileMetaInformationGroupLengthTag, "FileMetaInformationGroupLength"},
		{FileMetaInformationVersionTag, "FileMetaInformationVersion"},
		{MediaStorageSOPClassUIDTag, "MediaStorageSOPClassUID"},
		{MediaStorageSOPInstanceUIDTag, "MediaStorageSOPInstanceUID"},
		{TransferSyntaxUIDTag, "TransferSyntaxUID"},
		{ImplementationClassUIDTag, "ImplementationClassUID"},
		{ImplementationVersionNameTag, "ImplementationVersionName"},
		{SourceApplicationEntityTitleTag, "SourceApplicationEntityTitle"},
		{PrivateInformationCreatorUIDTag, "PrivateInformationCreatorUID"},
		{PrivateInformationTag, "PrivateInformation"},
		{SpecificCharacterSetTag, "SpecificCharacterSet"},
		{ImageTypeTag, "ImageType"},
		{SOPClassUIDTag, "SOPClassUID"},
		{SOPInstanceUIDTag, "SOPInstanceUID"},
		{StudyDateTag, "StudyDate"},
		{ModalityTag, "Modality"},
		{ReferencedStudySequenceTag, "ReferencedStudySequence"},
		{ReferencedImageSequenceTag, "ReferencedImageSequence"},
		{ReferencedSOPInstanceUIDTag, "ReferencedSOPInstanceUID"},
		{SimpleFrameListTag, "SimpleFrameList"},
		{PatientNameTag, "PatientName"},
		{PatientIDTag, "PatientID"},
		{PatientBirthDateTag, "PatientBirthDate"},
		{PatientSexTag, "PatientSex"},
		{StudyInstanceUIDTag, "StudyInstanceUID"},
		{SeriesInstanceUIDTag, "SeriesInstanceUID"},
		{FrameOfReferenceUIDTag, "FrameOfReferenceUID"},
		{SamplesPerPixelTag, "SamplesPerPixel"},
		{PhotometricInterpretationTag, "PhotometricInterpretation"},
		{NumberOfFramesTag, "NumberOfFrames"},
		{FrameIncrementPointerTag, "FrameIncrementPointer"},
		{RowsTag, "Rows"},
		{ColumnsTag, "Columns"},
		{BitsAllocatedTag, "BitsAllocated"},
		{BitsStoredTag, "BitsStored"},
		{PixelRepresentationTag, "PixelRepresentation"},
		{TransformLabelTag, "TransformLabel"},
		{GrayLookupTableDataTag, "GrayLookupTableData"},
		{PixelDataProviderURLTag, "PixelDataProviderURL"},
		{MACParametersSequenceTag, "MACParametersSequence"},
		{CurveDataTag, "CurveData"},
		{WaveformDataTag, "WaveformData"},
		{SpectroscopyDataTag, "SpectroscopyData"},
		{OverlayDataTag, "OverlayData"},
		{ExtendedOffsetTableTag, "ExtendedOffsetTable"},
		{ExtendedOffsetTableLengthsTag, "ExtendedOffsetTableLengths"},
		{FloatPixelDataTag, "FloatPixelData"},
		{DoubleFloatPixelDataTag, "DoubleFloatPixelData"},
		{PixelDataTag, "PixelData"},
		{DigitalSignaturesSequenceTag, "DigitalSignaturesSequence"},
		{DataSetTrailingPaddingTag, "DataSetTrailingPadding"},
		{ItemTag, "Item"},
		{ItemDelimitationItemTag, "ItemDelimitationItem"},
		{SequenceDelimitationItemTag, "SequenceDelimitationItem"},
	}

	for _, tc := range tests {
		t.Run(tc.keyword, func(t *testing.T) {
			e, ok := ByTag(tc.tag)
			if !ok {
				t.Fatalf("expected %v to be found", tc.tag)
			}
			if e.Keyword != tc.keyword {
				t.Fatalf("got %v, want %v", e.Keyword, tc.keyword)
			}
		})
	}
}
