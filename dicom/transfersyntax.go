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
	"encoding/binary"
	"fmt"
	"sort"
)

// list of transfer syntaxes obtained from
// http://dicom.nema.org/medical/dicom/current/output/html/part06.html#chapter_A
const (
	// ImplicitVRLittleEndianUID is the Implicit VR Little Endian UID
	ImplicitVRLittleEndianUID = "1.2.840.10008.1.2"
	// ExplicitVRLittleEndianUID is the Explicit VR Little Endian UID
	ExplicitVRLittleEndianUID = "1.2.840.10008.1.2.1"
	// EncapsulatedUncompressedExplicitVRLittleEndianUID is the Encapsulated Uncompressed Explicit
	// VR Little Endian UID
	EncapsulatedUncompressedExplicitVRLittleEndianUID = "1.2.840.10008.1.2.1.98"
	// DeflatedExplicitVRLittleEndianUID is the Deflated Explicit VR Little Endian UID
	DeflatedExplicitVRLittleEndianUID = "1.2.840.10008.1.2.1.99"
	// ExplicitVRBigEndianUID is the Explicit VR Big Endian UID
	ExplicitVRBigEndianUID = "1.2.840.10008.1.2.2"
	// JPEGBaselineUID is the JPEG Baseline (Process 1) transfer syntax UID
	JPEGBaselineUID = "1.2.840.10008.1.2.4.50"
	// JPEGExtendedUID is the JPEG Extended (Process 2 & 4) transfer syntax UID
	JPEGExtendedUID = "1.2.840.10008.1.2.4.51"
	// JPEGLosslessUID is the JPEG Lossless, Non-Hierarchical (Process 14) transfer syntax UID
	JPEGLosslessUID = "1.2.840.10008.1.2.4.57"
	// JPEGLosslessSV1UID is the JPEG Lossless, Non-Hierarchical, First-Order Prediction
	// (Process 14 [Selection Value 1]) transfer syntax UID
	JPEGLosslessSV1UID = "1.2.840.10008.1.2.4.70"
	// JPEGLSLosslessUID is the JPEG-LS Lossless Image Compression transfer syntax UID
	JPEGLSLosslessUID = "1.2.840.10008.1.2.4.80"
	// JPEGLSNearLosslessUID is the JPEG-LS Lossy (Near-Lossless) Image Compression transfer
	// syntax UID
	JPEGLSNearLosslessUID = "1.2.840.10008.1.2.4.81"
	// JPEG2000LosslessUID is the JPEG 2000 Image Compression (Lossless Only) transfer syntax UID
	JPEG2000LosslessUID = "1.2.840.10008.1.2.4.90"
	// JPEG2000UID is the JPEG 2000 Image Compression transfer syntax UID
	JPEG2000UID = "1.2.840.10008.1.2.4.91"
	// MPEG2MainProfileUID is the MPEG2 Main Profile / Main Level transfer syntax UID
	MPEG2MainProfileUID = "1.2.840.10008.1.2.4.100"
	// MPEG4HighProfileUID is the MPEG-4 AVC/H.264 High Profile / Level 4.1 transfer syntax UID
	MPEG4HighProfileUID = "1.2.840.10008.1.2.4.102"
	// HEVCMainProfileUID is the HEVC/H.265 Main Profile / Level 5.1 transfer syntax UID
	HEVCMainProfileUID = "1.2.840.10008.1.2.4.107"
	// HTJ2KLosslessUID is the High-Throughput JPEG 2000 Image Compression (Lossless Only)
	// transfer syntax UID
	HTJ2KLosslessUID = "1.2.840.10008.1.2.4.201"
	// HTJ2KUID is the High-Throughput JPEG 2000 Image Compression transfer syntax UID
	HTJ2KUID = "1.2.840.10008.1.2.4.203"
	// RLELosslessUID is the RLE Lossless transfer syntax UID
	RLELosslessUID = "1.2.840.10008.1.2.5"
)

const (
	vrSize  = 2
	tagSize = 4
)

// TransferSyntax describes how the Data Elements of a Data Set are encoded, as specified in
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#chapter_10
type TransferSyntax struct {
	UID  string
	Name string

	// Implicit is true when Data Elements do not carry their VR, which must then be recovered
	// from the data dictionary.
	Implicit  bool
	ByteOrder binary.ByteOrder
	// Deflated is true when the Data Set following the File Meta Information is compressed with
	// the deflate algorithm.
	Deflated bool
	// Encapsulated is true when Pixel Data is stored as a sequence of fragments.
	Encapsulated bool
	Retired      bool
}

var transferSyntaxes = map[string]*TransferSyntax{}

func newTransferSyntax(ts TransferSyntax) *TransferSyntax {
	transferSyntaxes[ts.UID] = &ts
	return &ts
}

// encapsulated returns an explicit VR little endian syntax with encapsulated pixel data, the
// encoding every compressed transfer syntax uses according to PS3.5 A.4
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_A.4
func encapsulated(uid, name string) TransferSyntax {
	return TransferSyntax{UID: uid, Name: name, ByteOrder: binary.LittleEndian, Encapsulated: true}
}

// Transfer syntaxes known to the registry.
var (
	ImplicitVRLittleEndian = newTransferSyntax(TransferSyntax{
		UID: ImplicitVRLittleEndianUID, Name: "Implicit VR Little Endian",
		Implicit: true, ByteOrder: binary.LittleEndian,
	})
	ExplicitVRLittleEndian = newTransferSyntax(TransferSyntax{
		UID: ExplicitVRLittleEndianUID, Name: "Explicit VR Little Endian",
		ByteOrder: binary.LittleEndian,
	})
	EncapsulatedUncompressedExplicitVRLittleEndian = newTransferSyntax(encapsulated(
		EncapsulatedUncompressedExplicitVRLittleEndianUID, "Encapsulated Uncompressed Explicit VR Little Endian"))
	DeflatedExplicitVRLittleEndian = newTransferSyntax(TransferSyntax{
		UID: DeflatedExplicitVRLittleEndianUID, Name: "Deflated Explicit VR Little Endian",
		ByteOrder: binary.LittleEndian, Deflated: true,
	})
	ExplicitVRBigEndian = newTransferSyntax(TransferSyntax{
		UID: ExplicitVRBigEndianUID, Name: "Explicit VR Big Endian",
		ByteOrder: binary.BigEndian, Retired: true,
	})

	JPEGBaseline       = newTransferSyntax(encapsulated(JPEGBaselineUID, "JPEG Baseline (Process 1)"))
	JPEGExtended       = newTransferSyntax(encapsulated(JPEGExtendedUID, "JPEG Extended (Process 2 & 4)"))
	JPEGLossless       = newTransferSyntax(encapsulated(JPEGLosslessUID, "JPEG Lossless, Non-Hierarchical (Process 14)"))
	JPEGLosslessSV1    = newTransferSyntax(encapsulated(JPEGLosslessSV1UID, "JPEG Lossless, Non-Hierarchical, First-Order Prediction (Process 14 [Selection Value 1])"))
	JPEGLSLossless     = newTransferSyntax(encapsulated(JPEGLSLosslessUID, "JPEG-LS Lossless Image Compression"))
	JPEGLSNearLossless = newTransferSyntax(encapsulated(JPEGLSNearLosslessUID, "JPEG-LS Lossy (Near-Lossless) Image Compression"))
	JPEG2000Lossless   = newTransferSyntax(encapsulated(JPEG2000LosslessUID, "JPEG 2000 Image Compression (Lossless Only)"))
	JPEG2000           = newTransferSyntax(encapsulated(JPEG2000UID, "JPEG 2000 Image Compression"))
	MPEG2MainProfile   = newTransferSyntax(encapsulated(MPEG2MainProfileUID, "MPEG2 Main Profile / Main Level"))
	MPEG4HighProfile   = newTransferSyntax(encapsulated(MPEG4HighProfileUID, "MPEG-4 AVC/H.264 High Profile / Level 4.1"))
	HEVCMainProfile    = newTransferSyntax(encapsulated(HEVCMainProfileUID, "HEVC/H.265 Main Profile / Level 5.1"))
	HTJ2KLossless      = newTransferSyntax(encapsulated(HTJ2KLosslessUID, "High-Throughput JPEG 2000 Image Compression (Lossless Only)"))
	HTJ2K              = newTransferSyntax(encapsulated(HTJ2KUID, "High-Throughput JPEG 2000 Image Compression"))
	RLELossless        = newTransferSyntax(encapsulated(RLELosslessUID, "RLE Lossless"))
)

// LookupTransferSyntax returns the transfer syntax with the given UID.
func LookupTransferSyntax(uid string) (*TransferSyntax, bool) {
	ts, ok := transferSyntaxes[uid]
	return ts, ok
}

// TransferSyntaxes returns every known transfer syntax ordered by UID.
func TransferSyntaxes() []*TransferSyntax {
	out := make([]*TransferSyntax, 0, len(transferSyntaxes))
	for _, ts := range transferSyntaxes {
		out = append(out, ts)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UID < out[j].UID })
	return out
}

// ResolveVR returns the VR of a Data Element with the given tag. wireVR is the 2 character VR read
// from the element header and is ignored by implicit syntaxes, which take the VR from the Default
// dictionary instead.
func (ts *TransferSyntax) ResolveVR(tag DataElementTag, wireVR string) (*VR, error) {
	if ts.Implicit {
		return tag.DictionaryVR(), nil
	}
	vr, err := LookupVR(wireVR)
	if err != nil {
		return nil, fmt.Errorf("reading vr of %v: %v", tag, err)
	}
	return vr, nil
}

// HeaderLength returns the number of bytes preceding the value field of a Data Element with the
// given VR.
func (ts *TransferSyntax) HeaderLength(vr *VR) uint32 {
	if ts.Implicit {
		return tagSize + 4 /*length*/
	}
	if vr.Has32BitLength() {
		return tagSize + vrSize + 2 /*reserved*/ + 4 /*32-bit length*/
	}
	return tagSize + vrSize + 2 /*16-bit length*/
}

// ElementSize returns the encoded size of a Data Element with the given VR and value length, or
// UndefinedLength when the value length is undefined.
func (ts *TransferSyntax) ElementSize(vr *VR, valueFieldLength uint32) uint32 {
	if valueFieldLength == UndefinedLength {
		return UndefinedLength
	}
	return ts.HeaderLength(vr) + valueFieldLength
}

func (ts *TransferSyntax) String() string {
	return fmt.Sprintf("%v (%v)", ts.Name, ts.UID)
}
