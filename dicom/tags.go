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

// Tags of frequently used attributes. Each constant is named after the keyword of its dictionary
// entry. Repeating group attributes use their first group, e.g. OverlayDataTag is (6000,3000).
const (
	// File Meta Information
	FileMetaInformationGroupLengthTag DataElementTag = 0x00020000
	FileMetaInformationVersionTag     DataElementTag = 0x00020001
	MediaStorageSOPClassUIDTag        DataElementTag = 0x00020002
	MediaStorageSOPInstanceUIDTag     DataElementTag = 0x00020003
	TransferSyntaxUIDTag              DataElementTag = 0x00020010
	ImplementationClassUIDTag         DataElementTag = 0x00020012
	ImplementationVersionNameTag      DataElementTag = 0x00020013
	SourceApplicationEntityTitleTag   DataElementTag = 0x00020016
	PrivateInformationCreatorUIDTag   DataElementTag = 0x00020100
	PrivateInformationTag             DataElementTag = 0x00020102

	SpecificCharacterSetTag     DataElementTag = 0x00080005
	ImageTypeTag                DataElementTag = 0x00080008
	SOPClassUIDTag              DataElementTag = 0x00080016
	SOPInstanceUIDTag           DataElementTag = 0x00080018
	StudyDateTag                DataElementTag = 0x00080020
	ModalityTag                 DataElementTag = 0x00080060
	ReferencedStudySequenceTag  DataElementTag = 0x00081110
	ReferencedImageSequenceTag  DataElementTag = 0x00081140
	ReferencedSOPInstanceUIDTag DataElementTag = 0x00081155
	SimpleFrameListTag          DataElementTag = 0x00081161

	PatientNameTag      DataElementTag = 0x00100010
	PatientIDTag        DataElementTag = 0x00100020
	PatientBirthDateTag DataElementTag = 0x00100030
	PatientSexTag       DataElementTag = 0x00100040

	StudyInstanceUIDTag    DataElementTag = 0x0020000D
	SeriesInstanceUIDTag   DataElementTag = 0x0020000E
	FrameOfReferenceUIDTag DataElementTag = 0x00200052

	SamplesPerPixelTag           DataElementTag = 0x00280002
	PhotometricInterpretationTag DataElementTag = 0x00280004
	NumberOfFramesTag            DataElementTag = 0x00280008
	FrameIncrementPointerTag     DataElementTag = 0x00280009
	RowsTag                      DataElementTag = 0x00280010
	ColumnsTag                   DataElementTag = 0x00280011
	BitsAllocatedTag             DataElementTag = 0x00280100
	BitsStoredTag                DataElementTag = 0x00280101
	PixelRepresentationTag       DataElementTag = 0x00280103
	TransformLabelTag            DataElementTag = 0x00280400
	GrayLookupTableDataTag       DataElementTag = 0x00281200
	PixelDataProviderURLTag      DataElementTag = 0x00287FE0

	MACParametersSequenceTag DataElementTag = 0x4FFE0001
	CurveDataTag             DataElementTag = 0x50003000
	WaveformDataTag          DataElementTag = 0x54001010
	SpectroscopyDataTag      DataElementTag = 0x56000020
	OverlayDataTag           DataElementTag = 0x60003000

	ExtendedOffsetTableTag        DataElementTag = 0x7FE00001
	ExtendedOffsetTableLengthsTag DataElementTag = 0x7FE00002
	FloatPixelDataTag             DataElementTag = 0x7FE00008
	DoubleFloatPixelDataTag       DataElementTag = 0x7FE00009
	PixelDataTag                  DataElementTag = 0x7FE00010

	DigitalSignaturesSequenceTag DataElementTag = 0xFFFAFFFA
	DataSetTrailingPaddingTag    DataElementTag = 0xFFFCFFFC

	// Items and delimiters of encoded sequences
	// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.5
	ItemTag                     DataElementTag = 0xFFFEE000
	ItemDelimitationItemTag     DataElementTag = 0xFFFEE00D
	SequenceDelimitationItemTag DataElementTag = 0xFFFEE0DD
)
