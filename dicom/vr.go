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
)

// UndefinedLength as specified
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1.1
const UndefinedLength = 0xffffffff

// VR models the DICOM Value representations (VR)
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
//
// There is exactly one *VR per code, so VRs may be compared with ==.
type VR struct {
	// Name represents the 2-character VR Code
	Name string
}

func (vr *VR) String() string {
	return vr.Name
}

// Has32BitLength reports whether explicit VR encodings store the value length of this VR in a
// 32 bit field preceded by 2 reserved bytes. The 2 cases are defined at the link:
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1.2
func (vr *VR) Has32BitLength() bool {
	switch vr {
	case OBVR, ODVR, OFVR, OLVR, OVVR, OWVR, SQVR, SVVR, UCVR, URVR, UTVR, UVVR, UNVR:
		return true
	default:
		return false
	}
}

var vrLookupMap = map[string]*VR{}

func newVR(text string) *VR {
	vr := &VR{text}
	vrLookupMap[vr.Name] = vr

	return vr
}

// LookupVR returns the VR with the given 2-character code.
func LookupVR(name string) (*VR, error) {
	r, ok := vrLookupMap[name]
	if !ok {
		return nil, fmt.Errorf("unknown vr name: %v", name)
	}
	return r, nil
}

// VRs returns every known VR ordered by code.
func VRs() []*VR {
	vrs := make([]*VR, 0, len(vrLookupMap))
	for _, vr := range vrLookupMap {
		vrs = append(vrs, vr)
	}
	sort.Slice(vrs, func(i, j int) bool { return vrs[i].Name < vrs[j].Name })
	return vrs
}

// VR list obtained from
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
var (
	// textual VRs
	CSVR = newVR("CS")
	SHVR = newVR("SH")
	LOVR = newVR("LO")
	STVR = newVR("ST")
	LTVR = newVR("LT")
	ASVR = newVR("AS")

	// person name
	PNVR = newVR("PN")

	// application entity
	AEVR = newVR("AE")

	// dates/time VR
	DAVR = newVR("DA")
	TMVR = newVR("TM")
	DTVR = newVR("DT")

	// textual numbers
	ISVR = newVR("IS")
	DSVR = newVR("DS")

	// binary numbers
	SSVR = newVR("SS")
	USVR = newVR("US")
	SLVR = newVR("SL")
	ULVR = newVR("UL")
	SVVR = newVR("SV")
	UVVR = newVR("UV")
	FLVR = newVR("FL")
	FDVR = newVR("FD")

	// large binary sequences
	OBVR = newVR("OB")
	ODVR = newVR("OD")
	OLVR = newVR("OL")
	OVVR = newVR("OV")
	OWVR = newVR("OW")
	OFVR = newVR("OF")

	// unlimited char
	UCVR = newVR("UC")

	// unknown
	UNVR = newVR("UN")

	// URL
	URVR = newVR("UR")

	// unlimited text
	UTVR = newVR("UT")

	// attribute tag
	ATVR = newVR("AT")

	// unique identifier
	UIVR = newVR("UI")

	// sequence
	SQVR = newVR("SQ")
)
