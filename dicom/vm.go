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

// ValueMultiplicity is the number of values a Data Element may hold, as listed in the VM column of
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.4
//
// A multiplicity is one or more ranges joined by " or ", each of the form n, n-m, n-n or n-kn
// (any positive multiple of k starting at n).
type ValueMultiplicity struct {
	text   string
	ranges []vmRange
}

type vmRange struct {
	min, max int // max is unbounded when < 0
	step     int
}

// ParseValueMultiplicity parses the VM column of the data dictionary.
func ParseValueMultiplicity(s string) (ValueMultiplicity, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ValueMultiplicity{}, fmt.Errorf("empty value multiplicity")
	}

	vm := ValueMultiplicity{text: s}
	for _, alt := range strings.Split(s, " or ") {
		r, err := parseVMRange(strings.TrimSpace(alt))
		if err != nil {
			return ValueMultiplicity{}, fmt.Errorf("parsing value multiplicity %q: %v", s, err)
		}
		vm.ranges = append(vm.ranges, r)
	}
	return vm, nil
}

func parseVMRange(s string) (vmRange, error) {
	lo, hi, isRange := strings.Cut(s, "-")
	min, err := strconv.Atoi(lo)
	if err != nil || min < 1 {
		return vmRange{}, fmt.Errorf("invalid lower bound %q", lo)
	}
	if !isRange {
		return vmRange{min, min, 1}, nil
	}

	if strings.HasSuffix(hi, "n") {
		step := 1
		if k := strings.TrimSuffix(hi, "n"); k != "" {
			if step, err = strconv.Atoi(k); err != nil || step < 1 {
				return vmRange{}, fmt.Errorf("invalid step %q", k)
			}
		}
		return vmRange{min, -1, step}, nil
	}

	max, err := strconv.Atoi(hi)
	if err != nil || max < min {
		return vmRange{}, fmt.Errorf("invalid upper bound %q", hi)
	}
	return vmRange{min, max, 1}, nil
}

// Allows reports whether a Data Element holding n values conforms to the multiplicity.
func (vm ValueMultiplicity) Allows(n int) bool {
	for _, r := range vm.ranges {
		if n < r.min || (r.max >= 0 && n > r.max) {
			continue
		}
		if (n-r.min)%r.step == 0 {
			return true
		}
	}
	return false
}

// IsUnbounded is true when no upper limit applies to the number of values.
func (vm ValueMultiplicity) IsUnbounded() bool {
	for _, r := range vm.ranges {
		if r.max < 0 {
			return true
		}
	}
	return false
}

// String returns the multiplicity as written in the data dictionary, e.g. "1-n or 1".
func (vm ValueMultiplicity) String() string {
	return vm.text
}

// Equal reports whether both multiplicities were parsed from the same text.
func (vm ValueMultiplicity) Equal(other ValueMultiplicity) bool {
	return vm.text == other.text
}
